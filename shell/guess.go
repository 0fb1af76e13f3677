package shell

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	GuessMin = 1
	GuessMax = 100
)

// GuessGame is a single number-guessing round. The target is fixed for the
// life of the session and never re-rolled, even after a correct guess.
type GuessGame struct {
	target   int
	attempts int
}

func NewGuessGame(target int) *GuessGame {
	return &GuessGame{target: target}
}

// Guess scores raw against the target and counts the attempt.
// Input without a leading integer cannot compare below the target and so
// always scores as too high.
func (g *GuessGame) Guess(raw string) string {
	g.attempts++
	n, ok := parseLeadingInt(raw)
	switch {
	case ok && n == g.target:
		return fmt.Sprintf("you guessed it! the number was %d. attempts: %d", g.target, g.attempts)
	case ok && n < g.target:
		return "too low! try again"
	default:
		return "too high! try again"
	}
}

func (g *GuessGame) Attempts() int {
	return g.attempts
}

func (g *GuessGame) Target() int {
	return g.target
}

// parseLeadingInt reads an optional sign followed by the longest run of
// decimal digits at the start of s; trailing characters are ignored
// ("42abc" is 42). ok is false when there are no leading digits.
// Out-of-range values saturate.
func parseLeadingInt(s string) (n int, ok bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}
