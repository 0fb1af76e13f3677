package shell

import (
	"slices"
	"strings"
)

// Invocation is one parsed input line.
type Invocation struct {
	Input string   // Trimmed, lowercased line as recorded in history
	Name  string   // Command token; "" for a blank line
	Args  []string // Remaining whitespace-separated tokens
	Arg   string   // Args joined by single spaces, for free-text commands
}

// Parse trims and lowercases line and splits it on whitespace.
func Parse(line string) *Invocation {
	input := strings.ToLower(strings.TrimSpace(line))
	inv := &Invocation{Input: input}

	fields := strings.Fields(input)
	if len(fields) == 0 {
		return inv
	}
	inv.Name = fields[0]
	inv.Args = fields[1:]
	inv.Arg = strings.Join(inv.Args, " ")
	return inv
}

// WantsHelp reports whether any argument is --help or -h.
func (inv *Invocation) WantsHelp() bool {
	return slices.Contains(inv.Args, "--help") || slices.Contains(inv.Args, "-h")
}
