// Package repl drives a shell session from an interactive terminal.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/notyourimaginarycoder/termfolio"
	"github.com/notyourimaginarycoder/termfolio/config"
	"github.com/notyourimaginarycoder/termfolio/internal/util"
	"github.com/notyourimaginarycoder/termfolio/shell"
)

// clearScreen homes the cursor and erases the display.
const clearScreen = "\033[H\033[2J"

// LineReader is satisfied by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
}

// Terminal renders shell responses on out.
type Terminal struct {
	sh    *shell.Shell
	cfg   *config.Config
	out   io.Writer
	sleep func(time.Duration)
}

func NewTerminal(sh *shell.Shell, cfg *config.Config, out io.Writer) *Terminal {
	return &Terminal{sh: sh, cfg: cfg, out: out, sleep: time.Sleep}
}

// Prompt returns the coloured prompt followed by a space.
func Prompt(cfg *config.Config) string {
	return color.New(color.FgGreen, color.Bold).Sprint(cfg.Prompt) + " "
}

// Completer completes command names, and the current directory's entries
// after commands that take a name.
func Completer(sh *shell.Shell) *readline.PrefixCompleter {
	entries := func(string) []string {
		return sh.FS().CwdEntries()
	}
	var items []readline.PrefixCompleterInterface
	for _, name := range sh.Commands() {
		switch name {
		case "cat", "cd", "mv", "rm":
			items = append(items, readline.PcItem(name, readline.PcItemDynamic(entries)))
		default:
			items = append(items, readline.PcItem(name))
		}
	}
	return readline.NewPrefixCompleter(items...)
}

// Run prints the banner, then executes lines from in until EOF.
// An interrupt discards the pending line. Blank lines are ignored.
func (t *Terminal) Run(in LineReader) error {
	logger := util.GetLogger("REPL")

	fmt.Fprintln(t.out, t.cfg.Banner)
	for {
		line, err := in.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			logger.Debug().Str("session", t.sh.ID()).Msg("End of input")
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		t.Render(t.sh.Execute(line))
	}
}

// Render writes resp to the terminal, revealing text one character at a
// time when a typing delay is configured.
func (t *Terminal) Render(resp termfolio.Response) {
	if resp.IsClear() {
		fmt.Fprint(t.out, clearScreen)
		return
	}
	if resp.Text != "" {
		t.typeOut(resp.Text)
		fmt.Fprintln(t.out)
	}
	for _, e := range resp.Effects {
		if link, ok := e.(termfolio.OpenLinkEffect); ok {
			fmt.Fprintf(t.out, "→ %s\n", link.URL)
		}
	}
}

func (t *Terminal) typeOut(text string) {
	if t.cfg.TypingDelay <= 0 {
		fmt.Fprint(t.out, text)
		return
	}
	for _, r := range text {
		fmt.Fprint(t.out, string(r))
		t.sleep(t.cfg.TypingDelay)
	}
}
