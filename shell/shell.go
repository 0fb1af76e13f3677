// Package shell interprets lines typed into the portfolio terminal.
//
// A [Shell] owns one session: its simulated filesystem, command history,
// alias table, guessing game and start time. Every line is parsed, recorded
// in history and dispatched through a fixed command table; failures are
// reported as response text, never as Go errors.
//
// A Shell is not safe for concurrent use. Front ends serving several clients
// create one Shell per client and serialise the lines of each.
package shell

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/notyourimaginarycoder/termfolio"
	"github.com/notyourimaginarycoder/termfolio/config"
	"github.com/notyourimaginarycoder/termfolio/filesystem"
	"github.com/notyourimaginarycoder/termfolio/internal/util"
)

type Shell struct {
	id       string
	cfg      *config.Config
	fs       *filesystem.FileSystem
	history  *History
	aliases  *AliasTable
	game     *GuessGame
	projects map[string]termfolio.Project
	commands map[string]*Command
	started  time.Time
	now      func() time.Time
	observer Observer
}

type options struct {
	id       string
	now      func() time.Time
	rng      *rand.Rand
	target   int
	observer Observer
	projects map[string]termfolio.Project
}

// Option customises a Shell at construction.
type Option func(*options)

// WithID sets the session identifier used in logs. Default is a random UUID.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

// WithClock replaces time.Now for date, greet and uptime.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithRand sets the source the guess target is drawn from.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithGuessTarget fixes the guess target, overriding WithRand.
func WithGuessTarget(target int) Option {
	return func(o *options) { o.target = target }
}

// WithObserver registers an Observer notified after every line.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithProjects replaces the metadata used by the projects command.
func WithProjects(projects map[string]termfolio.Project) Option {
	return func(o *options) { o.projects = projects }
}

// New creates a session over fs. A nil cfg uses the defaults.
func New(cfg *config.Config, fs *filesystem.FileSystem, opts ...Option) *Shell {
	o := options{
		now:      time.Now,
		observer: nopObserver{},
		projects: termfolio.DefaultProjects(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	if o.target == 0 {
		if o.rng != nil {
			o.target = o.rng.IntN(GuessMax) + GuessMin
		} else {
			o.target = rand.IntN(GuessMax) + GuessMin
		}
	}

	commands := make(map[string]*Command)
	for _, c := range builtinCommands() {
		commands[c.Name] = c
	}

	return &Shell{
		id:       o.id,
		cfg:      cfg,
		fs:       fs,
		history:  NewHistory(cfg.HistoryLimit),
		aliases:  NewAliasTable(),
		game:     NewGuessGame(o.target),
		projects: o.projects,
		commands: commands,
		started:  o.now(),
		now:      o.now,
		observer: o.observer,
	}
}

// Execute interprets one raw line and applies its effect on the session.
func (s *Shell) Execute(line string) termfolio.Response {
	logger := util.GetLogger("Shell.Execute")
	start := time.Now()

	inv := Parse(line)
	s.history.Add(inv.Input)

	cmd, known := s.commands[inv.Name]
	var resp termfolio.Response
	switch {
	case inv.WantsHelp():
		resp = s.usage(inv.Name)
	case !known:
		resp = termfolio.NewText(fmt.Sprintf("'%s' is not a recognized command. type 'help' to see available ones", inv.Input))
	default:
		resp = cmd.Run(s, inv)
	}

	s.observer.CommandExecuted(inv.Name, known, time.Since(start))
	logger.Debug().
		Str("session", s.id).
		Str("command", inv.Name).
		Bool("known", known).
		Bool("clear", resp.Clear).
		Int("effects", len(resp.Effects)).
		Msg("Executed command")
	return resp
}

// usage answers a --help or -h request for name.
func (s *Shell) usage(name string) termfolio.Response {
	if cmd, ok := s.commands[name]; ok {
		return termfolio.NewText(cmd.Help())
	}
	return termfolio.NewText(fmt.Sprintf("'%s' is not a recognized command", name))
}

// ID returns the session identifier.
func (s *Shell) ID() string {
	return s.id
}

// Cwd returns the current directory path.
func (s *Shell) Cwd() string {
	return s.fs.Cwd()
}

// History returns the retained inputs, oldest first.
func (s *Shell) History() []string {
	return s.history.Entries()
}

// Aliases returns the registered aliases as "name: command" lines.
func (s *Shell) Aliases() []string {
	return s.aliases.List()
}

// Commands returns the sorted command names.
func (s *Shell) Commands() []string {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the command table entry for name.
func (s *Shell) Lookup(name string) (*Command, bool) {
	cmd, ok := s.commands[name]
	return cmd, ok
}

// FS returns the session's filesystem.
func (s *Shell) FS() *filesystem.FileSystem {
	return s.fs
}
