package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/notyourimaginarycoder/termfolio/config"
	"github.com/notyourimaginarycoder/termfolio/filesystem"
	"github.com/notyourimaginarycoder/termfolio/internal/repl"
	"github.com/notyourimaginarycoder/termfolio/internal/util"
	"github.com/notyourimaginarycoder/termfolio/requests"
	"github.com/notyourimaginarycoder/termfolio/server"
	"github.com/notyourimaginarycoder/termfolio/shell"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	var (
		verbose    int
		configPath string
		nodesDef   string
		serve      bool
	)
	flag.StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
	flag.StringVar(&configPath, "c", "", "--config (shorthand)")
	flag.StringVar(&nodesDef, "nodes", "", "Path to a YAML or JSON nodes file replacing the default tree")
	flag.StringVar(&nodesDef, "n", "", "--nodes (shorthand)")
	flag.BoolVar(&serve, "serve", false, "Serve sessions over HTTP instead of running an interactive terminal")
	flag.BoolVar(&serve, "s", false, "--serve (shorthand)")
	flag.IntVar(&verbose, "verbose", config.InfoVerbose, "Log verbosity level between 1 (error) and 5 (trace). Default is 3 (info).")
	flag.IntVar(&verbose, "v", config.InfoVerbose, "--verbose (shorthand)")
	flag.Parse()

	logLvl := config.VerboseToLogLvl(verbose)
	util.InitializeLogger(logLvl)
	logger := util.GetLogger("main")

	cfg := config.NewDefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = config.NewConfigFromFile(configPath); err != nil {
			logger.Fatal().Err(err).Str("config", configPath).Msg("Failed to load config file")
		}
	}
	// An explicit verbosity flag wins over the file.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "verbose" || f.Name == "v" {
			cfg.Merge(&config.ConfigOverride{LogLvl: &verbose})
		}
	})
	if cfg.LogLvl != logLvl {
		util.InitializeLogger(cfg.LogLvl)
	}

	var layout *filesystem.Layout
	if nodesDef != "" {
		var err error
		if layout, err = requests.LoadNodesFile(nodesDef); err != nil {
			logger.Fatal().Err(err).Str("nodes", nodesDef).Msg("Failed to load nodes file")
		}
		logger.Info().Str("nodes", nodesDef).Int("dirs", len(layout.Dirs)).Int("files", len(layout.Files)).Msg("Loaded nodes file")
	}

	if serve {
		runServer(cfg, layout)
		return
	}
	runTerminal(cfg, layout)
}

func runServer(cfg *config.Config, layout *filesystem.Layout) {
	logger := util.GetLogger("main")

	srv, err := server.New(cfg, layout, prometheus.NewRegistry())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := srv.Serve(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
	logger.Info().Msg("Server stopped")
}

func runTerminal(cfg *config.Config, layout *filesystem.Layout) {
	logger := util.GetLogger("main")

	fs, err := filesystem.NewFSFromLayout(layout)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build filesystem")
	}
	sh := shell.New(cfg, fs)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          repl.Prompt(cfg),
		AutoComplete:    repl.Completer(sh),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize terminal")
	}
	defer rl.Close()

	if err := repl.NewTerminal(sh, cfg, rl.Stdout()).Run(rl); err != nil {
		logger.Error().Err(err).Msg("Terminal closed with error")
		os.Exit(1)
	}
}
