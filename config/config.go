package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/notyourimaginarycoder/termfolio/internal/util"
	"gopkg.in/yaml.v3"
)

// CLI verbosity values accepted by ConfigOverride.LogLvl.
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl = util.InfoLevel

	// DefaultVersion is reported by the `version` command
	DefaultVersion = "1.0.0"

	// DefaultHistoryLimit is the number of most recent inputs retained
	DefaultHistoryLimit = 50

	DefaultPrompt = "visitor@portfolio:~$"
	DefaultBanner = "type 'help' to see available commands."

	// DefaultTypingDelay is the per-character reveal delay in the REPL
	DefaultTypingDelay = 10 * time.Millisecond

	DefaultListenAddr         = ":8080"
	DefaultMaxSessions        = 1000
	DefaultSessionIdleTimeout = 30 * time.Minute
)

// Config contains runtime configuration values for the terminal.
type Config struct {
	ServerOptions
	LogLvl       util.LogLevel // Internal log level (Default info)
	Version      string        // Terminal version string (Default "1.0.0")
	HistoryLimit int           // Max retained history entries; oldest evicted first (Default 50)
	Prompt       string        // Prompt shown before each input line
	Banner       string        // First line printed when a session starts
	TypingDelay  time.Duration // Per-character reveal delay; 0 prints at once (Default 10ms)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	// LogLvl is a CLI style verbosity between 1 (error) and 5 (trace)
	LogLvl             *int           `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	Version            *string        `yaml:"version,omitempty" json:"version,omitempty"`
	HistoryLimit       *int           `yaml:"history_limit,omitempty" json:"history_limit,omitempty"`
	Prompt             *string        `yaml:"prompt,omitempty" json:"prompt,omitempty"`
	Banner             *string        `yaml:"banner,omitempty" json:"banner,omitempty"`
	TypingDelay        *time.Duration `yaml:"typing_delay,omitempty" json:"typing_delay,omitempty"`
	ListenAddr         *string        `yaml:"listen_addr,omitempty" json:"listen_addr,omitempty"`
	MaxSessions        *int           `yaml:"max_sessions,omitempty" json:"max_sessions,omitempty"`
	SessionIdleTimeout *time.Duration `yaml:"session_idle_timeout,omitempty" json:"session_idle_timeout,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		ServerOptions: ServerOptions{
			ListenAddr:         DefaultListenAddr,
			MaxSessions:        DefaultMaxSessions,
			SessionIdleTimeout: DefaultSessionIdleTimeout,
		},
		LogLvl:       DefaultLogLvl,
		Version:      DefaultVersion,
		HistoryLimit: DefaultHistoryLimit,
		Prompt:       DefaultPrompt,
		Banner:       DefaultBanner,
		TypingDelay:  DefaultTypingDelay,
	}
}

// NewConfig returns the defaults with override applied. A nil override
// yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// VerboseToLogLvl clamps a CLI verbosity to [1, 5] and maps it to a log level.
func VerboseToLogLvl(verbose int) util.LogLevel {
	verbose = max(ErrorVerbose, min(verbose, TraceVerbose))
	logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return logLvls[verbose-1]
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = VerboseToLogLvl(*override.LogLvl)
	}
	if override.Version != nil {
		c.Version = *override.Version
	}
	if override.HistoryLimit != nil {
		c.HistoryLimit = *override.HistoryLimit
	}
	if override.Prompt != nil {
		c.Prompt = *override.Prompt
	}
	if override.Banner != nil {
		c.Banner = *override.Banner
	}
	if override.TypingDelay != nil {
		c.TypingDelay = *override.TypingDelay
	}
	if override.ListenAddr != nil {
		c.ListenAddr = *override.ListenAddr
	}
	if override.MaxSessions != nil {
		c.MaxSessions = *override.MaxSessions
	}
	if override.SessionIdleTimeout != nil {
		c.SessionIdleTimeout = *override.SessionIdleTimeout
	}
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}
