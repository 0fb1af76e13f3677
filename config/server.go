package config

import "time"

// ServerOptions holds settings for the multi-session HTTP front end.
// No net/http types are exposed here.
type ServerOptions struct {
	ListenAddr         string        // Address the HTTP server binds to
	MaxSessions        int           // Upper bound on live sessions; 0 = unlimited
	SessionIdleTimeout time.Duration // Evict sessions idle this long; 0 = never
}
