package server

import (
	"errors"
	"sync"
	"time"

	"github.com/notyourimaginarycoder/termfolio"
	"github.com/notyourimaginarycoder/termfolio/filesystem"
	"github.com/notyourimaginarycoder/termfolio/internal/util"
	"github.com/notyourimaginarycoder/termfolio/shell"
)

var ErrTooManySessions = errors.New("session limit reached")

// session serialises the lines of one client.
type session struct {
	mu       sync.Mutex
	sh       *shell.Shell
	lastSeen time.Time
}

// exec runs line under the session lock.
func (sess *session) exec(line string, now time.Time) (termfolio.Response, string) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastSeen = now
	resp := sess.sh.Execute(line)
	return resp, sess.sh.Cwd()
}

func (sess *session) idleSince() time.Time {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.lastSeen
}

// CreateSession starts a new isolated session and returns its ID.
func (s *Server) CreateSession() (string, error) {
	logger := util.GetLogger("Server.CreateSession")

	if n := s.count.Add(1); s.cfg.MaxSessions > 0 && n > int64(s.cfg.MaxSessions) {
		s.count.Add(-1)
		return "", ErrTooManySessions
	}

	fs, err := filesystem.NewFSFromLayout(s.layout)
	if err != nil {
		s.count.Add(-1)
		return "", err
	}
	sh := shell.New(s.cfg, fs, shell.WithObserver(s.metrics))
	s.sessions.Store(sh.ID(), &session{sh: sh, lastSeen: s.now()})
	s.metrics.SessionOpened()

	logger.Info().Str("session", sh.ID()).Msg("Session created")
	return sh.ID(), nil
}

// DeleteSession removes a session. Returns false if it does not exist.
func (s *Server) DeleteSession(id string) bool {
	if _, ok := s.sessions.LoadAndDelete(id); !ok {
		return false
	}
	s.count.Add(-1)
	s.metrics.SessionClosed()
	util.GetLogger("Server.DeleteSession").Info().Str("session", id).Msg("Session deleted")
	return true
}

// Exec runs line in session id. ok is false if the session does not exist.
func (s *Server) Exec(id, line string) (resp termfolio.Response, cwd string, ok bool) {
	sess, ok := s.sessions.Load(id)
	if !ok {
		return termfolio.Response{}, "", false
	}
	resp, cwd = sess.exec(line, s.now())
	return resp, cwd, true
}

// EvictIdle deletes sessions idle for longer than SessionIdleTimeout and
// returns how many were removed.
func (s *Server) EvictIdle() int {
	logger := util.GetLogger("Server.EvictIdle")

	if s.cfg.SessionIdleTimeout <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.cfg.SessionIdleTimeout)
	var idle []string
	s.sessions.Range(func(id string, sess *session) bool {
		if sess.idleSince().Before(cutoff) {
			idle = append(idle, id)
		}
		return true
	})

	evicted := 0
	for _, id := range idle {
		if s.DeleteSession(id) {
			evicted++
		}
	}
	if evicted > 0 {
		logger.Info().Int("evicted", evicted).Msg("Evicted idle sessions")
	}
	return evicted
}

// SessionCount returns the number of live sessions.
func (s *Server) SessionCount() int {
	return s.sessions.Size()
}
