package shell

import "time"

// Observer is notified once per executed line. Implementations must not
// block; they run inline with dispatch.
type Observer interface {
	CommandExecuted(name string, known bool, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) CommandExecuted(string, bool, time.Duration) {}
