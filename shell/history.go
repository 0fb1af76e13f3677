package shell

import (
	"slices"

	"github.com/notyourimaginarycoder/termfolio/config"
)

// History retains the most recent inputs, evicting the oldest first.
type History struct {
	limit   int
	entries []string
}

// NewHistory creates a History holding at most limit entries.
// A non-positive limit falls back to [config.DefaultHistoryLimit].
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}
	return &History{
		limit:   limit,
		entries: make([]string, 0, limit+1),
	}
}

// Add appends input and drops the oldest entries beyond the limit.
func (h *History) Add(input string) {
	h.entries = append(h.entries, input)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = slices.Delete(h.entries, 0, over)
	}
}

// Entries returns a copy of the retained inputs, oldest first.
func (h *History) Entries() []string {
	return slices.Clone(h.entries)
}

func (h *History) Len() int {
	return len(h.entries)
}
