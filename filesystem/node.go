package filesystem

import (
	"slices"
	"sync"
)

// Dir is a directory key of the simulated filesystem together with the
// ordered names it lists. Entry names are flat: a name is only a directory
// by convention, when "/"+name is also a key.
type Dir struct {
	path    string       // Immutable absolute path
	mu      sync.RWMutex // Protects entries
	entries []string
}

// NewDir creates a Dir listing entries in the given order.
func NewDir(path string, entries ...string) *Dir {
	return &Dir{
		path:    path,
		entries: slices.Clone(entries),
	}
}

// Path returns the directory's absolute path.
func (d *Dir) Path() string {
	return d.path
}

// Entries returns a copy of the listed names in order.
func (d *Dir) Entries() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.entries)
}

// Len returns the number of listed names.
func (d *Dir) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// Has reports whether name is listed.
func (d *Dir) Has(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Contains(d.entries, name)
}

// AddEntry appends name unless it is already listed.
// Returns true if the entry was appended.
func (d *Dir) AddEntry(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if slices.Contains(d.entries, name) {
		return false
	}
	d.entries = append(d.entries, name)
	return true
}

// RenameEntry replaces every occurrence of oldName with newName in place,
// keeping list order. No collision check is made against newName.
// Returns false if oldName is not listed.
func (d *Dir) RenameEntry(oldName, newName string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	found := false
	for i, e := range d.entries {
		if e == oldName {
			d.entries[i] = newName
			found = true
		}
	}
	return found
}

// RemoveEntry drops every occurrence of name.
// Returns false if name is not listed.
func (d *Dir) RemoveEntry(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := len(d.entries)
	d.entries = slices.DeleteFunc(d.entries, func(e string) bool { return e == name })
	return len(d.entries) != n
}
