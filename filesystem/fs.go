package filesystem

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"sync/atomic"

	"github.com/notyourimaginarycoder/termfolio"
	"github.com/notyourimaginarycoder/termfolio/internal/util"
	"github.com/puzpuzpuz/xsync/v4"
)

// RootPath is the only directory guaranteed to exist.
const RootPath = "/"

var (
	ErrNotFound    = errors.New("not found")
	ErrExists      = errors.New("already exists")
	ErrInvalidName = errors.New("invalid name")
)

// FileSystem is the simulated directory tree of one session: a mapping from
// absolute directory path to ordered entry names, canned file contents keyed
// by flat filename, and the current directory.
//
// Mutations through the name-based methods (Mkdir, Rename, Remove) only ever
// touch the current directory, and no operation removes a directory key, so
// the current path always names an existing directory.
type FileSystem struct {
	dirs  *xsync.Map[string, *Dir]   // maps absolute paths to directories
	files *xsync.Map[string, string] // maps filenames to canned contents
	cwd   atomic.Pointer[Dir]
}

// NewFS creates a FileSystem holding only an empty root directory.
func NewFS() *FileSystem {
	root := NewDir(RootPath)

	fs := FileSystem{
		dirs:  xsync.NewMap[string, *Dir](),
		files: xsync.NewMap[string, string](),
	}
	fs.dirs.Store(RootPath, root)
	fs.cwd.Store(root)
	return &fs
}

// NewFSFromLayout creates a FileSystem and applies layout to it.
// A nil layout applies [DefaultLayout].
func NewFSFromLayout(layout *Layout) (*FileSystem, error) {
	if layout == nil {
		layout = DefaultLayout()
	}
	fs := NewFS()
	if err := fs.Apply(layout); err != nil {
		return nil, err
	}
	return fs, nil
}

// Apply adds every directory request, then every file request, in order.
func (fs *FileSystem) Apply(layout *Layout) error {
	logger := util.GetLogger("FS.Apply")

	for _, req := range layout.Dirs {
		if _, err := fs.AddDirNode(req); err != nil {
			return err
		}
	}
	for _, req := range layout.Files {
		if err := fs.AddFileNode(req); err != nil {
			return err
		}
	}
	logger.Debug().Int("dirs", len(layout.Dirs)).Int("files", len(layout.Files)).Msg("Applied layout")
	return nil
}

// AddDirNode registers the directory at req.Path if it is missing and appends
// any of req.Entries it does not already list. It returns the directory.
func (fs *FileSystem) AddDirNode(req *termfolio.DirCreateRequest) (*Dir, error) {
	logger := util.GetLogger("AddDirNode")

	p, err := CleanPath(req.Path)
	if err != nil {
		return nil, err
	}
	dir, loaded := fs.dirs.LoadOrStore(p, NewDir(p))
	added := 0
	for _, name := range req.Entries {
		if dir.AddEntry(name) {
			added++
		}
	}
	logger.Trace().Str("path", p).Bool("existed", loaded).Int("entries", added).Msg("Added dir node")
	return dir, nil
}

// AddFileNode lists the file's base name under its parent directory, which
// must already exist, and records its canned content under that name.
// Content is keyed by flat name, so equally named files in different
// directories share content.
func (fs *FileSystem) AddFileNode(req *termfolio.FileCreateRequest) error {
	logger := util.GetLogger("AddFileNode")

	p, err := CleanPath(req.Path)
	if err != nil {
		return err
	}
	if p == RootPath {
		return fmt.Errorf("file path %q: %w", req.Path, ErrInvalidName)
	}
	parentPath, name := path.Split(p)
	parentPath = path.Clean(parentPath)

	parent, ok := fs.dirs.Load(parentPath)
	if !ok {
		err := fmt.Errorf("parent directory %s: %w", parentPath, ErrNotFound)
		logger.Error().Err(err).Str("path", p).Msg("Failed to create file")
		return err
	}
	parent.AddEntry(name)
	fs.files.Store(name, req.Content)
	logger.Trace().Str("path", p).Msg("Added file node")
	return nil
}

// Cwd returns the absolute path of the current directory.
func (fs *FileSystem) Cwd() string {
	return fs.cwd.Load().Path()
}

// Chdir makes "/"+name the current directory.
func (fs *FileSystem) Chdir(name string) (string, error) {
	target := RootPath + name
	dir, ok := fs.dirs.Load(target)
	if !ok {
		return "", fmt.Errorf("directory %s: %w", target, ErrNotFound)
	}
	fs.cwd.Store(dir)
	return dir.Path(), nil
}

// IsDir reports whether p is a directory key.
func (fs *FileSystem) IsDir(p string) bool {
	_, ok := fs.dirs.Load(p)
	return ok
}

// Entries returns the names listed under p and whether p is a directory.
func (fs *FileSystem) Entries(p string) ([]string, bool) {
	dir, ok := fs.dirs.Load(p)
	if !ok {
		return nil, false
	}
	return dir.Entries(), true
}

// CwdEntries returns the names listed under the current directory.
func (fs *FileSystem) CwdEntries() []string {
	return fs.cwd.Load().Entries()
}

// Mkdir registers the directory key "/"+name with no entries.
// The new directory is not listed under any parent.
func (fs *FileSystem) Mkdir(name string) (string, error) {
	logger := util.GetLogger("FS.Mkdir")

	if name == "" {
		return "", fmt.Errorf("mkdir: %w", ErrInvalidName)
	}
	target := RootPath + name
	if _, loaded := fs.dirs.LoadOrStore(target, NewDir(target)); loaded {
		return "", fmt.Errorf("directory %s: %w", target, ErrExists)
	}
	logger.Debug().Str("path", target).Msg("Created directory")
	return target, nil
}

// Rename renames oldName to newName within the current directory.
func (fs *FileSystem) Rename(oldName, newName string) error {
	logger := util.GetLogger("FS.Rename")

	cwd := fs.cwd.Load()
	if !cwd.RenameEntry(oldName, newName) {
		return fmt.Errorf("%s in %s: %w", oldName, cwd.Path(), ErrNotFound)
	}
	logger.Debug().Str("dir", cwd.Path()).Str("old", oldName).Str("new", newName).Msg("Renamed entry")
	return nil
}

// Remove drops name from the current directory's entries.
func (fs *FileSystem) Remove(name string) error {
	logger := util.GetLogger("FS.Remove")

	cwd := fs.cwd.Load()
	if name == "" || !cwd.RemoveEntry(name) {
		return fmt.Errorf("%q in %s: %w", name, cwd.Path(), ErrNotFound)
	}
	logger.Debug().Str("dir", cwd.Path()).Str("name", name).Msg("Removed entry")
	return nil
}

// ReadFile returns the canned content registered for filename. It does not
// check that the file is listed in the current directory.
func (fs *FileSystem) ReadFile(name string) (string, error) {
	content, ok := fs.files.Load(name)
	if !ok {
		return "", fmt.Errorf("file %s: %w", name, ErrNotFound)
	}
	return content, nil
}

// CleanPath normalises a layout path to an absolute, cleaned form.
// "projects", "/projects" and "/projects/" are equivalent.
func CleanPath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", fmt.Errorf("empty path: %w", ErrInvalidName)
	}
	return path.Clean(RootPath + strings.TrimPrefix(p, RootPath)), nil
}
