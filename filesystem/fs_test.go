package filesystem

import (
	"testing"

	"github.com/notyourimaginarycoder/termfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDefaultFS creates a FileSystem with the default portfolio layout
func newDefaultFS(t *testing.T) *FileSystem {
	t.Helper()
	fs, err := NewFSFromLayout(nil)
	require.NoError(t, err)
	return fs
}

func TestNewFS(t *testing.T) {
	t.Parallel()

	fs := NewFS()

	require.NotNil(t, fs)
	assert.Equal(t, RootPath, fs.Cwd())
	assert.True(t, fs.IsDir(RootPath))
	assert.Empty(t, fs.CwdEntries())
}

func TestNewFSFromLayout_Default(t *testing.T) {
	t.Parallel()

	fs := newDefaultFS(t)

	assert.Equal(t, []string{"about.txt", "projects", "contact.txt"}, fs.CwdEntries())

	projects, ok := fs.Entries("/projects")
	require.True(t, ok)
	assert.Equal(t, []string{"portfolio.ts", "terminal-portfolio.ts", "stackdew-valley.js"}, projects)

	secret, ok := fs.Entries("/secret")
	require.True(t, ok)
	assert.Equal(t, []string{"hidden.txt"}, secret)

	for name, exp := range map[string]string{
		"about.txt":   "this is my terminal-based portfolio - created with css, html, typescript",
		"contact.txt": "contact me via email or github",
		"hidden.txt":  "nice! you found my hidden text file",
	} {
		content, err := fs.ReadFile(name)
		require.NoError(t, err)
		assert.Equal(t, exp, content)
	}
}

func TestNewFSFromLayout_MissingParent(t *testing.T) {
	t.Parallel()

	layout := &Layout{
		Files: []*termfolio.FileCreateRequest{termfolio.NewFileRequest("/nowhere/a.txt", "a")},
	}

	fs, err := NewFSFromLayout(layout)

	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, fs)
}

func TestFileSystem_AddDirNode(t *testing.T) {
	t.Parallel()

	fs := NewFS()

	t.Run("CreatesAndMerges", func(t *testing.T) {
		dir, err := fs.AddDirNode(termfolio.NewDirRequest("notes/", "a"))
		require.NoError(t, err)
		assert.Equal(t, "/notes", dir.Path())

		_, err = fs.AddDirNode(termfolio.NewDirRequest("/notes", "a", "b"))
		require.NoError(t, err)

		entries, ok := fs.Entries("/notes")
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, entries)
	})

	t.Run("EmptyPath", func(t *testing.T) {
		_, err := fs.AddDirNode(termfolio.NewDirRequest("  "))
		assert.ErrorIs(t, err, ErrInvalidName)
	})
}

func TestFileSystem_AddFileNode(t *testing.T) {
	t.Parallel()

	fs := NewFS()

	require.NoError(t, fs.AddFileNode(termfolio.NewFileRequest("/readme.md", "hi")))
	require.NoError(t, fs.AddFileNode(termfolio.NewFileRequest("/readme.md", "hello")))

	assert.Equal(t, []string{"readme.md"}, fs.CwdEntries(), "listed once")
	content, err := fs.ReadFile("readme.md")
	require.NoError(t, err)
	assert.Equal(t, "hello", content, "last content wins")

	assert.ErrorIs(t, fs.AddFileNode(termfolio.NewFileRequest("/", "x")), ErrInvalidName)
}

func TestFileSystem_Chdir(t *testing.T) {
	t.Parallel()

	fs := newDefaultFS(t)

	p, err := fs.Chdir("projects")
	require.NoError(t, err)
	assert.Equal(t, "/projects", p)
	assert.Equal(t, "/projects", fs.Cwd())

	_, err = fs.Chdir("..")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "/projects", fs.Cwd(), "failed chdir keeps the current path")

	p, err = fs.Chdir("")
	require.NoError(t, err)
	assert.Equal(t, RootPath, p)
}

func TestFileSystem_Mkdir(t *testing.T) {
	t.Parallel()

	fs := newDefaultFS(t)

	p, err := fs.Mkdir("about")
	require.NoError(t, err, "directory keys and file entries are independent")
	assert.Equal(t, "/about", p)

	_, err = fs.Mkdir("about")
	assert.ErrorIs(t, err, ErrExists)

	_, err = fs.Mkdir("")
	assert.ErrorIs(t, err, ErrInvalidName)

	assert.Equal(t, []string{"about.txt", "projects", "contact.txt"}, fs.CwdEntries(),
		"new directories are not listed under their parent")

	entries, ok := fs.Entries("/about")
	require.True(t, ok)
	assert.Empty(t, entries)
}

func TestFileSystem_Rename(t *testing.T) {
	t.Parallel()

	fs := newDefaultFS(t)

	require.NoError(t, fs.Rename("about.txt", "bio.txt"))
	assert.Equal(t, []string{"bio.txt", "projects", "contact.txt"}, fs.CwdEntries())

	assert.ErrorIs(t, fs.Rename("about.txt", "x"), ErrNotFound)
}

func TestFileSystem_Remove(t *testing.T) {
	t.Parallel()

	fs := newDefaultFS(t)

	require.NoError(t, fs.Remove("about.txt"))
	assert.Equal(t, []string{"projects", "contact.txt"}, fs.CwdEntries())
	assert.ErrorIs(t, fs.Remove("about.txt"), ErrNotFound)
	assert.ErrorIs(t, fs.Remove(""), ErrNotFound)

	_, err := fs.ReadFile("about.txt")
	assert.NoError(t, err, "canned content is independent of listings")
}

func TestFileSystem_MutationsApplyToCwd(t *testing.T) {
	t.Parallel()

	fs := newDefaultFS(t)
	_, err := fs.Chdir("projects")
	require.NoError(t, err)

	assert.ErrorIs(t, fs.Remove("about.txt"), ErrNotFound)
	require.NoError(t, fs.Remove("portfolio.ts"))

	root, _ := fs.Entries(RootPath)
	assert.Contains(t, root, "about.txt")
	assert.Equal(t, []string{"terminal-portfolio.ts", "stackdew-valley.js"}, fs.CwdEntries())
}

func TestFileSystem_SessionsAreIsolated(t *testing.T) {
	t.Parallel()

	a := newDefaultFS(t)
	b := newDefaultFS(t)

	require.NoError(t, a.Remove("about.txt"))

	assert.Contains(t, b.CwdEntries(), "about.txt")
}

func TestCleanPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in  string
		exp string
	}{
		{"/", "/"},
		{"projects", "/projects"},
		{"/projects/", "/projects"},
		{" /a/b ", "/a/b"},
		{"//a", "/a"},
	}
	for _, tt := range tests {
		got, err := CleanPath(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.exp, got, tt.in)
	}

	_, err := CleanPath("")
	assert.ErrorIs(t, err, ErrInvalidName)
}
