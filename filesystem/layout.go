package filesystem

import "github.com/notyourimaginarycoder/termfolio"

// Layout is the initial content of a FileSystem. Directories are applied
// before files so that files can reference any directory in the layout.
type Layout struct {
	Dirs  []*termfolio.DirCreateRequest
	Files []*termfolio.FileCreateRequest
}

// DefaultLayout returns the portfolio tree every new session starts with.
// /secret is reachable by `cd` but deliberately not listed under /.
func DefaultLayout() *Layout {
	return &Layout{
		Dirs: []*termfolio.DirCreateRequest{
			termfolio.NewDirRequest("/", "about.txt", "projects", "contact.txt"),
			termfolio.NewDirRequest("/projects", "portfolio.ts", "terminal-portfolio.ts", "stackdew-valley.js"),
			termfolio.NewDirRequest("/secret"),
		},
		Files: []*termfolio.FileCreateRequest{
			termfolio.NewFileRequest("/about.txt", "this is my terminal-based portfolio - created with css, html, typescript"),
			termfolio.NewFileRequest("/contact.txt", "contact me via email or github"),
			termfolio.NewFileRequest("/secret/hidden.txt", "nice! you found my hidden text file"),
		},
	}
}
