package shell

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/notyourimaginarycoder/termfolio"
	"github.com/notyourimaginarycoder/termfolio/filesystem"
)

const projectsPath = "/projects"

var projectExt = regexp.MustCompile(`\.(ts|js|py|txt)$`)

// cat looks content up by filename only; the file need not be listed in
// the current directory.
func (s *Shell) cmdCat(inv *Invocation) termfolio.Response {
	content, err := s.fs.ReadFile(inv.Arg)
	if err != nil {
		return termfolio.NewText("file not found")
	}
	return termfolio.NewText(content)
}

// cd resolves its argument as "/"+arg only; there is no parent traversal,
// so `cd ..` is reported as not found.
func (s *Shell) cmdCd(inv *Invocation) termfolio.Response {
	p, err := s.fs.Chdir(inv.Arg)
	if err != nil {
		return termfolio.NewText("directory not found")
	}
	return termfolio.NewText("changed directory to " + p)
}

func (s *Shell) cmdLs(*Invocation) termfolio.Response {
	entries := s.fs.CwdEntries()
	if len(entries) == 0 {
		return termfolio.NewText("directory is empty")
	}
	return termfolio.NewText(strings.Join(entries, "  "))
}

func (s *Shell) cmdMkdir(inv *Invocation) termfolio.Response {
	if inv.Arg == "" {
		return termfolio.NewText("please provide a directory name")
	}
	if _, err := s.fs.Mkdir(inv.Arg); errors.Is(err, filesystem.ErrExists) {
		return termfolio.NewText(fmt.Sprintf("directory '%s' already exists", inv.Arg))
	}
	return termfolio.NewText(fmt.Sprintf("directory '%s' created", inv.Arg))
}

func (s *Shell) cmdMv(inv *Invocation) termfolio.Response {
	if len(inv.Args) != 2 {
		return termfolio.NewText("invalid arguments or file not found")
	}
	oldName, newName := inv.Args[0], inv.Args[1]
	if err := s.fs.Rename(oldName, newName); err != nil {
		return termfolio.NewText("invalid arguments or file not found")
	}
	return termfolio.NewText(fmt.Sprintf("renamed '%s' to '%s'", oldName, newName))
}

func (s *Shell) cmdRm(inv *Invocation) termfolio.Response {
	if err := s.fs.Remove(inv.Arg); err != nil {
		return termfolio.NewText(fmt.Sprintf("'%s' not found in current directory", inv.Arg))
	}
	return termfolio.NewText(fmt.Sprintf("file '%s' removed", inv.Arg))
}

// projects annotates each entry of /projects with its metadata, falling back
// to the filename without its extension.
func (s *Shell) cmdProjects(*Invocation) termfolio.Response {
	files, _ := s.fs.Entries(projectsPath)
	if len(files) == 0 {
		return termfolio.NewText("no projects found")
	}

	items := make([]string, 0, len(files))
	for i, file := range files {
		meta, ok := s.projects[file]
		if !ok {
			items = append(items, fmt.Sprintf("%d. %s", i+1, projectExt.ReplaceAllString(file, "")))
			continue
		}
		item := fmt.Sprintf("%d. %s\n   %s", i+1, meta.Title, meta.Description)
		if meta.Link != "" {
			item += "\n   → " + meta.Link
		}
		items = append(items, item)
	}
	return termfolio.NewText(strings.Join(items, "\n\n"))
}
