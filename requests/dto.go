package requests

import "github.com/notyourimaginarycoder/termfolio"

// NodeRequestDTO is the serialised form of [termfolio.NodeRequest]
type NodeRequestDTO struct {
	Path string             `json:"path"`
	Type termfolio.NodeType `json:"type"`
}

// DirRequestDTO is the serialised form of [termfolio.DirCreateRequest]
//
// Ex.
//
//	{"type": "dir", "path": "/projects", "entries": ["a.ts", "b.js"]}
type DirRequestDTO struct {
	NodeRequestDTO
	Entries []string `json:"entries,omitempty"`
}

// FileRequestDTO is the serialised form of [termfolio.FileCreateRequest]
//
// Ex.
//
//	{"type": "file", "path": "/about.txt", "content": "hello"}
type FileRequestDTO struct {
	NodeRequestDTO
	Content string `json:"content"`
}
