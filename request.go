package termfolio

// NodeRequest has common fields embedded in concrete request types
type NodeRequest struct {
	Path string // Absolute path, always prefixed with "/"
	Type NodeType
}

// NodeType valid types are FileNodeType "file", DirNodeType "dir"
type NodeType string

const (
	FileNodeType NodeType = "file"
	DirNodeType  NodeType = "dir"
)

// DirCreateRequest registers a directory key and the entry names it lists.
// Entries are appended in order; names already listed are skipped.
type DirCreateRequest struct {
	NodeRequest
	Entries []string
}

// FileCreateRequest lists a file under its parent directory and records the
// canned content returned by `cat`.
type FileCreateRequest struct {
	NodeRequest
	Content string
}

// NewDirRequest is a convenience constructor for a DirCreateRequest.
func NewDirRequest(path string, entries ...string) *DirCreateRequest {
	return &DirCreateRequest{
		NodeRequest: NodeRequest{Path: path, Type: DirNodeType},
		Entries:     entries,
	}
}

// NewFileRequest is a convenience constructor for a FileCreateRequest.
func NewFileRequest(path, content string) *FileCreateRequest {
	return &FileCreateRequest{
		NodeRequest: NodeRequest{Path: path, Type: FileNodeType},
		Content:     content,
	}
}
