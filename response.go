// Package termfolio contains the core domain types shared by the terminal
// portfolio interpreter, its simulated filesystem and its front ends.
package termfolio

// Response is the result of interpreting one line of input.
//
// Clear is the "erase all prior output" sentinel. It is a separate flag
// rather than a magic string so that no command output (e.g. `echo`) can
// ever be mistaken for it.
type Response struct {
	Text    string
	Clear   bool
	Effects []Effect
}

// NewText returns a plain textual response.
func NewText(text string) Response {
	return Response{Text: text}
}

// NewClear returns the clear-display sentinel response.
func NewClear() Response {
	return Response{Clear: true}
}

// WithEffect returns a copy of r with e appended to its effects.
func (r Response) WithEffect(e Effect) Response {
	effects := make([]Effect, 0, len(r.Effects)+1)
	effects = append(effects, r.Effects...)
	r.Effects = append(effects, e)
	return r
}

// IsClear reports whether r instructs the display to erase its output.
func (r Response) IsClear() bool {
	return r.Clear
}
