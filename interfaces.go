package termfolio

// EffectKind identifies the type of a side effect requested by a command.
type EffectKind string

const (
	// OpenLinkKind asks the display to open a URL in a new browsing context.
	OpenLinkKind EffectKind = "open_link"
)

// Effect is a side effect the interpreter asks its collaborator to perform.
// Effects are returned alongside the response text instead of being executed
// by the interpreter, so the core stays free of any display environment.
type Effect interface {
	Kind() EffectKind
}

// BlankTarget is the browsing-context name for "new tab".
const BlankTarget = "_blank"

// OpenLinkEffect requests that URL be opened in Target.
type OpenLinkEffect struct {
	URL    string
	Target string
}

func (OpenLinkEffect) Kind() EffectKind {
	return OpenLinkKind
}

// NewOpenLink returns an OpenLinkEffect targeting a new browsing context.
func NewOpenLink(url string) OpenLinkEffect {
	return OpenLinkEffect{URL: url, Target: BlankTarget}
}
