package termfolio

// Project is the display metadata for a file under /projects.
type Project struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Link        string `json:"link,omitempty" yaml:"link,omitempty"` // Optional
}

// DefaultProjects returns the metadata for the projects shipped with the
// default filesystem layout, keyed by filename.
func DefaultProjects() map[string]Project {
	return map[string]Project{
		"portfolio.ts": {
			Title:       "portfolio (unfinished)",
			Description: "a basic portfolio - built with typescript",
			Link:        "https://github.com/notyourimaginarycoder/portfolio",
		},
		"terminal-portfolio.ts": {
			Title:       "terminal-portfolio",
			Description: "a terminal styled portfolio - built with typescript",
			Link:        "https://github.com/notyourimaginarycoder/terminal-portfolio",
		},
		"stackdew-valley.js": {
			Title:       "stackdew-valley",
			Description: "a 2d farming simulator with a twist - built with phaser",
			Link:        "https://github.com/notyourimaginarycoder/stackdew-valley",
		},
	}
}
