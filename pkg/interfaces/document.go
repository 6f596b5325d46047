package interfaces

import "time"

// Document pairs optional YAML frontmatter with a Markdown body. The struct is
// shared between the interfaces package and internal implementations so
// consumers can depend on a stable contract.
type Document struct {
	FrontMatter FrontMatter
	Body        []byte
}

// FrontMatter models metadata carried between the `---` delimiters of a
// composed document. The Custom map keeps domain-specific keys round-trippable
// without widening the struct.
type FrontMatter struct {
	Title   string         `yaml:"title,omitempty"`
	Slug    string         `yaml:"slug,omitempty"`
	Summary string         `yaml:"summary,omitempty"`
	Tags    []string       `yaml:"tags,omitempty"`
	Author  string         `yaml:"author,omitempty"`
	Date    time.Time      `yaml:"date,omitempty"`
	Draft   bool           `yaml:"draft,omitempty"`
	Custom  map[string]any `yaml:",inline"`
}

// IsZero reports whether the frontmatter carries no metadata at all, in which
// case composition skips the delimiter block entirely.
func (fm FrontMatter) IsZero() bool {
	return fm.Title == "" &&
		fm.Slug == "" &&
		fm.Summary == "" &&
		len(fm.Tags) == 0 &&
		fm.Author == "" &&
		fm.Date.IsZero() &&
		!fm.Draft &&
		len(fm.Custom) == 0
}
