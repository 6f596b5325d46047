package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-markdown/internal/fragment"
)

// Heading depth bounds for table of contents generation.
const (
	TOCDepthH1 = 1
	TOCDepthH6 = 6
)

// Markers delimiting the region where the table of contents is materialised
// when the document is finalised.
const (
	TOCMarkerBegin = "<!-- BEGIN_TOC -->"
	TOCMarkerEnd   = "<!-- END_TOC -->"
)

type headingInfo struct {
	level int
	text  string
}

type tocOptions struct {
	minDepth int
	maxDepth int
}

// Builder accumulates Markdown blocks in insertion order. Blocks are joined
// with a blank line when the document is finalised through String or WriteTo.
// The first error encountered sticks and is reported by Err; subsequent calls
// keep appending so callers can chain without checking after every step.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	blocks      []string
	headings    []headingInfo
	toc         *tocOptions
	tocInserted bool
	err         error
}

// NewBuilder returns an empty document builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Err reports the first error recorded while assembling the document.
func (b *Builder) Err() error {
	return b.err
}

// H1 appends a level 1 setext heading and records it for the table of contents.
func (b *Builder) H1(text string) *Builder {
	return b.heading(1, text, fragment.H1(text))
}

// H2 appends a level 2 setext heading.
func (b *Builder) H2(text string) *Builder {
	return b.heading(2, text, fragment.H2(text))
}

// H3 appends a level 3 ATX heading.
func (b *Builder) H3(text string) *Builder {
	return b.heading(3, text, fragment.H3(text))
}

// H4 appends a level 4 ATX heading.
func (b *Builder) H4(text string) *Builder {
	return b.heading(4, text, fragment.H4(text))
}

// H5 appends a level 5 ATX heading.
func (b *Builder) H5(text string) *Builder {
	return b.heading(5, text, fragment.H5(text))
}

// H6 appends a level 6 ATX heading.
func (b *Builder) H6(text string) *Builder {
	return b.heading(6, text, fragment.H6(text))
}

func (b *Builder) heading(level int, text, block string) *Builder {
	b.headings = append(b.headings, headingInfo{level: level, text: text})
	b.blocks = append(b.blocks, block)
	return b
}

// Paragraph appends a plain text block.
func (b *Builder) Paragraph(text string) *Builder {
	b.blocks = append(b.blocks, text)
	return b
}

// Paragraphf appends a formatted text block.
func (b *Builder) Paragraphf(format string, args ...any) *Builder {
	return b.Paragraph(fmt.Sprintf(format, args...))
}

// CodeBlock appends a fenced code block tagged with the supplied info string.
// An empty info string produces a bare fence.
func (b *Builder) CodeBlock(info, code string) *Builder {
	b.blocks = append(b.blocks, fragment.FencedCodeBlock(code, info))
	return b
}

// BulletList appends an unordered list, one item per line.
func (b *Builder) BulletList(items ...string) *Builder {
	if len(items) == 0 {
		return b
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	b.blocks = append(b.blocks, strings.Join(lines, fragment.LF))
	return b
}

// OrderedList appends a numbered list, one item per line.
func (b *Builder) OrderedList(items ...string) *Builder {
	if len(items) == 0 {
		return b
	}
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
	}
	b.blocks = append(b.blocks, strings.Join(lines, fragment.LF))
	return b
}

// Task is a single task list entry.
type Task struct {
	Checked bool
	Text    string
}

// TaskList appends a GFM task list.
func (b *Builder) TaskList(tasks ...Task) *Builder {
	if len(tasks) == 0 {
		return b
	}
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		marker := "- [ ] "
		if task.Checked {
			marker = "- [x] "
		}
		lines = append(lines, marker+task.Text)
	}
	b.blocks = append(b.blocks, strings.Join(lines, fragment.LF))
	return b
}

// Blockquote appends the text as a quote, prefixing every line with "> ".
func (b *Builder) Blockquote(text string) *Builder {
	lines := strings.Split(text, fragment.LF)
	for i, line := range lines {
		lines[i] = "> " + line
	}
	b.blocks = append(b.blocks, strings.Join(lines, fragment.LF))
	return b
}

// HorizontalRule appends a thematic break.
func (b *Builder) HorizontalRule() *Builder {
	b.blocks = append(b.blocks, "---")
	return b
}

// Details appends a collapsible HTML details element with the given summary.
func (b *Builder) Details(summary, text string) *Builder {
	b.blocks = append(b.blocks,
		"<details><summary>"+summary+"</summary>"+fragment.LF+fragment.LF+text+fragment.LF+fragment.LF+"</details>")
	return b
}

// TableOfContents reserves a table of contents location covering heading
// levels 1 through maxDepth. The entries are materialised from the recorded
// headings when the document is finalised, so the call order relative to the
// headings does not matter.
func (b *Builder) TableOfContents(maxDepth int) *Builder {
	return b.TableOfContentsWithRange(TOCDepthH1, maxDepth)
}

// TableOfContentsWithRange reserves a table of contents covering heading
// levels minDepth through maxDepth. Only one table of contents is allowed per
// document.
func (b *Builder) TableOfContentsWithRange(minDepth, maxDepth int) *Builder {
	if b.tocInserted {
		b.recordErr(ErrTOCInserted)
		return b
	}
	if minDepth < TOCDepthH1 || minDepth > TOCDepthH6 || maxDepth < TOCDepthH1 || maxDepth > TOCDepthH6 {
		b.recordErr(fmt.Errorf("%w: %d..%d", ErrTOCDepth, minDepth, maxDepth))
		return b
	}
	if minDepth > maxDepth {
		b.recordErr(fmt.Errorf("%w: min %d greater than max %d", ErrTOCDepth, minDepth, maxDepth))
		return b
	}

	b.toc = &tocOptions{minDepth: minDepth, maxDepth: maxDepth}
	b.tocInserted = true
	b.blocks = append(b.blocks, TOCMarkerBegin+fragment.LF+TOCMarkerEnd)
	return b
}

// String finalises the document: blocks joined by blank lines, with the table
// of contents markers expanded in place when one was reserved.
func (b *Builder) String() string {
	content := strings.Join(b.blocks, fragment.LF+fragment.LF)

	if b.tocInserted && b.toc != nil {
		if entries := b.tocEntries(); len(entries) > 0 {
			placeholder := TOCMarkerBegin + fragment.LF + TOCMarkerEnd
			replacement := TOCMarkerBegin + fragment.LF +
				strings.Join(entries, fragment.LF) + fragment.LF + TOCMarkerEnd
			content = strings.Replace(content, placeholder, replacement, 1)
		}
	}

	return content
}

// WriteTo writes the finalised document to w, satisfying io.WriterTo. Builder
// errors are reported through Err, not here; WriteTo only surfaces write
// failures.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (b *Builder) tocEntries() []string {
	entries := make([]string, 0, len(b.headings))
	for _, heading := range b.headings {
		if heading.level < b.toc.minDepth || heading.level > b.toc.maxDepth {
			continue
		}
		indent := strings.Repeat("  ", heading.level-b.toc.minDepth)
		entries = append(entries, fmt.Sprintf("%s- [%s](#%s)", indent, heading.text, headingAnchor(heading.text)))
	}
	return entries
}

// headingAnchor derives the GitHub-style anchor for a heading. Normalization
// falls back to a naive ASCII filter when the slug package rejects the text.
func headingAnchor(text string) string {
	if anchor, err := slug.Normalize(text); err == nil {
		return anchor
	}
	anchor := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(text), " ", "-"))
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, anchor)
}

func (b *Builder) recordErr(err error) {
	if b.err == nil {
		b.err = err
	}
}
