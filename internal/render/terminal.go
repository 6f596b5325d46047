package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/goliatone/go-markdown/pkg/interfaces"
)

const (
	defaultTerminalStyle = "auto"
	defaultWordWrap      = 80
)

// TerminalRenderer implements interfaces.Renderer by converting Markdown into
// ANSI escape sequences via glamour, suitable for direct terminal output.
type TerminalRenderer struct {
	defaults interfaces.RenderOptions
}

var _ interfaces.Renderer = (*TerminalRenderer)(nil)

// NewTerminalRenderer constructs a terminal renderer. Empty style and zero
// word wrap fall back to "auto" and 80 columns.
func NewTerminalRenderer(defaults interfaces.RenderOptions) *TerminalRenderer {
	return &TerminalRenderer{
		defaults: defaults,
	}
}

// Render converts Markdown using the renderer's default configuration.
func (r *TerminalRenderer) Render(markdown []byte) ([]byte, error) {
	return r.RenderWithOptions(markdown, r.defaults)
}

// RenderWithOptions converts Markdown using the provided options. A glamour
// renderer is built per call: glamour term renderers are not safe for
// concurrent use, so sharing one would require locking instead.
func (r *TerminalRenderer) RenderWithOptions(markdown []byte, opts interfaces.RenderOptions) ([]byte, error) {
	style := opts.Style
	if style == "" {
		style = defaultTerminalStyle
	}
	wrap := opts.WordWrap
	if wrap <= 0 {
		wrap = defaultWordWrap
	}

	var styleOption glamour.TermRendererOption
	if style == defaultTerminalStyle {
		styleOption = glamour.WithAutoStyle()
	} else {
		styleOption = glamour.WithStandardStyle(style)
	}

	renderer, err := glamour.NewTermRenderer(
		styleOption,
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, fmt.Errorf("terminal render: create renderer: %w", err)
	}

	out, err := renderer.RenderBytes(markdown)
	if err != nil {
		return nil, fmt.Errorf("terminal render: %w", err)
	}
	return out, nil
}
