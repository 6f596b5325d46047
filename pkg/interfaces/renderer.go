package interfaces

// Renderer converts assembled Markdown into a presentation format. The
// concrete output depends on the implementation: HTML for the goldmark
// renderer, ANSI escape sequences for the terminal renderer. Implementations
// are stateless so a single instance can be shared across goroutines.
type Renderer interface {
	// Render converts Markdown using the renderer's default settings.
	Render(markdown []byte) ([]byte, error)
	// RenderWithOptions converts Markdown using the supplied overrides.
	RenderWithOptions(markdown []byte, opts RenderOptions) ([]byte, error)
}

// RenderOptions customises rendering behaviour, keeping option names readable
// for configuration unmarshalling and CLI flags. Not every renderer honours
// every field: Extensions, HardWraps, Sanitize and SafeMode drive the HTML
// renderer, Style and WordWrap drive the terminal renderer.
type RenderOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
	Style      string
	WordWrap   int
}
