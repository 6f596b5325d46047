package render

import (
	"strings"
	"testing"

	"github.com/goliatone/go-markdown/pkg/interfaces"
)

func TestTerminalRendererProducesOutput(t *testing.T) {
	renderer := NewTerminalRenderer(interfaces.RenderOptions{
		Style:    "notty",
		WordWrap: 80,
	})

	out, err := renderer.Render([]byte("# Title\n\nbody text"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "Title") || !strings.Contains(string(out), "body text") {
		t.Fatalf("expected rendered content, got %q", string(out))
	}
}

func TestTerminalRendererRejectsUnknownStyle(t *testing.T) {
	renderer := NewTerminalRenderer(interfaces.RenderOptions{})

	if _, err := renderer.RenderWithOptions([]byte("text"), interfaces.RenderOptions{Style: "no-such-style"}); err == nil {
		t.Fatal("expected error for unknown style")
	}
}
