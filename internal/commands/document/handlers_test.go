package documentcmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-markdown/internal/document"
	"github.com/goliatone/go-markdown/pkg/interfaces"
)

type stubRenderer struct {
	prefix string
	err    error
	calls  int
}

func (r *stubRenderer) Render(markdown []byte) ([]byte, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return []byte(r.prefix + string(markdown)), nil
}

func (r *stubRenderer) RenderWithOptions(markdown []byte, _ interfaces.RenderOptions) ([]byte, error) {
	return r.Render(markdown)
}

func TestRenderDocumentHandlerRoutesByFormat(t *testing.T) {
	html := &stubRenderer{prefix: "html:"}
	terminal := &stubRenderer{prefix: "ansi:"}

	var captured []byte
	sink := func(ctx context.Context, msg RenderDocumentCommand, out []byte) error {
		captured = out
		return nil
	}

	h := NewRenderDocumentHandler(html, terminal, nil, NewFeatureGates(nil), sink)

	msg := RenderDocumentCommand{Body: "# Title", Format: FormatTerminal}
	if err := h.Execute(context.Background(), msg); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if terminal.calls != 1 {
		t.Fatalf("expected terminal renderer to be used once, got %d", terminal.calls)
	}
	if html.calls != 0 {
		t.Fatalf("expected html renderer to be skipped, got %d calls", html.calls)
	}
	if got := string(captured); got != "ansi:# Title" {
		t.Fatalf("unexpected sink payload: %q", got)
	}
}

func TestRenderDocumentHandlerDefaultsToHTML(t *testing.T) {
	html := &stubRenderer{prefix: "html:"}

	var captured []byte
	sink := func(ctx context.Context, msg RenderDocumentCommand, out []byte) error {
		captured = out
		return nil
	}

	h := NewRenderDocumentHandler(html, nil, nil, NewFeatureGates(nil), sink)

	if err := h.Execute(context.Background(), RenderDocumentCommand{Body: "hello"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := string(captured); got != "html:hello" {
		t.Fatalf("unexpected sink payload: %q", got)
	}
}

func TestRenderDocumentHandlerMissingRenderer(t *testing.T) {
	h := NewRenderDocumentHandler(&stubRenderer{}, nil, nil, NewFeatureGates(nil), nil)

	err := h.Execute(context.Background(), RenderDocumentCommand{Body: "x", Format: FormatTerminal})
	if err == nil {
		t.Fatal("expected error when the terminal renderer is not configured")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestRenderDocumentHandlerPropagatesRendererError(t *testing.T) {
	renderErr := errors.New("parser exploded")
	h := NewRenderDocumentHandler(&stubRenderer{err: renderErr}, nil, nil, NewFeatureGates(nil), nil)

	err := h.Execute(context.Background(), RenderDocumentCommand{Body: "x"})
	if err == nil {
		t.Fatal("expected renderer error to propagate")
	}
	if !strings.Contains(err.Error(), "parser exploded") {
		t.Fatalf("expected renderer failure detail, got %v", err)
	}
}

func TestRenderDocumentHandlerFeatureGate(t *testing.T) {
	html := &stubRenderer{prefix: "html:"}
	gates := NewFeatureGates(func() bool { return false })

	h := NewRenderDocumentHandler(html, nil, nil, gates, nil)

	err := h.Execute(context.Background(), RenderDocumentCommand{Body: "x"})
	if err == nil {
		t.Fatal("expected feature gate error")
	}
	if !errors.Is(err, ErrCommandsFeatureDisabled) {
		t.Fatalf("expected ErrCommandsFeatureDisabled, got %v", err)
	}
	if html.calls != 0 {
		t.Fatal("expected renderer not to run when the feature is disabled")
	}
}

func TestExportDocumentHandlerWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docs", "release.md")

	h := NewExportDocumentHandler(document.NewService(nil), nil, NewFeatureGates(nil))

	msg := ExportDocumentCommand{
		Title: "Release Notes",
		Tags:  []string{"release"},
		Body:  "All fixed.",
		Path:  path,
	}
	if err := h.Execute(context.Background(), msg); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected exported file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "title: Release Notes") {
		t.Fatalf("expected frontmatter title, got %q", content)
	}
	if !strings.Contains(content, "slug: release-notes") {
		t.Fatalf("expected derived slug, got %q", content)
	}
	if !strings.Contains(content, "All fixed.") {
		t.Fatalf("expected body content, got %q", content)
	}
}

func TestExportDocumentHandlerValidationFailure(t *testing.T) {
	h := NewExportDocumentHandler(document.NewService(nil), nil, NewFeatureGates(nil))

	err := h.Execute(context.Background(), ExportDocumentCommand{Body: "no destination"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

type recordingRegistry struct {
	handlers []any
	err      error
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	if r.err != nil {
		return r.err
	}
	r.handlers = append(r.handlers, handler)
	return nil
}

func TestRegisterDocumentCommands(t *testing.T) {
	reg := &recordingRegistry{}

	set, err := RegisterDocumentCommands(reg, &stubRenderer{}, &stubRenderer{}, document.NewService(nil), nil, NewFeatureGates(nil))
	if err != nil {
		t.Fatalf("expected registration to succeed, got %v", err)
	}
	if set == nil || set.Render == nil || set.Export == nil {
		t.Fatal("expected both handlers in the set")
	}
	if len(reg.handlers) != 2 {
		t.Fatalf("expected 2 registered handlers, got %d", len(reg.handlers))
	}
}

func TestRegisterDocumentCommandsRequiresService(t *testing.T) {
	if _, err := RegisterDocumentCommands(&recordingRegistry{}, &stubRenderer{}, nil, nil, nil, NewFeatureGates(nil)); err == nil {
		t.Fatal("expected error when the document service is nil")
	}
}

func TestRegisterDocumentCommandsPropagatesRegistryError(t *testing.T) {
	reg := &recordingRegistry{err: errors.New("bus offline")}

	if _, err := RegisterDocumentCommands(reg, &stubRenderer{}, nil, document.NewService(nil), nil, NewFeatureGates(nil)); err == nil {
		t.Fatal("expected registry error to propagate")
	}
}
