package document

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-markdown/pkg/interfaces"
)

func TestServiceComposeDerivesSlugFromTitle(t *testing.T) {
	svc := NewService(nil)

	out, err := svc.Compose(interfaces.Document{
		FrontMatter: interfaces.FrontMatter{Title: "Getting Started Guide"},
		Body:        []byte("body"),
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !strings.Contains(string(out), "slug: getting-started-guide") {
		t.Fatalf("expected derived slug in output, got %q", string(out))
	}
}

func TestServiceComposeRejectsInvalidSlug(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Compose(interfaces.Document{
		FrontMatter: interfaces.FrontMatter{Title: "Guide", Slug: "Not A Slug!"},
	})
	if !errors.Is(err, ErrInvalidSlug) {
		t.Fatalf("expected ErrInvalidSlug, got %v", err)
	}
}

func TestServiceComposeKeepsValidSlug(t *testing.T) {
	svc := NewService(nil)

	out, err := svc.Compose(interfaces.Document{
		FrontMatter: interfaces.FrontMatter{Title: "Guide", Slug: "custom-slug"},
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !strings.Contains(string(out), "slug: custom-slug") {
		t.Fatalf("expected provided slug preserved, got %q", string(out))
	}
}

func TestServiceExportWritesFile(t *testing.T) {
	svc := NewService(nil)
	path := filepath.Join(t.TempDir(), "nested", "out.md")

	doc := interfaces.Document{
		FrontMatter: interfaces.FrontMatter{Title: "Export Test"},
		Body:        []byte("# Export Test"),
	}
	if err := svc.Export(context.Background(), doc, path); err != nil {
		t.Fatalf("Export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if !strings.Contains(string(data), "title: Export Test") {
		t.Fatalf("exported file missing frontmatter: %q", string(data))
	}
	if !strings.Contains(string(data), "# Export Test") {
		t.Fatalf("exported file missing body: %q", string(data))
	}
}

func TestServiceExportHonoursCancelledContext(t *testing.T) {
	svc := NewService(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Export(ctx, interfaces.Document{Body: []byte("x")}, filepath.Join(t.TempDir(), "out.md"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
