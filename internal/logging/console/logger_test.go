package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-markdown/internal/logging"
	"github.com/goliatone/go-markdown/internal/logging/console"
)

func TestConsoleLoggerWritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2025, 6, 2, 10, 30, 15, 123456000, time.UTC)

	minLevel := console.LevelDebug
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return now },
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("markdown.document")
	logger = logging.WithFields(logger, map[string]any{"module": "markdown.document"})
	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"correlation_id": "req-1234",
	})
	logger = logger.WithContext(ctx)

	logger.Info("document.composed",
		"document_slug", "release-notes",
		"sections", 4,
	)

	got := strings.TrimSpace(buf.String())
	want := "2025-06-02T10:30:15.123456Z INFO document.composed correlation_id=req-1234 document_slug=release-notes logger=markdown.document module=markdown.document sections=4"
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestConsoleLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	minLevel := console.LevelInfo
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("markdown.test")
	logger.Debug("ignored.debug", "foo", "bar")
	logger.Info("included.info", "foo", "bar")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected a single entry, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "included.info") {
		t.Fatalf("expected info entry, got %q", lines[0])
	}
}

func TestConsoleLoggerQuotesAwkwardValues(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{Writer: &buf})

	logger := provider.GetLogger("markdown.test")
	logger.Info("entry", "text", "hello world", "empty", "")

	entry := strings.TrimSpace(buf.String())
	if !strings.Contains(entry, `text="hello world"`) {
		t.Fatalf("expected quoted value with space, got %q", entry)
	}
	if !strings.Contains(entry, `empty=""`) {
		t.Fatalf("expected quoted empty value, got %q", entry)
	}
}

func TestConsoleLoggerPromotesDanglingArgument(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{Writer: &buf})

	logger := provider.GetLogger("markdown.test")
	logger.Info("entry", "orphan")

	entry := strings.TrimSpace(buf.String())
	if !strings.Contains(entry, "field_0=orphan") {
		t.Fatalf("expected positional promotion of dangling argument, got %q", entry)
	}
}
