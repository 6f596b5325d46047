package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-markdown/internal/logging"
	"github.com/goliatone/go-markdown/pkg/interfaces"
)

// Service offers the document-level workflows: composing frontmatter
// documents, parsing them back, and exporting composed output to disk.
type Service struct {
	logger interfaces.Logger
}

// NewService constructs a document service. A nil logger falls back to the
// no-op implementation.
func NewService(logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{logger: logger}
}

// Compose serialises the document after settling its slug: a missing slug is
// derived from the title, a provided slug must already satisfy the
// normalization rules.
func (s *Service) Compose(doc interfaces.Document) ([]byte, error) {
	settled, err := settleSlug(doc)
	if err != nil {
		return nil, err
	}

	out, err := Compose(settled)
	if err != nil {
		return nil, err
	}

	logging.WithDocumentContext(s.logger, settled.FrontMatter.Title, settled.FrontMatter.Slug, "").
		Debug("document.composed", "bytes", len(out))
	return out, nil
}

// Parse extracts frontmatter and body from a previously composed document.
func (s *Service) Parse(source []byte) (interfaces.Document, error) {
	return Parse(source)
}

// Export composes the document and writes it to path, creating intermediate
// directories as needed.
func (s *Service) Export(ctx context.Context, doc interfaces.Document, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := s.Compose(doc)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("document: create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("document: write export: %w", err)
	}

	logging.WithDocumentContext(s.logger, doc.FrontMatter.Title, doc.FrontMatter.Slug, "").
		Info("document.exported", "path", path, "bytes", len(out))
	return nil
}

// settleSlug fills a missing slug from the title and rejects invalid slugs.
func settleSlug(doc interfaces.Document) (interfaces.Document, error) {
	provided := strings.TrimSpace(doc.FrontMatter.Slug)
	if provided != "" {
		if !slug.IsValid(provided) {
			return interfaces.Document{}, fmt.Errorf("%w: %q", ErrInvalidSlug, provided)
		}
		doc.FrontMatter.Slug = provided
		return doc, nil
	}

	title := strings.TrimSpace(doc.FrontMatter.Title)
	if title == "" {
		return doc, nil
	}

	derived, err := slug.Normalize(title)
	if err != nil {
		return interfaces.Document{}, fmt.Errorf("document: derive slug from title: %w", err)
	}
	doc.FrontMatter.Slug = derived
	return doc, nil
}
