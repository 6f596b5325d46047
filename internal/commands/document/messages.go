package documentcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	renderMessageType = "markdown.document.render"
	exportMessageType = "markdown.document.export"
)

// Render output formats accepted by RenderDocumentCommand.
const (
	FormatHTML     = "html"
	FormatTerminal = "terminal"
)

// RenderDocumentCommand previews a Markdown body in the requested output
// format. The document ID is optional correlation metadata carried into logs.
type RenderDocumentCommand struct {
	// DocumentID correlates the rendered output with a caller-side document.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// Body holds the Markdown source to render.
	Body string `json:"body"`
	// Format selects the output renderer; empty defaults to html.
	Format string `json:"format,omitempty"`
}

// Type implements command.Message.
func (RenderDocumentCommand) Type() string { return renderMessageType }

// Validate ensures the body is present and the format is recognised.
func (cmd RenderDocumentCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Body, validation.Required.Error("body is required")),
		validation.Field(&cmd.Format, validation.In("", FormatHTML, FormatTerminal).
			Error("format must be html or terminal")),
	)
}

// NormalizedFormat returns the effective output format.
func (cmd RenderDocumentCommand) NormalizedFormat() string {
	if strings.TrimSpace(cmd.Format) == "" {
		return FormatHTML
	}
	return strings.ToLower(strings.TrimSpace(cmd.Format))
}

// ExportDocumentCommand composes a frontmatter document and writes it to the
// destination path.
type ExportDocumentCommand struct {
	// DocumentID correlates the export with a caller-side document.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// Title populates the frontmatter title and drives slug derivation.
	Title string `json:"title,omitempty"`
	// Slug overrides the derived slug; must satisfy normalization rules.
	Slug string `json:"slug,omitempty"`
	// Tags populate the frontmatter tag list.
	Tags []string `json:"tags,omitempty"`
	// Body holds the Markdown source written below the frontmatter block.
	Body string `json:"body"`
	// Path selects the destination file; intermediate directories are created.
	Path string `json:"path"`
}

// Type implements command.Message.
func (ExportDocumentCommand) Type() string { return exportMessageType }

// Validate ensures destination and body input are present before handlers execute.
func (cmd ExportDocumentCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Body, validation.Required.Error("body is required")),
		validation.Field(&cmd.Path, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("markdown.document.export.path_required", "path is required")
			}
			return nil
		})),
	)
}
