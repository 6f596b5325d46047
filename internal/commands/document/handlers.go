package documentcmd

import (
	"context"
	"errors"
	"fmt"

	command "github.com/goliatone/go-command"
	"github.com/google/uuid"

	"github.com/goliatone/go-markdown/internal/commands"
	"github.com/goliatone/go-markdown/internal/document"
	"github.com/goliatone/go-markdown/internal/logging"
	"github.com/goliatone/go-markdown/pkg/interfaces"
)

const (
	renderOperation = "document.render"
	exportOperation = "document.export"
)

// ErrCommandsFeatureDisabled is returned when the command feature flag is
// disabled at runtime.
var ErrCommandsFeatureDisabled = errors.New("document command: feature disabled")

// ErrUnknownRenderFormat indicates a format the render handler cannot serve.
var ErrUnknownRenderFormat = errors.New("document command: unknown render format")

var (
	_ command.Commander[RenderDocumentCommand] = (*RenderDocumentHandler)(nil)
	_ command.Commander[ExportDocumentCommand] = (*ExportDocumentHandler)(nil)
)

// FeatureGates guards command execution behind runtime feature toggles.
type FeatureGates struct {
	commands func() bool
}

// NewFeatureGates builds gates from a commands-enabled probe. A nil probe
// leaves the gate open.
func NewFeatureGates(commandsEnabled func() bool) FeatureGates {
	return FeatureGates{commands: commandsEnabled}
}

func (g FeatureGates) commandsEnabled() bool {
	if g.commands == nil {
		return true
	}
	return g.commands()
}

// RenderSink receives rendered output from the render handler.
type RenderSink func(ctx context.Context, msg RenderDocumentCommand, out []byte) error

// RenderDocumentHandler previews Markdown through the configured renderers
// via the shared command handler foundation.
type RenderDocumentHandler struct {
	inner *commands.Handler[RenderDocumentCommand]
}

// NewRenderDocumentHandler creates a handler bound to the supplied renderers.
// The sink receives the rendered bytes; a nil sink discards them after
// logging, which is still useful as a validation pass.
func NewRenderDocumentHandler(html, terminal interfaces.Renderer, logger interfaces.Logger, gates FeatureGates, sink RenderSink, opts ...commands.HandlerOption[RenderDocumentCommand]) *RenderDocumentHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg RenderDocumentCommand) error {
		if !gates.commandsEnabled() {
			return ErrCommandsFeatureDisabled
		}

		var renderer interfaces.Renderer
		format := msg.NormalizedFormat()
		switch format {
		case FormatHTML:
			renderer = html
		case FormatTerminal:
			renderer = terminal
		default:
			return fmt.Errorf("%w: %s", ErrUnknownRenderFormat, format)
		}
		if renderer == nil {
			return fmt.Errorf("%w: %s renderer not configured", ErrUnknownRenderFormat, format)
		}

		out, err := renderer.Render([]byte(msg.Body))
		if err != nil {
			return err
		}

		logging.WithDocumentContext(baseLogger, "", "", format).
			Info("document.command.render.completed", "bytes", len(out))

		if sink != nil {
			return sink(ctx, msg, out)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[RenderDocumentCommand]{
		commands.WithLogger[RenderDocumentCommand](baseLogger),
		commands.WithOperation[RenderDocumentCommand](renderOperation),
		commands.WithMessageFields(func(msg RenderDocumentCommand) map[string]any {
			fields := map[string]any{
				"format": msg.NormalizedFormat(),
			}
			if msg.DocumentID != uuid.Nil {
				fields["document_id"] = msg.DocumentID
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[RenderDocumentCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RenderDocumentHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[RenderDocumentCommand].
func (h *RenderDocumentHandler) Execute(ctx context.Context, msg RenderDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ExportDocumentHandler composes and writes documents through the document
// service via the shared command handler foundation.
type ExportDocumentHandler struct {
	inner *commands.Handler[ExportDocumentCommand]
}

// NewExportDocumentHandler creates a handler bound to the supplied document service.
func NewExportDocumentHandler(service *document.Service, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ExportDocumentCommand]) *ExportDocumentHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ExportDocumentCommand) error {
		if !gates.commandsEnabled() {
			return ErrCommandsFeatureDisabled
		}

		doc := interfaces.Document{
			FrontMatter: interfaces.FrontMatter{
				Title: msg.Title,
				Slug:  msg.Slug,
				Tags:  msg.Tags,
			},
			Body: []byte(msg.Body),
		}
		if err := service.Export(ctx, doc, msg.Path); err != nil {
			return err
		}

		logging.WithDocumentContext(baseLogger, msg.Title, msg.Slug, "").
			Info("document.command.export.completed", "path", msg.Path)
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExportDocumentCommand]{
		commands.WithLogger[ExportDocumentCommand](baseLogger),
		commands.WithOperation[ExportDocumentCommand](exportOperation),
		commands.WithMessageFields(func(msg ExportDocumentCommand) map[string]any {
			fields := map[string]any{
				"path": msg.Path,
			}
			if msg.DocumentID != uuid.Nil {
				fields["document_id"] = msg.DocumentID
			}
			if msg.Slug != "" {
				fields["slug"] = msg.Slug
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ExportDocumentCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExportDocumentHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ExportDocumentCommand].
func (h *ExportDocumentHandler) Execute(ctx context.Context, msg ExportDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}
