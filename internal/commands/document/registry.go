package documentcmd

import (
	"errors"

	"github.com/goliatone/go-markdown/internal/commands"
	"github.com/goliatone/go-markdown/internal/document"
	"github.com/goliatone/go-markdown/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring
// command handlers into a dispatcher.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the document command handlers produced by RegisterDocumentCommands.
type HandlerSet struct {
	Render *RenderDocumentHandler
	Export *ExportDocumentHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	renderHandlerOpts []commands.HandlerOption[RenderDocumentCommand]
	exportHandlerOpts []commands.HandlerOption[ExportDocumentCommand]
	renderSink        RenderSink
}

// WithRenderHandlerOptions forwards options to the RenderDocumentHandler constructor.
func WithRenderHandlerOptions(opts ...commands.HandlerOption[RenderDocumentCommand]) Option {
	return func(cfg *options) {
		cfg.renderHandlerOpts = append(cfg.renderHandlerOpts, opts...)
	}
}

// WithExportHandlerOptions forwards options to the ExportDocumentHandler constructor.
func WithExportHandlerOptions(opts ...commands.HandlerOption[ExportDocumentCommand]) Option {
	return func(cfg *options) {
		cfg.exportHandlerOpts = append(cfg.exportHandlerOpts, opts...)
	}
}

// WithRenderSink routes rendered output to the supplied sink.
func WithRenderSink(sink RenderSink) Option {
	return func(cfg *options) {
		cfg.renderSink = sink
	}
}

// RegisterDocumentCommands builds the document command handlers and registers
// them with the provided registry. The constructed HandlerSet is returned so
// callers can wire additional integrations as needed.
func RegisterDocumentCommands(reg CommandRegistry, html, terminal interfaces.Renderer, service *document.Service, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("document command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "document")

	renderHandler := NewRenderDocumentHandler(html, terminal, logger, gates, cfg.renderSink, cfg.renderHandlerOpts...)
	exportHandler := NewExportDocumentHandler(service, logger, gates, cfg.exportHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(renderHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(exportHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Render: renderHandler,
		Export: exportHandler,
	}, nil
}
