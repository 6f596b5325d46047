package markdown

import (
	documentcmd "github.com/goliatone/go-markdown/internal/commands/document"
	"github.com/goliatone/go-markdown/internal/di"
	"github.com/goliatone/go-markdown/internal/document"
	"github.com/goliatone/go-markdown/internal/logging"
	"github.com/goliatone/go-markdown/pkg/interfaces"
)

// DocumentService exports the frontmatter document service for consumers of
// the markdown package.
type DocumentService = document.Service

// Builder exports the fluent document builder.
type Builder = document.Builder

// TableSet exports the tabular input accepted by the builder.
type TableSet = document.TableSet

// TableOptions exports the table rendering options.
type TableOptions = document.TableOptions

// Task exports the checklist item consumed by the builder.
type Task = document.Task

// Renderer exports the render contract shared by the html and terminal renderers.
type Renderer = interfaces.Renderer

// RenderOptions exports the per-call render overrides.
type RenderOptions = interfaces.RenderOptions

// Document exports the frontmatter document envelope.
type Document = interfaces.Document

// FrontMatter exports the frontmatter metadata block.
type FrontMatter = interfaces.FrontMatter

// RenderDocumentCommand exports the render command message.
type RenderDocumentCommand = documentcmd.RenderDocumentCommand

// ExportDocumentCommand exports the export command message.
type ExportDocumentCommand = documentcmd.ExportDocumentCommand

// CommandHandlers exports the command handler set produced during wiring.
type CommandHandlers = documentcmd.HandlerSet

// Module represents the top level markdown runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a markdown module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// HTML returns the renderer bound to the html format.
func (m *Module) HTML() Renderer {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.HTMLRenderer()
}

// Terminal returns the renderer bound to the terminal format.
func (m *Module) Terminal() Renderer {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.TerminalRenderer()
}

// Documents returns the configured document service.
func (m *Module) Documents() *DocumentService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.DocumentService()
}

// Commands returns the document command handlers when the commands feature
// is enabled, nil otherwise.
func (m *Module) Commands() *CommandHandlers {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.CommandHandlers()
}

// NewBuilder returns a fresh fluent document builder.
func (m *Module) NewBuilder() *Builder {
	return document.NewBuilder()
}

// Logger returns the module-scoped logger, a no-op implementation when the
// logging feature is disabled.
func (m *Module) Logger() interfaces.Logger {
	if m == nil || m.container == nil {
		return logging.NoOp()
	}
	return logging.ModuleLogger(m.container.LoggerProvider(), "")
}
