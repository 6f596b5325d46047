package di

import (
	"fmt"
	"strings"

	documentcmd "github.com/goliatone/go-markdown/internal/commands/document"
	"github.com/goliatone/go-markdown/internal/document"
	"github.com/goliatone/go-markdown/internal/logging"
	"github.com/goliatone/go-markdown/internal/logging/console"
	"github.com/goliatone/go-markdown/internal/logging/gologger"
	"github.com/goliatone/go-markdown/internal/render"
	"github.com/goliatone/go-markdown/internal/runtimeconfig"
	"github.com/goliatone/go-markdown/pkg/interfaces"
)

// Container wires module dependencies from runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider

	htmlRenderer     interfaces.Renderer
	terminalRenderer interfaces.Renderer

	documentSvc *document.Service

	commandRegistry documentcmd.CommandRegistry
	renderSink      documentcmd.RenderSink
	handlers        *documentcmd.HandlerSet
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the configured logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithHTMLRenderer overrides the default goldmark-backed HTML renderer.
func WithHTMLRenderer(r interfaces.Renderer) Option {
	return func(c *Container) {
		c.htmlRenderer = r
	}
}

// WithTerminalRenderer overrides the default glamour-backed terminal renderer.
func WithTerminalRenderer(r interfaces.Renderer) Option {
	return func(c *Container) {
		c.terminalRenderer = r
	}
}

// WithDocumentService overrides the default document service binding.
func WithDocumentService(svc *document.Service) Option {
	return func(c *Container) {
		c.documentSvc = svc
	}
}

// WithCommandRegistry registers the document command handlers against the
// supplied registry during container construction. Only takes effect when
// the commands feature is enabled.
func WithCommandRegistry(reg documentcmd.CommandRegistry) Option {
	return func(c *Container) {
		c.commandRegistry = reg
	}
}

// WithRenderSink routes rendered command output to the supplied sink.
func WithRenderSink(sink documentcmd.RenderSink) Option {
	return func(c *Container) {
		c.renderSink = sink
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.loggerProvider == nil {
		provider, err := configureLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	renderOpts := renderOptionsFromConfig(cfg.Renderer)
	if c.htmlRenderer == nil {
		c.htmlRenderer = render.NewGoldmarkRenderer(renderOpts)
	}
	if c.terminalRenderer == nil {
		c.terminalRenderer = render.NewTerminalRenderer(renderOpts)
	}

	if c.documentSvc == nil {
		c.documentSvc = document.NewService(logging.DocumentLogger(c.loggerProvider))
	}

	if cfg.Commands.Enabled {
		gates := documentcmd.NewFeatureGates(func() bool {
			return c.Config.Commands.Enabled
		})
		handlers, err := documentcmd.RegisterDocumentCommands(
			c.commandRegistry,
			c.htmlRenderer,
			c.terminalRenderer,
			c.documentSvc,
			c.loggerProvider,
			gates,
			documentcmd.WithRenderSink(c.renderSink),
		)
		if err != nil {
			return nil, fmt.Errorf("register document commands: %w", err)
		}
		c.handlers = handlers
	}

	return c, nil
}

// LoggerProvider exposes the configured logger provider. It is nil when the
// logging feature is disabled and no override was supplied.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// HTMLRenderer returns the renderer bound to the html format.
func (c *Container) HTMLRenderer() interfaces.Renderer {
	return c.htmlRenderer
}

// TerminalRenderer returns the renderer bound to the terminal format.
func (c *Container) TerminalRenderer() interfaces.Renderer {
	return c.terminalRenderer
}

// DocumentService returns the frontmatter document service.
func (c *Container) DocumentService() *document.Service {
	return c.documentSvc
}

// CommandHandlers returns the document command handlers, or nil when the
// commands feature is disabled.
func (c *Container) CommandHandlers() *documentcmd.HandlerSet {
	return c.handlers
}

func configureLoggerProvider(cfg runtimeconfig.Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return nil, nil
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	default:
		opts := console.Options{}
		if level, ok := console.ParseLevel(cfg.Logging.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	}
}

func renderOptionsFromConfig(cfg runtimeconfig.RendererConfig) interfaces.RenderOptions {
	return interfaces.RenderOptions{
		Extensions: cfg.Extensions,
		Sanitize:   cfg.Sanitize,
		HardWraps:  cfg.HardWraps,
		SafeMode:   cfg.SafeMode,
		Style:      cfg.Style,
		WordWrap:   cfg.WordWrap,
	}
}
