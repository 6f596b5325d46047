package di_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-markdown/internal/di"
	"github.com/goliatone/go-markdown/internal/runtimeconfig"
	"github.com/goliatone/go-markdown/pkg/interfaces"
)

func TestNewContainerDefaults(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	if container.HTMLRenderer() == nil {
		t.Fatal("expected html renderer to be configured")
	}
	if container.TerminalRenderer() == nil {
		t.Fatal("expected terminal renderer to be configured")
	}
	if container.DocumentService() == nil {
		t.Fatal("expected document service to be configured")
	}
	if container.CommandHandlers() != nil {
		t.Fatal("expected no command handlers when the feature is disabled")
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Renderer.WordWrap = -1

	if _, err := di.NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrRendererWordWrapInvalid) {
		t.Fatalf("expected ErrRendererWordWrapInvalid, got %v", err)
	}
}

func TestNewContainerRegistersCommandHandlers(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Commands = true
	cfg.Commands.Enabled = true

	reg := &recordingRegistry{}

	container, err := di.NewContainer(cfg, di.WithCommandRegistry(reg))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	handlers := container.CommandHandlers()
	if handlers == nil || handlers.Render == nil || handlers.Export == nil {
		t.Fatal("expected command handlers when the feature is enabled")
	}
	if len(reg.handlers) != 2 {
		t.Fatalf("expected 2 registered handlers, got %d", len(reg.handlers))
	}
}

func TestNewContainerUsesLoggerProviderOverride(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()

	override := &stubProvider{}

	container, err := di.NewContainer(cfg, di.WithLoggerProvider(override))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if container.LoggerProvider() != interfaces.LoggerProvider(override) {
		t.Fatal("expected logger provider override to win")
	}
	if len(override.requested) == 0 {
		t.Fatal("expected container wiring to request loggers from the override")
	}
}

func TestNewContainerWithoutLoggerFeatureHasNoProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = false

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if container.LoggerProvider() != nil {
		t.Fatalf("expected nil provider, got %T", container.LoggerProvider())
	}
}

type recordingRegistry struct {
	handlers []any
}

func (r *recordingRegistry) RegisterCommand(handler any) error {
	r.handlers = append(r.handlers, handler)
	return nil
}

type stubProvider struct {
	requested []string
}

func (p *stubProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	return noopLogger{}
}

type noopLogger struct{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithContext(context.Context) interfaces.Logger { return n }
