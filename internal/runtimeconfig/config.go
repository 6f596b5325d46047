package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrCommandsFeatureRequired = errors.New("markdown config: commands feature must be enabled to configure commands")
var ErrCommandTimeoutInvalid = errors.New("markdown config: command timeout must be zero or positive")
var ErrRendererWordWrapInvalid = errors.New("markdown config: renderer word wrap must be zero or positive")
var ErrRendererFormatUnknown = errors.New("markdown config: renderer format is invalid")
var ErrLoggingProviderRequired = errors.New("markdown config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("markdown config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("markdown config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("markdown config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Renderer RendererConfig
	Document DocumentConfig
	Features Features
	Commands CommandsConfig
	Logging  LoggingConfig
}

// Features toggles module functionality.
type Features struct {
	Commands bool
	Logger   bool
}

// RendererConfig mirrors interfaces.RenderOptions for runtime configuration.
type RendererConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
	Style      string
	WordWrap   int
	Formats    []string
}

// DocumentConfig captures composition behaviour for the document service.
type DocumentConfig struct {
	DeriveSlugs bool
	ExportDir   string
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled        bool
	DefaultTimeout time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for library embedding.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Renderer: RendererConfig{
			Extensions: []string{"gfm"},
			HardWraps:  false,
			SafeMode:   false,
			Style:      "auto",
			WordWrap:   80,
			Formats:    []string{"html", "terminal"},
		},
		Document: DocumentConfig{
			DeriveSlugs: true,
		},
		Features: Features{},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Commands.Enabled && !cfg.Features.Commands {
		return ErrCommandsFeatureRequired
	}
	if cfg.Commands.DefaultTimeout < 0 {
		return ErrCommandTimeoutInvalid
	}
	if cfg.Renderer.WordWrap < 0 {
		return ErrRendererWordWrapInvalid
	}
	for _, format := range cfg.Renderer.Formats {
		if !isSupportedRenderFormat(format) {
			return fmt.Errorf("%w: %s", ErrRendererFormatUnknown, format)
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedRenderFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "html", "terminal":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
