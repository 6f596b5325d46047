package markdown

import "github.com/goliatone/go-markdown/internal/runtimeconfig"

var (
	ErrCommandsFeatureRequired = runtimeconfig.ErrCommandsFeatureRequired
	ErrCommandTimeoutInvalid   = runtimeconfig.ErrCommandTimeoutInvalid
	ErrRendererWordWrapInvalid = runtimeconfig.ErrRendererWordWrapInvalid
	ErrRendererFormatUnknown   = runtimeconfig.ErrRendererFormatUnknown
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	Features       = runtimeconfig.Features
	RendererConfig = runtimeconfig.RendererConfig
	DocumentConfig = runtimeconfig.DocumentConfig
	CommandsConfig = runtimeconfig.CommandsConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
