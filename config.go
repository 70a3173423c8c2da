package vdp

import "github.com/goliatone/go-vdp/internal/runtimeconfig"

var (
	ErrSiteURLRequired          = runtimeconfig.ErrSiteURLRequired
	ErrSiteURLInvalid           = runtimeconfig.ErrSiteURLInvalid
	ErrOutputDirRequired        = runtimeconfig.ErrOutputDirRequired
	ErrInventoryPathRequired    = runtimeconfig.ErrInventoryPathRequired
	ErrGridInventoryURLRequired = runtimeconfig.ErrGridInventoryURLRequired
	ErrGridDisplayLimitInvalid  = runtimeconfig.ErrGridDisplayLimitInvalid
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config          = runtimeconfig.Config
	SiteConfig      = runtimeconfig.SiteConfig
	LocalityConfig  = runtimeconfig.LocalityConfig
	GeneratorConfig = runtimeconfig.GeneratorConfig
	GridConfig      = runtimeconfig.GridConfig
	ExportConfig    = runtimeconfig.ExportConfig
	LoggingConfig   = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
