package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrSiteURLRequired indicates the site base URL is missing.
var ErrSiteURLRequired = errors.New("vdp config: site url is required")

// ErrSiteURLInvalid indicates the site base URL is not absolute.
var ErrSiteURLInvalid = errors.New("vdp config: site url must be absolute")

// ErrOutputDirRequired indicates the generator output directory is missing.
var ErrOutputDirRequired = errors.New("vdp config: generator output directory is required")
var ErrInventoryPathRequired = errors.New("vdp config: inventory path is required when generator is enabled")
var ErrGridInventoryURLRequired = errors.New("vdp config: grid inventory url is required when grid is enabled")
var ErrGridDisplayLimitInvalid = errors.New("vdp config: grid display limit must be zero or positive")
var ErrLoggingLevelInvalid = errors.New("vdp config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("vdp config: logging format is invalid")

// Config aggregates runtime settings for the toolchain. Fields intentionally
// use simple types so host applications can extend them later.
type Config struct {
	Site      SiteConfig
	Locality  LocalityConfig
	Generator GeneratorConfig
	Grid      GridConfig
	Export    ExportConfig
	Logging   LoggingConfig
}

// SiteConfig identifies the dealership site the artifacts belong to.
type SiteConfig struct {
	Name    string
	BaseURL string
	Phone   string
}

// LocalityConfig feeds the locality segment of page slugs. The generator and
// grid must share these values or their links diverge.
type LocalityConfig struct {
	City  string
	State string
	Zip   string
}

// GeneratorConfig captures behaviour for the detail page generator.
type GeneratorConfig struct {
	Enabled       bool
	InventoryPath string
	OutputDir     string
	UpdateSitemap bool
}

// GridConfig captures behaviour for the runtime inventory grid.
type GridConfig struct {
	Enabled      bool
	InventoryURL string
	DisplayLimit int
}

// ExportConfig captures behaviour for the admin inventory export.
type ExportConfig struct {
	Pretty bool
}

// LoggingConfig selects log level and output format.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a single dealership site.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			Name: "Kingdom Auto Sales",
		},
		Locality: LocalityConfig{
			City:  "Greenville",
			State: "NC",
			Zip:   "27858",
		},
		Generator: GeneratorConfig{
			Enabled:       true,
			InventoryPath: "data/inventory.json",
			OutputDir:     "dist",
			UpdateSitemap: true,
		},
		Grid: GridConfig{
			Enabled:      true,
			InventoryURL: "data/inventory.json",
			DisplayLimit: 6,
		},
		Export: ExportConfig{
			Pretty: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	baseURL := strings.TrimSpace(cfg.Site.BaseURL)
	if cfg.Generator.Enabled {
		if baseURL == "" {
			return ErrSiteURLRequired
		}
		if parsed, err := url.Parse(baseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%w: %s", ErrSiteURLInvalid, baseURL)
		}
		if strings.TrimSpace(cfg.Generator.OutputDir) == "" {
			return ErrOutputDirRequired
		}
		if strings.TrimSpace(cfg.Generator.InventoryPath) == "" {
			return ErrInventoryPathRequired
		}
	}
	if cfg.Grid.Enabled {
		if strings.TrimSpace(cfg.Grid.InventoryURL) == "" {
			return ErrGridInventoryURLRequired
		}
		if cfg.Grid.DisplayLimit < 0 {
			return ErrGridDisplayLimitInvalid
		}
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	return nil
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(format) {
	case "json", "console", "pretty", "text":
		return true
	default:
		return false
	}
}
