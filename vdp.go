// Package vdp is the public surface of the dealership page toolchain. It
// re-exports the generator, grid, and export contracts and wires them from a
// single runtime configuration.
package vdp

import (
	"strings"
	"time"

	"github.com/goliatone/go-vdp/grid"
	"github.com/goliatone/go-vdp/internal/commands/vdpcmd"
	"github.com/goliatone/go-vdp/internal/generator"
	"github.com/goliatone/go-vdp/internal/logging"
	"github.com/goliatone/go-vdp/internal/logging/gologger"
	"github.com/goliatone/go-vdp/internal/seo"
	"github.com/goliatone/go-vdp/pkg/interfaces"
)

// GeneratorService exports the page generator contract.
type GeneratorService = generator.Service

// BuildOptions exports the per-run generator options.
type BuildOptions = generator.BuildOptions

// BuildResult exports the generator build report.
type BuildResult = generator.BuildResult

// RenderedPage exports the per-page build record.
type RenderedPage = generator.RenderedPage

// GridService exports the runtime inventory grid.
type GridService = grid.Service

// Card exports the grid tile DTO.
type Card = grid.Card

// Filter exports the grid search filter.
type Filter = grid.Filter

// PriceBucket exports the grid price range selector.
type PriceBucket = grid.PriceBucket

// Price bucket values re-exported for hosts driving the grid filter.
const (
	PriceAny      = grid.PriceAny
	PriceUnder10K = grid.PriceUnder10K
	Price10To20K  = grid.Price10To20K
	Price20To30K  = grid.Price20To30K
	PriceOver30K  = grid.PriceOver30K
)

// Locality exports the slug locality value.
type Locality = seo.Locality

// Logger exports the logging contract accepted across the toolchain.
type Logger = interfaces.Logger

// LoggerProvider exports the named logger factory contract.
type LoggerProvider = interfaces.LoggerProvider

// GeneratePagesCommand exports the page generation command message.
type GeneratePagesCommand = vdpcmd.GeneratePagesCommand

// ExportInventoryCommand exports the inventory export command message.
type ExportInventoryCommand = vdpcmd.ExportInventoryCommand

// ResultEnvelope exports the build outcome delivered to generate callbacks.
type ResultEnvelope = vdpcmd.ResultEnvelope

// ResultCallback exports the generate result callback signature.
type ResultCallback = vdpcmd.ResultCallback

// GeneratePagesHandler exports the page generation command handler.
type GeneratePagesHandler = vdpcmd.GeneratePagesHandler

// ExportInventoryHandler exports the inventory export command handler.
type ExportInventoryHandler = vdpcmd.ExportInventoryHandler

// NewLoggerProvider builds a go-logger backed provider from the logging section.
func NewLoggerProvider(cfg LoggingConfig) (LoggerProvider, error) {
	return gologger.NewProvider(gologger.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: cfg.AddSource,
		Focus:     cfg.Focus,
	})
}

// NewGenerator wires a page generator from the runtime configuration.
func NewGenerator(cfg Config, provider LoggerProvider) GeneratorService {
	return generator.NewService(generator.Config{
		OutputDir:     cfg.Generator.OutputDir,
		SiteURL:       strings.TrimRight(strings.TrimSpace(cfg.Site.BaseURL), "/"),
		SiteName:      cfg.Site.Name,
		Phone:         cfg.Site.Phone,
		Locality:      locality(cfg),
		UpdateSitemap: cfg.Generator.UpdateSitemap,
	}, generator.Dependencies{
		Logger: logging.GeneratorLogger(provider),
	})
}

// NewGrid wires a runtime inventory grid from the runtime configuration.
func NewGrid(cfg Config, provider LoggerProvider, opts ...grid.Option) *GridService {
	opts = append([]grid.Option{grid.WithLogger(logging.GridLogger(provider))}, opts...)
	return grid.New(grid.Config{
		InventoryURL: cfg.Grid.InventoryURL,
		SiteURL:      strings.TrimRight(strings.TrimSpace(cfg.Site.BaseURL), "/"),
		Locality:     locality(cfg),
		DisplayLimit: cfg.Grid.DisplayLimit,
	}, opts...)
}

// NewGeneratePagesHandler wires the generate command handler from the runtime configuration.
func NewGeneratePagesHandler(cfg Config, provider LoggerProvider) *GeneratePagesHandler {
	return vdpcmd.NewGeneratePagesHandler(vdpcmd.GeneratorDefaults{
		SiteName: cfg.Site.Name,
		Phone:    cfg.Site.Phone,
		Locality: locality(cfg),
		Clock:    time.Now,
	}, logging.CommandsLogger(provider))
}

// NewExportInventoryHandler wires the export command handler from the runtime configuration.
func NewExportInventoryHandler(provider LoggerProvider) *ExportInventoryHandler {
	return vdpcmd.NewExportInventoryHandler(time.Now, logging.CommandsLogger(provider))
}

func locality(cfg Config) seo.Locality {
	loc := seo.Locality{
		City:  strings.TrimSpace(cfg.Locality.City),
		State: strings.TrimSpace(cfg.Locality.State),
		Zip:   strings.TrimSpace(cfg.Locality.Zip),
	}
	if loc.City == "" && loc.State == "" && loc.Zip == "" {
		return seo.DefaultLocality()
	}
	return loc
}
