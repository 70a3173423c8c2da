package vdpcmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-vdp/internal/commands"
	"github.com/goliatone/go-vdp/internal/generator"
	"github.com/goliatone/go-vdp/internal/logging"
	"github.com/goliatone/go-vdp/internal/seo"
	"github.com/goliatone/go-vdp/inventory"
	"github.com/goliatone/go-vdp/pkg/interfaces"
)

// GeneratorDefaults carries the site settings shared by every generate run.
// Message fields override the locality; the rest is host configuration.
type GeneratorDefaults struct {
	SiteName string
	Phone    string
	Locality seo.Locality
	Clock    func() time.Time
}

// GeneratePagesHandler orchestrates inventory loading and page generation on
// top of the shared command handler foundation.
type GeneratePagesHandler struct {
	inner *commands.Handler[GeneratePagesCommand]
}

// NewGeneratePagesHandler constructs a handler that builds a generator service
// per execution from the message and the supplied defaults.
func NewGeneratePagesHandler(defaults GeneratorDefaults, logger interfaces.Logger, opts ...commands.HandlerOption[GeneratePagesCommand]) *GeneratePagesHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg GeneratePagesCommand) error {
		doc, err := inventory.Load(msg.InventoryPath)
		if err != nil {
			return err
		}

		locality := defaults.Locality
		if strings.TrimSpace(locality.City) == "" {
			locality = seo.DefaultLocality()
		}
		if city := strings.TrimSpace(msg.City); city != "" {
			locality.City = city
		}
		if state := strings.TrimSpace(msg.State); state != "" {
			locality.State = state
		}
		if zip := strings.TrimSpace(msg.Zip); zip != "" {
			locality.Zip = zip
		}

		service := generator.NewService(generator.Config{
			OutputDir:     msg.OutputDir,
			SiteURL:       strings.TrimRight(strings.TrimSpace(msg.SiteURL), "/"),
			SiteName:      defaults.SiteName,
			Phone:         defaults.Phone,
			Locality:      locality,
			UpdateSitemap: !msg.SkipSitemap,
		}, generator.Dependencies{
			Logger: baseLogger,
			Clock:  defaults.Clock,
		})

		result, err := service.Build(ctx, doc, generator.BuildOptions{
			SkipSitemap: msg.SkipSitemap,
			DryRun:      msg.DryRun,
		})
		if err != nil {
			return err
		}
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Result: result,
			Metadata: map[string]any{
				"operation": "generate",
				"inventory": msg.InventoryPath,
			},
		})
		return nil
	}

	handlerOpts := []commands.HandlerOption[GeneratePagesCommand]{
		commands.WithLogger[GeneratePagesCommand](baseLogger),
		commands.WithOperation[GeneratePagesCommand]("pages.generate"),
		commands.WithMessageFields(func(msg GeneratePagesCommand) map[string]any {
			fields := map[string]any{
				"inventory": msg.InventoryPath,
				"output":    msg.OutputDir,
			}
			if msg.SkipSitemap {
				fields["skip_sitemap"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[GeneratePagesCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &GeneratePagesHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[GeneratePagesCommand].
func (h *GeneratePagesHandler) Execute(ctx context.Context, msg GeneratePagesCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ErrRecordsMissing indicates the admin records file does not exist.
var ErrRecordsMissing = errors.New("vdpcmd: records file not found")

// ExportInventoryHandler converts admin entered records into the inventory
// document the generator and grid consume.
type ExportInventoryHandler struct {
	inner *commands.Handler[ExportInventoryCommand]
}

// NewExportInventoryHandler constructs the export handler.
func NewExportInventoryHandler(clock func() time.Time, logger interfaces.Logger, opts ...commands.HandlerOption[ExportInventoryCommand]) *ExportInventoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}
	if clock == nil {
		clock = time.Now
	}

	exec := func(ctx context.Context, msg ExportInventoryCommand) error {
		data, err := os.ReadFile(msg.RecordsPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrRecordsMissing, msg.RecordsPath)
			}
			return fmt.Errorf("vdpcmd: read records %s: %w", msg.RecordsPath, err)
		}

		var records []inventory.Vehicle
		if err := json.Unmarshal(data, &records); err != nil {
			return fmt.Errorf("vdpcmd: parse records %s: %w", msg.RecordsPath, err)
		}

		doc, err := inventory.BuildDocument(records, clock())
		if err != nil {
			return err
		}
		encoded, err := inventory.Encode(doc, msg.Pretty)
		if err != nil {
			return fmt.Errorf("vdpcmd: encode document: %w", err)
		}

		if dir := filepath.Dir(msg.OutputPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("vdpcmd: ensure output dir %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(msg.OutputPath, encoded, 0o644); err != nil {
			return fmt.Errorf("vdpcmd: write document %s: %w", msg.OutputPath, err)
		}

		baseLogger.Info("export.document.written",
			"output", msg.OutputPath,
			"vehicles", len(doc.Vehicles),
			"last_updated", doc.LastUpdated)
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExportInventoryCommand]{
		commands.WithLogger[ExportInventoryCommand](baseLogger),
		commands.WithOperation[ExportInventoryCommand]("inventory.export"),
		commands.WithMessageFields(func(msg ExportInventoryCommand) map[string]any {
			return map[string]any{
				"records": msg.RecordsPath,
				"output":  msg.OutputPath,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ExportInventoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExportInventoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ExportInventoryCommand].
func (h *ExportInventoryHandler) Execute(ctx context.Context, msg ExportInventoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

func invokeCallback(cb ResultCallback, envelope ResultEnvelope) {
	if cb == nil {
		return
	}
	cb(envelope)
}
