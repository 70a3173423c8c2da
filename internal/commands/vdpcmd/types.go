// Package vdpcmd exposes the toolchain's operations as validated command
// messages so hosts can run them through dispatchers, CLIs, or cron runners.
package vdpcmd

import (
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-vdp/internal/generator"
)

const (
	generatePagesMessageType   = "vdp.pages.generate"
	exportInventoryMessageType = "vdp.inventory.export"
)

// ResultCallback receives build results produced by generator operations. The callback is optional
// and is invoked synchronously from the handler when a BuildResult is available.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope captures the outcome of a generate command execution.
type ResultEnvelope struct {
	Result   *generator.BuildResult
	Metadata map[string]any
}

// GeneratePagesCommand renders a detail page for every vehicle in the
// inventory document and refreshes the sitemap.
type GeneratePagesCommand struct {
	InventoryPath  string         `json:"inventory_path"`
	OutputDir      string         `json:"output_dir"`
	SiteURL        string         `json:"site_url"`
	City           string         `json:"city,omitempty"`
	State          string         `json:"state,omitempty"`
	Zip            string         `json:"zip,omitempty"`
	SkipSitemap    bool           `json:"skip_sitemap,omitempty"`
	DryRun         bool           `json:"dry_run,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (GeneratePagesCommand) Type() string { return generatePagesMessageType }

// Validate ensures the command carries the paths and site URL a build requires.
func (m GeneratePagesCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.InventoryPath) == "" {
		errs["inventory_path"] = validation.NewError("vdp.pages.generate.inventory_required", "inventory path is required")
	}
	if strings.TrimSpace(m.OutputDir) == "" {
		errs["output_dir"] = validation.NewError("vdp.pages.generate.output_required", "output directory is required")
	}
	siteURL := strings.TrimSpace(m.SiteURL)
	if siteURL == "" {
		errs["site_url"] = validation.NewError("vdp.pages.generate.site_url_required", "site url is required")
	} else if parsed, err := url.Parse(siteURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		errs["site_url"] = validation.NewError("vdp.pages.generate.site_url_invalid", "site url must be absolute")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExportInventoryCommand normalizes admin entered vehicle records into a
// full-replacement inventory document.
type ExportInventoryCommand struct {
	RecordsPath string `json:"records_path"`
	OutputPath  string `json:"output_path"`
	Pretty      bool   `json:"pretty,omitempty"`
}

// Type implements command.Message.
func (ExportInventoryCommand) Type() string { return exportInventoryMessageType }

// Validate ensures both file paths are present.
func (m ExportInventoryCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.RecordsPath) == "" {
		errs["records_path"] = validation.NewError("vdp.inventory.export.records_required", "records path is required")
	}
	if strings.TrimSpace(m.OutputPath) == "" {
		errs["output_path"] = validation.NewError("vdp.inventory.export.output_required", "output path is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
