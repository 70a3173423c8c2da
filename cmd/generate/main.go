package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	vdp "github.com/goliatone/go-vdp"
)

func main() {
	if err := runGenerate(os.Args[1:]); err != nil {
		log.Fatalf("vdp generate: %v", err)
	}
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("vdp-generate", flag.ExitOnError)
	inventory := fs.String("inventory", "data/inventory.json", "Path to the inventory document")
	out := fs.String("out", "dist", "Output directory the pages are written under")
	siteURL := fs.String("site-url", "", "Absolute base URL of the published site")
	siteName := fs.String("site-name", "", "Dealership name used in titles and structured data")
	phone := fs.String("phone", "", "Dealership phone number rendered on each page")
	city := fs.String("city", "", "Locality city used in page slugs")
	state := fs.String("state", "", "Locality state used in page slugs")
	zip := fs.String("zip", "", "Locality zip used in page slugs")
	noSitemap := fs.Bool("no-update-sitemap", false, "Skip rewriting sitemap.xml")
	dryRun := fs.Bool("dry-run", false, "Render pages without writing artifacts")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "console", "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := vdp.DefaultConfig()
	cfg.Site.BaseURL = *siteURL
	if *siteName != "" {
		cfg.Site.Name = *siteName
	}
	if *phone != "" {
		cfg.Site.Phone = *phone
	}
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat
	if err := cfg.Validate(); err != nil {
		return err
	}

	provider, err := vdp.NewLoggerProvider(cfg.Logging)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	handler := vdp.NewGeneratePagesHandler(cfg, provider)
	cmd := vdp.GeneratePagesCommand{
		InventoryPath: *inventory,
		OutputDir:     *out,
		SiteURL:       *siteURL,
		City:          *city,
		State:         *state,
		Zip:           *zip,
		SkipSitemap:   *noSitemap,
		DryRun:        *dryRun,
		ResultCallback: func(envelope vdp.ResultEnvelope) {
			if envelope.Result == nil {
				return
			}
			fmt.Fprintf(os.Stdout, "generated %d pages in %s (sitemap updated: %t)\n",
				envelope.Result.PagesBuilt, envelope.Result.Duration, envelope.Result.SitemapUpdated)
		},
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute generate command: %w", err)
	}
	return nil
}
