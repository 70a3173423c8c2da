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
	if err := runExport(os.Args[1:]); err != nil {
		log.Fatalf("vdp export: %v", err)
	}
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("vdp-export", flag.ExitOnError)
	records := fs.String("records", "", "Path to the admin vehicle records JSON array")
	out := fs.String("out", "data/inventory.json", "Path the inventory document is written to")
	pretty := fs.Bool("pretty", true, "Indent the exported document")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "console", "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := vdp.DefaultConfig()
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat

	provider, err := vdp.NewLoggerProvider(cfg.Logging)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	handler := vdp.NewExportInventoryHandler(provider)
	cmd := vdp.ExportInventoryCommand{
		RecordsPath: *records,
		OutputPath:  *out,
		Pretty:      *pretty,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute export command: %w", err)
	}
	fmt.Fprintf(os.Stdout, "inventory document written to %s\n", *out)
	return nil
}
