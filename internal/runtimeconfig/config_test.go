package runtimeconfig

import (
	"errors"
	"testing"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Site.BaseURL = "https://example.com"
	return cfg
}

func TestDefaultConfigValidatesWithBaseURL(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("default config should validate once a base URL is set: %v", err)
	}
}

func TestValidateRequiresSiteURL(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); !errors.Is(err, ErrSiteURLRequired) {
		t.Fatalf("expected ErrSiteURLRequired, got %v", err)
	}
}

func TestValidateRejectsRelativeSiteURL(t *testing.T) {
	cfg := validConfig()
	cfg.Site.BaseURL = "example.com/path"
	if err := cfg.Validate(); !errors.Is(err, ErrSiteURLInvalid) {
		t.Fatalf("expected ErrSiteURLInvalid, got %v", err)
	}
}

func TestValidateGeneratorPaths(t *testing.T) {
	cfg := validConfig()
	cfg.Generator.OutputDir = "  "
	if err := cfg.Validate(); !errors.Is(err, ErrOutputDirRequired) {
		t.Fatalf("expected ErrOutputDirRequired, got %v", err)
	}

	cfg = validConfig()
	cfg.Generator.InventoryPath = ""
	if err := cfg.Validate(); !errors.Is(err, ErrInventoryPathRequired) {
		t.Fatalf("expected ErrInventoryPathRequired, got %v", err)
	}
}

func TestValidateSkipsDisabledSections(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator.Enabled = false
	cfg.Grid.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled sections must not be validated: %v", err)
	}
}

func TestValidateGrid(t *testing.T) {
	cfg := validConfig()
	cfg.Grid.InventoryURL = ""
	if err := cfg.Validate(); !errors.Is(err, ErrGridInventoryURLRequired) {
		t.Fatalf("expected ErrGridInventoryURLRequired, got %v", err)
	}

	cfg = validConfig()
	cfg.Grid.DisplayLimit = -1
	if err := cfg.Validate(); !errors.Is(err, ErrGridDisplayLimitInvalid) {
		t.Fatalf("expected ErrGridDisplayLimitInvalid, got %v", err)
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg = validConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}
