package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-vdp/internal/validation"
)

// Load reads and parses the inventory document at path. A missing or
// malformed document is a fatal input condition: callers must not proceed
// with a partial run.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInventoryMissing, path)
		}
		return nil, fmt.Errorf("inventory: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates raw inventory bytes against the document schema before
// decoding them into a typed Document. Validation failures enumerate every
// offending field via validation.Issues.
func Parse(data []byte) (*Document, error) {
	if err := validation.ValidateDocument(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInventoryInvalid, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInventoryInvalid, err)
	}
	return &doc, nil
}
