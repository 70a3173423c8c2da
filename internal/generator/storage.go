package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

type writeCategory string

const (
	categoryPage     writeCategory = "page"
	categorySitemap  writeCategory = "sitemap"
	categoryManifest writeCategory = "manifest"
)

// writeFileRequest describes a file write routed through the artifact writer.
type writeFileRequest struct {
	Path     string
	Content  []byte
	Category writeCategory
}

// artifactWriter abstracts output storage so builds can run against the
// local filesystem or a dry-run sink.
type artifactWriter interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, req writeFileRequest) error
	ReadFile(ctx context.Context, path string) ([]byte, bool, error)
}

// osWriter writes artifacts beneath a fixed output root. Directory creation
// is idempotent and existing files are unconditionally overwritten.
type osWriter struct {
	root string
}

func newOSWriter(root string) *osWriter {
	return &osWriter{root: root}
}

func (w *osWriter) EnsureDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(path) == "" || path == "." {
		return nil
	}
	return os.MkdirAll(filepath.Join(w.root, filepath.FromSlash(path)), 0o755)
}

func (w *osWriter) WriteFile(ctx context.Context, req writeFileRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(req.Path) == "" {
		return errors.New("generator: write requires path")
	}
	target := filepath.Join(w.root, filepath.FromSlash(req.Path))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, req.Content, 0o644)
}

// ReadFile reports (nil, false, nil) when the artifact does not exist so
// best-effort steps can skip silently.
func (w *osWriter) ReadFile(ctx context.Context, path string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(filepath.Join(w.root, filepath.FromSlash(path)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// discardWriter backs dry runs: reads hit the real filesystem, writes vanish.
type discardWriter struct {
	reader *osWriter
}

func newDiscardWriter(root string) *discardWriter {
	return &discardWriter{reader: newOSWriter(root)}
}

func (discardWriter) EnsureDir(context.Context, string) error { return nil }

func (discardWriter) WriteFile(context.Context, writeFileRequest) error { return nil }

func (w *discardWriter) ReadFile(ctx context.Context, path string) ([]byte, bool, error) {
	return w.reader.ReadFile(ctx, path)
}
