package generator

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-vdp/internal/identity"
	"github.com/goliatone/go-vdp/internal/logging"
	"github.com/goliatone/go-vdp/internal/seo"
	"github.com/goliatone/go-vdp/inventory"
	"github.com/goliatone/go-vdp/pkg/interfaces"
)

var (
	// ErrDocumentRequired indicates the build was invoked without an inventory document.
	ErrDocumentRequired  = errors.New("generator: inventory document is required")
	ErrOutputDirRequired = errors.New("generator: output directory is required")
	ErrSiteURLRequired   = errors.New("generator: site url is required")
)

// Service describes the page generation contract: one build renders every
// vehicle in the supplied document and rewrites the sitemap.
type Service interface {
	Build(ctx context.Context, doc *inventory.Document, opts BuildOptions) (*BuildResult, error)
}

// Config captures runtime behaviour for the generator.
type Config struct {
	OutputDir     string
	SiteURL       string
	SiteName      string
	Phone         string
	Locality      seo.Locality
	UpdateSitemap bool
}

// Dependencies lists the collaborators required by the generator.
type Dependencies struct {
	Logger interfaces.Logger
	Clock  func() time.Time
}

// BuildOptions narrows the scope of a single run.
type BuildOptions struct {
	SkipSitemap bool
	DryRun      bool
}

// RenderedPage captures the output of one vehicle's page render.
type RenderedPage struct {
	UID        uuid.UUID
	Identifier string
	Slug       string
	Route      string
	Output     string
	URL        string
	Checksum   string
	Duration   time.Duration
}

// BuildResult reports aggregated build metadata.
type BuildResult struct {
	PagesBuilt     int
	URLs           []string
	Rendered       []RenderedPage
	Orphans        []string
	SitemapUpdated bool
	Duration       time.Duration
	DryRun         bool
}

// NewService wires a generator with the provided configuration and dependencies.
func NewService(cfg Config, deps Dependencies) Service {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &service{
		cfg:    cfg,
		logger: logger,
		clock:  clock,
		links:  newLinkBuilder(cfg.SiteURL),
	}
}

type service struct {
	cfg    Config
	logger interfaces.Logger
	clock  func() time.Time
	links  *linkBuilder
}

func (s *service) Build(ctx context.Context, doc *inventory.Document, opts BuildOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentRequired
	}
	if strings.TrimSpace(s.cfg.OutputDir) == "" {
		return nil, ErrOutputDirRequired
	}
	if strings.TrimSpace(s.cfg.SiteURL) == "" {
		return nil, ErrSiteURLRequired
	}

	var writer artifactWriter = newOSWriter(s.cfg.OutputDir)
	if opts.DryRun {
		writer = newDiscardWriter(s.cfg.OutputDir)
	}

	start := s.clock()
	previous := s.loadManifest(ctx, writer)
	current := newBuildManifest()
	current.GeneratedAt = start.UTC()

	result := &BuildResult{
		URLs:     make([]string, 0, len(doc.Vehicles)),
		Rendered: make([]RenderedPage, 0, len(doc.Vehicles)),
		DryRun:   opts.DryRun,
	}

	for _, vehicle := range doc.Vehicles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := s.buildPage(ctx, writer, vehicle)
		if err != nil {
			return nil, err
		}
		current.Pages[page.UID.String()] = manifestPage{
			Identifier: page.Identifier,
			Route:      page.Route,
			Output:     page.Output,
			Checksum:   page.Checksum,
			RenderedAt: start.UTC(),
		}
		result.Rendered = append(result.Rendered, page)
		result.URLs = append(result.URLs, page.URL)
		result.PagesBuilt++
	}

	result.Orphans = previous.orphans(current)
	if len(result.Orphans) > 0 {
		s.logger.Warn("generator.orphaned_pages",
			"count", len(result.Orphans),
			"routes", strings.Join(result.Orphans, ", "))
	}

	if s.cfg.UpdateSitemap && !opts.SkipSitemap {
		result.SitemapUpdated = s.updateSitemap(ctx, writer, result.URLs)
	}

	if err := s.writeManifest(ctx, writer, current); err != nil {
		return nil, err
	}

	result.Duration = s.clock().Sub(start)
	s.logger.Info("generator.build.complete",
		"pages", result.PagesBuilt,
		"sitemap_updated", result.SitemapUpdated,
		"dry_run", result.DryRun,
		"duration", result.Duration.String())
	return result, nil
}

func (s *service) buildPage(ctx context.Context, writer artifactWriter, vehicle inventory.Vehicle) (RenderedPage, error) {
	started := s.clock()

	identifier := identity.VehicleID(vehicle)
	slug := seo.SlugTail(vehicle, s.cfg.Locality)
	route := seo.PagePath(identifier, slug)
	pageURL := seo.PageURL(s.cfg.SiteURL, identifier, slug)
	output := outputPath(identifier, slug)

	pageCtx, err := buildPageContext(vehicle, s.cfg, pageURL, output, s.links)
	if err != nil {
		return RenderedPage{}, err
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, pageCtx); err != nil {
		return RenderedPage{}, fmt.Errorf("generator: render %s: %w", route, err)
	}

	if err := writer.WriteFile(ctx, writeFileRequest{
		Path:     output,
		Content:  buf.Bytes(),
		Category: categoryPage,
	}); err != nil {
		return RenderedPage{}, fmt.Errorf("generator: write %s: %w", output, err)
	}

	sum := sha256.Sum256(buf.Bytes())
	page := RenderedPage{
		UID:        identity.VehicleUUID(vehicle),
		Identifier: identifier,
		Slug:       slug,
		Route:      route,
		Output:     output,
		URL:        pageURL,
		Checksum:   hex.EncodeToString(sum[:]),
		Duration:   s.clock().Sub(started),
	}
	s.logger.Debug("generator.page.written", "route", route, "output", output)
	return page, nil
}

// loadManifest is best effort: a missing or corrupt manifest only disables
// orphan reporting for this run.
func (s *service) loadManifest(ctx context.Context, writer artifactWriter) *buildManifest {
	data, ok, err := writer.ReadFile(ctx, manifestFileName)
	if err != nil || !ok {
		if err != nil {
			s.logger.Warn("generator.manifest.read_failed", "error", err)
		}
		return newBuildManifest()
	}
	manifest, err := parseManifest(data)
	if err != nil {
		s.logger.Warn("generator.manifest.parse_failed", "error", err)
		return newBuildManifest()
	}
	return manifest
}

func (s *service) writeManifest(ctx context.Context, writer artifactWriter, manifest *buildManifest) error {
	data, err := manifest.marshal()
	if err != nil {
		return fmt.Errorf("generator: marshal manifest: %w", err)
	}
	if err := writer.WriteFile(ctx, writeFileRequest{
		Path:     manifestFileName,
		Content:  data,
		Category: categoryManifest,
	}); err != nil {
		return fmt.Errorf("generator: write manifest: %w", err)
	}
	return nil
}

// updateSitemap is best effort by contract: a missing sitemap skips the step
// silently and a parse failure downgrades to a warning. The run succeeds
// either way.
func (s *service) updateSitemap(ctx context.Context, writer artifactWriter, urls []string) bool {
	data, ok, err := writer.ReadFile(ctx, sitemapFileName)
	if err != nil {
		s.logger.Warn("generator.sitemap.read_failed", "error", err)
		return false
	}
	if !ok {
		s.logger.Debug("generator.sitemap.absent", "path", sitemapFileName)
		return false
	}

	rewritten, err := rewriteSitemap(data, urls, s.clock())
	if err != nil {
		s.logger.Warn("generator.sitemap.parse_failed", "error", err)
		return false
	}

	if err := writer.WriteFile(ctx, writeFileRequest{
		Path:     sitemapFileName,
		Content:  rewritten,
		Category: categorySitemap,
	}); err != nil {
		s.logger.Warn("generator.sitemap.write_failed", "error", err)
		return false
	}
	return true
}
