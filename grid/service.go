// Package grid implements the runtime inventory view: it fetches the same
// inventory document the generator consumed and renders cards whose links
// byte-match the generated page paths.
package grid

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-vdp/internal/format"
	"github.com/goliatone/go-vdp/internal/identity"
	"github.com/goliatone/go-vdp/internal/logging"
	"github.com/goliatone/go-vdp/internal/seo"
	"github.com/goliatone/go-vdp/inventory"
	"github.com/goliatone/go-vdp/pkg/interfaces"
)

// ErrFetchFailed wraps transport and status failures on the inventory fetch.
// Callers render an error state in place of the grid; there are no retries.
var ErrFetchFailed = errors.New("grid: inventory fetch failed")

// Config mirrors the generator's locality and site settings; the two must
// match for links to resolve.
type Config struct {
	InventoryURL string
	SiteURL      string
	Locality     seo.Locality
	DisplayLimit int
}

// Card is one rendered grid tile.
type Card struct {
	Identifier   string
	Title        string
	PriceLabel   string
	MileageLabel string
	Badge        string
	Image        string
	Link         string
}

// PriceBucket selects one of the four fixed price ranges.
type PriceBucket int

const (
	PriceAny PriceBucket = iota
	PriceUnder10K
	Price10To20K
	Price20To30K
	PriceOver30K
)

// Filter narrows the full vehicle set. Filtering always re-applies the
// availability rule over the source list; it is independent of the default
// most-recent view.
type Filter struct {
	Query string
	Type  string
	Price PriceBucket
}

// Option configures a Service.
type Option func(*Service)

// WithHTTPClient overrides the transport used for the inventory fetch.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		if client != nil {
			s.client = client
		}
	}
}

// WithLogger injects the grid logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Service renders inventory projections.
type Service struct {
	cfg    Config
	client *http.Client
	logger interfaces.Logger
}

// New constructs a grid service.
func New(cfg Config, opts ...Option) *Service {
	s := &Service{
		cfg:    cfg,
		client: http.DefaultClient,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch retrieves and parses the inventory document. Any failure is
// surfaced immediately; the caller decides how to render the error state.
func (s *Service) Fetch(ctx context.Context) (*inventory.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.InventoryURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	doc, err := inventory.Parse(data)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("grid.fetch.complete", "vehicles", len(doc.Vehicles))
	return doc, nil
}

// Latest renders the default view: visible vehicles sorted by dateAdded
// descending (missing dates oldest), truncated to the display limit.
func (s *Service) Latest(doc *inventory.Document) []Card {
	if doc == nil {
		return nil
	}
	visible := make([]inventory.Vehicle, 0, len(doc.Vehicles))
	for _, v := range doc.Vehicles {
		if v.Status.Visible() {
			visible = append(visible, v)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].AddedAt().After(visible[j].AddedAt())
	})
	if s.cfg.DisplayLimit > 0 && len(visible) > s.cfg.DisplayLimit {
		visible = visible[:s.cfg.DisplayLimit]
	}
	return s.cards(visible)
}

// Search projects the full source list through the filter, re-applying the
// availability rule. It never operates on an already rendered subset.
func (s *Service) Search(doc *inventory.Document, filter Filter) []Card {
	if doc == nil {
		return nil
	}
	matched := make([]inventory.Vehicle, 0, len(doc.Vehicles))
	for _, v := range doc.Vehicles {
		if !v.Status.Visible() {
			continue
		}
		if !matchesQuery(v, filter.Query) {
			continue
		}
		if !matchesType(v, filter.Type) {
			continue
		}
		if !matchesPrice(v, filter.Price) {
			continue
		}
		matched = append(matched, v)
	}
	return s.cards(matched)
}

func (s *Service) cards(vehicles []inventory.Vehicle) []Card {
	out := make([]Card, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, s.card(v))
	}
	return out
}

// card builds one tile. The link reuses the exact identifier and slug logic
// the generator ran, so the two surfaces agree byte for byte.
func (s *Service) card(v inventory.Vehicle) Card {
	identifier := identity.VehicleID(v)
	slug := seo.SlugTail(v, s.cfg.Locality)

	link := seo.PagePath(identifier, slug)
	if strings.TrimSpace(s.cfg.SiteURL) != "" {
		link = seo.PageURL(s.cfg.SiteURL, identifier, slug)
	}

	image := ""
	if len(v.Images) > 0 {
		image = strings.TrimSpace(v.Images[0])
	}

	return Card{
		Identifier:   identifier,
		Title:        v.FullTitle(),
		PriceLabel:   format.Price(v.Price),
		MileageLabel: format.Mileage(v.Mileage),
		Badge:        strings.TrimSpace(v.Badge),
		Image:        image,
		Link:         link,
	}
}

func matchesQuery(v inventory.Vehicle, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	haystack := strings.ToLower(strings.Join([]string{
		v.Year.Trimmed(),
		v.Make,
		v.Model,
		v.Trim,
		v.Type,
		v.Badge,
		v.Description,
	}, " "))
	for _, term := range strings.Fields(query) {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

func matchesType(v inventory.Vehicle, vehicleType string) bool {
	vehicleType = strings.TrimSpace(vehicleType)
	if vehicleType == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(v.Type), vehicleType)
}

// matchesPrice buckets are lower-inclusive, upper-exclusive. Vehicles whose
// price does not parse are excluded from every bucketed view: a "Call for
// Price" record cannot answer a price range question.
func matchesPrice(v inventory.Vehicle, bucket PriceBucket) bool {
	if bucket == PriceAny {
		return true
	}
	raw := v.Price.Trimmed()
	if raw == "" {
		return false
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return false
	}
	switch bucket {
	case PriceUnder10K:
		return price < 10000
	case Price10To20K:
		return price >= 10000 && price < 20000
	case Price20To30K:
		return price >= 20000 && price < 30000
	case PriceOver30K:
		return price >= 30000
	default:
		return true
	}
}
