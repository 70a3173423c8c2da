// Package seo builds the human readable slug and page path for vehicle
// detail pages. Slugs are cosmetic: they never read identity fields or the
// VIN, and collisions are legal because the identifier segment guarantees
// path uniqueness.
package seo

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-vdp/inventory"
)

// Locality carries the dealership location tokens appended to every slug.
// Injected through configuration rather than hardcoded in the algorithm.
type Locality struct {
	City  string
	State string
	Zip   string
}

// DefaultLocality returns the dealership's fixed location.
func DefaultLocality() Locality {
	return Locality{City: "Greenville", State: "NC", Zip: "27858"}
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// SlugTail builds the SEO path suffix: ordered descriptive parts, each with
// runs of non-alphanumerics collapsed to single hyphens, empties dropped,
// joined with hyphens. Case is preserved by contract so generated URLs read
// like "Used-2020-Ford-F-150-XLT-for-sale-in-Greenville-NC-27858".
func SlugTail(v inventory.Vehicle, loc Locality) string {
	parts := []string{
		"Used",
		v.Year.Trimmed(),
		strings.TrimSpace(v.Make),
		strings.TrimSpace(v.Model),
		strings.TrimSpace(v.Trim),
		fmt.Sprintf("for-sale-in-%s-%s-%s", loc.City, loc.State, loc.Zip),
	}

	clean := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		part = strings.Trim(nonAlphanumeric.ReplaceAllString(part, "-"), "-")
		if part != "" {
			clean = append(clean, part)
		}
	}
	return strings.Join(clean, "-")
}

// PagePath composes the relative page path with its trailing slash. An empty
// slug degrades to the identifier-only directory rather than a double slash.
func PagePath(identifier, slug string) string {
	if slug == "" {
		return "vdp/" + identifier + "/"
	}
	return "vdp/" + identifier + "/" + slug + "/"
}

// PageURL joins the configured site URL with the relative page path. The
// generator and the grid renderer must agree on this byte for byte.
func PageURL(siteURL, identifier, slug string) string {
	return strings.TrimRight(strings.TrimSpace(siteURL), "/") + "/" + PagePath(identifier, slug)
}
