package seo

import (
	"strings"
	"testing"

	"github.com/goliatone/go-vdp/inventory"
)

func TestSlugTailFullVehicle(t *testing.T) {
	v := inventory.Vehicle{
		Year:  "2020",
		Make:  "Ford",
		Model: "F-150",
		Trim:  "XLT",
	}
	got := SlugTail(v, DefaultLocality())
	want := "Used-2020-Ford-F-150-XLT-for-sale-in-Greenville-NC-27858"
	if got != want {
		t.Fatalf("slug mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestSlugTailPreservesCase(t *testing.T) {
	v := inventory.Vehicle{Year: "2021", Make: "BMW", Model: "X5"}
	got := SlugTail(v, DefaultLocality())
	if !strings.Contains(got, "BMW") || !strings.Contains(got, "X5") {
		t.Fatalf("expected case preserved, got %q", got)
	}
}

func TestSlugTailCollapsesPunctuation(t *testing.T) {
	v := inventory.Vehicle{
		Year:  "2018",
		Make:  "Mercedes-Benz",
		Model: "C 300 (Sport)",
	}
	got := SlugTail(v, Locality{City: "New Bern", State: "NC", Zip: "28560"})
	want := "Used-2018-Mercedes-Benz-C-300-Sport-for-sale-in-New-Bern-NC-28560"
	if got != want {
		t.Fatalf("slug mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestSlugTailDropsEmptyParts(t *testing.T) {
	got := SlugTail(inventory.Vehicle{Make: "Honda"}, DefaultLocality())
	want := "Used-Honda-for-sale-in-Greenville-NC-27858"
	if got != want {
		t.Fatalf("slug mismatch:\n got %q\nwant %q", got, want)
	}
	if strings.Contains(got, "--") {
		t.Fatalf("slug contains empty segment: %q", got)
	}
}

func TestPagePath(t *testing.T) {
	if got := PagePath("A1234", "Used-2020-Ford"); got != "vdp/A1234/Used-2020-Ford/" {
		t.Fatalf("unexpected page path: %q", got)
	}
}

func TestPagePathEmptySlug(t *testing.T) {
	if got := PagePath("A1234", ""); got != "vdp/A1234/" {
		t.Fatalf("empty slug must degrade to identifier directory, got %q", got)
	}
}

func TestPageURLNormalizesTrailingSlash(t *testing.T) {
	want := "https://example.com/vdp/A1234/slug/"
	if got := PageURL("https://example.com/", "A1234", "slug"); got != want {
		t.Fatalf("unexpected page url: %q", got)
	}
	if got := PageURL("https://example.com", "A1234", "slug"); got != want {
		t.Fatalf("unexpected page url without trailing slash: %q", got)
	}
}
