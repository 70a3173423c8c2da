// Package format renders the textual fallbacks shared by the page generator
// and the grid renderer. A field that fails to parse degrades to its
// documented fallback string; it never aborts a run.
package format

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-vdp/inventory"
)

const (
	// PriceFallback is rendered when price is absent or non numeric.
	PriceFallback = "Call for Price"
	// MileageFallback is rendered when mileage is absent, zero, or non numeric.
	MileageFallback = "Mileage N/A"
)

// Price formats a price as currency with thousands separators, or the
// literal fallback when the value does not parse.
func Price(p inventory.Flex) string {
	value, ok := parseAmount(p)
	if !ok {
		return PriceFallback
	}
	return "$" + groupThousands(value)
}

// Mileage formats a mileage reading with thousands separators and a unit
// label, or the literal fallback when missing, zero, or unparseable.
func Mileage(m inventory.Flex) string {
	value, ok := parseAmount(m)
	if !ok || value == 0 {
		return MileageFallback
	}
	return groupThousands(value) + " miles"
}

// MileageShort is the compact spec-sheet variant ("45,000 mi" / "—").
func MileageShort(m inventory.Flex) string {
	value, ok := parseAmount(m)
	if !ok || value == 0 {
		return "—"
	}
	return groupThousands(value) + " mi"
}

func parseAmount(f inventory.Flex) (int64, bool) {
	raw := f.Trimmed()
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return int64(value), true
}

func groupThousands(n int64) string {
	digits := strconv.FormatInt(n, 10)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}
