package identity

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"

	"github.com/goliatone/go-vdp/inventory"
)

// sentinelSeed feeds the digest when a record carries no identity and no
// descriptive fields at all. Fixed so the resulting identifier is
// reproducible across implementations.
const sentinelSeed = "NA"

// VehicleID derives the stable, URL safe, non sensitive identifier for a
// vehicle record. Identity fields are tried in priority order and used
// verbatim after sanitization; records without one fall back to a digest of
// the VIN or of the remaining descriptive fields. The VIN itself never
// appears in the output.
//
// The function is pure: a fixed record always yields the same identifier, in
// every surface that links to the generated page.
func VehicleID(v inventory.Vehicle) string {
	for _, raw := range []string{v.VehicleID.Trimmed(), v.StockNumber.Trimmed(), v.ID.Trimmed()} {
		if raw == "" {
			continue
		}
		if id := sanitize(raw); id != "" {
			return id
		}
		// Sanitization stripped every character. Re-enter the digest path
		// with the raw value as seed rather than emit an empty identifier.
		return digest(raw)
	}
	return digest(fallbackSeed(v))
}

// VehicleUUID derives a deterministic UUID for manifest bookkeeping, keyed by
// the public identifier. Prefixed by domain to prevent cross-entity
// collisions.
func VehicleUUID(v inventory.Vehicle) uuid.UUID {
	return UUID("go-vdp:vehicle:" + VehicleID(v))
}

// UUID derives a deterministic UUID from a stable key using go-hashid.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// fallbackSeed prefers the VIN (allowed as digest input, never shown), then
// joins the descriptive fields with a fixed delimiter, skipping empties.
func fallbackSeed(v inventory.Vehicle) string {
	if vin := strings.TrimSpace(v.VIN); vin != "" {
		return vin
	}
	fields := []string{
		v.Year.Trimmed(),
		strings.TrimSpace(v.Make),
		strings.TrimSpace(v.Model),
		strings.TrimSpace(v.Trim),
		v.Price.Trimmed(),
		v.Mileage.Trimmed(),
		strings.TrimSpace(v.DateAdded),
	}
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if field != "" {
			parts = append(parts, field)
		}
	}
	if len(parts) == 0 {
		return sentinelSeed
	}
	return strings.Join(parts, "|")
}

// digest yields "v" plus the first 10 hex characters of the seed's SHA-1,
// exactly 11 characters and always alphanumeric.
func digest(seed string) string {
	sum := sha1.Sum([]byte(seed))
	return "v" + hex.EncodeToString(sum[:])[:10]
}

// sanitize removes every character that is not an ASCII letter or digit.
func sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		}
	}
	return b.String()
}
