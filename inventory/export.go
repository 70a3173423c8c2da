package inventory

import (
	"encoding/json"
	"path"
	"strings"
	"time"

	slug "github.com/goliatone/go-slug"
)

// BuildDocument assembles a full-replacement inventory document from admin
// entered records. The previous document is never merged: the export is the
// new single source of truth, stamped with a fresh lastUpdated.
func BuildDocument(vehicles []Vehicle, now time.Time) (Document, error) {
	if len(vehicles) == 0 {
		return Document{}, ErrNoRecords
	}
	out := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, NormalizeRecord(v))
	}
	return Document{
		LastUpdated: now.UTC().Format(time.RFC3339),
		Vehicles:    out,
	}, nil
}

// NormalizeRecord trims textual fields, lowercases the status (defaulting it
// to available so downstream visibility checks are explicit), and normalizes
// image filenames. Identity fields are trimmed but otherwise kept verbatim;
// the identifier scheme consumes them as entered.
func NormalizeRecord(v Vehicle) Vehicle {
	v.VehicleID = Flex(v.VehicleID.Trimmed())
	v.StockNumber = Flex(v.StockNumber.Trimmed())
	v.ID = Flex(v.ID.Trimmed())
	v.VIN = strings.ToUpper(strings.TrimSpace(v.VIN))
	v.Year = Flex(v.Year.Trimmed())
	v.Make = strings.TrimSpace(v.Make)
	v.Model = strings.TrimSpace(v.Model)
	v.Trim = strings.TrimSpace(v.Trim)
	v.Price = Flex(v.Price.Trimmed())
	v.Mileage = Flex(v.Mileage.Trimmed())
	v.Type = strings.TrimSpace(v.Type)
	v.Description = strings.TrimSpace(v.Description)
	v.Badge = strings.TrimSpace(v.Badge)
	v.DateAdded = strings.TrimSpace(v.DateAdded)

	status := Status(strings.ToLower(strings.TrimSpace(string(v.Status))))
	if status == "" {
		status = StatusAvailable
	}
	v.Status = status

	features := make(StringList, 0, len(v.Features))
	for _, feature := range v.Features {
		if trimmed := strings.TrimSpace(feature); trimmed != "" {
			features = append(features, trimmed)
		}
	}
	if len(features) == 0 {
		features = nil
	}
	v.Features = features

	images := make(StringList, 0, len(v.Images))
	for _, image := range v.Images {
		if normalized := normalizeImageName(image); normalized != "" {
			images = append(images, normalized)
		}
	}
	if len(images) == 0 {
		images = nil
	}
	v.Images = images

	return v
}

// Encode marshals a document for download or disk, optionally indented.
func Encode(doc Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// normalizeImageName slugifies the base name of an image filename while
// preserving its extension, so admin entered names become safe asset paths.
func normalizeImageName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	normalized, err := slug.Normalize(base)
	if err != nil || normalized == "" {
		return name
	}
	return normalized + strings.ToLower(ext)
}
