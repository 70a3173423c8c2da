package inventory

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestBuildDocumentRequiresRecords(t *testing.T) {
	if _, err := BuildDocument(nil, time.Now()); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestBuildDocumentStampsLastUpdated(t *testing.T) {
	now := time.Date(2026, time.August, 26, 15, 30, 0, 0, time.FixedZone("EST", -5*3600))
	doc, err := BuildDocument([]Vehicle{{VehicleID: "A1234"}}, now)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}
	if doc.LastUpdated != "2026-08-26T20:30:00Z" {
		t.Fatalf("lastUpdated not UTC RFC3339: %q", doc.LastUpdated)
	}
	if len(doc.Vehicles) != 1 {
		t.Fatalf("expected 1 vehicle, got %d", len(doc.Vehicles))
	}
}

func TestNormalizeRecord(t *testing.T) {
	v := NormalizeRecord(Vehicle{
		VehicleID: "  A1234  ",
		VIN:       " 1ftew1ep0lke12345 ",
		Make:      "  Ford ",
		Status:    " SOLD ",
		Features:  StringList{" Tow Package ", "  ", "Sunroof"},
		Images:    StringList{"front.JPG", "  "},
	})

	if v.VehicleID.Trimmed() != "A1234" || v.VehicleID != "A1234" {
		t.Fatalf("identity not trimmed: %q", v.VehicleID)
	}
	if v.VIN != "1FTEW1EP0LKE12345" {
		t.Fatalf("VIN not uppercased: %q", v.VIN)
	}
	if v.Make != "Ford" {
		t.Fatalf("make not trimmed: %q", v.Make)
	}
	if v.Status != StatusSold {
		t.Fatalf("status not lowercased: %q", v.Status)
	}
	if len(v.Features) != 2 || v.Features[0] != "Tow Package" || v.Features[1] != "Sunroof" {
		t.Fatalf("features not cleaned: %v", v.Features)
	}
	if len(v.Images) != 1 {
		t.Fatalf("blank image survived: %v", v.Images)
	}
	if !strings.HasSuffix(v.Images[0], ".jpg") {
		t.Fatalf("image extension not lowercased: %q", v.Images[0])
	}
}

func TestNormalizeRecordDefaultsStatus(t *testing.T) {
	v := NormalizeRecord(Vehicle{VehicleID: "A1234"})
	if v.Status != StatusAvailable {
		t.Fatalf("empty status must default to available, got %q", v.Status)
	}
}

func TestEncodeRoundTrips(t *testing.T) {
	doc, err := BuildDocument([]Vehicle{{
		VehicleID: "A1234",
		Year:      "2020",
		Price:     "28500",
		Make:      "Ford",
	}}, time.Now())
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}

	data, err := Encode(doc, true)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(string(data), `"price": 28500`) {
		t.Fatalf("numeric price should marshal bare:\n%s", data)
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("exported document failed inventory validation: %v", err)
	}
	if parsed.Vehicles[0].Price.Trimmed() != "28500" {
		t.Fatalf("price did not survive the round trip: %q", parsed.Vehicles[0].Price)
	}
}

func TestEncodeCompact(t *testing.T) {
	doc := Document{Vehicles: []Vehicle{{VehicleID: "A1234"}}}
	data, err := Encode(doc, false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var check map[string]any
	if err := json.Unmarshal(data, &check); err != nil {
		t.Fatalf("compact output is not valid JSON: %v", err)
	}
	if strings.Contains(string(data), "\n") {
		t.Fatalf("compact output should be single line:\n%s", data)
	}
}
