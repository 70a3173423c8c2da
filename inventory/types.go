package inventory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Status enumerates the lifecycle states a vehicle record can carry. An empty
// status is treated as Available by every public rendering surface.
type Status string

const (
	StatusAvailable Status = "available"
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusSold      Status = "sold"
	StatusDisabled  Status = "disabled"
)

// Visible reports whether a record with this status appears on public
// surfaces. Unset status defaults to visible.
func (s Status) Visible() bool {
	switch Status(strings.ToLower(strings.TrimSpace(string(s)))) {
	case "", StatusAvailable:
		return true
	default:
		return false
	}
}

// Flex is a JSON scalar that tolerates strings, numbers, booleans, and null.
// Inventory documents produced by the admin tooling are loosely typed; Flex
// preserves the textual value so downstream formatting can apply its own
// fallbacks instead of failing the decode.
type Flex string

// UnmarshalJSON accepts any JSON scalar and stores its textual form.
func (f *Flex) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Flex(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = Flex(n.String())
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Flex(fmt.Sprint(v))
	return nil
}

// MarshalJSON emits a bare number when the value parses as one, otherwise a
// JSON string. Empty values marshal as null so omitempty elides them.
func (f Flex) MarshalJSON() ([]byte, error) {
	s := string(f)
	if s == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

func (f Flex) String() string { return string(f) }

// Empty reports whether the value is blank after trimming whitespace.
func (f Flex) Empty() bool { return strings.TrimSpace(string(f)) == "" }

// Trimmed returns the value with surrounding whitespace removed.
func (f Flex) Trimmed() string { return strings.TrimSpace(string(f)) }

// StringList decodes either a JSON array of scalars or a single scalar,
// coercing the latter into a one element list.
type StringList []string

// UnmarshalJSON implements the tolerant list decode.
func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if data[0] == '[' {
		var items []Flex
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, item.String())
		}
		*l = out
		return nil
	}
	var single Flex
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = StringList{single.String()}
	return nil
}

// Vehicle is the core inventory entity. Identity fields are tried in priority
// order (vehicleId, stockNumber, id) when deriving the public identifier; vin
// is metadata only and must never appear in a path.
type Vehicle struct {
	VehicleID   Flex       `json:"vehicleId,omitempty"`
	StockNumber Flex       `json:"stockNumber,omitempty"`
	ID          Flex       `json:"id,omitempty"`
	VIN         string     `json:"vin,omitempty"`
	Year        Flex       `json:"year,omitempty"`
	Make        string     `json:"make,omitempty"`
	Model       string     `json:"model,omitempty"`
	Trim        string     `json:"trim,omitempty"`
	Price       Flex       `json:"price,omitempty"`
	Mileage     Flex       `json:"mileage,omitempty"`
	Type        string     `json:"type,omitempty"`
	Description string     `json:"description,omitempty"`
	Features    StringList `json:"features,omitempty"`
	Badge       string     `json:"badge,omitempty"`
	Status      Status     `json:"status,omitempty"`
	DateAdded   string     `json:"dateAdded,omitempty"`
	Images      StringList `json:"images,omitempty"`

	ExteriorColor string `json:"exteriorColor,omitempty"`
	InteriorColor string `json:"interiorColor,omitempty"`
	Engine        string `json:"engine,omitempty"`
	Transmission  string `json:"transmission,omitempty"`
	Drivetrain    string `json:"drivetrain,omitempty"`
	FuelType      string `json:"fuelType,omitempty"`
	MPG           string `json:"mpg,omitempty"`
}

// Title returns the "year make model" heading used across pages and cards.
func (v Vehicle) Title() string {
	return strings.TrimSpace(strings.Join(compact([]string{
		v.Year.Trimmed(),
		strings.TrimSpace(v.Make),
		strings.TrimSpace(v.Model),
	}), " "))
}

// FullTitle extends Title with the trim level when present.
func (v Vehicle) FullTitle() string {
	return strings.TrimSpace(strings.Join(compact([]string{
		v.Title(),
		strings.TrimSpace(v.Trim),
	}), " "))
}

// AddedAt parses dateAdded, returning the zero time when missing or
// unparseable so records without dates sort as the oldest possible.
func (v Vehicle) AddedAt() time.Time {
	raw := strings.TrimSpace(v.DateAdded)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// Document is the inventory file's top level shape: a last-updated stamp and
// an ordered list of vehicles. It is the system's single source of truth and
// is always replaced wholesale.
type Document struct {
	LastUpdated string    `json:"lastUpdated,omitempty"`
	Vehicles    []Vehicle `json:"vehicles"`
}

func compact(values []string) []string {
	out := values[:0]
	for _, value := range values {
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}
