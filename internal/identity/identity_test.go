package identity

import (
	"strings"
	"testing"

	"github.com/goliatone/go-vdp/inventory"
)

func TestVehicleIDPriorityOrder(t *testing.T) {
	v := inventory.Vehicle{
		VehicleID:   "A1234",
		StockNumber: "ST-10",
		ID:          "99",
	}
	if got := VehicleID(v); got != "A1234" {
		t.Fatalf("expected vehicleId to win, got %q", got)
	}

	v.VehicleID = ""
	if got := VehicleID(v); got != "ST10" {
		t.Fatalf("expected sanitized stockNumber, got %q", got)
	}

	v.StockNumber = ""
	if got := VehicleID(v); got != "99" {
		t.Fatalf("expected id fallback, got %q", got)
	}
}

func TestVehicleIDSanitizesIdentity(t *testing.T) {
	v := inventory.Vehicle{VehicleID: "  ST-10 45 "}
	if got := VehicleID(v); got != "ST1045" {
		t.Fatalf("expected punctuation and spaces stripped, got %q", got)
	}
}

func TestVehicleIDDigestWhenSanitizeEmpties(t *testing.T) {
	v := inventory.Vehicle{VehicleID: "!!!", VIN: "1FTEW1EP0LKE12345"}
	got := VehicleID(v)
	if len(got) != 11 || !strings.HasPrefix(got, "v") {
		t.Fatalf("expected 11 char digest identifier, got %q", got)
	}
	// The raw identity value seeds the digest; the VIN stays out of it.
	if got != VehicleID(inventory.Vehicle{VehicleID: "!!!"}) {
		t.Fatalf("digest must depend only on the raw identity value")
	}
}

func TestVehicleIDVINFallback(t *testing.T) {
	v := inventory.Vehicle{VIN: "1FTEW1EP0LKE12345"}
	if got := VehicleID(v); got != "v7e9f1c4249" {
		t.Fatalf("unexpected VIN digest: %q", got)
	}
}

func TestVehicleIDFieldSeedFallback(t *testing.T) {
	v := inventory.Vehicle{
		Year:    "2020",
		Make:    "Ford",
		Model:   "F-150",
		Trim:    "XLT",
		Price:   "28500",
		Mileage: "45000",
	}
	if got := VehicleID(v); got != "vbb35deeee9" {
		t.Fatalf("unexpected field seed digest: %q", got)
	}
}

func TestVehicleIDSkipsEmptySeedFields(t *testing.T) {
	// Empty fields are dropped before joining, so sparse records still yield
	// a stable seed: "2019|Toyota".
	v := inventory.Vehicle{Year: "2019", Make: "Toyota"}
	if got := VehicleID(v); got != "v249441b8ea" {
		t.Fatalf("unexpected sparse seed digest: %q", got)
	}
}

func TestVehicleIDEmptyRecordSentinel(t *testing.T) {
	if got := VehicleID(inventory.Vehicle{}); got != "v3feda0153e" {
		t.Fatalf("unexpected sentinel digest: %q", got)
	}
}

func TestVehicleIDNeverExposesVIN(t *testing.T) {
	vin := "1FTEW1EP0LKE12345"
	for _, v := range []inventory.Vehicle{
		{VIN: vin},
		{VehicleID: "A1234", VIN: vin},
		{Year: "2020", Make: "Ford", VIN: vin},
	} {
		if got := VehicleID(v); strings.Contains(got, vin) {
			t.Fatalf("identifier %q leaks the VIN", got)
		}
	}
}

func TestVehicleIDDeterministic(t *testing.T) {
	v := inventory.Vehicle{Year: "2020", Make: "Ford", Model: "F-150"}
	first := VehicleID(v)
	for i := 0; i < 10; i++ {
		if got := VehicleID(v); got != first {
			t.Fatalf("identifier changed between runs: %q vs %q", first, got)
		}
	}
}

func TestVehicleUUIDStable(t *testing.T) {
	v := inventory.Vehicle{VehicleID: "A1234"}
	first := VehicleUUID(v)
	second := VehicleUUID(v)
	if first != second {
		t.Fatalf("vehicle UUID not stable: %s vs %s", first, second)
	}
	other := VehicleUUID(inventory.Vehicle{VehicleID: "B5678"})
	if first == other {
		t.Fatalf("distinct identifiers produced the same UUID")
	}
}
