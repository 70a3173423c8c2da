package grid

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-vdp/internal/seo"
	"github.com/goliatone/go-vdp/inventory"
)

func testService(limit int) *Service {
	return New(Config{
		Locality:     seo.DefaultLocality(),
		DisplayLimit: limit,
	})
}

func testDocument() *inventory.Document {
	return &inventory.Document{Vehicles: []inventory.Vehicle{
		{
			VehicleID: "A1234",
			Year:      "2020",
			Make:      "Ford",
			Model:     "F-150",
			Trim:      "XLT",
			Type:      "Truck",
			Price:     "28500",
			Mileage:   "45000",
			Status:    inventory.StatusAvailable,
			DateAdded: "2026-08-10",
		},
		{
			VehicleID: "B5678",
			Year:      "2019",
			Make:      "Toyota",
			Model:     "Camry",
			Type:      "Sedan",
			Price:     "15000",
			DateAdded: "2026-08-20",
		},
		{
			VehicleID: "C9999",
			Year:      "2021",
			Make:      "Honda",
			Model:     "CR-V",
			Type:      "SUV",
			Price:     "9500",
			Status:    inventory.StatusSold,
			DateAdded: "2026-08-25",
		},
		{
			VehicleID: "D0001",
			Year:      "2017",
			Make:      "Chevrolet",
			Model:     "Malibu",
			Type:      "Sedan",
			Status:    inventory.StatusAvailable,
		},
	}}
}

func TestLatestFiltersAndSorts(t *testing.T) {
	cards := testService(0).Latest(testDocument())

	// The sold CR-V is hidden; the dateless Malibu sorts last.
	if len(cards) != 3 {
		t.Fatalf("expected 3 visible cards, got %d", len(cards))
	}
	wantOrder := []string{"B5678", "A1234", "D0001"}
	for i, want := range wantOrder {
		if cards[i].Identifier != want {
			t.Fatalf("position %d: got %q, want %q", i, cards[i].Identifier, want)
		}
	}
}

func TestLatestHonorsDisplayLimit(t *testing.T) {
	cards := testService(2).Latest(testDocument())
	if len(cards) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(cards))
	}
	if cards[0].Identifier != "B5678" {
		t.Fatalf("limit must apply after sorting, got %q first", cards[0].Identifier)
	}
}

func TestCardRendering(t *testing.T) {
	cards := testService(0).Latest(testDocument())
	var ford Card
	for _, card := range cards {
		if card.Identifier == "A1234" {
			ford = card
		}
	}

	if ford.Title != "2020 Ford F-150 XLT" {
		t.Fatalf("unexpected title: %q", ford.Title)
	}
	if ford.PriceLabel != "$28,500" {
		t.Fatalf("unexpected price label: %q", ford.PriceLabel)
	}
	if ford.MileageLabel != "45,000 miles" {
		t.Fatalf("unexpected mileage label: %q", ford.MileageLabel)
	}
	want := "vdp/A1234/Used-2020-Ford-F-150-XLT-for-sale-in-Greenville-NC-27858/"
	if ford.Link != want {
		t.Fatalf("card link must match the generated page path:\n got %q\nwant %q", ford.Link, want)
	}
}

func TestCardLinkAbsoluteWithSiteURL(t *testing.T) {
	svc := New(Config{
		SiteURL:  "https://example.com",
		Locality: seo.DefaultLocality(),
	})
	cards := svc.Latest(testDocument())
	for _, card := range cards {
		if card.Identifier == "A1234" {
			want := "https://example.com/vdp/A1234/Used-2020-Ford-F-150-XLT-for-sale-in-Greenville-NC-27858/"
			if card.Link != want {
				t.Fatalf("unexpected absolute link: %q", card.Link)
			}
			return
		}
	}
	t.Fatal("ford card not found")
}

func TestSearchReappliesVisibility(t *testing.T) {
	// The sold CR-V matches the query but must stay hidden.
	cards := testService(0).Search(testDocument(), Filter{Query: "Honda"})
	if len(cards) != 0 {
		t.Fatalf("sold vehicle leaked into search results: %v", cards)
	}
}

func TestSearchIgnoresDisplayLimit(t *testing.T) {
	cards := testService(1).Search(testDocument(), Filter{})
	if len(cards) != 3 {
		t.Fatalf("search must scan the full set, got %d cards", len(cards))
	}
}

func TestSearchFreeText(t *testing.T) {
	cards := testService(0).Search(testDocument(), Filter{Query: "ford f-150"})
	if len(cards) != 1 || cards[0].Identifier != "A1234" {
		t.Fatalf("unexpected free text results: %v", cards)
	}
	if got := testService(0).Search(testDocument(), Filter{Query: "FORD"}); len(got) != 1 {
		t.Fatalf("query must be case insensitive, got %v", got)
	}
}

func TestSearchByType(t *testing.T) {
	cards := testService(0).Search(testDocument(), Filter{Type: "sedan"})
	if len(cards) != 2 {
		t.Fatalf("expected 2 sedans, got %d", len(cards))
	}
}

func TestSearchPriceBuckets(t *testing.T) {
	doc := testDocument()
	cases := []struct {
		name   string
		bucket PriceBucket
		want   []string
	}{
		{"any", PriceAny, []string{"A1234", "B5678", "D0001"}},
		{"10 to 20", Price10To20K, []string{"B5678"}},
		{"20 to 30", Price20To30K, []string{"A1234"}},
		{"over 30", PriceOver30K, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cards := testService(0).Search(doc, Filter{Price: tc.bucket})
			if len(cards) != len(tc.want) {
				t.Fatalf("expected %d cards, got %d", len(tc.want), len(cards))
			}
			for i, want := range tc.want {
				if cards[i].Identifier != want {
					t.Fatalf("position %d: got %q, want %q", i, cards[i].Identifier, want)
				}
			}
		})
	}
}

func TestSearchPriceBucketBoundaries(t *testing.T) {
	doc := &inventory.Document{Vehicles: []inventory.Vehicle{
		{VehicleID: "LOW", Price: "9999"},
		{VehicleID: "EDGE", Price: "10000"},
		{VehicleID: "TOP", Price: "19999"},
		{VehicleID: "NEXT", Price: "20000"},
	}}
	svc := testService(0)

	under := svc.Search(doc, Filter{Price: PriceUnder10K})
	if len(under) != 1 || under[0].Identifier != "LOW" {
		t.Fatalf("under 10k boundary wrong: %v", under)
	}
	mid := svc.Search(doc, Filter{Price: Price10To20K})
	if len(mid) != 2 || mid[0].Identifier != "EDGE" || mid[1].Identifier != "TOP" {
		t.Fatalf("10-20k boundary wrong: %v", mid)
	}
}

func TestSearchExcludesUnpricedFromBuckets(t *testing.T) {
	// The dateless Malibu has no price: it matches Any but no range.
	cards := testService(0).Search(testDocument(), Filter{Price: PriceUnder10K})
	if len(cards) != 0 {
		t.Fatalf("unpriced vehicle leaked into a price bucket: %v", cards)
	}
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"vehicles": [{"vehicleId": "A1234", "year": 2020, "make": "Ford"}]}`))
	}))
	defer server.Close()

	svc := New(Config{InventoryURL: server.URL, Locality: seo.DefaultLocality()})
	doc, err := svc.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(doc.Vehicles) != 1 || doc.Vehicles[0].VehicleID != "A1234" {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func TestFetchSurfacesStatusErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	svc := New(Config{InventoryURL: server.URL})
	if _, err := svc.Fetch(context.Background()); !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("expected ErrFetchFailed, got %v", err)
	}
}

func TestFetchSurfacesInvalidDocuments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"lastUpdated": "2026-08-01"}`))
	}))
	defer server.Close()

	svc := New(Config{InventoryURL: server.URL})
	if _, err := svc.Fetch(context.Background()); !errors.Is(err, inventory.ErrInventoryInvalid) {
		t.Fatalf("expected ErrInventoryInvalid, got %v", err)
	}
}
