package generator

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/goliatone/go-vdp/internal/format"
	"github.com/goliatone/go-vdp/inventory"
)

const specFallback = "—"

// PageContext is the data contract handed to the page template. Every value
// is precomputed so the template stays free of logic beyond loops and
// presence checks.
type PageContext struct {
	SiteName string
	Phone    string
	City     string
	State    string
	Zip      string

	PageURL      string
	AssetPrefix  string
	InventoryURL string
	FinancingURL string
	ContactURL   string

	Title      string
	TrimLabel  string
	FullTitle  string
	VIN        string
	StockLabel string
	Badge      string

	PriceLabel   string
	MileageLabel string
	MileageSpec  string

	Year          string
	Make          string
	Model         string
	Trim          string
	Transmission  string
	Engine        string
	Drivetrain    string
	FuelType      string
	BodyType      string
	ExteriorColor string
	InteriorColor string

	Description string
	Features    []string
	Images      []PageImage

	MetaDescription string
	SchemaJSON      template.JS
}

// PageImage locates one carousel photo relative to the page document.
type PageImage struct {
	Src string
	Alt string
}

func buildPageContext(v inventory.Vehicle, cfg Config, pageURL, output string, links *linkBuilder) (PageContext, error) {
	prefix := assetPrefix(output)

	financingURL, err := links.FinancingURL(v)
	if err != nil {
		return PageContext{}, fmt.Errorf("generator: financing link: %w", err)
	}
	contactURL, err := links.ContactURL(v)
	if err != nil {
		return PageContext{}, fmt.Errorf("generator: contact link: %w", err)
	}

	vin := strings.TrimSpace(v.VIN)
	stock := v.StockNumber.Trimmed()
	if stock == "" {
		stock = vin
	}

	fullTitle := v.FullTitle()
	priceLabel := format.Price(v.Price)
	mileageLabel := format.Mileage(v.Mileage)

	images := make([]PageImage, 0, len(v.Images))
	for i, name := range v.Images {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		images = append(images, PageImage{
			Src: prefix + "assets/vehicles/" + name,
			Alt: fmt.Sprintf("%s photo %d", fullTitle, i+1),
		})
	}

	schemaJSON, err := carSchemaJSON(v, cfg, pageURL)
	if err != nil {
		return PageContext{}, fmt.Errorf("generator: car schema: %w", err)
	}

	return PageContext{
		SiteName: cfg.SiteName,
		Phone:    cfg.Phone,
		City:     cfg.Locality.City,
		State:    cfg.Locality.State,
		Zip:      cfg.Locality.Zip,

		PageURL:      pageURL,
		AssetPrefix:  prefix,
		InventoryURL: prefix + "inventory.html",
		FinancingURL: financingURL,
		ContactURL:   contactURL,

		Title:      v.Title(),
		TrimLabel:  strings.TrimSpace(v.Trim),
		FullTitle:  fullTitle,
		VIN:        vin,
		StockLabel: orDash(stock),
		Badge:      strings.TrimSpace(v.Badge),

		PriceLabel:   priceLabel,
		MileageLabel: mileageLabel,
		MileageSpec:  format.MileageShort(v.Mileage),

		Year:          orDash(v.Year.Trimmed()),
		Make:          orDash(v.Make),
		Model:         orDash(v.Model),
		Trim:          orDash(v.Trim),
		Transmission:  orDash(v.Transmission),
		Engine:        orDash(v.Engine),
		Drivetrain:    orDash(v.Drivetrain),
		FuelType:      orDash(v.FuelType),
		BodyType:      orDash(v.Type),
		ExteriorColor: orDash(v.ExteriorColor),
		InteriorColor: orDash(v.InteriorColor),

		Description: strings.TrimSpace(v.Description),
		Features:    v.Features,
		Images:      images,

		MetaDescription: fmt.Sprintf("%s for sale at %s in %s, %s %s. %s, %s.",
			fullTitle, cfg.SiteName, cfg.Locality.City, cfg.Locality.State, cfg.Locality.Zip,
			mileageLabel, priceLabel),
		SchemaJSON: template.JS(schemaJSON),
	}, nil
}

// carSchemaJSON builds the schema.org Car JSON-LD block. The VIN appears
// here as metadata only; it is never part of the page location.
func carSchemaJSON(v inventory.Vehicle, cfg Config, pageURL string) (string, error) {
	description := strings.TrimSpace(v.Description)
	if description == "" {
		description = fmt.Sprintf("Used %s for sale in %s, %s %s.",
			v.FullTitle(), cfg.Locality.City, cfg.Locality.State, cfg.Locality.Zip)
	}

	schema := map[string]any{
		"@context":                    "https://schema.org",
		"@type":                       "Car",
		"name":                        v.FullTitle(),
		"url":                         pageURL,
		"description":                 description,
		"vehicleIdentificationNumber": strings.TrimSpace(v.VIN),
		"productionDate":              v.Year.Trimmed(),
		"mileageFromOdometer": map[string]any{
			"@type":    "QuantitativeValue",
			"value":    v.Mileage.Trimmed(),
			"unitCode": "SMI",
		},
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         v.Price.Trimmed(),
			"priceCurrency": "USD",
			"availability":  "https://schema.org/InStock",
			"url":           pageURL,
		},
		"seller": map[string]any{
			"@type": "AutoDealer",
			"name":  cfg.SiteName,
			"address": map[string]any{
				"@type":           "PostalAddress",
				"addressLocality": cfg.Locality.City,
				"addressRegion":   cfg.Locality.State,
				"postalCode":      cfg.Locality.Zip,
				"addressCountry":  "US",
			},
		},
	}
	if maker := strings.TrimSpace(v.Make); maker != "" {
		schema["manufacturer"] = map[string]any{"@type": "Organization", "name": maker}
	}
	if model := strings.TrimSpace(v.Model); model != "" {
		schema["model"] = model
	}

	encoded, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func orDash(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return specFallback
	}
	return value
}
