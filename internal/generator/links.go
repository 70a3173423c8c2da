package generator

import (
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-vdp/inventory"
)

const (
	linkGroup         = "site"
	routeFinancing    = "financing"
	routeContact      = "contact"
	financingFragment = "#applications"
	contactFragment   = "#appointment"
	queryParamVehicle = "vehicle"
	queryParamVIN     = "vin"
	queryParamPrice   = "price"
)

// linkBuilder produces the outbound financing and contact URLs. The vehicle
// label and VIN travel as URL encoded query parameters only, never as path
// segments, so the excluded contact/financing pages can prefill their forms.
type linkBuilder struct {
	manager *urlkit.RouteManager
}

func newLinkBuilder(siteURL string) *linkBuilder {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    linkGroup,
				BaseURL: strings.TrimRight(strings.TrimSpace(siteURL), "/"),
				Paths: map[string]string{
					routeFinancing: "/financing.html",
					routeContact:   "/contact.html",
				},
			},
		},
	})
	return &linkBuilder{manager: manager}
}

// FinancingURL carries vehicle, vin, and price for application prefill.
func (b *linkBuilder) FinancingURL(v inventory.Vehicle) (string, error) {
	builder := b.manager.Group(linkGroup).Builder(routeFinancing)
	builder.WithQuery(queryParamVehicle, v.FullTitle())
	builder.WithQuery(queryParamVIN, strings.TrimSpace(v.VIN))
	if price := v.Price.Trimmed(); price != "" {
		builder.WithQuery(queryParamPrice, price)
	}
	url, err := builder.Build()
	if err != nil {
		return "", err
	}
	return url + financingFragment, nil
}

// ContactURL carries vehicle and vin for inquiry prefill.
func (b *linkBuilder) ContactURL(v inventory.Vehicle) (string, error) {
	builder := b.manager.Group(linkGroup).Builder(routeContact)
	builder.WithQuery(queryParamVehicle, v.FullTitle())
	builder.WithQuery(queryParamVIN, strings.TrimSpace(v.VIN))
	url, err := builder.Build()
	if err != nil {
		return "", err
	}
	return url + contactFragment, nil
}
