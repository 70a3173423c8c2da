package generator

import "html/template"

var pageTemplate = template.Must(template.New("vdp").Parse(pageTemplateText))

// pageTemplateText is the single embedded detail page layout. Markup is lean
// semantic HTML; site chrome and styling live with the host site's assets.
const pageTemplateText = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">

  <title>{{.FullTitle}} for Sale in {{.City}} {{.State}} {{.Zip}} | {{.SiteName}}</title>
  <meta name="description" content="{{.MetaDescription}}">
  <link rel="canonical" href="{{.PageURL}}">

  <meta property="og:type" content="website">
  <meta property="og:title" content="{{.FullTitle}} for Sale | {{.SiteName}}">
  <meta property="og:description" content="{{.FullTitle}} — {{.MileageLabel}} — {{.PriceLabel}}. Available in {{.City}}, {{.State}}.">
  <meta property="og:url" content="{{.PageURL}}">
  <meta property="og:site_name" content="{{.SiteName}}">

  <link rel="stylesheet" href="{{.AssetPrefix}}assets/site.css">
  <script type="application/ld+json">
{{.SchemaJSON}}
  </script>
</head>
<body>
  <nav class="vdp-breadcrumb">
    <a href="{{.AssetPrefix}}index.html">Home</a>
    <span>/</span>
    <a href="{{.InventoryURL}}">Inventory</a>
    <span>/</span>
    <span>{{.FullTitle}}</span>
  </nav>

  <main class="vdp">
    <header class="vdp-titlebar">
      {{if .Badge}}<span class="vdp-badge">{{.Badge}}</span>{{end}}
      <h1>{{.Title}}{{if .TrimLabel}} <span class="vdp-trim">{{.TrimLabel}}</span>{{end}}</h1>
      <p class="vdp-meta">VIN: {{if .VIN}}{{.VIN}}{{else}}—{{end}} &bull; Stock: {{.StockLabel}}</p>
      <p class="vdp-price">{{.PriceLabel}}</p>
      <p class="vdp-mileage">{{.MileageLabel}}</p>
    </header>

    <section class="vdp-media">
      {{if .Images}}
      <div class="vdp-carousel">
        {{range $i, $img := .Images}}
        <figure class="vdp-slide{{if eq $i 0}} active{{end}}">
          <img src="{{$img.Src}}" alt="{{$img.Alt}}" loading="lazy">
        </figure>
        {{end}}
      </div>
      {{else}}
      <div class="vdp-placeholder">Photo Coming Soon</div>
      {{end}}
    </section>

    <section class="vdp-actions">
      {{if .Phone}}<a class="vdp-btn" href="tel:{{.Phone}}">Call {{.Phone}}</a>{{end}}
      <a class="vdp-btn vdp-btn-primary" href="{{.FinancingURL}}">Apply for Financing</a>
      <a class="vdp-btn" href="{{.ContactURL}}">Inquiry / Schedule Test Drive</a>
    </section>

    <section class="vdp-specs">
      <dl>
        <dt>Year</dt><dd>{{.Year}}</dd>
        <dt>Make</dt><dd>{{.Make}}</dd>
        <dt>Model</dt><dd>{{.Model}}</dd>
        <dt>Trim</dt><dd>{{.Trim}}</dd>
        <dt>Mileage</dt><dd>{{.MileageSpec}}</dd>
        <dt>Transmission</dt><dd>{{.Transmission}}</dd>
        <dt>Engine</dt><dd>{{.Engine}}</dd>
        <dt>Drive</dt><dd>{{.Drivetrain}}</dd>
        <dt>Fuel</dt><dd>{{.FuelType}}</dd>
        <dt>Type</dt><dd>{{.BodyType}}</dd>
        <dt>Exterior</dt><dd>{{.ExteriorColor}}</dd>
        <dt>Interior</dt><dd>{{.InteriorColor}}</dd>
      </dl>
    </section>

    <section class="vdp-options">
      <h2>Features &amp; Options</h2>
      {{if .Features}}
      <ul>
        {{range .Features}}<li>{{.}}</li>
        {{end}}
      </ul>
      {{else}}
      <p class="vdp-muted">No options listed. Ask us for details.</p>
      {{end}}
    </section>

    <section class="vdp-description">
      <h2>Vehicle Description</h2>
      {{if .Description}}
      <p>{{.Description}}</p>
      {{else}}
      <p class="vdp-muted">Description coming soon.</p>
      {{end}}
    </section>
  </main>
</body>
</html>
`
