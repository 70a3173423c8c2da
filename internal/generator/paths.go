package generator

import (
	"path"
	"strings"
)

const pageFileName = "index.html"

// outputPath maps a vehicle's identifier and slug to the artifact location
// relative to the output root. An empty slug collapses to the identifier
// directory, mirroring the route shape.
func outputPath(identifier, slug string) string {
	if slug == "" {
		return path.Join("vdp", identifier, pageFileName)
	}
	return path.Join("vdp", identifier, slug, pageFileName)
}

// assetPrefix returns the relative prefix climbing from the page document
// back to the output root, so shared assets resolve without a base URL.
func assetPrefix(output string) string {
	depth := strings.Count(output, "/")
	return strings.Repeat("../", depth)
}
