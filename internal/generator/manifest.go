package generator

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

const (
	manifestFileName    = ".vdp-manifest.json"
	manifestFileVersion = 1
)

// buildManifest records the pages written by the last successful run, keyed
// by deterministic vehicle UUID. Regeneration diffs against it to surface
// orphaned artifacts: pages whose vehicles left the inventory are reported,
// never deleted.
type buildManifest struct {
	Version     int                     `json:"version"`
	GeneratedAt time.Time               `json:"generated_at"`
	Pages       map[string]manifestPage `json:"pages"`
}

type manifestPage struct {
	Identifier string    `json:"identifier"`
	Route      string    `json:"route"`
	Output     string    `json:"output"`
	Checksum   string    `json:"checksum"`
	RenderedAt time.Time `json:"rendered_at"`
}

func newBuildManifest() *buildManifest {
	return &buildManifest{
		Version: manifestFileVersion,
		Pages:   map[string]manifestPage{},
	}
}

func parseManifest(data []byte) (*buildManifest, error) {
	if len(data) == 0 {
		return newBuildManifest(), nil
	}
	var manifest buildManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("generator: parse manifest: %w", err)
	}
	if manifest.Pages == nil {
		manifest.Pages = map[string]manifestPage{}
	}
	if manifest.Version == 0 {
		manifest.Version = manifestFileVersion
	}
	return &manifest, nil
}

func (m *buildManifest) marshal() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	cloned := *m
	if cloned.Version == 0 {
		cloned.Version = manifestFileVersion
	}
	return json.MarshalIndent(&cloned, "", "  ")
}

// orphans returns the routes recorded previously that the current run did
// not produce, sorted for stable reporting.
func (m *buildManifest) orphans(current *buildManifest) []string {
	if m == nil || current == nil {
		return nil
	}
	out := []string{}
	for key, page := range m.Pages {
		if _, ok := current.Pages[key]; !ok {
			out = append(out, page.Route)
		}
	}
	sort.Strings(out)
	return out
}
