package generator

import (
	"encoding/xml"
	"strings"
	"time"
)

const (
	sitemapFileName   = "sitemap.xml"
	sitemapNamespace  = "http://www.sitemaps.org/schemas/sitemap/0.9"
	sitemapChangeFreq = "weekly"
	sitemapPriority   = "0.6"

	// pagePathPrefix marks the entries owned by this generator; the rewrite
	// replaces every matching entry wholesale instead of merging.
	pagePathPrefix = "/vdp/"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// rewriteSitemap removes every existing entry under the page path prefix and
// appends one fresh entry per generated URL. Entries outside the prefix are
// preserved untouched.
func rewriteSitemap(existing []byte, pageURLs []string, today time.Time) ([]byte, error) {
	var set urlset
	if err := xml.Unmarshal(existing, &set); err != nil {
		return nil, err
	}
	if strings.TrimSpace(set.Xmlns) == "" {
		set.Xmlns = sitemapNamespace
	}

	kept := make([]sitemapURL, 0, len(set.URLs)+len(pageURLs))
	for _, entry := range set.URLs {
		if strings.Contains(entry.Loc, pagePathPrefix) {
			continue
		}
		kept = append(kept, entry)
	}

	date := today.Format("2006-01-02")
	for _, url := range pageURLs {
		kept = append(kept, sitemapURL{
			Loc:        url,
			LastMod:    date,
			ChangeFreq: sitemapChangeFreq,
			Priority:   sitemapPriority,
		})
	}
	set.URLs = kept

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}
