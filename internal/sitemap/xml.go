package sitemap

import (
	"strings"
	"time"
)

const urlsetNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// MarshalURLSet serializes sitemap entries into a <urlset> document.
// Optional fields are omitted when absent; all text content is escaped.
// Pure: same input, same output, no I/O.
func MarshalURLSet(urls []URL) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="` + urlsetNS + `">` + "\n")
	for _, u := range urls {
		b.WriteString("  <url>\n")
		b.WriteString("    <loc>" + escapeXML(u.Loc) + "</loc>\n")
		if u.Lastmod != nil {
			b.WriteString("    <lastmod>" + u.Lastmod.Format(time.RFC3339) + "</lastmod>\n")
		}
		if u.Changefreq != "" {
			b.WriteString("    <changefreq>" + string(u.Changefreq) + "</changefreq>\n")
		}
		if u.Priority != nil {
			b.WriteString("    <priority>" + formatPriority(*u.Priority) + "</priority>\n")
		}
		b.WriteString("  </url>\n")
	}
	b.WriteString("</urlset>\n")
	return b.String()
}

// MarshalIndex serializes a sitemap-index document referencing the given
// sitemap URLs. Lastmod is the generation time for every entry, not a
// per-sitemap timestamp.
func MarshalIndex(sitemapURLs []string, now time.Time) string {
	lastmod := now.Format(time.RFC3339)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<sitemapindex xmlns="` + urlsetNS + `">` + "\n")
	for _, loc := range sitemapURLs {
		b.WriteString("  <sitemap>\n")
		b.WriteString("    <loc>" + escapeXML(loc) + "</loc>\n")
		b.WriteString("    <lastmod>" + lastmod + "</lastmod>\n")
		b.WriteString("  </sitemap>\n")
	}
	b.WriteString("</sitemapindex>\n")
	return b.String()
}
