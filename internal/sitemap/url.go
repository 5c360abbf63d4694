// Package sitemap enumerates canonical site URLs and serializes them into
// sitemap and sitemap-index XML documents.
package sitemap

import (
	"strconv"
	"time"

	"github.com/Pepryan/siteforge/internal/xmlutil"
)

// Changefreq hints how often crawlers should revisit a URL.
type Changefreq string

const (
	Always  Changefreq = "always"
	Hourly  Changefreq = "hourly"
	Daily   Changefreq = "daily"
	Weekly  Changefreq = "weekly"
	Monthly Changefreq = "monthly"
	Yearly  Changefreq = "yearly"
	Never   Changefreq = "never"
)

// URL is one sitemap entry. Lastmod, Changefreq, and Priority are optional;
// absent fields are omitted from the serialized document.
type URL struct {
	Loc        string
	Lastmod    *time.Time
	Changefreq Changefreq
	Priority   *float64 // [0.0, 1.0], rendered to exactly one decimal place
}

func prio(v float64) *float64 { return &v }

func tstamp(t time.Time) *time.Time { return &t }

// formatPriority renders a priority to exactly one decimal place using
// round-half-to-even (0.75 renders as "0.8", 1 as "1.0").
func formatPriority(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

var escapeXML = xmlutil.Escape
