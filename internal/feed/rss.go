// Package feed serializes the published-post set into an RSS 2.0 document.
package feed

import (
	"sort"
	"strings"
	"time"

	"github.com/Pepryan/siteforge/internal/config"
	"github.com/Pepryan/siteforge/internal/content"
	"github.com/Pepryan/siteforge/internal/render"
	"github.com/Pepryan/siteforge/internal/xmlutil"
)

// MarshalRSS builds the RSS 2.0 document for the store's published posts,
// sorted by publication date descending. Channel metadata comes from the
// site configuration; now stamps the channel lastBuildDate. Pure: no I/O
// beyond string construction.
func MarshalRSS(cfg *config.Config, store *content.Store, now time.Time) string {
	posts := store.PublishedPosts()
	sort.SliceStable(posts, func(a, b int) bool {
		return posts[a].Meta.Date.After(posts[b].Meta.Date)
	})
	if cfg.Feed.Limit > 0 && len(posts) > cfg.Feed.Limit {
		posts = posts[:cfg.Feed.Limit]
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<rss version="2.0">` + "\n")
	b.WriteString("  <channel>\n")
	writeEl(&b, "    ", "title", cfg.Site.Title)
	writeEl(&b, "    ", "link", cfg.AbsoluteURL("/"))
	writeEl(&b, "    ", "description", cfg.Site.Description)
	writeEl(&b, "    ", "language", cfg.Site.Language)
	writeEl(&b, "    ", "lastBuildDate", now.Format(time.RFC1123Z))

	for _, p := range posts {
		writeItem(&b, cfg, p)
	}

	b.WriteString("  </channel>\n")
	b.WriteString("</rss>\n")
	return b.String()
}

func writeItem(b *strings.Builder, cfg *config.Config, p *content.Post) {
	link := cfg.AbsoluteURL("/blog/" + p.Slug)

	b.WriteString("    <item>\n")
	writeEl(b, "      ", "title", p.Meta.Title)
	writeEl(b, "      ", "link", link)
	writeEl(b, "      ", "guid", link)
	writeEl(b, "      ", "description", render.Description(p))
	writeEl(b, "      ", "pubDate", p.Meta.Date.Format(time.RFC1123Z))
	for _, tag := range p.Meta.Tags {
		writeEl(b, "      ", "category", tag)
	}
	if author := itemAuthor(cfg, p); author != "" {
		writeEl(b, "      ", "author", author)
	}
	if p.Meta.Updated != nil {
		// Non-standard per-item element carried over from the previous
		// feed generator; readers that understand it pick up the edit date.
		writeEl(b, "      ", "lastBuildDate", p.Meta.Updated.Format(time.RFC1123Z))
	}
	b.WriteString("    </item>\n")
}

func itemAuthor(cfg *config.Config, p *content.Post) string {
	name := p.Meta.Author
	if name == "" {
		name = cfg.Site.Author
	}
	if name == "" {
		return ""
	}
	if cfg.Site.Email != "" {
		return cfg.Site.Email + " (" + name + ")"
	}
	return name
}

// writeEl emits a single-line element with escaped text content.
func writeEl(b *strings.Builder, indent, name, text string) {
	b.WriteString(indent + "<" + name + ">" + xmlutil.Escape(text) + "</" + name + ">\n")
}
