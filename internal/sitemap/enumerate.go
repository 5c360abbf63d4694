package sitemap

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/Pepryan/siteforge/internal/config"
	"github.com/Pepryan/siteforge/internal/content"
	"github.com/Pepryan/siteforge/internal/series"
)

// Enumerator walks enabled static routes, published posts, distinct tags,
// and aggregated series to produce the flat sitemap URL list. It is a pure
// read over the content store; the store is reloaded by the caller per
// generation, never cached here.
type Enumerator struct {
	cfg *config.Config
}

// NewEnumerator creates an enumerator for the given configuration.
func NewEnumerator(cfg *config.Config) *Enumerator {
	return &Enumerator{cfg: cfg}
}

// URLs produces the sitemap entries in four steps: static pages, posts,
// tags, series. Output order is the insertion order of the steps; no
// cross-step sorting is applied. A failure in the series step degrades
// gracefully: it is logged and the URLs gathered so far are returned.
func (e *Enumerator) URLs(store *content.Store) []URL {
	urls := e.staticPageURLs()
	urls = append(urls, e.postURLs(store)...)
	urls = append(urls, e.tagURLs(store)...)

	seriesURLs, err := e.seriesURLs(store)
	if err != nil {
		slog.Warn("series enumeration failed, continuing with partial sitemap", "error", err)
		return urls
	}
	return append(urls, seriesURLs...)
}

func (e *Enumerator) staticPageURLs() []URL {
	pages := e.cfg.EnabledStaticPages()
	urls := make([]URL, 0, len(pages))
	for _, p := range pages {
		urls = append(urls, URL{
			Loc:        e.cfg.AbsoluteURL(p.Path),
			Changefreq: Changefreq(p.Changefreq),
			Priority:   prio(p.Priority),
		})
	}
	return urls
}

func (e *Enumerator) postURLs(store *content.Store) []URL {
	posts := store.PublishedPosts()
	urls := make([]URL, 0, len(posts))
	for _, p := range posts {
		urls = append(urls, URL{
			Loc:        e.cfg.AbsoluteURL("/blog/" + p.Slug),
			Lastmod:    tstamp(p.LastMod()),
			Changefreq: Monthly,
			Priority:   prio(0.7),
		})
	}
	return urls
}

// tagURLs emits two URL variants per distinct tag: /blog/tags/{tag} and
// /tags/{tag}. Both routes resolve on the current site (the short form
// redirects), so both are kept in the sitemap.
func (e *Enumerator) tagURLs(store *content.Store) []URL {
	tags := store.Tags()
	urls := make([]URL, 0, 2*len(tags))
	for _, tag := range tags {
		escaped := url.PathEscape(tag)
		for _, path := range []string{"/blog/tags/" + escaped, "/tags/" + escaped} {
			urls = append(urls, URL{
				Loc:        e.cfg.AbsoluteURL(path),
				Changefreq: Weekly,
				Priority:   prio(0.5),
			})
		}
	}
	return urls
}

func (e *Enumerator) seriesURLs(store *content.Store) (urls []URL, err error) {
	// Aggregation is a pure transform, but a malformed descriptor set must
	// not take down the whole sitemap; degrade to the URLs gathered so far.
	defer func() {
		if r := recover(); r != nil {
			urls, err = nil, fmt.Errorf("series aggregation panicked: %v", r)
		}
	}()

	infos := series.Aggregate(store)

	urls = append(urls, URL{
		Loc:        e.cfg.AbsoluteURL("/series"),
		Changefreq: Weekly,
		Priority:   prio(0.8),
	})
	for _, info := range infos {
		urls = append(urls, URL{
			Loc:        e.cfg.AbsoluteURL("/series/" + info.Slug),
			Lastmod:    tstamp(info.LastMod()),
			Changefreq: Weekly,
			Priority:   prio(0.7),
		})
	}
	return urls, nil
}
