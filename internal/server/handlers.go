package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Pepryan/siteforge/internal/content"
	"github.com/Pepryan/siteforge/internal/feed"
	"github.com/Pepryan/siteforge/internal/sitemap"
)

const cacheControl = "public, max-age=3600"

// loadStore re-reads the full content store. Every request gets a fresh
// read; there is no caching layer or invalidation to reason about.
func (s *Server) loadStore() (*content.Store, error) {
	return content.Load(s.cfg.Content.Dir)
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	store, err := s.loadStore()
	if err != nil {
		s.recorder.ObserveGeneration("sitemap", time.Since(start), false)
		s.feedError(w, "sitemap", err)
		return
	}
	doc := sitemap.MarshalURLSet(sitemap.NewEnumerator(s.cfg).URLs(store))
	s.recorder.ObserveGeneration("sitemap", time.Since(start), true)
	writeXML(w, doc)
}

func (s *Server) handleSitemapIndex(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	// The index only references the single sitemap, but the content store is
	// still read so a broken store answers 500 instead of a stale document.
	if _, err := s.loadStore(); err != nil {
		s.recorder.ObserveGeneration("sitemap-index", time.Since(start), false)
		s.feedError(w, "sitemap", err)
		return
	}
	doc := sitemap.MarshalIndex([]string{s.cfg.AbsoluteURL("/sitemap.xml")}, time.Now())
	s.recorder.ObserveGeneration("sitemap-index", time.Since(start), true)
	writeXML(w, doc)
}

func (s *Server) handleRSS(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	store, err := s.loadStore()
	if err != nil {
		s.recorder.ObserveGeneration("rss", time.Since(start), false)
		s.feedError(w, "RSS feed", err)
		return
	}
	doc := feed.MarshalRSS(s.cfg, store, time.Now())
	s.recorder.ObserveGeneration("rss", time.Since(start), true)

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", cacheControl)
	_, _ = w.Write([]byte(doc))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// feedError answers the generation-failure contract: a plain-text 500, never
// a half-written XML body.
func (s *Server) feedError(w http.ResponseWriter, artifact string, err error) {
	slog.Error("feed generation failed", slog.String("artifact", artifact), "error", err)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte("Error generating " + artifact))
}

func writeXML(w http.ResponseWriter, doc string) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", cacheControl)
	_, _ = w.Write([]byte(doc))
}
