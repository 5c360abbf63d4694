// Package build orchestrates a full static build: load the content store,
// render pages, and write the sitemap, sitemap-index, RSS, and manifest.
package build

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Pepryan/siteforge/internal/config"
	"github.com/Pepryan/siteforge/internal/content"
	"github.com/Pepryan/siteforge/internal/errors"
	"github.com/Pepryan/siteforge/internal/feed"
	"github.com/Pepryan/siteforge/internal/metrics"
	"github.com/Pepryan/siteforge/internal/series"
	"github.com/Pepryan/siteforge/internal/sitemap"
)

// Manifest records one completed build.
type Manifest struct {
	ID        string    `json:"id"`
	BuiltAt   time.Time `json:"built_at"`
	Posts     int       `json:"posts"`
	Published int       `json:"published"`
	Series    int       `json:"series"`
	Tags      int       `json:"tags"`
	URLs      int       `json:"urls"`
}

// Builder runs static builds. Each Run re-reads the content store from
// scratch; there is no incremental state between builds.
type Builder struct {
	cfg      *config.Config
	recorder metrics.Recorder
}

// New creates a builder. recorder may be nil.
func New(cfg *config.Config, recorder metrics.Recorder) *Builder {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Builder{cfg: cfg, recorder: recorder}
}

// Run performs a full build into outDir (the configured output directory
// when empty) and returns the manifest.
func (b *Builder) Run(ctx context.Context, outDir string) (*Manifest, error) {
	start := time.Now()
	manifest, err := b.run(ctx, outDir)
	b.recorder.ObserveBuildDuration(time.Since(start))
	if err != nil {
		b.recorder.IncBuildOutcome("failed")
		return nil, err
	}
	b.recorder.IncBuildOutcome("success")
	return manifest, nil
}

func (b *Builder) run(ctx context.Context, outDir string) (*Manifest, error) {
	if outDir == "" {
		outDir = b.cfg.Output.Dir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, errors.GenerateError(outDir, err)
	}

	store, err := content.Load(b.cfg.Content.Dir)
	if err != nil {
		return nil, err
	}

	infos := series.Aggregate(store)
	if err := b.renderPages(ctx, outDir, store, infos); err != nil {
		return nil, err
	}

	urls, err := b.writeFeeds(outDir, store)
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{
		ID:        uuid.NewString(),
		BuiltAt:   time.Now().UTC(),
		Posts:     len(store.Posts),
		Published: len(store.PublishedPosts()),
		Series:    len(infos),
		Tags:      len(store.Tags()),
		URLs:      urls,
	}
	if err := writeManifest(outDir, manifest); err != nil {
		return nil, err
	}

	slog.Info("build complete",
		slog.String("id", manifest.ID),
		slog.String("output", outDir),
		slog.Int("published", manifest.Published),
		slog.Int("urls", manifest.URLs))
	return manifest, nil
}

func (b *Builder) writeFeeds(outDir string, store *content.Store) (int, error) {
	now := time.Now()

	var entries []sitemap.URL
	doc := b.observe("sitemap", func() string {
		entries = sitemap.NewEnumerator(b.cfg).URLs(store)
		return sitemap.MarshalURLSet(entries)
	})
	if err := writeFile(outDir, "sitemap.xml", doc); err != nil {
		return 0, err
	}

	index := b.observe("sitemap-index", func() string {
		return sitemap.MarshalIndex([]string{b.cfg.AbsoluteURL("/sitemap.xml")}, now)
	})
	if err := writeFile(outDir, "sitemap-index.xml", index); err != nil {
		return 0, err
	}

	rss := b.observe("rss", func() string {
		return feed.MarshalRSS(b.cfg, store, now)
	})
	if err := writeFile(outDir, "rss.xml", rss); err != nil {
		return 0, err
	}

	return len(entries), nil
}

// observe wraps a pure generation step with a duration metric.
func (b *Builder) observe(artifact string, fn func() string) string {
	start := time.Now()
	out := fn()
	b.recorder.ObserveGeneration(artifact, time.Since(start), true)
	return out
}

func writeFile(outDir, name, body string) error {
	if err := os.WriteFile(filepath.Join(outDir, name), []byte(body), 0o644); err != nil {
		return errors.GenerateError(name, err)
	}
	return nil
}

func writeManifest(outDir string, m *Manifest) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.GenerateError("manifest.json", err)
	}
	return writeFile(outDir, "manifest.json", string(raw)+"\n")
}
