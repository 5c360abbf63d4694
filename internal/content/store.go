// Package content loads and validates the file-backed content collections:
// Markdown posts with YAML frontmatter, and the YAML series catalog.
package content

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Pepryan/siteforge/internal/errors"
	"github.com/Pepryan/siteforge/internal/frontmatter"
	"github.com/Pepryan/siteforge/internal/slug"
	"github.com/Pepryan/siteforge/internal/util/sets"
)

const (
	postsDir        = "posts"
	seriesCatalogFN = "series.yaml"
)

// Store is the schema-validated content collection for one build. It is
// rebuilt wholesale on every load; nothing mutates it afterwards.
type Store struct {
	Posts  []*Post             // scan order (sorted filenames)
	Series []*SeriesDescriptor // catalog order
}

// Load scans dir for posts (<dir>/posts/*.md, *.mdx) and the series catalog
// (<dir>/series.yaml) and validates everything. Any schema violation is a
// hard stop: consumers may assume they never see an invalid record.
func Load(dir string) (*Store, error) {
	posts, err := loadPosts(filepath.Join(dir, postsDir))
	if err != nil {
		return nil, err
	}

	series, err := loadSeriesCatalog(filepath.Join(dir, seriesCatalogFN))
	if err != nil {
		return nil, err
	}

	s := &Store{Posts: posts, Series: series}
	if err := s.validate(); err != nil {
		return nil, err
	}

	slog.Debug("content store loaded",
		slog.Int("posts", len(posts)),
		slog.Int("series", len(series)))
	return s, nil
}

func loadPosts(dir string) ([]*Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.ContentLoadError(dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".md" || ext == ".mdx" {
			names = append(names, e.Name())
		}
	}
	// Deterministic scan order; ties in later sorts fall back to this.
	sort.Strings(names)

	posts := make([]*Post, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		post, err := loadPost(path, name)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func loadPost(path, name string) (*Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ContentLoadError(path, err)
	}

	fm, body, had, err := frontmatter.Split(raw)
	if err != nil {
		return nil, errors.FrontmatterError(path, err)
	}
	if !had {
		return nil, errors.ValidationFailed(path, "post has no frontmatter block")
	}

	var meta PostMeta
	if err := frontmatter.Decode(fm, &meta); err != nil {
		return nil, errors.FrontmatterError(path, err)
	}

	return &Post{
		Slug: slug.FromFilename(name),
		Path: path,
		Meta: meta,
		Body: body,
	}, nil
}

func loadSeriesCatalog(path string) ([]*SeriesDescriptor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.ContentLoadError(path, err)
	}

	var series []*SeriesDescriptor
	if err := yaml.Unmarshal(raw, &series); err != nil {
		return nil, errors.ContentLoadError(path, err)
	}
	return series, nil
}

// PublishedPosts returns the posts passing the shared publication predicate,
// in scan order.
func (s *Store) PublishedPosts() []*Post {
	out := make([]*Post, 0, len(s.Posts))
	for _, p := range s.Posts {
		if p.Published() {
			out = append(out, p)
		}
	}
	return out
}

// PostBySlug returns the post with the given slug, or nil.
func (s *Store) PostBySlug(slug string) *Post {
	for _, p := range s.Posts {
		if p.Slug == slug {
			return p
		}
	}
	return nil
}

// Tags returns the deduplicated union of tags across published posts,
// sorted for stable output.
func (s *Store) Tags() []string {
	set := sets.New[string]()
	for _, p := range s.PublishedPosts() {
		set.AddAll(p.Meta.Tags...)
	}
	tags := set.Items()
	sort.Strings(tags)
	return tags
}
