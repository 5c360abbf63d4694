package content

import "time"

// SeriesRef is a post's declared membership in a series. The slug is a soft
// reference resolved against series descriptors at aggregation time; posts
// never hold a direct pointer to the series.
type SeriesRef struct {
	Name  string `yaml:"name"`
	Slug  string `yaml:"slug"`
	Part  int    `yaml:"part"` // 1-based
	Total int    `yaml:"total,omitempty"`
	Order *int   `yaml:"order,omitempty"` // overrides Part for sequencing when present
}

// PostMeta is the typed frontmatter of a blog post.
type PostMeta struct {
	Title       string     `yaml:"title"`
	Date        time.Time  `yaml:"date"`
	Updated     *time.Time `yaml:"updated,omitempty"`
	Summary     string     `yaml:"summary,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Author      string     `yaml:"author,omitempty"`
	Draft       bool       `yaml:"draft,omitempty"`
	Hidden      bool       `yaml:"hidden,omitempty"`
	Tags        []string   `yaml:"tags,omitempty"`
	Series      *SeriesRef `yaml:"series,omitempty"`
	Category    string     `yaml:"category,omitempty"`
	Thumbnail   string     `yaml:"thumbnail,omitempty"`
}

// Post is one content file. Immutable for the lifetime of a build; the whole
// set is regenerated on the next load.
type Post struct {
	Slug string   // derived from the filename, stable for the content's lifetime
	Path string   // path the post was loaded from, for diagnostics
	Meta PostMeta
	Body []byte // Markdown body with frontmatter removed
}

// Published reports whether the post should appear in listings, sitemaps and
// feeds. This is the single publication predicate shared by the aggregator,
// the URL enumerator and the RSS serializer.
func (p *Post) Published() bool {
	return !p.Meta.Draft && !p.Meta.Hidden
}

// LastMod returns the post's updated timestamp, falling back to the
// publication date.
func (p *Post) LastMod() time.Time {
	if p.Meta.Updated != nil {
		return *p.Meta.Updated
	}
	return p.Meta.Date
}

// Excerpt returns the preferred short description: summary, then
// description, then empty.
func (p *Post) Excerpt() string {
	if p.Meta.Summary != "" {
		return p.Meta.Summary
	}
	return p.Meta.Description
}

// SeriesOrder returns the sequencing key within the post's series:
// the explicit order when present, otherwise the 1-based part number.
func (r *SeriesRef) SeriesOrder() int {
	if r.Order != nil {
		return *r.Order
	}
	return r.Part
}
