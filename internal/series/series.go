// Package series joins published posts to their declared series and derives
// ordering, progress, and navigation.
package series

import (
	"sort"
	"strings"
	"time"

	"github.com/Pepryan/siteforge/internal/content"
)

// Info is a series descriptor enriched with its derived post membership.
type Info struct {
	content.SeriesDescriptor

	// Posts holds the published posts declaring membership in this series,
	// sorted ascending by order ?? part. Empty membership is not an error.
	Posts []*content.Post

	TotalParts     int // estimated_parts when set, otherwise len(Posts)
	CompletedParts int // always len(Posts)
}

// LastMod returns the most recent updated-or-date timestamp across the
// series' posts. A series with no posts falls back to the current time.
func (i *Info) LastMod() time.Time {
	if len(i.Posts) == 0 {
		return time.Now()
	}
	latest := i.Posts[0].LastMod()
	for _, p := range i.Posts[1:] {
		if lm := p.LastMod(); lm.After(latest) {
			latest = lm
		}
	}
	return latest
}

// Navigation locates a post within its series.
type Navigation struct {
	Series   *Info
	Index    int // 0-based position in the sorted membership
	Previous *content.Post
	Next     *content.Post
	Progress float64 // percent, clamped to [0, 100]
}

// Aggregate resolves every series descriptor against the published post set.
// Posts are matched by the soft slug reference; membership is grouped once
// via a slug-keyed index rather than repeated scans. The result is sorted
// ascending by the descriptor order (series without one sort last, in
// catalog order among themselves).
func Aggregate(store *content.Store) []*Info {
	byid := make(map[string][]*content.Post, len(store.Series))
	for _, p := range store.PublishedPosts() {
		if ref := p.Meta.Series; ref != nil {
			byid[ref.Slug] = append(byid[ref.Slug], p)
		}
	}

	infos := make([]*Info, 0, len(store.Series))
	for _, d := range store.Series {
		posts := byid[d.Slug]
		// Stable: ties keep content scan order.
		sort.SliceStable(posts, func(a, b int) bool {
			return posts[a].Meta.Series.SeriesOrder() < posts[b].Meta.Series.SeriesOrder()
		})

		total := len(posts)
		if d.EstimatedParts != nil {
			total = *d.EstimatedParts
		}
		infos = append(infos, &Info{
			SeriesDescriptor: *d,
			Posts:            posts,
			TotalParts:       total,
			CompletedParts:   len(posts),
		})
	}

	sort.SliceStable(infos, func(a, b int) bool {
		return infos[a].ListOrder() < infos[b].ListOrder()
	})
	return infos
}

// BySlug returns the series with the given slug, or nil.
func BySlug(infos []*Info, slug string) *Info {
	for _, i := range infos {
		if i.Slug == slug {
			return i
		}
	}
	return nil
}

// Featured returns the series flagged as featured, preserving order.
func Featured(infos []*Info) []*Info {
	out := make([]*Info, 0, len(infos))
	for _, i := range infos {
		if i.Featured {
			out = append(out, i)
		}
	}
	return out
}

// ByCategory returns the series whose category matches, case-insensitively.
func ByCategory(infos []*Info, category string) []*Info {
	out := make([]*Info, 0, len(infos))
	for _, i := range infos {
		if strings.EqualFold(i.Category, category) {
			out = append(out, i)
		}
	}
	return out
}

// Search returns the series matching a case-insensitive substring query
// across name, description, and tags. OR semantics, unranked.
func Search(infos []*Info, query string) []*Info {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	out := make([]*Info, 0, len(infos))
	for _, i := range infos {
		if matchesQuery(i, q) {
			out = append(out, i)
		}
	}
	return out
}

func matchesQuery(i *Info, q string) bool {
	if strings.Contains(strings.ToLower(i.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(i.Description), q) {
		return true
	}
	for _, tag := range i.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Navigate locates post within its series and derives previous/next plus a
// progress percentage. Returns nil when the post is not part of a known
// series or not present in the aggregated membership.
func Navigate(infos []*Info, post *content.Post) *Navigation {
	if post.Meta.Series == nil {
		return nil
	}
	info := BySlug(infos, post.Meta.Series.Slug)
	if info == nil {
		return nil
	}

	idx := -1
	for n, p := range info.Posts {
		if p.Slug == post.Slug {
			idx = n
			break
		}
	}
	if idx < 0 {
		return nil
	}

	nav := &Navigation{Series: info, Index: idx}
	if idx > 0 {
		nav.Previous = info.Posts[idx-1]
	}
	if idx+1 < len(info.Posts) {
		nav.Next = info.Posts[idx+1]
	}

	total := info.TotalParts
	if total < 1 {
		total = len(info.Posts)
	}
	if total > 0 {
		nav.Progress = float64(idx+1) / float64(total) * 100
	}
	// estimated_parts can undercount actual posts; clamp the displayed
	// percentage rather than showing >100%.
	if nav.Progress > 100 {
		nav.Progress = 100
	}
	return nav
}
