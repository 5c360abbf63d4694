package content

import (
	"fmt"

	"github.com/Pepryan/siteforge/internal/errors"
)

// validate enforces the content schema. Violations are fatal: the rest of
// the pipeline assumes it never receives an invalid record.
func (s *Store) validate() error {
	slugs := make(map[string]string, len(s.Posts))
	for _, p := range s.Posts {
		if p.Meta.Title == "" {
			return errors.ValidationFailed(p.Path, "title is required")
		}
		if p.Meta.Date.IsZero() {
			return errors.ValidationFailed(p.Path, "date is required")
		}
		if prev, dup := slugs[p.Slug]; dup {
			return errors.ValidationFailed(p.Path, fmt.Sprintf("slug %q already used by %s", p.Slug, prev))
		}
		slugs[p.Slug] = p.Path

		if ref := p.Meta.Series; ref != nil {
			if ref.Slug == "" {
				return errors.ValidationFailed(p.Path, "series reference requires a slug")
			}
			if ref.Part < 1 {
				return errors.ValidationFailed(p.Path, "series part must be a 1-based integer")
			}
		}
	}

	seen := make(map[string]bool, len(s.Series))
	for i, d := range s.Series {
		subject := fmt.Sprintf("series[%d]", i)
		if d.Name == "" {
			return errors.ValidationFailed(subject, "name is required")
		}
		if d.Slug == "" {
			return errors.ValidationFailed(subject, "slug is required")
		}
		if seen[d.Slug] {
			return errors.ValidationFailed(subject, fmt.Sprintf("duplicate series slug %q", d.Slug))
		}
		seen[d.Slug] = true

		switch d.Status {
		case SeriesOngoing, SeriesCompleted, SeriesPlanned:
		default:
			return errors.ValidationFailed(subject, fmt.Sprintf("unknown status %q", d.Status))
		}
		if d.EstimatedParts != nil && *d.EstimatedParts < 1 {
			return errors.ValidationFailed(subject, "estimated_parts must be positive")
		}
	}
	return nil
}
