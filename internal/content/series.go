package content

import "time"

// SeriesStatus enumerates the lifecycle states of a series descriptor
// (stringly for YAML compatibility).
type SeriesStatus string

const (
	SeriesOngoing   SeriesStatus = "ongoing"
	SeriesCompleted SeriesStatus = "completed"
	SeriesPlanned   SeriesStatus = "planned"
)

// SeriesDescriptor is one series record from the series catalog file.
// Post membership is derived at aggregation time, never stored here.
type SeriesDescriptor struct {
	Name           string       `yaml:"name"`
	Slug           string       `yaml:"slug"`
	Description    string       `yaml:"description,omitempty"`
	Status         SeriesStatus `yaml:"status"`
	Tags           []string     `yaml:"tags,omitempty"`
	Category       string       `yaml:"category,omitempty"`
	Difficulty     string       `yaml:"difficulty,omitempty"`
	EstimatedParts *int         `yaml:"estimated_parts,omitempty"`
	StartDate      *time.Time   `yaml:"start_date,omitempty"`
	EndDate        *time.Time   `yaml:"end_date,omitempty"`
	Featured       bool         `yaml:"featured,omitempty"`
	Order          *int         `yaml:"order,omitempty"`
}

// ListOrder returns the catalog ordering key. Series without an explicit
// order sort last (in scan order among themselves).
func (d *SeriesDescriptor) ListOrder() int {
	if d.Order != nil {
		return *d.Order
	}
	return 999
}
