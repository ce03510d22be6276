package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// Row is one record of the sample corpus, keyed by field name.
type Row map[string]any

// QueryFilter narrows a sample dataset. Empty values are not applied.
type QueryFilter struct {
	Category  string     `json:"category,omitempty"`
	Region    string     `json:"region,omitempty"`
	// DateRange is accepted in any JSON shape and not applied to the sample
	// corpus.
	DateRange json.RawMessage `json:"dateRange,omitempty"`
}

// HasDateRange reports whether a non-null dateRange was supplied.
func (f QueryFilter) HasDateRange() bool {
	raw := bytes.TrimSpace(f.DateRange)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// Matches reports whether the row satisfies every equality filter.
func (f QueryFilter) Matches(row Row) bool {
	if f.Category != "" && row["category"] != f.Category {
		return false
	}
	if f.Region != "" && row["region"] != f.Region {
		return false
	}
	return true
}

// SampleDatasetInfo describes one dataset of the built-in sample corpus.
type SampleDatasetInfo struct {
	Name   string   `json:"name"`
	Rows   int      `json:"rows"`
	Fields []string `json:"fields"`
}

// Summary aggregates a numeric field over query results.
type Summary struct {
	Dataset string  `json:"dataset"`
	Field   string  `json:"field"`
	Count   int     `json:"count"`
	Sum     float64 `json:"sum"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// ExportResult describes an export artifact stored in the blob store.
type ExportResult struct {
	ID       string       `json:"id"`
	ReportID string       `json:"reportId"`
	Format   ExportFormat `json:"format"`
	Key      string       `json:"key"`
	URL      string       `json:"url"`
	Size     int64        `json:"size"`
	Created  time.Time    `json:"created"`
}
