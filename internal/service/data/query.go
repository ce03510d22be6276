package data

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/montanaflynn/stats"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
)

// QueryData returns the rows of a built-in sample dataset that match every
// non-empty equality filter, in corpus order. An unknown dataset name yields
// an empty result, not an error. DateRange is accepted but not applied.
func (s *Service) QueryData(ctx context.Context, datasetName string, filter domain.QueryFilter) ([]domain.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if filter.HasDateRange() {
		s.log.DebugContext(ctx, "dateRange filter ignored",
			slog.String("dataset", datasetName),
			slog.String("date_range", string(filter.DateRange)),
		)
	}

	ds, ok := s.sample(datasetName)
	if !ok {
		return []domain.Row{}, nil
	}

	rows := make([]domain.Row, 0, len(ds.rows))
	for _, row := range ds.rows {
		if filter.Matches(row) {
			rows = append(rows, maps.Clone(row))
		}
	}
	return rows, nil
}

// ListSampleDatasets describes the built-in sample corpus.
func (s *Service) ListSampleDatasets(_ context.Context) []domain.SampleDatasetInfo {
	out := make([]domain.SampleDatasetInfo, 0, len(s.corpus))
	for _, ds := range s.corpus {
		out = append(out, domain.SampleDatasetInfo{
			Name:   ds.name,
			Rows:   len(ds.rows),
			Fields: slices.Clone(ds.fields),
		})
	}
	return out
}

// SummarizeData aggregates a numeric field over the filtered rows of a sample
// dataset. An unknown dataset yields a zero summary.
func (s *Service) SummarizeData(ctx context.Context, datasetName string, filter domain.QueryFilter, field string) (*domain.Summary, error) {
	if field == "" {
		return nil, domain.NewValidationError("field", "required")
	}

	summary := &domain.Summary{Dataset: datasetName, Field: field}

	ds, ok := s.sample(datasetName)
	if !ok {
		return summary, nil
	}
	if !slices.Contains(ds.fields, field) {
		return nil, domain.NewValidationError("field", fmt.Sprintf("unknown field %q for dataset %q", field, datasetName))
	}
	if !ds.numeric(field) {
		return nil, domain.NewValidationError("field", fmt.Sprintf("field %q is not numeric", field))
	}

	rows, err := s.QueryData(ctx, datasetName, filter)
	if err != nil {
		return nil, err
	}

	values := make(stats.Float64Data, 0, len(rows))
	for _, row := range rows {
		if v, ok := row[field].(float64); ok {
			values = append(values, v)
		}
	}

	summary.Count = len(values)
	if len(values) == 0 {
		return summary, nil
	}

	// stats only fails on empty input, which is handled above.
	summary.Sum, _ = stats.Sum(values)
	summary.Mean, _ = stats.Mean(values)
	summary.Median, _ = stats.Median(values)
	summary.Min, _ = stats.Min(values)
	summary.Max, _ = stats.Max(values)

	return summary, nil
}

func (s *Service) sample(name string) (sampleDataset, bool) {
	for _, ds := range s.corpus {
		if ds.name == name {
			return ds, true
		}
	}
	return sampleDataset{}, false
}
