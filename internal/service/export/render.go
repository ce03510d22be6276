package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
)

// section is the data behind one visualization of an exported report.
type section struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Type    domain.ChartType `json:"type"`
	Dataset string           `json:"dataset"`
	Rows    []domain.Row     `json:"rows"`
}

type jsonDocument struct {
	Report         string    `json:"report"`
	ReportID       string    `json:"reportId"`
	Generated      time.Time `json:"generated"`
	Visualizations []section `json:"visualizations"`
}

// fixedColumns lead every CSV row; data fields follow in sorted order.
var fixedColumns = []string{"visualization_id", "visualization_title", "dataset"}

func render(format domain.ExportFormat, report *domain.Report, sections []section, generated time.Time) ([]byte, error) {
	switch format {
	case domain.ExportFormatCSV:
		return renderCSV(sections)
	case domain.ExportFormatJSON:
		return renderJSON(report, sections, generated)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// renderCSV writes one flat table. Each data row is tagged with its
// visualization; fields absent from a row are left empty.
func renderCSV(sections []section) ([]byte, error) {
	fields := fieldNames(sections)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(append(slices.Clone(fixedColumns), fields...)); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, s := range sections {
		for _, row := range s.Rows {
			record := make([]string, 0, len(fixedColumns)+len(fields))
			record = append(record, s.ID, s.Title, s.Dataset)
			for _, f := range fields {
				record = append(record, formatValue(row[f]))
			}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func renderJSON(report *domain.Report, sections []section, generated time.Time) ([]byte, error) {
	doc := jsonDocument{
		Report:         report.Name,
		ReportID:       report.ID,
		Generated:      generated,
		Visualizations: sections,
	}
	if doc.Visualizations == nil {
		doc.Visualizations = []section{}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return out, nil
}

func fieldNames(sections []section) []string {
	seen := make(map[string]bool)
	var fields []string
	for _, s := range sections {
		for _, row := range s.Rows {
			for k := range row {
				if !seen[k] {
					seen[k] = true
					fields = append(fields, k)
				}
			}
		}
	}
	slices.Sort(fields)
	return fields
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
