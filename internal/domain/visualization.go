package domain

import (
	"fmt"
	"strings"
)

// Visualization describes one chart of a report. Type selects the variant and
// exactly the payload matching Type must be set.
type Visualization struct {
	ID      string     `json:"id"`
	Type    ChartType  `json:"type"`
	Title   string     `json:"title"`
	Dataset string     `json:"dataset"`
	Line    *LineChart `json:"line,omitempty"`
	Bar     *BarChart  `json:"bar,omitempty"`
	Pie     *PieChart  `json:"pie,omitempty"`
}

// LineChart plots one or more numeric fields over an x axis.
type LineChart struct {
	XField  string   `json:"xField"`
	YFields []string `json:"yFields"`
	Smooth  bool     `json:"smooth,omitempty"`
}

// BarChart plots a value per category.
type BarChart struct {
	CategoryField string `json:"categoryField"`
	ValueField    string `json:"valueField"`
	Stacked       bool   `json:"stacked,omitempty"`
	Horizontal    bool   `json:"horizontal,omitempty"`
}

// PieChart splits a value across labels.
type PieChart struct {
	LabelField string `json:"labelField"`
	ValueField string `json:"valueField"`
	Donut      bool   `json:"donut,omitempty"`
}

// NewLineVisualization builds a validated line chart descriptor.
func NewLineVisualization(id, title, dataset string, cfg LineChart) (Visualization, error) {
	v := Visualization{ID: id, Type: ChartTypeLine, Title: title, Dataset: dataset, Line: &cfg}
	if err := v.Validate(); err != nil {
		return Visualization{}, err
	}
	return v, nil
}

// NewBarVisualization builds a validated bar chart descriptor.
func NewBarVisualization(id, title, dataset string, cfg BarChart) (Visualization, error) {
	v := Visualization{ID: id, Type: ChartTypeBar, Title: title, Dataset: dataset, Bar: &cfg}
	if err := v.Validate(); err != nil {
		return Visualization{}, err
	}
	return v, nil
}

// NewPieVisualization builds a validated pie chart descriptor.
func NewPieVisualization(id, title, dataset string, cfg PieChart) (Visualization, error) {
	v := Visualization{ID: id, Type: ChartTypePie, Title: title, Dataset: dataset, Pie: &cfg}
	if err := v.Validate(); err != nil {
		return Visualization{}, err
	}
	return v, nil
}

// Validate checks that the payload matches the declared chart type.
func (v Visualization) Validate() error {
	return ValidationErrorOf(v.fieldErrors(""))
}

func (v Visualization) fieldErrors(prefix string) []FieldError {
	var errs []FieldError
	field := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}

	if !v.Type.IsValid() {
		return append(errs, FieldError{Field: field("type"), Message: fmt.Sprintf("unknown chart type %q", v.Type)})
	}

	payloads := 0
	if v.Line != nil {
		payloads++
	}
	if v.Bar != nil {
		payloads++
	}
	if v.Pie != nil {
		payloads++
	}
	if payloads > 1 {
		errs = append(errs, FieldError{Field: field(v.Type.String()), Message: "only the payload matching type may be set"})
	}

	switch v.Type {
	case ChartTypeLine:
		if v.Line == nil {
			errs = append(errs, FieldError{Field: field("line"), Message: "required for line chart"})
			break
		}
		if strings.TrimSpace(v.Line.XField) == "" {
			errs = append(errs, FieldError{Field: field("line.xField"), Message: "required"})
		}
		if len(v.Line.YFields) == 0 {
			errs = append(errs, FieldError{Field: field("line.yFields"), Message: "at least one field required"})
		}
	case ChartTypeBar:
		if v.Bar == nil {
			errs = append(errs, FieldError{Field: field("bar"), Message: "required for bar chart"})
			break
		}
		if strings.TrimSpace(v.Bar.CategoryField) == "" {
			errs = append(errs, FieldError{Field: field("bar.categoryField"), Message: "required"})
		}
		if strings.TrimSpace(v.Bar.ValueField) == "" {
			errs = append(errs, FieldError{Field: field("bar.valueField"), Message: "required"})
		}
	case ChartTypePie:
		if v.Pie == nil {
			errs = append(errs, FieldError{Field: field("pie"), Message: "required for pie chart"})
			break
		}
		if strings.TrimSpace(v.Pie.LabelField) == "" {
			errs = append(errs, FieldError{Field: field("pie.labelField"), Message: "required"})
		}
		if strings.TrimSpace(v.Pie.ValueField) == "" {
			errs = append(errs, FieldError{Field: field("pie.valueField"), Message: "required"})
		}
	}

	return errs
}

// ValidateVisualizations validates every descriptor and reports field paths
// of the form visualizations[i].<field>.
func ValidateVisualizations(vs []Visualization) error {
	var errs []FieldError
	for i, v := range vs {
		errs = append(errs, v.fieldErrors(fmt.Sprintf("visualizations[%d]", i))...)
	}
	return ValidationErrorOf(errs)
}
