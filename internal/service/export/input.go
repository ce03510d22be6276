package export

import (
	"strings"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
)

// ExportInput holds the parameters for exporting a report.
type ExportInput struct {
	ReportID string
	Format   domain.ExportFormat
}

// Validate checks all fields and collects all errors.
func (i ExportInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ReportID) == "" {
		errs = append(errs, domain.FieldError{Field: "report_id", Message: "required"})
	}
	if !i.Format.IsValid() {
		errs = append(errs, domain.FieldError{Field: "format", Message: "must be csv or json"})
	}

	return domain.ValidationErrorOf(errs)
}
