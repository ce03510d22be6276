package data

import (
	"errors"
	"strings"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 2000
)

// CreateReportInput holds the fields of a new report.
type CreateReportInput struct {
	Name           string
	Description    string
	Owner          string
	Workspace      string
	IsPublished    bool
	Visualizations []domain.Visualization
}

// Validate checks all fields and collects all errors.
func (i CreateReportInput) Validate() error {
	var errs []domain.FieldError
	errs = checkName(errs, "name", i.Name)
	errs = checkDescription(errs, i.Description)
	errs = append(errs, visualizationErrors(i.Visualizations)...)
	return domain.ValidationErrorOf(errs)
}

// UpdateReportInput holds a partial report update. nil = don't change.
type UpdateReportInput struct {
	Name           *string
	Description    *string
	Owner          *string
	Workspace      *string
	IsPublished    *bool
	Visualizations *[]domain.Visualization
}

func (i UpdateReportInput) empty() bool {
	return i.Name == nil && i.Description == nil && i.Owner == nil &&
		i.Workspace == nil && i.IsPublished == nil && i.Visualizations == nil
}

// Validate checks all fields and collects all errors.
func (i UpdateReportInput) Validate() error {
	var errs []domain.FieldError
	if i.empty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = checkName(errs, "name", *i.Name)
	}
	if i.Description != nil {
		errs = checkDescription(errs, *i.Description)
	}
	if i.Visualizations != nil {
		errs = append(errs, visualizationErrors(*i.Visualizations)...)
	}
	return domain.ValidationErrorOf(errs)
}

// CreateDashboardInput holds the fields of a new dashboard.
type CreateDashboardInput struct {
	Name        string
	Description string
	Owner       string
	Workspace   string
	Reports     []string
}

// Validate checks all fields and collects all errors.
func (i CreateDashboardInput) Validate() error {
	var errs []domain.FieldError
	errs = checkName(errs, "name", i.Name)
	errs = checkDescription(errs, i.Description)
	errs = checkReportIDs(errs, i.Reports)
	return domain.ValidationErrorOf(errs)
}

// UpdateDashboardInput holds a partial dashboard update. nil = don't change.
type UpdateDashboardInput struct {
	Name        *string
	Description *string
	Owner       *string
	Workspace   *string
	Reports     *[]string
}

// Validate checks all fields and collects all errors.
func (i UpdateDashboardInput) Validate() error {
	var errs []domain.FieldError
	if i.Name == nil && i.Description == nil && i.Owner == nil && i.Workspace == nil && i.Reports == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = checkName(errs, "name", *i.Name)
	}
	if i.Description != nil {
		errs = checkDescription(errs, *i.Description)
	}
	if i.Reports != nil {
		errs = checkReportIDs(errs, *i.Reports)
	}
	return domain.ValidationErrorOf(errs)
}

// CreateDatasetInput holds the fields of a new dataset.
// An empty Status defaults to active.
type CreateDatasetInput struct {
	Name        string
	Description string
	Source      string
	Owner       string
	Size        string
	Status      domain.DatasetStatus
}

// Validate checks all fields and collects all errors.
func (i CreateDatasetInput) Validate() error {
	var errs []domain.FieldError
	errs = checkName(errs, "name", i.Name)
	errs = checkDescription(errs, i.Description)
	if strings.TrimSpace(i.Source) == "" {
		errs = append(errs, domain.FieldError{Field: "source", Message: "required"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be active, inactive or refreshing"})
	}
	return domain.ValidationErrorOf(errs)
}

// UpdateDatasetInput holds a partial dataset update. nil = don't change.
type UpdateDatasetInput struct {
	Name        *string
	Description *string
	Source      *string
	Owner       *string
	Size        *string
	Status      *domain.DatasetStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateDatasetInput) Validate() error {
	var errs []domain.FieldError
	if i.Name == nil && i.Description == nil && i.Source == nil && i.Owner == nil && i.Size == nil && i.Status == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = checkName(errs, "name", *i.Name)
	}
	if i.Description != nil {
		errs = checkDescription(errs, *i.Description)
	}
	if i.Source != nil && strings.TrimSpace(*i.Source) == "" {
		errs = append(errs, domain.FieldError{Field: "source", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be active, inactive or refreshing"})
	}
	return domain.ValidationErrorOf(errs)
}

// CreateWorkspaceInput holds the fields of a new workspace.
type CreateWorkspaceInput struct {
	Name        string
	Description string
	Members     int
	IsDefault   bool
}

// Validate checks all fields and collects all errors.
func (i CreateWorkspaceInput) Validate() error {
	var errs []domain.FieldError
	errs = checkName(errs, "name", i.Name)
	errs = checkDescription(errs, i.Description)
	if i.Members < 0 {
		errs = append(errs, domain.FieldError{Field: "members", Message: "must be >= 0"})
	}
	return domain.ValidationErrorOf(errs)
}

// CreateNotificationInput holds the fields of a new notification.
// An empty Type defaults to info.
type CreateNotificationInput struct {
	Title   string
	Message string
	Type    domain.NotificationType
}

// Validate checks all fields and collects all errors.
func (i CreateNotificationInput) Validate() error {
	var errs []domain.FieldError
	errs = checkName(errs, "title", i.Title)
	if i.Type != "" && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be info, warning, error or success"})
	}
	return domain.ValidationErrorOf(errs)
}

func checkName(errs []domain.FieldError, field, value string) []domain.FieldError {
	name := strings.TrimSpace(value)
	if name == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(name) > maxNameLength {
		return append(errs, domain.FieldError{Field: field, Message: "max 200 characters"})
	}
	return errs
}

func checkDescription(errs []domain.FieldError, value string) []domain.FieldError {
	if len(value) > maxDescriptionLength {
		return append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	return errs
}

func checkReportIDs(errs []domain.FieldError, ids []string) []domain.FieldError {
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return append(errs, domain.FieldError{Field: "reports", Message: "report ids must not be empty"})
		}
	}
	return errs
}

func visualizationErrors(vs []domain.Visualization) []domain.FieldError {
	err := domain.ValidateVisualizations(vs)
	if err == nil {
		return nil
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Errors
	}
	return []domain.FieldError{{Field: "visualizations", Message: err.Error()}}
}
