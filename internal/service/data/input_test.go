package data

import (
	"errors"
	"strings"
	"testing"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
)

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %T: %v", err, err)
	}
	out := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		out[i] = fe.Field
	}
	return out
}

func TestCreateReportInput_Validate(t *testing.T) {
	t.Parallel()

	if err := (CreateReportInput{Name: "ok", Visualizations: []domain.Visualization{lineViz()}}).Validate(); err != nil {
		t.Errorf("valid input: %v", err)
	}

	err := CreateReportInput{
		Name:           "  ",
		Description:    strings.Repeat("x", maxDescriptionLength+1),
		Visualizations: []domain.Visualization{{ID: "v", Type: domain.ChartTypeBar, Title: "t", Dataset: "d"}},
	}.Validate()
	fields := fieldsOf(t, err)
	if len(fields) < 3 || fields[0] != "name" || fields[1] != "description" || !strings.HasPrefix(fields[2], "visualizations[0]") {
		t.Errorf("fields = %v", fields)
	}
}

func TestUpdateReportInput_Validate(t *testing.T) {
	t.Parallel()

	if fields := fieldsOf(t, UpdateReportInput{}.Validate()); fields[0] != "input" {
		t.Errorf("empty update fields = %v", fields)
	}
	if err := (UpdateReportInput{IsPublished: ptr(true)}).Validate(); err != nil {
		t.Errorf("publish-only update: %v", err)
	}
	if fields := fieldsOf(t, UpdateReportInput{Name: ptr("")}.Validate()); fields[0] != "name" {
		t.Errorf("blank name fields = %v", fields)
	}
}

func TestCreateDashboardInput_Validate(t *testing.T) {
	t.Parallel()

	if err := (CreateDashboardInput{Name: "d", Reports: []string{"a"}}).Validate(); err != nil {
		t.Errorf("valid input: %v", err)
	}
	if fields := fieldsOf(t, CreateDashboardInput{Name: "d", Reports: []string{""}}.Validate()); fields[0] != "reports" {
		t.Errorf("fields = %v", fields)
	}
	if fields := fieldsOf(t, UpdateDashboardInput{}.Validate()); fields[0] != "input" {
		t.Errorf("empty update fields = %v", fields)
	}
}

func TestCreateDatasetInput_Validate(t *testing.T) {
	t.Parallel()

	if err := (CreateDatasetInput{Name: "n", Source: "s"}).Validate(); err != nil {
		t.Errorf("valid input: %v", err)
	}
	fields := fieldsOf(t, CreateDatasetInput{Status: "gone"}.Validate())
	if len(fields) != 3 || fields[0] != "name" || fields[1] != "source" || fields[2] != "status" {
		t.Errorf("fields = %v", fields)
	}
	if fields := fieldsOf(t, UpdateDatasetInput{Source: ptr(" ")}.Validate()); fields[0] != "source" {
		t.Errorf("update fields = %v", fields)
	}
}

func TestCreateWorkspaceInput_Validate(t *testing.T) {
	t.Parallel()

	if err := (CreateWorkspaceInput{Name: "Team A", Members: 0}).Validate(); err != nil {
		t.Errorf("valid input: %v", err)
	}
	if fields := fieldsOf(t, CreateWorkspaceInput{Name: "w", Members: -1}.Validate()); fields[0] != "members" {
		t.Errorf("fields = %v", fields)
	}
}

func TestCreateNotificationInput_Validate(t *testing.T) {
	t.Parallel()

	if err := (CreateNotificationInput{Title: "t", Type: domain.NotificationTypeSuccess}).Validate(); err != nil {
		t.Errorf("valid input: %v", err)
	}
	fields := fieldsOf(t, CreateNotificationInput{Type: "loud"}.Validate())
	if len(fields) != 2 || fields[0] != "title" || fields[1] != "type" {
		t.Errorf("fields = %v", fields)
	}
}
