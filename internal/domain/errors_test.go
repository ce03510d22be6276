package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("name", "required")

	if got := err.Error(); got != "validation: name: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_ListsEveryField(t *testing.T) {
	t.Parallel()

	err := ValidationErrorOf([]FieldError{
		{Field: "name", Message: "required"},
		{Field: "visualizations[0].bar.valueField", Message: "required"},
	})

	want := "validation: name: required; visualizations[0].bar.valueField: required"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestValidationErrorOf_Empty(t *testing.T) {
	t.Parallel()

	if err := ValidationErrorOf(nil); err != nil {
		t.Fatalf("expected nil for no field errors, got %v", err)
	}
}

func TestValidationError_SurvivesWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("create report: %w", NewValidationError("visualizations[0]", "bar payload missing"))

	if !errors.Is(wrapped, ErrValidation) {
		t.Fatal("wrapped validation error should match ErrValidation")
	}
	var ve *ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatal("errors.As should find *ValidationError")
	}
	if ve.Errors[0].Field != "visualizations[0]" {
		t.Errorf("field: got %q", ve.Errors[0].Field)
	}
}

func TestNotFoundError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("update: %w", &NotFoundError{Entity: "dashboard", ID: "d9"})

	if !errors.Is(err, ErrNotFound) {
		t.Fatal("NotFoundError should match ErrNotFound")
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "dashboard" || nf.ID != "d9" {
		t.Fatalf("errors.As = %+v", nf)
	}
	if got := err.Error(); got != `update: dashboard "d9" not found` {
		t.Errorf("Error() = %q", got)
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	all := []error{ErrNotFound, ErrAlreadyExists, ErrValidation, ErrUnauthorized}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}
