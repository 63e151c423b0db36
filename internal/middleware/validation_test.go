package middleware

import (
	"errors"
	"testing"

	"github.com/yusufoz/coursehub/internal/app/models/dto"
	"github.com/yusufoz/coursehub/internal/pkg/apperrors"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestValidateStructValidCreateRequest(t *testing.T) {
	req := dto.CreateCourseRequest{
		Title:         "Introduction to Testing",
		Instructor:    "Grace Hopper",
		DurationHours: intPtr(12),
		Level:         strPtr("beginner"),
		Price:         floatPtr(0),
	}

	if err := ValidateStruct(req); err != nil {
		t.Fatalf("expected valid request, but got %v", err)
	}
}

func TestValidateStructMissingRequired(t *testing.T) {
	req := dto.CreateCourseRequest{}

	err := ValidateStruct(req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, but got %v", err)
	}

	fields := apperrors.FieldsOf(err)
	if _, ok := fields["Title"]; !ok {
		t.Fatalf("expected a Title field error, but got %v", fields)
	}
	if _, ok := fields["Instructor"]; !ok {
		t.Fatalf("expected an Instructor field error, but got %v", fields)
	}
}

func TestValidateStructRejectsBadValues(t *testing.T) {
	req := dto.CreateCourseRequest{
		Title:         "Valid",
		Instructor:    "Valid",
		DurationHours: intPtr(0),
		Level:         strPtr("expert"),
		Price:         floatPtr(-1),
	}

	err := ValidateStruct(req)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, but got %v", err)
	}

	fields := apperrors.FieldsOf(err)
	for _, field := range []string{"DurationHours", "Level", "Price"} {
		if _, ok := fields[field]; !ok {
			t.Fatalf("expected an error for %s, but got %v", field, fields)
		}
	}
}

func TestValidateStructUpdateAllowsEmptyPayload(t *testing.T) {
	if err := ValidateStruct(dto.UpdateCourseRequest{}); err != nil {
		t.Fatalf("expected empty update payload to pass, but got %v", err)
	}
}
