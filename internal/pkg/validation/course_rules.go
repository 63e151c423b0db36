// Package validation holds the pure payload checks for course records. Each
// function normalizes its input in place (trimming text, coercing blank
// optional strings to absent) and reports every violated field, so a caller
// can surface all problems at once and never forward bad data to the store.
package validation

import (
	"strings"

	"github.com/yusufoz/coursehub/internal/app/models"
	"github.com/yusufoz/coursehub/internal/app/models/dto"
	"github.com/yusufoz/coursehub/internal/pkg/helpers"
)

// FieldErrors maps field names to failure reasons.
type FieldErrors map[string]string

// Add records a failure reason for a field
func (f FieldErrors) Add(field, reason string) {
	f[field] = reason
}

// Empty reports whether no field failed
func (f FieldErrors) Empty() bool {
	return len(f) == 0
}

// NormalizeCreateCourse validates and normalizes a create payload.
func NormalizeCreateCourse(req *dto.CreateCourseRequest) FieldErrors {
	errs := FieldErrors{}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		errs.Add("title", "Title is required")
	}

	req.Instructor = strings.TrimSpace(req.Instructor)
	if req.Instructor == "" {
		errs.Add("instructor", "Instructor is required")
	}

	req.Description = helpers.NormalizeOptionalString(req.Description)
	req.Category = helpers.NormalizeOptionalString(req.Category)

	checkOptionalFields(errs, req.DurationHours, req.Level, req.Price)
	req.Level = normalizeLevel(req.Level)

	return errs
}

// NormalizeUpdateCourse validates and normalizes a partial update payload.
// Absent fields are left alone; present fields obey the same rules as create,
// and the required text fields cannot be blanked out.
func NormalizeUpdateCourse(req *dto.UpdateCourseRequest) FieldErrors {
	errs := FieldErrors{}

	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if trimmed == "" {
			errs.Add("title", "Title cannot be empty")
		}
		req.Title = &trimmed
	}

	if req.Instructor != nil {
		trimmed := strings.TrimSpace(*req.Instructor)
		if trimmed == "" {
			errs.Add("instructor", "Instructor cannot be empty")
		}
		req.Instructor = &trimmed
	}

	req.Description = helpers.NormalizeOptionalString(req.Description)
	req.Category = helpers.NormalizeOptionalString(req.Category)

	checkOptionalFields(errs, req.DurationHours, req.Level, req.Price)
	req.Level = normalizeLevel(req.Level)

	return errs
}

func checkOptionalFields(errs FieldErrors, durationHours *int, level *string, price *float64) {
	if durationHours != nil && *durationHours <= 0 {
		errs.Add("duration_hours", "Duration must be a positive number of hours")
	}

	if level != nil {
		normalized := models.CourseLevel(strings.ToLower(strings.TrimSpace(*level)))
		if normalized != "" && !normalized.Valid() {
			errs.Add("level", "Level must be one of: beginner, intermediate, advanced")
		}
	}

	if price != nil && *price < 0 {
		errs.Add("price", "Price cannot be negative")
	}
}

// normalizeLevel lowercases a level value and coerces blank to absent.
func normalizeLevel(level *string) *string {
	normalized := helpers.NormalizeOptionalString(level)
	if normalized == nil {
		return nil
	}
	lowered := strings.ToLower(*normalized)
	return &lowered
}
