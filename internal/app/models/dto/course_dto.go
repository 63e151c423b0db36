package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/yusufoz/coursehub/internal/app/models"
)

// LevelFilterAll is the sentinel meaning "no level filter".
const LevelFilterAll = "all"

// CreateCourseRequest represents the request to create a course
type CreateCourseRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   *string  `json:"description" validate:"omitempty"`
	Instructor    string   `json:"instructor" validate:"required"`
	DurationHours *int     `json:"duration_hours" validate:"omitempty,gt=0"`
	Level         *string  `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Category      *string  `json:"category" validate:"omitempty"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	IsPublished   *bool    `json:"is_published" validate:"omitempty"`
}

// UpdateCourseRequest represents a partial update to a course. Every field is
// optional; absent fields keep their stored value.
type UpdateCourseRequest struct {
	Title         *string  `json:"title" validate:"omitempty"`
	Description   *string  `json:"description" validate:"omitempty"`
	Instructor    *string  `json:"instructor" validate:"omitempty"`
	DurationHours *int     `json:"duration_hours" validate:"omitempty,gt=0"`
	Level         *string  `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Category      *string  `json:"category" validate:"omitempty"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	IsPublished   *bool    `json:"is_published" validate:"omitempty"`
}

// ListCoursesQuery is the normalized list input: 1-based page, optional
// case-insensitive search term, optional level filter.
type ListCoursesQuery struct {
	Page   int
	Search *string
	Level  *models.CourseLevel
}

// ParseListCoursesQuery coerces the raw query parameters of the list endpoint.
// An unparsable or sub-1 page falls back to page 1, a blank search means no
// search, and the "all" sentinel (or blank) means no level filter.
func ParseListCoursesQuery(pageStr, searchStr, levelStr string) ListCoursesQuery {
	q := ListCoursesQuery{Page: 1}

	if page, err := strconv.Atoi(strings.TrimSpace(pageStr)); err == nil && page >= 1 {
		q.Page = page
	}

	if search := strings.TrimSpace(searchStr); search != "" {
		q.Search = &search
	}

	if level := models.CourseLevel(strings.TrimSpace(levelStr)); level.Valid() {
		q.Level = &level
	}

	return q
}

// CourseResponse represents a single course in API responses
type CourseResponse struct {
	ID            string   `json:"id" example:"6a2f1f5e-4f5c-4f34-9f2e-0a4f0f2d9b11"`
	Title         string   `json:"title" example:"Introduction to Testing"`
	Description   *string  `json:"description,omitempty"`
	Instructor    string   `json:"instructor" example:"Grace Hopper"`
	DurationHours *int     `json:"duration_hours,omitempty" example:"12"`
	Level         *string  `json:"level,omitempty" example:"beginner"`
	Category      *string  `json:"category,omitempty" example:"engineering"`
	Price         *float64 `json:"price,omitempty" example:"49.9"`
	IsPublished   bool     `json:"is_published"`
	CreatedBy     string   `json:"created_by"`
	CreatedAt     string   `json:"created_at" example:"2026-08-30T12:00:00Z"`
	UpdatedAt     string   `json:"updated_at" example:"2026-08-30T12:00:00Z"`
}

// CourseListResponse carries one page of courses plus pagination metadata
type CourseListResponse struct {
	Courses    []CourseResponse `json:"courses"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(course *models.Course) CourseResponse {
	if course == nil {
		return CourseResponse{}
	}

	var level *string
	if course.Level != nil {
		l := string(*course.Level)
		level = &l
	}

	return CourseResponse{
		ID:            course.ID.String(),
		Title:         course.Title,
		Description:   course.Description,
		Instructor:    course.Instructor,
		DurationHours: course.DurationHours,
		Level:         level,
		Category:      course.Category,
		Price:         course.Price,
		IsPublished:   course.IsPublished,
		CreatedBy:     course.CreatedBy.String(),
		CreatedAt:     course.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     course.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// FromCourses converts a slice of courses, never returning nil so the JSON
// encodes as an empty array rather than null.
func FromCourses(courses []models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, FromCourse(&courses[i]))
	}
	return out
}
