package models

import (
	"time"

	"github.com/google/uuid"
)

// CourseLevel is the difficulty tag on a course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// Valid reports whether the level is one of the three known values.
func (l CourseLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Course represents a catalog entry.
// created_by, created_at and updated_at are server-managed and never
// settable by the caller.
type Course struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	Title         string       `json:"title" db:"title"`
	Description   *string      `json:"description,omitempty" db:"description"`
	Instructor    string       `json:"instructor" db:"instructor"`
	DurationHours *int         `json:"duration_hours,omitempty" db:"duration_hours"`
	Level         *CourseLevel `json:"level,omitempty" db:"level"`
	Category      *string      `json:"category,omitempty" db:"category"`
	Price         *float64     `json:"price,omitempty" db:"price"`
	IsPublished   bool         `json:"is_published" db:"is_published"`
	CreatedBy     uuid.UUID    `json:"created_by" db:"created_by"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}
