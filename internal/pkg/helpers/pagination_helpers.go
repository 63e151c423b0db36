package helpers

import (
	"math"
)

const (
	// CoursePageSize is the fixed page length for course listings.
	CoursePageSize = 9
	// DefaultPage is 1-based
	DefaultPage = 1
)

// CalculateOffsetLimit converts a 1-based page number into an offset/limit pair
// for SQL queries. Invalid pages fall back to the first page.
func CalculateOffsetLimit(page int) (offset uint64, limit uint64) {
	if page < 1 {
		page = DefaultPage
	}
	return uint64((page - 1) * CoursePageSize), CoursePageSize
}

// TotalPages computes ceil(totalItems / CoursePageSize).
func TotalPages(totalItems int64) int {
	if totalItems <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalItems) / float64(CoursePageSize)))
}
