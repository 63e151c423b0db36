package seed

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/yusufoz/coursehub/internal/app/models"
	appRepos "github.com/yusufoz/coursehub/internal/app/repositories"
)

// seedOwner marks the sample rows as created by the system.
var seedOwner = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// CreateDefaultData populates a sample catalog when the courses table is
// empty, so a fresh install has something to show.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)

	total, err := courseRepo.CountAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting courses before seeding")
		return err
	}
	if total > 0 {
		lgr.Debug().Int64("courses", total).Msg("Courses already present, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding sample course catalog...")

	for _, course := range sampleCourses() {
		course := course
		if err := courseRepo.Create(ctx, &course); err != nil {
			lgr.Error().Err(err).Str("title", course.Title).Msg("Error seeding course")
			return err
		}
	}

	lgr.Info().Msg("Sample course catalog seeded")
	return nil
}

func sampleCourses() []appModels.Course {
	beginner := appModels.LevelBeginner
	intermediate := appModels.LevelIntermediate
	advanced := appModels.LevelAdvanced

	str := func(s string) *string { return &s }
	hours := func(h int) *int { return &h }
	price := func(p float64) *float64 { return &p }

	return []appModels.Course{
		{
			Title:         "Introduction to Testing",
			Description:   str("Unit tests, fixtures and the testing mindset."),
			Instructor:    "Grace Hopper",
			DurationHours: hours(12),
			Level:         &beginner,
			Category:      str("engineering"),
			Price:         price(0),
			IsPublished:   true,
			CreatedBy:     seedOwner,
		},
		{
			Title:         "Relational Databases in Practice",
			Description:   str("Schema design, indexing and query plans on PostgreSQL."),
			Instructor:    "Edgar Codd",
			DurationHours: hours(20),
			Level:         &intermediate,
			Category:      str("databases"),
			Price:         price(49.9),
			IsPublished:   true,
			CreatedBy:     seedOwner,
		},
		{
			Title:       "Advanced Topics",
			Description: str("A grab bag of distributed systems war stories."),
			Instructor:  "Leslie Lamport",
			Level:       &advanced,
			Category:    str("distributed-systems"),
			Price:       price(99),
			IsPublished: false,
			CreatedBy:   seedOwner,
		},
	}
}
