package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yusufoz/coursehub/internal/app/models"
	"github.com/yusufoz/coursehub/internal/app/models/dto"
	"github.com/yusufoz/coursehub/internal/pkg/apperrors"
	"github.com/yusufoz/coursehub/internal/pkg/helpers"
	"github.com/yusufoz/coursehub/internal/pkg/logger"
)

// courseColumns is the select list for course rows, in scan order.
var courseColumns = []string{
	"id", "title", "description", "instructor", "duration_hours",
	"level", "category", "price", "is_published",
	"created_by", "created_at", "updated_at",
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// escapeLikeTerm escapes LIKE pattern metacharacters in a raw search term so
// user input always matches as a literal substring.
func escapeLikeTerm(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

// applyListFilters adds the search and level predicates shared by the range
// query and the count query.
func applyListFilters(builder squirrel.SelectBuilder, query dto.ListCoursesQuery) squirrel.SelectBuilder {
	if query.Search != nil {
		pattern := "%" + escapeLikeTerm(*query.Search) + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.ILike{"instructor": pattern},
		})
	}

	if query.Level != nil {
		builder = builder.Where(squirrel.Eq{"level": string(*query.Level)})
	}

	return builder
}

// List retrieves one page of courses plus the total number of matching rows.
// The total is counted independently of the range so callers can compute page
// counts even when the requested page is past the end.
func (r *CourseRepository) List(ctx context.Context, query dto.ListCoursesQuery) ([]models.Course, int64, error) {
	countBuilder := applyListFilters(r.sb.Select("COUNT(*)").From("courses"), query)

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count courses SQL")
		return nil, 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error executing count courses query")
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(query.Page)
	listBuilder := applyListFilters(r.sb.Select(courseColumns...).From("courses"), query).
		OrderBy("created_at DESC", "id DESC").
		Offset(offset).
		Limit(limit)

	listSQL, listArgs, err := listBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, 0, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, 0, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning course row during list")
			return nil, 0, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, *course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, 0, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, total, nil
}

// GetByID retrieves a course by its id
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// Create inserts a new course. The id and the timestamps come back from the
// database so the returned model reflects the stored row exactly.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("title", "description", "instructor", "duration_hours",
			"level", "category", "price", "is_published", "created_by").
		Values(course.Title, course.Description, course.Instructor, course.DurationHours,
			levelValue(course.Level), course.Category, course.Price, course.IsPublished, course.CreatedBy).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// Update applies the given column changes to a single course and returns the
// updated row. updated_at is always refreshed.
func (r *CourseRepository) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*models.Course, error) {
	builder := r.sb.Update("courses").
		SetMap(changes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(courseColumns, ", "))

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return nil, fmt.Errorf("failed to build update course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error executing update course query")
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return course, nil
}

// Delete removes a course by id. Deleting a row that does not exist reports
// not-found rather than silent success.
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// CountAll returns the number of courses in the table, used by the seeder.
func (r *CourseRepository) CountAll(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("courses").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return total, nil
}

// scanCourse reads one course row in courseColumns order.
func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	var level *string

	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Instructor,
		&course.DurationHours,
		&level,
		&course.Category,
		&course.Price,
		&course.IsPublished,
		&course.CreatedBy,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if level != nil {
		l := models.CourseLevel(*level)
		course.Level = &l
	}

	return course, nil
}

// levelValue converts the optional level to its nullable column value.
func levelValue(level *models.CourseLevel) interface{} {
	if level == nil {
		return nil
	}
	return string(*level)
}
