package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yusufoz/coursehub/internal/app/models"
	"github.com/yusufoz/coursehub/internal/app/models/dto"
	"github.com/yusufoz/coursehub/internal/pkg/apperrors"
	"github.com/yusufoz/coursehub/internal/pkg/helpers"
	"github.com/yusufoz/coursehub/internal/pkg/validation"
)

// CourseService defines the course procedures. List and GetByID are public
// reads; Create, Update and Delete require a resolved identity.
type CourseService interface {
	List(ctx context.Context, query dto.ListCoursesQuery) (*dto.CourseListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	Create(ctx context.Context, identity models.Identity, req *dto.CreateCourseRequest) (*models.Course, error)
	Update(ctx context.Context, identity models.Identity, id uuid.UUID, req *dto.UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, identity models.Identity, id uuid.UUID) error
}

// courseStore is the slice of the repository the service depends on.
type courseStore interface {
	List(ctx context.Context, query dto.ListCoursesQuery) ([]models.Course, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*models.Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo courseStore
	logger     zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo courseStore, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// List returns one page of courses plus pagination metadata. A page past the
// end of the result set yields an empty list, not an error.
func (s *courseServiceImpl) List(ctx context.Context, query dto.ListCoursesQuery) (*dto.CourseListResponse, error) {
	if query.Page < 1 {
		query.Page = 1
	}

	courses, total, err := s.courseRepo.List(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	return &dto.CourseListResponse{
		Courses:    dto.FromCourses(courses),
		Total:      total,
		Page:       query.Page,
		PageSize:   helpers.CoursePageSize,
		TotalPages: helpers.TotalPages(total),
	}, nil
}

// GetByID returns a single course or not-found.
func (s *courseServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, err
		}
		return nil, apperrors.NewStoreError(err)
	}
	return course, nil
}

// Create validates the payload and inserts a new course owned by the caller.
// Validation failures abort before any store interaction.
func (s *courseServiceImpl) Create(ctx context.Context, identity models.Identity, req *dto.CreateCourseRequest) (*models.Course, error) {
	if identity.UserID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}

	if errs := validation.NormalizeCreateCourse(req); !errs.Empty() {
		return nil, apperrors.NewValidationError("Invalid course data", errs)
	}

	course := &models.Course{
		Title:         req.Title,
		Description:   req.Description,
		Instructor:    req.Instructor,
		DurationHours: req.DurationHours,
		Level:         levelFromString(req.Level),
		Category:      req.Category,
		Price:         req.Price,
		IsPublished:   helpers.BoolOrDefault(req.IsPublished, false),
		CreatedBy:     identity.UserID,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	s.logger.Info().
		Str("courseID", course.ID.String()).
		Str("createdBy", identity.UserID.String()).
		Msg("Course created")

	return course, nil
}

// Update applies a partial payload to a course. Only supplied fields change;
// updated_at is refreshed by the store on every update.
func (s *courseServiceImpl) Update(ctx context.Context, identity models.Identity, id uuid.UUID, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if identity.UserID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}

	if errs := validation.NormalizeUpdateCourse(req); !errs.Empty() {
		return nil, apperrors.NewValidationError("Invalid course data", errs)
	}

	course, err := s.courseRepo.Update(ctx, id, buildUpdateChanges(req))
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, err
		}
		return nil, apperrors.NewStoreError(err)
	}

	s.logger.Info().
		Str("courseID", id.String()).
		Str("updatedBy", identity.UserID.String()).
		Msg("Course updated")

	return course, nil
}

// Delete removes a course permanently. A missing id surfaces as not-found.
func (s *courseServiceImpl) Delete(ctx context.Context, identity models.Identity, id uuid.UUID) error {
	if identity.UserID == uuid.Nil {
		return apperrors.ErrUnauthorized
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return err
		}
		return apperrors.NewStoreError(err)
	}

	s.logger.Info().
		Str("courseID", id.String()).
		Str("deletedBy", identity.UserID.String()).
		Msg("Course deleted")

	return nil
}

// buildUpdateChanges converts a normalized partial payload into the column
// change set for the store. Absent fields are omitted so they keep their
// stored values.
func buildUpdateChanges(req *dto.UpdateCourseRequest) map[string]interface{} {
	changes := map[string]interface{}{}

	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.Instructor != nil {
		changes["instructor"] = *req.Instructor
	}
	if req.DurationHours != nil {
		changes["duration_hours"] = *req.DurationHours
	}
	if req.Level != nil {
		changes["level"] = *req.Level
	}
	if req.Category != nil {
		changes["category"] = *req.Category
	}
	if req.Price != nil {
		changes["price"] = *req.Price
	}
	if req.IsPublished != nil {
		changes["is_published"] = *req.IsPublished
	}

	return changes
}

// levelFromString converts a normalized level string to the model enum.
func levelFromString(level *string) *models.CourseLevel {
	if level == nil {
		return nil
	}
	l := models.CourseLevel(*level)
	if !l.Valid() {
		return nil
	}
	return &l
}
