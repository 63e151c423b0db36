package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yusufoz/coursehub/internal/app/models"
	"github.com/yusufoz/coursehub/internal/app/models/dto"
	"github.com/yusufoz/coursehub/internal/pkg/apperrors"
)

// fakeCourseStore lets each test stub exactly the store calls it expects.
type fakeCourseStore struct {
	listFn    func(ctx context.Context, query dto.ListCoursesQuery) ([]models.Course, int64, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (*models.Course, error)
	createFn  func(ctx context.Context, course *models.Course) error
	updateFn  func(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*models.Course, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeCourseStore) List(ctx context.Context, query dto.ListCoursesQuery) ([]models.Course, int64, error) {
	if f.listFn == nil {
		panic("unexpected List call")
	}
	return f.listFn(ctx, query)
}

func (f *fakeCourseStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	if f.getByIDFn == nil {
		panic("unexpected GetByID call")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeCourseStore) Create(ctx context.Context, course *models.Course) error {
	if f.createFn == nil {
		panic("unexpected Create call")
	}
	return f.createFn(ctx, course)
}

func (f *fakeCourseStore) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*models.Course, error) {
	if f.updateFn == nil {
		panic("unexpected Update call")
	}
	return f.updateFn(ctx, id, changes)
}

func (f *fakeCourseStore) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		panic("unexpected Delete call")
	}
	return f.deleteFn(ctx, id)
}

func newTestService(store *fakeCourseStore) CourseService {
	return NewCourseService(store, zerolog.Nop())
}

func testIdentity() models.Identity {
	return models.Identity{
		UserID: uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Email:  "user@example.com",
	}
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestListBuildsPaginationMetadata(t *testing.T) {
	store := &fakeCourseStore{
		listFn: func(ctx context.Context, query dto.ListCoursesQuery) ([]models.Course, int64, error) {
			if query.Page != 2 {
				t.Fatalf("expected page 2 passed through, but got %d", query.Page)
			}
			return []models.Course{{Title: "A"}, {Title: "B"}}, 20, nil
		},
	}

	resp, err := newTestService(store).List(context.Background(), dto.ListCoursesQuery{Page: 2})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if resp.Page != 2 || resp.PageSize != 9 || resp.Total != 20 || resp.TotalPages != 3 {
		t.Fatalf("unexpected metadata: %+v", resp)
	}
	if len(resp.Courses) != 2 {
		t.Fatalf("expected 2 courses, but got %d", len(resp.Courses))
	}
}

func TestListClampsPage(t *testing.T) {
	store := &fakeCourseStore{
		listFn: func(ctx context.Context, query dto.ListCoursesQuery) ([]models.Course, int64, error) {
			if query.Page != 1 {
				t.Fatalf("expected page clamped to 1, but got %d", query.Page)
			}
			return nil, 0, nil
		},
	}

	resp, err := newTestService(store).List(context.Background(), dto.ListCoursesQuery{Page: 0})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if resp.Page != 1 {
		t.Fatalf("expected page 1 in response, but got %d", resp.Page)
	}
}

func TestListPastEndIsEmptyNotError(t *testing.T) {
	store := &fakeCourseStore{
		listFn: func(ctx context.Context, query dto.ListCoursesQuery) ([]models.Course, int64, error) {
			return []models.Course{}, 20, nil
		},
	}

	resp, err := newTestService(store).List(context.Background(), dto.ListCoursesQuery{Page: 99})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if resp.Courses == nil {
		t.Fatal("expected empty slice, but got nil")
	}
	if len(resp.Courses) != 0 {
		t.Fatalf("expected no courses, but got %d", len(resp.Courses))
	}
	if resp.Total != 20 || resp.TotalPages != 3 {
		t.Fatalf("expected totals to survive an empty page, but got %+v", resp)
	}
}

func TestListWrapsStoreError(t *testing.T) {
	store := &fakeCourseStore{
		listFn: func(ctx context.Context, query dto.ListCoursesQuery) ([]models.Course, int64, error) {
			return nil, 0, errors.New("connection refused")
		},
	}

	_, err := newTestService(store).List(context.Background(), dto.ListCoursesQuery{Page: 1})
	if !errors.Is(err, apperrors.ErrStoreFailure) {
		t.Fatalf("expected a store failure, but got %v", err)
	}
	if err.Error() != "connection refused" {
		t.Fatalf("expected the store message kept verbatim, but got %q", err.Error())
	}
}

func TestGetByIDNotFound(t *testing.T) {
	store := &fakeCourseStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Course, error) {
			return nil, apperrors.ErrCourseNotFound
		},
	}

	_, err := newTestService(store).GetByID(context.Background(), uuid.New())
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("expected not-found, but got %v", err)
	}
}

func TestCreateRequiresIdentity(t *testing.T) {
	svc := newTestService(&fakeCourseStore{})

	_, err := svc.Create(context.Background(), models.Identity{}, &dto.CreateCourseRequest{
		Title:      "Valid",
		Instructor: "Valid",
	})
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, but got %v", err)
	}
}

func TestCreateValidationShortCircuitsStore(t *testing.T) {
	svc := newTestService(&fakeCourseStore{})

	_, err := svc.Create(context.Background(), testIdentity(), &dto.CreateCourseRequest{
		Title:      "  ",
		Instructor: "Valid",
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, but got %v", err)
	}

	fields := apperrors.FieldsOf(err)
	if _, ok := fields["title"]; !ok {
		t.Fatalf("expected a title field error, but got %v", fields)
	}
}

func TestCreateDefaultsAndOwnership(t *testing.T) {
	identity := testIdentity()
	var stored *models.Course

	store := &fakeCourseStore{
		createFn: func(ctx context.Context, course *models.Course) error {
			stored = course
			course.ID = uuid.New()
			return nil
		},
	}

	course, err := newTestService(store).Create(context.Background(), identity, &dto.CreateCourseRequest{
		Title:      "Introduction to Testing",
		Instructor: "Grace Hopper",
		Level:      strPtr("beginner"),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if stored == nil {
		t.Fatal("expected the store to be called")
	}
	if course.IsPublished {
		t.Fatal("expected is_published to default to false")
	}
	if course.CreatedBy != identity.UserID {
		t.Fatalf("expected created_by %s, but got %s", identity.UserID, course.CreatedBy)
	}
	if course.Level == nil || *course.Level != models.LevelBeginner {
		t.Fatalf("expected beginner level, but got %v", course.Level)
	}
}

func TestCreateWrapsStoreError(t *testing.T) {
	store := &fakeCourseStore{
		createFn: func(ctx context.Context, course *models.Course) error {
			return errors.New("insert failed")
		},
	}

	_, err := newTestService(store).Create(context.Background(), testIdentity(), &dto.CreateCourseRequest{
		Title:      "Valid",
		Instructor: "Valid",
	})
	if !errors.Is(err, apperrors.ErrStoreFailure) {
		t.Fatalf("expected a store failure, but got %v", err)
	}
	if err.Error() != "insert failed" {
		t.Fatalf("expected the store message kept verbatim, but got %q", err.Error())
	}
}

func TestUpdatePartialChanges(t *testing.T) {
	id := uuid.New()
	var gotChanges map[string]interface{}

	store := &fakeCourseStore{
		updateFn: func(ctx context.Context, updateID uuid.UUID, changes map[string]interface{}) (*models.Course, error) {
			if updateID != id {
				t.Fatalf("expected id %s, but got %s", id, updateID)
			}
			gotChanges = changes
			return &models.Course{ID: id, Title: "New Title"}, nil
		},
	}

	_, err := newTestService(store).Update(context.Background(), testIdentity(), id, &dto.UpdateCourseRequest{
		Title:       strPtr(" New Title "),
		Price:       floatPtr(19.9),
		IsPublished: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	want := map[string]interface{}{
		"title":        "New Title",
		"price":        19.9,
		"is_published": true,
	}
	if diff := cmp.Diff(want, gotChanges); diff != "" {
		t.Fatalf("unexpected change set (-want +got):\n%s", diff)
	}
}

func TestUpdateNotFoundPassesThrough(t *testing.T) {
	store := &fakeCourseStore{
		updateFn: func(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*models.Course, error) {
			return nil, apperrors.ErrCourseNotFound
		},
	}

	_, err := newTestService(store).Update(context.Background(), testIdentity(), uuid.New(), &dto.UpdateCourseRequest{
		Title: strPtr("x"),
	})
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("expected not-found, but got %v", err)
	}
}

func TestUpdateRequiresIdentity(t *testing.T) {
	svc := newTestService(&fakeCourseStore{})

	_, err := svc.Update(context.Background(), models.Identity{}, uuid.New(), &dto.UpdateCourseRequest{})
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, but got %v", err)
	}
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	store := &fakeCourseStore{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			return apperrors.ErrCourseNotFound
		},
	}

	err := newTestService(store).Delete(context.Background(), testIdentity(), uuid.New())
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("expected not-found, but got %v", err)
	}
}

func TestDeleteRequiresIdentity(t *testing.T) {
	svc := newTestService(&fakeCourseStore{})

	if err := svc.Delete(context.Background(), models.Identity{}, uuid.New()); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, but got %v", err)
	}
}

func TestBuildUpdateChangesAbsentFieldsOmitted(t *testing.T) {
	changes := buildUpdateChanges(&dto.UpdateCourseRequest{
		Instructor:    strPtr("Leslie Lamport"),
		DurationHours: intPtr(8),
	})

	want := map[string]interface{}{
		"instructor":     "Leslie Lamport",
		"duration_hours": 8,
	}
	if diff := cmp.Diff(want, changes); diff != "" {
		t.Fatalf("unexpected change set (-want +got):\n%s", diff)
	}
}

func TestBuildUpdateChangesEmptyPayload(t *testing.T) {
	changes := buildUpdateChanges(&dto.UpdateCourseRequest{})
	if len(changes) != 0 {
		t.Fatalf("expected no changes, but got %v", changes)
	}
}
