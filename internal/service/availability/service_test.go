package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/GMS-SchedulingService/internal/infra/storage/availability"
	"github.com/m04kA/GMS-SchedulingService/internal/service/availability/models"
	"github.com/m04kA/GMS-SchedulingService/pkg/ptr"
	"github.com/m04kA/GMS-SchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	windows     map[int64]*domain.TrainerAvailability
	byTrainer   []*domain.TrainerAvailability
	created     *domain.TrainerAvailability
	updated     *domain.TrainerAvailability
	deactivated []int64
}

func newFakeRepo(windows ...*domain.TrainerAvailability) *fakeRepo {
	m := make(map[int64]*domain.TrainerAvailability, len(windows))
	for _, w := range windows {
		m[w.ID] = w
	}
	return &fakeRepo{windows: m, byTrainer: windows}
}

func (f *fakeRepo) Create(ctx context.Context, window *domain.TrainerAvailability) (*domain.TrainerAvailability, error) {
	window.ID = 77
	f.created = window
	return window, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.TrainerAvailability, error) {
	w, ok := f.windows[id]
	if !ok {
		return nil, availabilityRepo.ErrAvailabilityNotFound
	}
	return w, nil
}

func (f *fakeRepo) GetByTrainer(ctx context.Context, trainerID int64) ([]*domain.TrainerAvailability, error) {
	return f.byTrainer, nil
}

func (f *fakeRepo) Update(ctx context.Context, id int64, window *domain.TrainerAvailability) (*domain.TrainerAvailability, error) {
	if _, ok := f.windows[id]; !ok {
		return nil, availabilityRepo.ErrAvailabilityNotFound
	}
	window.ID = id
	f.updated = window
	return window, nil
}

func (f *fakeRepo) Deactivate(ctx context.Context, id int64) error {
	if _, ok := f.windows[id]; !ok {
		return availabilityRepo.ErrAvailabilityNotFound
	}
	f.deactivated = append(f.deactivated, id)
	return nil
}

func testWindow(id int64, day time.Weekday, start, end types.TimeString) *domain.TrainerAvailability {
	return &domain.TrainerAvailability{
		ID:          id,
		TrainerID:   1,
		DayOfWeek:   day,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
		IsActive:    true,
	}
}

func createRequest() *models.CreateAvailabilityRequest {
	return &models.CreateAvailabilityRequest{
		UserID:    99,
		IsAdmin:   true,
		TrainerID: 1,
		DayOfWeek: 1,
		StartTime: "09:00",
		EndTime:   "17:00",
	}
}

func TestCreate(t *testing.T) {
	t.Run("admin creates window", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Create(context.Background(), createRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(77), resp.ID)
		assert.Equal(t, 1, resp.DayOfWeek)
		assert.Equal(t, "09:00", resp.StartTime)
		assert.True(t, resp.IsAvailable)
		assert.True(t, resp.IsActive)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		svc := NewService(newFakeRepo(), nopLogger{})

		req := createRequest()
		req.IsAdmin = false

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("overlap with active sibling rejected", func(t *testing.T) {
		repo := newFakeRepo(testWindow(1, time.Monday, "08:00", "10:00"))
		svc := NewService(repo, nopLogger{})

		_, err := svc.Create(context.Background(), createRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidWindow)

		var invalidWindow *InvalidWindowError
		require.ErrorAs(t, err, &invalidWindow)
		assert.Equal(t, []domain.ReasonCode{domain.ReasonOverlappingAvailability}, invalidWindow.Reasons)
		assert.Nil(t, repo.created)
	})

	t.Run("inactive sibling does not block", func(t *testing.T) {
		inactive := testWindow(1, time.Monday, "08:00", "10:00")
		inactive.IsActive = false
		repo := newFakeRepo(inactive)
		svc := NewService(repo, nopLogger{})

		_, err := svc.Create(context.Background(), createRequest())
		assert.NoError(t, err)
	})

	t.Run("sibling on other day does not block", func(t *testing.T) {
		repo := newFakeRepo(testWindow(1, time.Tuesday, "08:00", "10:00"))
		svc := NewService(repo, nopLogger{})

		_, err := svc.Create(context.Background(), createRequest())
		assert.NoError(t, err)
	})

	t.Run("start not before end rejected", func(t *testing.T) {
		svc := NewService(newFakeRepo(), nopLogger{})

		req := createRequest()
		req.StartTime = "17:00"
		req.EndTime = "09:00"

		_, err := svc.Create(context.Background(), req)
		require.Error(t, err)

		var invalidWindow *InvalidWindowError
		require.ErrorAs(t, err, &invalidWindow)
		assert.Contains(t, invalidWindow.Reasons, domain.ReasonInvalidRange)
	})

	t.Run("bad day of week", func(t *testing.T) {
		svc := NewService(newFakeRepo(), nopLogger{})

		req := createRequest()
		req.DayOfWeek = 7

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("bad time format", func(t *testing.T) {
		svc := NewService(newFakeRepo(), nopLogger{})

		req := createRequest()
		req.StartTime = "9am"

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUpdate(t *testing.T) {
	updateRequest := func() *models.UpdateAvailabilityRequest {
		return &models.UpdateAvailabilityRequest{
			UserID:    99,
			IsAdmin:   true,
			DayOfWeek: 1,
			StartTime: "10:00",
			EndTime:   "18:00",
		}
	}

	t.Run("admin updates window", func(t *testing.T) {
		repo := newFakeRepo(testWindow(5, time.Monday, "09:00", "17:00"))
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Update(context.Background(), 5, updateRequest())
		require.NoError(t, err)

		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, "10:00", resp.StartTime)
		assert.Equal(t, "18:00", resp.EndTime)
	})

	t.Run("self overlap excluded from validation", func(t *testing.T) {
		// Единственный сосед - само редактируемое окно
		repo := newFakeRepo(testWindow(5, time.Monday, "09:00", "17:00"))
		svc := NewService(repo, nopLogger{})

		req := updateRequest()
		req.StartTime = "09:30"
		req.EndTime = "16:30"

		_, err := svc.Update(context.Background(), 5, req)
		assert.NoError(t, err)
	})

	t.Run("overlap with other window rejected", func(t *testing.T) {
		repo := newFakeRepo(
			testWindow(5, time.Monday, "09:00", "12:00"),
			testWindow(6, time.Monday, "14:00", "18:00"),
		)
		svc := NewService(repo, nopLogger{})

		req := updateRequest()
		req.StartTime = "09:00"
		req.EndTime = "15:00"

		_, err := svc.Update(context.Background(), 5, req)

		var invalidWindow *InvalidWindowError
		require.ErrorAs(t, err, &invalidWindow)
		assert.Equal(t, []domain.ReasonCode{domain.ReasonOverlappingAvailability}, invalidWindow.Reasons)
	})

	t.Run("availability flag override", func(t *testing.T) {
		repo := newFakeRepo(testWindow(5, time.Monday, "09:00", "17:00"))
		svc := NewService(repo, nopLogger{})

		req := updateRequest()
		req.IsAvailable = ptr.Ptr(false)

		resp, err := svc.Update(context.Background(), 5, req)
		require.NoError(t, err)
		assert.False(t, resp.IsAvailable)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		svc := NewService(newFakeRepo(testWindow(5, time.Monday, "09:00", "17:00")), nopLogger{})

		req := updateRequest()
		req.IsAdmin = false

		_, err := svc.Update(context.Background(), 5, req)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(newFakeRepo(), nopLogger{})

		_, err := svc.Update(context.Background(), 404, updateRequest())
		assert.ErrorIs(t, err, ErrAvailabilityNotFound)
	})
}

func TestDeactivate(t *testing.T) {
	t.Run("admin deactivates", func(t *testing.T) {
		repo := newFakeRepo(testWindow(5, time.Monday, "09:00", "17:00"))
		svc := NewService(repo, nopLogger{})

		err := svc.Deactivate(context.Background(), 5, 99, true)
		require.NoError(t, err)
		assert.Equal(t, []int64{5}, repo.deactivated)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		svc := NewService(newFakeRepo(), nopLogger{})

		err := svc.Deactivate(context.Background(), 5, 10, false)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(newFakeRepo(), nopLogger{})

		err := svc.Deactivate(context.Background(), 404, 99, true)
		assert.ErrorIs(t, err, ErrAvailabilityNotFound)
	})
}

func TestListByTrainer(t *testing.T) {
	t.Run("returns weekly schedule", func(t *testing.T) {
		repo := newFakeRepo(
			testWindow(1, time.Monday, "09:00", "12:00"),
			testWindow(2, time.Wednesday, "14:00", "18:00"),
		)
		svc := NewService(repo, nopLogger{})

		resp, err := svc.ListByTrainer(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.TrainerID)
		assert.Len(t, resp.Windows, 2)
	})

	t.Run("invalid trainer id", func(t *testing.T) {
		svc := NewService(newFakeRepo(), nopLogger{})

		_, err := svc.ListByTrainer(context.Background(), 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestListByTrainerForDate(t *testing.T) {
	inactive := testWindow(3, time.Monday, "18:00", "20:00")
	inactive.IsActive = false

	repo := newFakeRepo(
		testWindow(1, time.Monday, "09:00", "12:00"),
		testWindow(2, time.Wednesday, "14:00", "18:00"),
		inactive,
	)
	svc := NewService(repo, nopLogger{})

	t.Run("only active windows for the weekday", func(t *testing.T) {
		monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

		resp, err := svc.ListByTrainerForDate(context.Background(), 1, monday)
		require.NoError(t, err)

		require.Len(t, resp.Windows, 1)
		assert.Equal(t, int64(1), resp.Windows[0].ID)
	})

	t.Run("day off returns empty list", func(t *testing.T) {
		sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

		resp, err := svc.ListByTrainerForDate(context.Background(), 1, sunday)
		require.NoError(t, err)
		assert.Empty(t, resp.Windows)
	})

	t.Run("invalid trainer id", func(t *testing.T) {
		_, err := svc.ListByTrainerForDate(context.Background(), 0, time.Now())
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
