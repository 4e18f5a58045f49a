package recommendations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	"github.com/m04kA/GMS-SchedulingService/internal/service/recommendations/models"
	"github.com/m04kA/GMS-SchedulingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	recommendations []*domain.Recommendation
	err             error
}

func (f *fakeRepo) GetByUserID(ctx context.Context, userID int64) ([]*domain.Recommendation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.recommendations, nil
}

func TestGetUserRecommendations(t *testing.T) {
	repo := &fakeRepo{
		recommendations: []*domain.Recommendation{{
			ID:     1,
			UserID: 10,
			Type:   domain.RecommendationCombined,
			Metrics: domain.UserMetrics{
				Age:           30,
				HeightCM:      180,
				WeightKG:      80,
				Gender:        "male",
				FitnessGoal:   domain.GoalMuscleGain,
				ActivityLevel: domain.ActivityModeratelyActive,
			},
			ExercisePlan: ptr.Ptr("план тренировок"),
			Generated:    true,
		}},
	}
	svc := NewService(repo, nopLogger{})

	t.Run("owner reads own history", func(t *testing.T) {
		resp, err := svc.GetUserRecommendations(context.Background(), &models.GetUserRecommendationsRequest{
			UserID:   10,
			TargetID: 10,
		})
		require.NoError(t, err)
		require.Len(t, resp.Recommendations, 1)

		rec := resp.Recommendations[0]
		assert.Equal(t, "combined", rec.Type)
		assert.True(t, rec.Generated)
		// BMI вычисляется из метрик при конвертации
		assert.InDelta(t, 24.7, rec.BMI, 0.05)
	})

	t.Run("foreign history denied", func(t *testing.T) {
		_, err := svc.GetUserRecommendations(context.Background(), &models.GetUserRecommendationsRequest{
			UserID:   10,
			TargetID: 20,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin reads any history", func(t *testing.T) {
		resp, err := svc.GetUserRecommendations(context.Background(), &models.GetUserRecommendationsRequest{
			UserID:   99,
			TargetID: 10,
			IsAdmin:  true,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Recommendations, 1)
	})

	t.Run("invalid target id", func(t *testing.T) {
		_, err := svc.GetUserRecommendations(context.Background(), &models.GetUserRecommendationsRequest{
			UserID:   10,
			TargetID: 0,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository error wrapped", func(t *testing.T) {
		failing := &fakeRepo{err: errors.New("db down")}
		svc := NewService(failing, nopLogger{})

		_, err := svc.GetUserRecommendations(context.Background(), &models.GetUserRecommendationsRequest{
			UserID:   10,
			TargetID: 10,
		})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("empty history", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, nopLogger{})

		resp, err := svc.GetUserRecommendations(context.Background(), &models.GetUserRecommendationsRequest{
			UserID:   10,
			TargetID: 10,
		})
		require.NoError(t, err)
		assert.NotNil(t, resp.Recommendations)
		assert.Empty(t, resp.Recommendations)
	})
}
