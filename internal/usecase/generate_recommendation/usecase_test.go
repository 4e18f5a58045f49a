package generate_recommendation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	"github.com/m04kA/GMS-SchedulingService/internal/integrations/recommender"
	"github.com/m04kA/GMS-SchedulingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRecommendationRepo struct {
	created *domain.Recommendation
	err     error
}

func (f *fakeRecommendationRepo) Create(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error) {
	if f.err != nil {
		return nil, f.err
	}
	rec.ID = 55
	f.created = rec
	return rec, nil
}

type fakeRecommenderClient struct {
	response *recommender.GenerateResponse
	err      error
	lastReq  *recommender.GenerateRequest
}

func (f *fakeRecommenderClient) GenerateWithGracefulDegradation(ctx context.Context, req *recommender.GenerateRequest) (*recommender.GenerateResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func validMetrics() domain.UserMetrics {
	return domain.UserMetrics{
		Age:           30,
		HeightCM:      180,
		WeightKG:      80,
		Gender:        "male",
		FitnessGoal:   domain.GoalMuscleGain,
		ActivityLevel: domain.ActivityModeratelyActive,
	}
}

func validRequest() *Request {
	return &Request{
		UserID:  10,
		Type:    domain.RecommendationCombined,
		Metrics: validMetrics(),
	}
}

func TestHandle_ProviderSuccess(t *testing.T) {
	repo := &fakeRecommendationRepo{}
	client := &fakeRecommenderClient{
		response: &recommender.GenerateResponse{
			ExercisePlan:  ptr.Ptr("план тренировок от провайдера"),
			DietPlan:      ptr.Ptr("план питания от провайдера"),
			GeneralAdvice: ptr.Ptr("общие советы"),
		},
	}

	uc := NewUseCase(repo, client, nopLogger{})

	resp, err := uc.Handle(context.Background(), validRequest())
	require.NoError(t, err)

	rec := resp.Recommendation
	assert.Equal(t, int64(55), rec.ID)
	assert.True(t, rec.Generated)
	assert.Equal(t, "план тренировок от провайдера", *rec.ExercisePlan)
	assert.Equal(t, "план питания от провайдера", *rec.DietPlan)

	// Метрики передаются провайдеру вместе с вычисленным BMI
	require.NotNil(t, client.lastReq)
	assert.Equal(t, "combined", client.lastReq.Type)
	assert.InDelta(t, 24.7, client.lastReq.BMI, 0.05)

	assert.NotNil(t, repo.created)
}

func TestHandle_ProviderDegradedUsesFallback(t *testing.T) {
	repo := &fakeRecommendationRepo{}
	client := &fakeRecommenderClient{err: recommender.ErrProviderDegraded}

	uc := NewUseCase(repo, client, nopLogger{})

	resp, err := uc.Handle(context.Background(), validRequest())
	require.NoError(t, err)

	rec := resp.Recommendation
	assert.False(t, rec.Generated)
	// combined даёт оба плана плюс общий совет
	assert.NotNil(t, rec.ExercisePlan)
	assert.NotNil(t, rec.DietPlan)
	assert.NotNil(t, rec.GeneralAdvice)

	// Фолбэк всё равно сохраняется в истории
	assert.NotNil(t, repo.created)
}

func TestHandle_FallbackRespectsType(t *testing.T) {
	client := &fakeRecommenderClient{err: recommender.ErrProviderDegraded}
	uc := NewUseCase(&fakeRecommendationRepo{}, client, nopLogger{})

	req := validRequest()
	req.Type = domain.RecommendationExercise

	resp, err := uc.Handle(context.Background(), req)
	require.NoError(t, err)

	rec := resp.Recommendation
	assert.NotNil(t, rec.ExercisePlan)
	assert.Nil(t, rec.DietPlan)
	assert.NotNil(t, rec.GeneralAdvice)
}

func TestHandle_FallbackIsDeterministic(t *testing.T) {
	client := &fakeRecommenderClient{err: recommender.ErrProviderDegraded}
	uc := NewUseCase(&fakeRecommendationRepo{}, client, nopLogger{})

	first, err := uc.Handle(context.Background(), validRequest())
	require.NoError(t, err)

	second, err := uc.Handle(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, *first.Recommendation.ExercisePlan, *second.Recommendation.ExercisePlan)
	assert.Equal(t, *first.Recommendation.DietPlan, *second.Recommendation.DietPlan)
	assert.Equal(t, *first.Recommendation.GeneralAdvice, *second.Recommendation.GeneralAdvice)
}

func TestHandle_ProviderHardErrorFails(t *testing.T) {
	client := &fakeRecommenderClient{err: recommender.ErrInvalidResponse}
	uc := NewUseCase(&fakeRecommendationRepo{}, client, nopLogger{})

	_, err := uc.Handle(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestHandle_PersistFailure(t *testing.T) {
	repo := &fakeRecommendationRepo{err: errors.New("db down")}
	client := &fakeRecommenderClient{response: &recommender.GenerateResponse{}}

	uc := NewUseCase(repo, client, nopLogger{})

	_, err := uc.Handle(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestHandle_Validation(t *testing.T) {
	uc := NewUseCase(&fakeRecommendationRepo{}, &fakeRecommenderClient{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "zero user id", mutate: func(req *Request) { req.UserID = 0 }},
		{name: "unknown type", mutate: func(req *Request) { req.Type = "horoscope" }},
		{name: "zero age", mutate: func(req *Request) { req.Metrics.Age = 0 }},
		{name: "age above limit", mutate: func(req *Request) { req.Metrics.Age = 121 }},
		{name: "zero height", mutate: func(req *Request) { req.Metrics.HeightCM = 0 }},
		{name: "negative weight", mutate: func(req *Request) { req.Metrics.WeightKG = -1 }},
		{name: "unknown goal", mutate: func(req *Request) { req.Metrics.FitnessGoal = "get_rich" }},
		{name: "unknown activity level", mutate: func(req *Request) { req.Metrics.ActivityLevel = "hyperactive" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Handle(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
