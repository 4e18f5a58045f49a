package generate_recommendation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	"github.com/m04kA/GMS-SchedulingService/internal/integrations/recommender"
)

// UseCase генерация персональной рекомендации с graceful degradation
type UseCase struct {
	recommendationRepo RecommendationRepository
	recommenderClient  RecommenderClient
	log                Logger
}

// NewUseCase создает новый экземпляр usecase генерации рекомендаций
func NewUseCase(
	recommendationRepo RecommendationRepository,
	recommenderClient RecommenderClient,
	log Logger,
) *UseCase {
	return &UseCase{
		recommendationRepo: recommendationRepo,
		recommenderClient:  recommenderClient,
		log:                log,
	}
}

// Handle генерирует рекомендацию и сохраняет её в истории пользователя
//
// Недоступность провайдера не является ошибкой для клиента: вместо
// сгенерированного текста подставляется детерминированный локальный план,
// результат помечается Generated=false
func (uc *UseCase) Handle(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	rec := &domain.Recommendation{
		UserID:  req.UserID,
		Type:    req.Type,
		Metrics: req.Metrics,
	}

	result, err := uc.recommenderClient.GenerateWithGracefulDegradation(ctx, &recommender.GenerateRequest{
		Type:          string(req.Type),
		Age:           req.Metrics.Age,
		HeightCM:      req.Metrics.HeightCM,
		WeightKG:      req.Metrics.WeightKG,
		BMI:           req.Metrics.BMI(),
		Gender:        req.Metrics.Gender,
		FitnessGoal:   string(req.Metrics.FitnessGoal),
		ActivityLevel: string(req.Metrics.ActivityLevel),
	})

	switch {
	case err == nil:
		rec.ExercisePlan = result.ExercisePlan
		rec.DietPlan = result.DietPlan
		rec.GeneralAdvice = result.GeneralAdvice
		rec.Generated = true

	case errors.Is(err, recommender.ErrProviderDegraded):
		uc.log.Warn("Recommendation provider degraded, using local fallback for user %d", req.UserID)
		rec.ExercisePlan, rec.DietPlan, rec.GeneralAdvice = buildFallback(req.Type, req.Metrics)
		rec.Generated = false

	default:
		uc.log.Error("Failed to generate recommendation for user %d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to generate recommendation: %v", ErrInternal, err)
	}

	if _, err := uc.recommendationRepo.Create(ctx, rec); err != nil {
		uc.log.Error("Failed to persist recommendation for user %d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to persist recommendation: %v", ErrInternal, err)
	}

	uc.log.Info("Created %s recommendation %d for user %d (generated=%t)",
		rec.Type, rec.ID, rec.UserID, rec.Generated)

	return &Response{Recommendation: rec}, nil
}
