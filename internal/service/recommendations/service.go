package recommendations

import (
	"context"
	"fmt"

	"github.com/m04kA/GMS-SchedulingService/internal/service/recommendations/models"
)

// Service сервис для работы с историей рекомендаций
type Service struct {
	recommendationRepo RecommendationRepository
	logger             Logger
}

// NewService создает новый экземпляр сервиса рекомендаций
func NewService(recommendationRepo RecommendationRepository, logger Logger) *Service {
	return &Service{
		recommendationRepo: recommendationRepo,
		logger:             logger,
	}
}

// GetUserRecommendations получает историю рекомендаций пользователя, новые первыми
// Пользователь видит только свою историю; администратор - любую
func (s *Service) GetUserRecommendations(ctx context.Context, req *models.GetUserRecommendationsRequest) (*models.RecommendationListResponse, error) {
	s.logger.Info("GetUserRecommendations: fetching recommendations for user=%d, requested by=%d", req.TargetID, req.UserID)

	if req.TargetID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.TargetID != req.UserID && !req.IsAdmin {
		s.logger.Warn("GetUserRecommendations: access denied for user=%d to history of user=%d", req.UserID, req.TargetID)
		return nil, ErrAccessDenied
	}

	recommendations, err := s.recommendationRepo.GetByUserID(ctx, req.TargetID)
	if err != nil {
		s.logger.Error("GetUserRecommendations: repository error for user=%d: %v", req.TargetID, err)
		return nil, fmt.Errorf("%w: GetUserRecommendations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserRecommendations: successfully fetched %d recommendations for user=%d", len(recommendations), req.TargetID)
	return models.FromDomainRecommendationList(recommendations), nil
}
