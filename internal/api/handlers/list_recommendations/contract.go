package list_recommendations

import (
	"context"

	"github.com/m04kA/GMS-SchedulingService/internal/service/recommendations/models"
)

type RecommendationService interface {
	GetUserRecommendations(ctx context.Context, req *models.GetUserRecommendationsRequest) (*models.RecommendationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
