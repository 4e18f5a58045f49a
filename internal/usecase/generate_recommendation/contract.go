package generate_recommendation

import (
	"context"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	"github.com/m04kA/GMS-SchedulingService/internal/integrations/recommender"
)

// RecommendationRepository интерфейс репозитория рекомендаций
type RecommendationRepository interface {
	// Create сохраняет сгенерированную рекомендацию
	Create(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error)
}

// RecommenderClient интерфейс клиента внешнего AI-провайдера
type RecommenderClient interface {
	// GenerateWithGracefulDegradation при недоступности провайдера
	// возвращает recommender.ErrProviderDegraded
	GenerateWithGracefulDegradation(ctx context.Context, req *recommender.GenerateRequest) (*recommender.GenerateResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
