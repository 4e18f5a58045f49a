package recommendations

import (
	"context"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
)

// RecommendationRepository интерфейс репозитория рекомендаций
type RecommendationRepository interface {
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Recommendation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
