package generate_recommendation

import (
	"github.com/m04kA/GMS-SchedulingService/internal/domain"
)

// Request модель запроса на генерацию рекомендации
type Request struct {
	UserID  int64                     // ID пользователя (из контекста аутентификации)
	Type    domain.RecommendationType // exercise | diet | combined
	Metrics domain.UserMetrics        // Структурированные метрики пользователя
}

// Response модель ответа с сохранённой рекомендацией
type Response struct {
	Recommendation *domain.Recommendation
}
