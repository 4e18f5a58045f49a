package recommendation

import "errors"

var (
	// ErrRecommendationNotFound возвращается, когда рекомендация не найдена
	ErrRecommendationNotFound = errors.New("recommendation.repository: recommendation not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("recommendation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("recommendation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("recommendation.repository: failed to scan row")
)
