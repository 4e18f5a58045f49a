package generate_recommendation

import (
	"context"

	generateRecommendation "github.com/m04kA/GMS-SchedulingService/internal/usecase/generate_recommendation"
)

type GenerateRecommendationUseCase interface {
	Handle(ctx context.Context, req *generateRecommendation.Request) (*generateRecommendation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
