package get_trainer_availability

import (
	"context"
	"time"

	"github.com/m04kA/GMS-SchedulingService/internal/service/availability/models"
)

type AvailabilityService interface {
	ListByTrainer(ctx context.Context, trainerID int64) (*models.AvailabilityListResponse, error)
	ListByTrainerForDate(ctx context.Context, trainerID int64, date time.Time) (*models.AvailabilityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
