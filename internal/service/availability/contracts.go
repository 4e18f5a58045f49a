package availability

import (
	"context"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	Create(ctx context.Context, window *domain.TrainerAvailability) (*domain.TrainerAvailability, error)
	GetByID(ctx context.Context, id int64) (*domain.TrainerAvailability, error)
	GetByTrainer(ctx context.Context, trainerID int64) ([]*domain.TrainerAvailability, error)
	Update(ctx context.Context, id int64, window *domain.TrainerAvailability) (*domain.TrainerAvailability, error)
	Deactivate(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
