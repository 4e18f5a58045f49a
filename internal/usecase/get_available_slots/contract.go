package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	"github.com/m04kA/GMS-SchedulingService/internal/integrations/gymservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByTrainerWithFilter получает записи тренера на конкретную дату
	GetByTrainerWithFilter(ctx context.Context, filter domain.TrainerAppointmentsFilter) ([]*domain.Appointment, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	// GetActiveByTrainerAndDay получает активные окна тренера на день недели
	GetActiveByTrainerAndDay(ctx context.Context, trainerID int64, dayOfWeek time.Weekday) ([]*domain.TrainerAvailability, error)
}

// GymServiceClient интерфейс клиента каталога тренеров и услуг
type GymServiceClient interface {
	GetTrainer(ctx context.Context, trainerID int64) (*gymservice.Trainer, error)
	GetService(ctx context.Context, serviceID int64) (*gymservice.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
