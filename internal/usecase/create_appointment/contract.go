package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	"github.com/m04kA/GMS-SchedulingService/internal/integrations/gymservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// Create создает новую запись
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetByTrainerWithFilter получает записи тренера на конкретную дату
	// Внутри транзакции выборка блокируется FOR UPDATE
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

// TxManager интерфейс менеджера транзакций
// Проверка допустимости и вставка выполняются атомарно в SERIALIZABLE
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
