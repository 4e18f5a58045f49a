package domain

import (
	"time"

	"github.com/m04kA/GMS-SchedulingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a training session booked by a member with a trainer
type Appointment struct {
	ID        int64
	UserID    int64
	TrainerID int64
	ServiceID int64

	AppointmentDate time.Time // календарная дата, время суток игнорируется
	StartTime       types.TimeString
	EndTime         types.TimeString // производное: StartTime + service.DurationMinutes

	// Снимок данных услуги на момент создания
	// Последующие изменения услуги не влияют на существующие записи
	ServiceName string
	TotalPrice  float64

	Status AppointmentStatus
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsTerminal returns true if no further status transition is accepted
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCancelled || a.Status == StatusCompleted
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return !a.IsTerminal()
}

// BlocksSlot returns true if the appointment occupies its time range
// for conflict checking purposes
func (a *Appointment) BlocksSlot() bool {
	return a.Status != StatusCancelled
}

// CanTransition проверяет допустимость перехода статуса
// Машина состояний: pending -> {confirmed, cancelled};
// confirmed -> {cancelled, completed}; cancelled и completed терминальные
func CanTransition(from, to AppointmentStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCancelled || to == StatusCompleted
	default:
		return false
	}
}

// TrainerAppointmentsFilter фильтр для получения записей тренера
type TrainerAppointmentsFilter struct {
	TrainerID        int64              // Обязательный параметр
	StartDate        *time.Time         // Начало периода (опционально)
	EndDate          *time.Time         // Конец периода (опционально)
	Status           *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отменённые записи
}
