package models

import (
	"errors"
	"time"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// GetUserAppointmentsRequest запрос на получение записей пользователя
type GetUserAppointmentsRequest struct {
	UserID   int64   `json:"userId"`
	TargetID int64   `json:"targetId"` // Чью историю запрашиваем
	IsAdmin  bool    `json:"-"`
	Status   *string `json:"status,omitempty"`
}

// GetTrainerAppointmentsRequest запрос на получение записей тренера
type GetTrainerAppointmentsRequest struct {
	UserID           int64      `json:"userId"`
	IsAdmin          bool       `json:"-"`
	TrainerID        int64      `json:"trainerId"`
	StartDate        *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetTrainerAppointmentsRequest) ToDomainFilter() (domain.TrainerAppointmentsFilter, error) {
	filter := domain.TrainerAppointmentsFilter{
		TrainerID:        r.TrainerID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	UserID  int64 `json:"userId"`
	IsAdmin bool  `json:"-"`
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	UserID  int64  `json:"userId"`
	IsAdmin bool   `json:"-"`
	Status  string `json:"status"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	TrainerID       int64  `json:"trainerId"`
	ServiceID       int64  `json:"serviceId"`
	AppointmentDate string `json:"appointmentDate"` // "2026-08-29"
	StartTime       string `json:"startTime"`       // "10:00"
	EndTime         string `json:"endTime"`         // "11:00"
	Status          string `json:"status"`

	// Снимок данных услуги на момент создания
	ServiceName string  `json:"serviceName"`
	TotalPrice  float64 `json:"totalPrice"`

	Notes *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		TrainerID:       a.TrainerID,
		ServiceID:       a.ServiceID,
		AppointmentDate: a.AppointmentDate.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		EndTime:         a.EndTime.String(),
		Status:          string(a.Status),
		ServiceName:     a.ServiceName,
		TotalPrice:      a.TotalPrice,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
