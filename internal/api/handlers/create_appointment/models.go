package create_appointment

import (
	"time"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	createAppointment "github.com/m04kA/GMS-SchedulingService/internal/usecase/create_appointment"
	"github.com/m04kA/GMS-SchedulingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	TrainerID       int64   `json:"trainerId"`
	ServiceID       int64   `json:"serviceId"`
	AppointmentDate string  `json:"appointmentDate"` // "2026-08-29"
	StartTime       string  `json:"startTime"`       // "10:00"
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	TrainerID       int64   `json:"trainerId"`
	ServiceID       int64   `json:"serviceId"`
	AppointmentDate string  `json:"appointmentDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	TotalPrice      float64 `json:"totalPrice"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID int64) (*createAppointment.Request, error) {
	appointmentDate, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:    userID,
		TrainerID: r.TrainerID,
		ServiceID: r.ServiceID,
		Date:      appointmentDate,
		StartTime: startTime,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	appt := resp.Appointment

	return &AppointmentResponse{
		ID:              appt.ID,
		UserID:          appt.UserID,
		TrainerID:       appt.TrainerID,
		ServiceID:       appt.ServiceID,
		AppointmentDate: appt.AppointmentDate.Format(domain.DateFormat),
		StartTime:       appt.StartTime.String(),
		EndTime:         appt.EndTime.String(),
		Status:          string(appt.Status),
		ServiceName:     appt.ServiceName,
		TotalPrice:      appt.TotalPrice,
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       appt.UpdatedAt.Format(time.RFC3339),
	}
}
