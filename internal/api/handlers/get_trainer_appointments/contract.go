package get_trainer_appointments

import (
	"context"

	"github.com/m04kA/GMS-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetTrainerAppointments(ctx context.Context, req *models.GetTrainerAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
