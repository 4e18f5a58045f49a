package get_trainer_appointments

import (
	"net/url"
	"time"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	"github.com/m04kA/GMS-SchedulingService/internal/service/appointments/models"
)

// ToServiceRequest создает запрос сервиса из query параметров
// Поддерживаемые параметры: startDate, endDate (YYYY-MM-DD), status,
// includeCancelled (true/false)
func ToServiceRequest(userID, trainerID int64, isAdmin bool, query url.Values) (*models.GetTrainerAppointmentsRequest, error) {
	req := &models.GetTrainerAppointmentsRequest{
		UserID:    userID,
		IsAdmin:   isAdmin,
		TrainerID: trainerID,
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	req.IncludeCancelled = query.Get("includeCancelled") == "true"

	return req, nil
}
