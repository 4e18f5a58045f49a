package get_trainer_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/GMS-SchedulingService/internal/api/handlers"
	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	"github.com/m04kA/GMS-SchedulingService/internal/service/availability"
	"github.com/m04kA/GMS-SchedulingService/internal/service/availability/models"
)

const (
	msgInvalidTrainerID = "некорректный ID тренера"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainers/{trainerId}/availability?date=
// Публичная операция: клиенты смотрят расписание перед записью.
// Без параметра date возвращается недельное расписание целиком,
// с параметром - только активные окна на день недели этой даты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trainerIDStr := vars["trainerId"]

	trainerID, err := strconv.ParseInt(trainerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/availability - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	var result *models.AvailabilityListResponse
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, parseErr := time.Parse(domain.DateFormat, dateStr)
		if parseErr != nil {
			h.logger.Warn("GET /trainers/{id}/availability - Invalid date %q: %v", dateStr, parseErr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		result, err = h.service.ListByTrainerForDate(r.Context(), trainerID, date)
	} else {
		result, err = h.service.ListByTrainer(r.Context(), trainerID)
	}
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /trainers/{id}/availability - Invalid input: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondBadRequest(w, msgInvalidTrainerID)

		default:
			h.logger.Error("GET /trainers/{id}/availability - Failed to list windows: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trainers/{id}/availability - Windows retrieved successfully: trainer_id=%d, count=%d",
		trainerID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
