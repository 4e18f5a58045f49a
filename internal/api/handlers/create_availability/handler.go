package create_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GMS-SchedulingService/internal/api/handlers"
	"github.com/m04kA/GMS-SchedulingService/internal/api/middleware"
	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	"github.com/m04kA/GMS-SchedulingService/internal/service/availability"
	"github.com/m04kA/GMS-SchedulingService/internal/service/availability/models"
)

const (
	msgInvalidTrainerID   = "некорректный ID тренера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidWindow      = "некорректное окно доступности"
	msgInvalidInput       = "некорректные данные запроса"
)

// CreateAvailabilityRequest HTTP request model
type CreateAvailabilityRequest struct {
	DayOfWeek   int    `json:"dayOfWeek"` // 0 = воскресенье ... 6 = суббота
	StartTime   string `json:"startTime"` // "09:00"
	EndTime     string `json:"endTime"`   // "17:00"
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

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

// Handle POST /api/v1/trainers/{trainerId}/availability
// Доступно только администраторам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trainerIDStr := vars["trainerId"]

	trainerID, err := strconv.ParseInt(trainerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /trainers/{id}/availability - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /trainers/{id}/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trainers/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.CreateAvailabilityRequest{
		UserID:      userID,
		IsAdmin:     middleware.IsAdmin(r.Context()),
		TrainerID:   trainerID,
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: req.IsAvailable,
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		var invalidWindow *availability.InvalidWindowError

		switch {
		case errors.As(err, &invalidWindow):
			h.logger.Warn("POST /trainers/{id}/availability - Invalid window: trainer_id=%d, reasons=%v",
				trainerID, invalidWindow.Reasons)
			handlers.RespondErrorWithReasons(w, http.StatusConflict, msgInvalidWindow,
				domain.ReasonStrings(invalidWindow.Reasons))

		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("POST /trainers/{id}/availability - Access denied: trainer_id=%d, user_id=%d", trainerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /trainers/{id}/availability - Invalid input: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /trainers/{id}/availability - Failed to create window: trainer_id=%d, error=%v",
				trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trainers/{id}/availability - Window created successfully: window_id=%d, trainer_id=%d",
		result.ID, trainerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
