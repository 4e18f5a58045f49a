package update_availability

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
	msgInvalidWindowID    = "некорректный ID окна доступности"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "окно доступности не найдено"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidWindow      = "некорректное окно доступности"
	msgInvalidInput       = "некорректные данные запроса"
)

// UpdateAvailabilityRequest HTTP request model
type UpdateAvailabilityRequest struct {
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
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

// Handle PUT /api/v1/availability/{availabilityId}
// Доступно только администраторам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	windowIDStr := vars["availabilityId"]

	windowID, err := strconv.ParseInt(windowIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /availability/{id} - Invalid window ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /availability/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.UpdateAvailabilityRequest{
		UserID:      userID,
		IsAdmin:     middleware.IsAdmin(r.Context()),
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: req.IsAvailable,
	}

	result, err := h.service.Update(r.Context(), windowID, serviceReq)
	if err != nil {
		var invalidWindow *availability.InvalidWindowError

		switch {
		case errors.As(err, &invalidWindow):
			h.logger.Warn("PUT /availability/{id} - Invalid window: window_id=%d, reasons=%v",
				windowID, invalidWindow.Reasons)
			handlers.RespondErrorWithReasons(w, http.StatusConflict, msgInvalidWindow,
				domain.ReasonStrings(invalidWindow.Reasons))

		case errors.Is(err, availability.ErrAvailabilityNotFound):
			h.logger.Warn("PUT /availability/{id} - Window not found: window_id=%d", windowID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("PUT /availability/{id} - Access denied: window_id=%d, user_id=%d", windowID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /availability/{id} - Invalid input: window_id=%d, error=%v", windowID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /availability/{id} - Failed to update window: window_id=%d, error=%v", windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability/{id} - Window updated successfully: window_id=%d, user_id=%d", windowID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
