package list_recommendations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GMS-SchedulingService/internal/api/handlers"
	"github.com/m04kA/GMS-SchedulingService/internal/api/middleware"
	"github.com/m04kA/GMS-SchedulingService/internal/service/recommendations"
	"github.com/m04kA/GMS-SchedulingService/internal/service/recommendations/models"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service RecommendationService
	logger  Logger
}

func NewHandler(service RecommendationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/recommendations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	targetIDStr := vars["userId"]

	targetID, err := strconv.ParseInt(targetIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/recommendations - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/recommendations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetUserRecommendationsRequest{
		UserID:   userID,
		TargetID: targetID,
		IsAdmin:  middleware.IsAdmin(r.Context()),
	}

	result, err := h.service.GetUserRecommendations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, recommendations.ErrAccessDenied):
			h.logger.Warn("GET /users/{id}/recommendations - Access denied: user_id=%d, target_id=%d", userID, targetID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, recommendations.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/recommendations - Invalid input: user_id=%d, error=%v", targetID, err)
			handlers.RespondBadRequest(w, msgInvalidUserID)

		default:
			h.logger.Error("GET /users/{id}/recommendations - Failed to get recommendations: user_id=%d, error=%v", targetID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/recommendations - Recommendations retrieved successfully: user_id=%d, count=%d",
		targetID, len(result.Recommendations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
