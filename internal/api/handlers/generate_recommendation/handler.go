package generate_recommendation

import (
	"errors"
	"net/http"

	"github.com/m04kA/GMS-SchedulingService/internal/api/handlers"
	"github.com/m04kA/GMS-SchedulingService/internal/api/middleware"
	generateRecommendation "github.com/m04kA/GMS-SchedulingService/internal/usecase/generate_recommendation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase GenerateRecommendationUseCase
	logger  Logger
}

func NewHandler(useCase GenerateRecommendationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/recommendations
// Недоступность AI-провайдера не приводит к ошибке: подставляется
// локальный план с generated=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /recommendations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req GenerateRecommendationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /recommendations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Handle(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, generateRecommendation.ErrInvalidInput):
			h.logger.Warn("POST /recommendations - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /recommendations - Failed to generate recommendation: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /recommendations - Recommendation created successfully: recommendation_id=%d, user_id=%d, generated=%t",
		result.Recommendation.ID, userID, result.Recommendation.Generated)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
