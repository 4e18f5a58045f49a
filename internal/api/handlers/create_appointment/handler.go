package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/GMS-SchedulingService/internal/api/handlers"
	"github.com/m04kA/GMS-SchedulingService/internal/api/middleware"
	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	createAppointment "github.com/m04kA/GMS-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgTrainerNotFound    = "тренер не найден"
	msgTrainerInactive    = "тренер недоступен для записи"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceInactive    = "услуга недоступна для записи"
	msgNotAdmissible      = "запись на выбранное время невозможна"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Handle(r.Context(), useCaseReq)
	if err != nil {
		var notAdmissible *createAppointment.NotAdmissibleError

		switch {
		case errors.As(err, &notAdmissible):
			// Все накопленные причины отказа возвращаются разом
			h.logger.Warn("POST /appointments - Not admissible: user_id=%d, trainer_id=%d, reasons=%v",
				userID, req.TrainerID, notAdmissible.Reasons)
			handlers.RespondErrorWithReasons(w, http.StatusConflict, msgNotAdmissible,
				domain.ReasonStrings(notAdmissible.Reasons))

		case errors.Is(err, createAppointment.ErrTrainerNotFound):
			h.logger.Warn("POST /appointments - Trainer not found: trainer_id=%d", req.TrainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, createAppointment.ErrTrainerInactive):
			h.logger.Warn("POST /appointments - Trainer inactive: trainer_id=%d", req.TrainerID)
			handlers.RespondBadRequest(w, msgTrainerInactive)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrServiceInactive):
			h.logger.Warn("POST /appointments - Service inactive: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, trainer_id=%d, error=%v",
				userID, req.TrainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, user_id=%d, trainer_id=%d",
		result.Appointment.ID, userID, req.TrainerID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
