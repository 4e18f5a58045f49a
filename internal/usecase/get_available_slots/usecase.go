package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	"github.com/m04kA/GMS-SchedulingService/internal/integrations/gymservice"
)

// UseCase генерация списка свободных слотов для тренера и услуги на дату
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	gymClient        GymServiceClient
	log              Logger
}

// NewUseCase создает новый экземпляр usecase генерации слотов
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	gymClient GymServiceClient,
	log Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		gymClient:        gymClient,
		log:              log,
	}
}

// Handle возвращает упорядоченный список свободных времён начала
//
// День без единого активного окна - не ошибка: возвращается пустой список.
// Отменённые записи слоты не блокируют
func (uc *UseCase) Handle(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	trainer, err := uc.gymClient.GetTrainer(ctx, req.TrainerID)
	if err != nil {
		if errors.Is(err, gymservice.ErrTrainerNotFound) {
			return nil, fmt.Errorf("%w: trainerID=%d", ErrTrainerNotFound, req.TrainerID)
		}
		uc.log.Error("Failed to fetch trainer %d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: failed to fetch trainer: %v", ErrInternal, err)
	}
	if !trainer.IsActive {
		return nil, fmt.Errorf("%w: trainerID=%d", ErrTrainerInactive, req.TrainerID)
	}

	service, err := uc.gymClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gymservice.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: serviceID=%d", ErrServiceNotFound, req.ServiceID)
		}
		uc.log.Error("Failed to fetch service %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to fetch service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		return nil, fmt.Errorf("%w: serviceID=%d", ErrServiceInactive, req.ServiceID)
	}
	if service.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: service %d has non-positive duration", ErrInvalidInput, req.ServiceID)
	}

	windows, err := uc.availabilityRepo.GetActiveByTrainerAndDay(ctx, req.TrainerID, req.Date.Weekday())
	if err != nil {
		uc.log.Error("Failed to load availability for trainer %d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: failed to load availability: %v", ErrInternal, err)
	}

	date := req.Date
	appointments, err := uc.appointmentRepo.GetByTrainerWithFilter(ctx, domain.TrainerAppointmentsFilter{
		TrainerID: req.TrainerID,
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		uc.log.Error("Failed to load appointments for trainer %d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
	}

	slots, err := domain.GenerateSlots(windows, appointments, service.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.log.Info("Generated %d available slots for trainer %d on %s (serviceID=%d)",
		len(slots), req.TrainerID, req.Date.Format(domain.DateFormat), req.ServiceID)

	return &Response{
		TrainerID:       req.TrainerID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}
