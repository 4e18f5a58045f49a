package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	"github.com/m04kA/GMS-SchedulingService/internal/integrations/gymservice"
)

// UseCase создание записи на тренировку с атомарной проверкой допустимости
type UseCase struct {
	appointmentRepo  AppointmentRepository
	availabilityRepo AvailabilityRepository
	gymClient        GymServiceClient
	txManager        TxManager
	log              Logger
}

// NewUseCase создает новый экземпляр usecase создания записи
func NewUseCase(
	appointmentRepo AppointmentRepository,
	availabilityRepo AvailabilityRepository,
	gymClient GymServiceClient,
	txManager TxManager,
	log Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		availabilityRepo: availabilityRepo,
		gymClient:        gymClient,
		txManager:        txManager,
		log:              log,
	}
}

// Handle создает запись со статусом pending
//
// Данные тренера и услуги запрашиваются у внешнего сервиса до транзакции.
// Проверка допустимости и вставка выполняются в одной сериализуемой
// транзакции с блокировкой записей тренера на дату: две конкурирующие
// попытки занять пересекающиеся интервалы не пройдут обе
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

	endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		// Интервал не помещается в сутки - за пределами любого окна доступности
		return nil, &NotAdmissibleError{Reasons: []domain.ReasonCode{domain.ReasonOutsideWorkingHours}}
	}

	// Снимок данных услуги фиксируется на момент создания
	appt := &domain.Appointment{
		UserID:          req.UserID,
		TrainerID:       req.TrainerID,
		ServiceID:       req.ServiceID,
		AppointmentDate: req.Date,
		StartTime:       req.StartTime,
		EndTime:         endTime,
		ServiceName:     service.Name,
		TotalPrice:      service.Price,
		Status:          domain.StatusPending,
		Notes:           req.Notes,
	}

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		windows, err := uc.availabilityRepo.GetActiveByTrainerAndDay(txCtx, req.TrainerID, req.Date.Weekday())
		if err != nil {
			return fmt.Errorf("%w: failed to load availability: %v", ErrInternal, err)
		}

		date := req.Date
		existing, err := uc.appointmentRepo.GetByTrainerWithFilter(txCtx, domain.TrainerAppointmentsFilter{
			TrainerID: req.TrainerID,
			StartDate: &date,
			EndDate:   &date,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to load appointments: %v", ErrInternal, err)
		}

		admissibility, err := domain.CheckAdmissibility(windows, existing, req.StartTime, service.DurationMinutes)
		if err != nil {
			return fmt.Errorf("%w: admissibility check: %v", ErrInternal, err)
		}
		if !admissibility.Admissible {
			return &NotAdmissibleError{Reasons: admissibility.Reasons}
		}

		if _, err := uc.appointmentRepo.Create(txCtx, appt); err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		var notAdmissible *NotAdmissibleError
		if errors.As(err, &notAdmissible) {
			uc.log.Info("Appointment rejected for trainer %d on %s %s: %v",
				req.TrainerID, req.Date.Format(domain.DateFormat), req.StartTime, notAdmissible.Reasons)
			return nil, err
		}
		uc.log.Error("Failed to create appointment for trainer %d: %v", req.TrainerID, err)
		return nil, err
	}

	uc.log.Info("Created appointment %d: user=%d, trainer=%d, date=%s, time=%s-%s",
		appt.ID, appt.UserID, appt.TrainerID, appt.AppointmentDate.Format(domain.DateFormat),
		appt.StartTime, appt.EndTime)

	return &Response{Appointment: appt}, nil
}
