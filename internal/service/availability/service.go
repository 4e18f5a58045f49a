package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	availabilityRepo "github.com/m04kA/GMS-SchedulingService/internal/infra/storage/availability"
	"github.com/m04kA/GMS-SchedulingService/internal/service/availability/models"
	"github.com/m04kA/GMS-SchedulingService/pkg/types"
)

// Service сервис для управления окнами доступности тренеров
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса окон доступности
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Create создает новое окно доступности
// Доступно только администраторам. Кандидат проверяется против остальных
// активных окон тренера на тот же день недели: при invalid_range или
// overlapping_availability возвращаются все накопленные причины
func (s *Service) Create(ctx context.Context, req *models.CreateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Create: creating availability window for trainer=%d, day=%d, by user=%d",
		req.TrainerID, req.DayOfWeek, req.UserID)

	if !req.IsAdmin {
		s.logger.Warn("Create: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	if req.TrainerID <= 0 {
		return nil, fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	window, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid window data for trainer=%d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.validateAgainstSiblings(ctx, window, nil); err != nil {
		return nil, err
	}

	created, err := s.availabilityRepo.Create(ctx, window)
	if err != nil {
		s.logger.Error("Create: repository error for trainer=%d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created availability window id=%d for trainer=%d", created.ID, created.TrainerID)
	return models.FromDomainAvailability(created), nil
}

// Update обновляет окно доступности
// Доступно только администраторам. Само редактируемое окно исключается
// из проверки пересечений. Сужение окна не отменяет уже созданные записи
func (s *Service) Update(ctx context.Context, windowID int64, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Update: updating availability window id=%d by user=%d", windowID, req.UserID)

	if !req.IsAdmin {
		s.logger.Warn("Update: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	existing, err := s.availabilityRepo.GetByID(ctx, windowID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("Update: availability window id=%d not found", windowID)
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("Update: repository error for window id=%d: %v", windowID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, models.ErrInvalidDayOfWeek)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, models.ErrInvalidTimeFormat)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, models.ErrInvalidTimeFormat)
	}

	window := &domain.TrainerAvailability{
		TrainerID:   existing.TrainerID,
		DayOfWeek:   time.Weekday(req.DayOfWeek),
		StartTime:   start,
		EndTime:     end,
		IsAvailable: existing.IsAvailable,
		IsActive:    existing.IsActive,
	}
	if req.IsAvailable != nil {
		window.IsAvailable = *req.IsAvailable
	}

	if err := s.validateAgainstSiblings(ctx, window, &windowID); err != nil {
		return nil, err
	}

	updated, err := s.availabilityRepo.Update(ctx, windowID, window)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("Update: availability window id=%d not found during update", windowID)
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("Update: repository error for window id=%d: %v", windowID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated availability window id=%d", windowID)
	return models.FromDomainAvailability(updated), nil
}

// Deactivate мягко удаляет окно доступности
// Доступно только администраторам. Записи, созданные в этом окне,
// остаются без изменений
func (s *Service) Deactivate(ctx context.Context, windowID int64, userID int64, isAdmin bool) error {
	s.logger.Info("Deactivate: deactivating availability window id=%d by user=%d", windowID, userID)

	if !isAdmin {
		s.logger.Warn("Deactivate: access denied for user=%d", userID)
		return ErrAccessDenied
	}

	if err := s.availabilityRepo.Deactivate(ctx, windowID); err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Warn("Deactivate: availability window id=%d not found", windowID)
			return ErrAvailabilityNotFound
		}
		s.logger.Error("Deactivate: repository error for window id=%d: %v", windowID, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated availability window id=%d", windowID)
	return nil
}

// ListByTrainer получает недельное расписание тренера
// Публичная операция: клиенты смотрят расписание перед записью
func (s *Service) ListByTrainer(ctx context.Context, trainerID int64) (*models.AvailabilityListResponse, error) {
	s.logger.Info("ListByTrainer: fetching availability for trainer=%d", trainerID)

	if trainerID <= 0 {
		return nil, fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	windows, err := s.availabilityRepo.GetByTrainer(ctx, trainerID)
	if err != nil {
		s.logger.Error("ListByTrainer: repository error for trainer=%d: %v", trainerID, err)
		return nil, fmt.Errorf("%w: ListByTrainer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByTrainer: successfully fetched %d windows for trainer=%d", len(windows), trainerID)
	return models.FromDomainAvailabilityList(trainerID, windows), nil
}

// ListByTrainerForDate получает активные окна тренера, действующие на дату
// Дневное представление: из недельного расписания остаются только активные
// окна на день недели указанной даты
func (s *Service) ListByTrainerForDate(ctx context.Context, trainerID int64, date time.Time) (*models.AvailabilityListResponse, error) {
	s.logger.Info("ListByTrainerForDate: fetching availability for trainer=%d, date=%s",
		trainerID, date.Format(domain.DateFormat))

	if trainerID <= 0 {
		return nil, fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	windows, err := s.availabilityRepo.GetByTrainer(ctx, trainerID)
	if err != nil {
		s.logger.Error("ListByTrainerForDate: repository error for trainer=%d: %v", trainerID, err)
		return nil, fmt.Errorf("%w: ListByTrainerForDate - repository error: %v", ErrInternal, err)
	}

	day := date.Weekday()
	filtered := make([]*domain.TrainerAvailability, 0, len(windows))
	for _, w := range windows {
		if w.IsActive && w.DayOfWeek == day {
			filtered = append(filtered, w)
		}
	}

	s.logger.Info("ListByTrainerForDate: %d windows active for trainer=%d on %s", len(filtered), trainerID, day)
	return models.FromDomainAvailabilityList(trainerID, filtered), nil
}

// validateAgainstSiblings проверяет окно против остальных окон тренера
func (s *Service) validateAgainstSiblings(ctx context.Context, window *domain.TrainerAvailability, excludeID *int64) error {
	siblings, err := s.availabilityRepo.GetByTrainer(ctx, window.TrainerID)
	if err != nil {
		s.logger.Error("validateAgainstSiblings: repository error for trainer=%d: %v", window.TrainerID, err)
		return fmt.Errorf("%w: validateAgainstSiblings - repository error: %v", ErrInternal, err)
	}

	reasons := domain.ValidateWindow(siblings, int(window.DayOfWeek), window.StartTime, window.EndTime, excludeID)
	if len(reasons) > 0 {
		s.logger.Warn("validateAgainstSiblings: window rejected for trainer=%d, day=%d: %v",
			window.TrainerID, window.DayOfWeek, reasons)
		return &InvalidWindowError{Reasons: reasons}
	}

	return nil
}
