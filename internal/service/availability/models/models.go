package models

import (
	"errors"
	"time"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	"github.com/m04kA/GMS-SchedulingService/pkg/types"
)

var (
	// ErrInvalidDayOfWeek возвращается при некорректном дне недели
	ErrInvalidDayOfWeek = errors.New("day of week must be in range 0-6")

	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
)

// Request модели

// CreateAvailabilityRequest запрос на создание окна доступности
type CreateAvailabilityRequest struct {
	UserID      int64  `json:"-"`
	IsAdmin     bool   `json:"-"`
	TrainerID   int64  `json:"trainerId"`
	DayOfWeek   int    `json:"dayOfWeek"` // 0 = воскресенье ... 6 = суббота
	StartTime   string `json:"startTime"` // "09:00"
	EndTime     string `json:"endTime"`   // "17:00"
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

// ToDomain конвертирует request в domain модель с валидацией форматов
func (r *CreateAvailabilityRequest) ToDomain() (*domain.TrainerAvailability, error) {
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		return nil, ErrInvalidDayOfWeek
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	isAvailable := true
	if r.IsAvailable != nil {
		isAvailable = *r.IsAvailable
	}

	return &domain.TrainerAvailability{
		TrainerID:   r.TrainerID,
		DayOfWeek:   time.Weekday(r.DayOfWeek),
		StartTime:   start,
		EndTime:     end,
		IsAvailable: isAvailable,
		IsActive:    true,
	}, nil
}

// UpdateAvailabilityRequest запрос на обновление окна доступности
type UpdateAvailabilityRequest struct {
	UserID      int64  `json:"-"`
	IsAdmin     bool   `json:"-"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

// Response модели

// AvailabilityResponse ответ с данными окна доступности
type AvailabilityResponse struct {
	ID          int64  `json:"id"`
	TrainerID   int64  `json:"trainerId"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
	IsActive    bool   `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AvailabilityListResponse ответ со списком окон доступности
type AvailabilityListResponse struct {
	TrainerID int64                  `json:"trainerId"`
	Windows   []AvailabilityResponse `json:"windows"`
}

// Методы конвертации

// FromDomainAvailability конвертирует domain модель в DTO
func FromDomainAvailability(w *domain.TrainerAvailability) *AvailabilityResponse {
	if w == nil {
		return nil
	}

	return &AvailabilityResponse{
		ID:          w.ID,
		TrainerID:   w.TrainerID,
		DayOfWeek:   int(w.DayOfWeek),
		StartTime:   w.StartTime.String(),
		EndTime:     w.EndTime.String(),
		IsAvailable: w.IsAvailable,
		IsActive:    w.IsActive,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

// FromDomainAvailabilityList конвертирует список domain моделей в DTO
func FromDomainAvailabilityList(trainerID int64, windows []*domain.TrainerAvailability) *AvailabilityListResponse {
	resp := &AvailabilityListResponse{
		TrainerID: trainerID,
		Windows:   make([]AvailabilityResponse, 0, len(windows)),
	}

	for _, w := range windows {
		if windowResp := FromDomainAvailability(w); windowResp != nil {
			resp.Windows = append(resp.Windows, *windowResp)
		}
	}

	return resp
}
