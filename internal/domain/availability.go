package domain

import (
	"time"

	"github.com/m04kA/GMS-SchedulingService/pkg/types"
)

// TrainerAvailability represents a recurring weekly working window of a trainer
type TrainerAvailability struct {
	ID        int64
	TrainerID int64

	DayOfWeek time.Weekday // 0 = Sunday ... 6 = Saturday
	StartTime types.TimeString
	EndTime   types.TimeString

	// IsAvailable информационный флаг, на проверки не влияет
	IsAvailable bool
	// IsActive мягкое удаление: деактивированные окна не участвуют
	// ни в генерации слотов, ни в проверках пересечений
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains returns true if the whole range [start, end) fits inside the window
func (w *TrainerAvailability) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(w.StartTime) && !end.IsAfter(w.EndTime)
}
