package get_available_slots

import (
	"time"

	"github.com/m04kA/GMS-SchedulingService/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	TrainerID int64     // ID тренера
	ServiceID int64     // ID услуги (определяет длительность слота)
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком свободных времён начала
type Response struct {
	TrainerID       int64              // ID тренера
	ServiceID       int64              // ID услуги
	Date            time.Time          // Дата, на которую запрашивались слоты
	DurationMinutes int                // Длительность услуги
	Slots           []types.TimeString // Свободные времена начала, ранние первыми
}
