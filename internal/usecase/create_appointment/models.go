package create_appointment

import (
	"time"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
	"github.com/m04kA/GMS-SchedulingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID    int64            // ID клиента (из контекста аутентификации)
	TrainerID int64            // ID тренера
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата тренировки (без времени)
	StartTime types.TimeString // Время начала в формате HH:MM
	Notes     *string          // Пожелания клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
}
