package domain

// SlotStepMinutes шаг генерации кандидатов слотов
// Кандидаты начинаются с начала окна доступности и идут с фиксированным
// шагом 30 минут независимо от длительности услуги
const SlotStepMinutes = 30

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов
	MaxNotesLength            = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ValidStatuses список допустимых статусов записи
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}
