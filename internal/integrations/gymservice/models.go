package gymservice

// Trainer модель тренера из каталога зала
type Trainer struct {
	ID             int64   `json:"id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Specialization *string `json:"specialization,omitempty"`
	IsActive       bool    `json:"is_active"`
}

// FullName возвращает полное имя тренера
func (t *Trainer) FullName() string {
	return t.FirstName + " " + t.LastName
}

// Service модель услуги из каталога зала
type Service struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	IsActive        bool    `json:"is_active"`
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
