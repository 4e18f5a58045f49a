package availability

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
)

var (
	// ErrAvailabilityNotFound возвращается, когда окно доступности не найдено
	ErrAvailabilityNotFound = errors.New("availability window not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidWindow возвращается, когда окно не прошло бизнес-проверки
	ErrInvalidWindow = errors.New("invalid availability window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// InvalidWindowError несет накопленные коды отказов валидации окна
type InvalidWindowError struct {
	Reasons []domain.ReasonCode
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidWindow, strings.Join(domain.ReasonStrings(e.Reasons), ", "))
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrInvalidWindow)
func (e *InvalidWindowError) Unwrap() error {
	return ErrInvalidWindow
}
