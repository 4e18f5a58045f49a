package create_appointment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/GMS-SchedulingService/internal/domain"
)

var (
	// ErrTrainerNotFound возвращается, когда тренер не найден
	ErrTrainerNotFound = errors.New("create_appointment: trainer not found")

	// ErrTrainerInactive возвращается, когда тренер деактивирован
	ErrTrainerInactive = errors.New("create_appointment: trainer is inactive")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceInactive возвращается, когда услуга деактивирована
	ErrServiceInactive = errors.New("create_appointment: service is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrNotAdmissible возвращается, когда запись не прошла бизнес-проверки
	ErrNotAdmissible = errors.New("create_appointment: appointment is not admissible")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// NotAdmissibleError несет накопленные коды отказов бизнес-проверок
// Причины показываются клиенту все разом, а не по одной
type NotAdmissibleError struct {
	Reasons []domain.ReasonCode
}

func (e *NotAdmissibleError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotAdmissible, strings.Join(domain.ReasonStrings(e.Reasons), ", "))
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrNotAdmissible)
func (e *NotAdmissibleError) Unwrap() error {
	return ErrNotAdmissible
}
