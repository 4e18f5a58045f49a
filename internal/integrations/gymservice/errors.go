package gymservice

import "errors"

var (
	// ErrTrainerNotFound возвращается, когда тренер не найден в каталоге
	ErrTrainerNotFound = errors.New("trainer not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gymservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("gymservice client: invalid response")
)
