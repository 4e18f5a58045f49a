package recommender

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("recommender client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("recommender client: invalid response")

	// ErrProviderDegraded возвращается при применении graceful degradation
	// Указывает, что провайдер недоступен и следует использовать
	// детерминированный локальный план
	ErrProviderDegraded = errors.New("recommender unavailable: graceful degradation applied")
)
