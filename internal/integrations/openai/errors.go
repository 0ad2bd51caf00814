package openai

import "errors"

var (
	// ErrMissingAPIKey возвращается, когда ключ API не сконфигурирован
	ErrMissingAPIKey = errors.New("openai client: api key is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("openai client: internal error")

	// ErrUpstreamStatus возвращается при не-2xx ответе от API
	ErrUpstreamStatus = errors.New("openai client: upstream returned error status")

	// ErrInvalidResponse возвращается при некорректном теле ответа API
	ErrInvalidResponse = errors.New("openai client: invalid response")
)
