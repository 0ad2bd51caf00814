package domain

import "errors"

var (
	// ErrUnknownService возвращается для услуги вне фиксированного набора клиники
	ErrUnknownService = errors.New("unknown service")

	// ErrInvalidStatus возвращается для статуса вне набора {pending, approved}
	ErrInvalidStatus = errors.New("invalid appointment status")
)
