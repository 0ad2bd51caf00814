package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается для услуги вне фиксированного набора клиники
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
