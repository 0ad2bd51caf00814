package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда заявка не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrMissingField возвращается, когда обязательное поле заявки пустое
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidStatus возвращается для статуса вне набора {pending, approved}
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("service: internal error")
)
