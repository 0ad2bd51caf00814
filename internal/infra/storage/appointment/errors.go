package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда заявка не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrReadFile возвращается при ошибке чтения файла хранилища
	// (отсутствие файла ошибкой не считается - это пустая коллекция)
	ErrReadFile = errors.New("appointment.repository: failed to read storage file")

	// ErrWriteFile возвращается при ошибке записи файла хранилища
	ErrWriteFile = errors.New("appointment.repository: failed to write storage file")

	// ErrDecode возвращается, когда содержимое файла не является JSON-массивом заявок
	ErrDecode = errors.New("appointment.repository: failed to decode storage file")

	// ErrEncode возвращается при ошибке сериализации коллекции
	ErrEncode = errors.New("appointment.repository: failed to encode appointments")
)
