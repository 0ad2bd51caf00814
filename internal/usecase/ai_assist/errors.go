package ai_assist

import "errors"

var (
	// ErrMessageRequired возвращается, когда сообщение пациента пустое.
	// Единственная ошибка, которая доходит до клиента как не-200:
	// все сбои на пути к AI деградируют в обычный ответ.
	ErrMessageRequired = errors.New("message is required")
)
