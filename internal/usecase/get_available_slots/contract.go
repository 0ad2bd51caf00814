package get_available_slots

import (
	"time"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования).
// Генерация дат зависит от "сегодня", поэтому часы инжектируются,
// а не берутся напрямую из time.Now.
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
