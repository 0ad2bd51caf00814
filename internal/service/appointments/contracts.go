package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// AppointmentStorage интерфейс хранилища заявок.
// Каждая мутация - полный цикл чтение-изменение-запись всей коллекции.
type AppointmentStorage interface {
	List(ctx context.Context) ([]*domain.Appointment, error)
	Append(ctx context.Context, appt *domain.Appointment) error
	ReplaceStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
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
