package filemetrics

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// Storage интерфейс файлового хранилища заявок, который оборачивается метриками
type Storage interface {
	List(ctx context.Context) ([]*domain.Appointment, error)
	Append(ctx context.Context, appt *domain.Appointment) error
	ReplaceStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
}

// Collector интерфейс сборщика метрик операций хранилища
type Collector interface {
	ObserveStorageOp(operation string, success bool, seconds float64)
}

// Store декоратор хранилища, замеряющий длительность и результат каждой операции
type Store struct {
	inner     Storage
	collector Collector
}

// Wrap оборачивает хранилище сбором метрик
func Wrap(inner Storage, collector Collector) *Store {
	return &Store{inner: inner, collector: collector}
}

// List см. Storage.List
func (s *Store) List(ctx context.Context) ([]*domain.Appointment, error) {
	start := time.Now()
	appointments, err := s.inner.List(ctx)
	s.collector.ObserveStorageOp("list", err == nil, time.Since(start).Seconds())
	return appointments, err
}

// Append см. Storage.Append
func (s *Store) Append(ctx context.Context, appt *domain.Appointment) error {
	start := time.Now()
	err := s.inner.Append(ctx, appt)
	s.collector.ObserveStorageOp("append", err == nil, time.Since(start).Seconds())
	return err
}

// ReplaceStatus см. Storage.ReplaceStatus
func (s *Store) ReplaceStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	start := time.Now()
	appt, err := s.inner.ReplaceStatus(ctx, id, status)
	s.collector.ObserveStorageOp("replace_status", err == nil, time.Since(start).Seconds())
	return appt, err
}
