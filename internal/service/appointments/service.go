package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-ClinicService/internal/service/appointments/models"
)

// Service сервис для работы с заявками на прием
type Service struct {
	storage      AppointmentStorage
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(storage AppointmentStorage, logger Logger) *Service {
	return &Service{
		storage:      storage,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает все заявки.
// Пока файл хранилища не создан, коллекция пустая.
func (s *Service) List(ctx context.Context) ([]*domain.Appointment, error) {
	appointments, err := s.storage.List(ctx)
	if err != nil {
		s.logger.Error("List: storage error: %v", err)
		return nil, fmt.Errorf("%w: List - storage error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return appointments, nil
}

// Create валидирует заявку, присваивает идентификатор, время создания
// и статус pending, затем дописывает ее в хранилище.
// При ошибке хранилища заявка НЕ сохраняется.
func (s *Service) Create(ctx context.Context, req *models.CreateAppointmentRequest) (*domain.Appointment, error) {
	req = req.Trim()

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	appt := &domain.Appointment{
		ID:            uuid.NewString(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Service:       req.Service,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		CreatedAt:     s.timeProvider.Now().Format(time.RFC3339),
		Status:        domain.StatusPending,
	}

	if err := s.storage.Append(ctx, appt); err != nil {
		s.logger.Error("Create: storage error: %v", err)
		return nil, fmt.Errorf("%w: Create - storage error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: appointment created id=%s, service=%s, date=%s, time=%s",
		appt.ID, appt.Service, appt.PreferredDate, appt.PreferredTime)
	return appt, nil
}

// UpdateStatus переводит заявку в новый статус по идентификатору.
// Допустимые статусы: pending и approved. Если заявка не найдена,
// ничего не меняется и возвращается ErrAppointmentNotFound.
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (*domain.Appointment, error) {
	newStatus, err := domain.ParseAppointmentStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for id=%s", status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	appt, err := s.storage.ReplaceStatus(ctx, id, newStatus)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: storage error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - storage error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%s moved to status=%s", id, newStatus)
	return appt, nil
}

// validateCreateRequest проверяет, что все обязательные поля заполнены
func validateCreateRequest(req *models.CreateAppointmentRequest) error {
	for _, field := range req.RequiredFields() {
		if field[1] == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field[0])
		}
	}
	return nil
}
