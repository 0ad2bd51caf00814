package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// UseCase use case для получения доступных дат и времен услуги
type UseCase struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает ближайшие даты и слоты времени для услуги.
// Расчет чисто календарный: существующие записи не учитываются,
// занятость слотов не проверяется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	svc, err := domain.ParseService(req.Service)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: unknown service %q", req.Service)
		return nil, ErrServiceNotFound
	}

	count := req.Count
	if count == 0 {
		count = domain.DefaultDateCount
	}

	today := uc.timeProvider.Now()

	resp := &Response{
		Service:     svc,
		Weekday:     int(svc.Weekday()),
		WeekdayName: svc.Weekday().String(),
		Dates:       domain.AvailableDates(svc.Weekday(), count, today),
		Times:       domain.TimeSlotLabels(svc),
	}

	if slot, ok := domain.FirstAvailableSlot(svc, today); ok {
		resp.FirstAvailable = &slot
	}

	uc.logger.Info("GetAvailableSlots: service=%s, weekday=%s, dates=%d, times=%d",
		svc, resp.WeekdayName, len(resp.Dates), len(resp.Times))
	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if req.Count < 0 {
		return fmt.Errorf("%w: count must be non-negative", ErrInvalidInput)
	}
	return nil
}
