package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// fixedTimeProvider провайдер с фиксированным "сегодня" для детерминизма
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(now time.Time) *UseCase {
	uc := NewUseCase(nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute(t *testing.T) {
	// Понедельник 13 октября 2025
	uc := newTestUseCase(time.Date(2025, 10, 13, 10, 0, 0, 0, time.Local))

	resp, err := uc.Execute(context.Background(), &Request{Service: "2D ECHO"})
	require.NoError(t, err)

	assert.Equal(t, domain.Service2DEcho, resp.Service)
	assert.Equal(t, 5, resp.Weekday)
	assert.Equal(t, "Friday", resp.WeekdayName)

	require.Len(t, resp.Dates, domain.DefaultDateCount)
	assert.Equal(t, "2025-10-17", resp.Dates[0].Value)
	assert.Equal(t, "Friday, 10/17/2025", resp.Dates[0].Label)

	require.Len(t, resp.Times, 8)
	assert.Equal(t, "9:00 AM", resp.Times[0])
	assert.Equal(t, "12:30 PM", resp.Times[7])

	require.NotNil(t, resp.FirstAvailable)
	assert.Equal(t, "2025-10-17", resp.FirstAvailable.Date)
	assert.Equal(t, "9:00 AM", resp.FirstAvailable.Time)
}

func TestExecuteCustomCount(t *testing.T) {
	uc := newTestUseCase(time.Date(2025, 10, 13, 10, 0, 0, 0, time.Local))

	resp, err := uc.Execute(context.Background(), &Request{Service: "ULTRASOUND", Count: 3})
	require.NoError(t, err)

	require.Len(t, resp.Dates, 3)
	for _, d := range resp.Dates {
		parsed, err := time.ParseInLocation(domain.DateFormat, d.Value, time.Local)
		require.NoError(t, err)
		assert.Equal(t, time.Tuesday, parsed.Weekday())
	}
	assert.Len(t, resp.Times, 48)
}

func TestExecuteUnknownService(t *testing.T) {
	uc := newTestUseCase(time.Now())

	_, err := uc.Execute(context.Background(), &Request{Service: "MRI"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecuteEmptyService(t *testing.T) {
	uc := newTestUseCase(time.Now())

	_, err := uc.Execute(context.Background(), &Request{Service: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteNegativeCount(t *testing.T) {
	uc := newTestUseCase(time.Now())

	_, err := uc.Execute(context.Background(), &Request{Service: "ECG", Count: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
