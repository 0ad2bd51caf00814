package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

func TestParseService(t *testing.T) {
	for _, name := range []string{"ECG", "ULTRASOUND", "EYE CHECK UP", "2D ECHO"} {
		svc, err := ParseService(name)
		require.NoError(t, err)
		assert.Equal(t, Service(name), svc)
	}

	_, err := ParseService("MRI")
	assert.ErrorIs(t, err, ErrUnknownService)

	_, err = ParseService("")
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestServiceWeekdays(t *testing.T) {
	assert.Equal(t, time.Tuesday, ServiceUltrasound.Weekday())
	assert.Equal(t, time.Thursday, ServiceEyeCheckUp.Weekday())
	assert.Equal(t, time.Friday, Service2DEcho.Weekday())
	assert.Equal(t, time.Saturday, ServiceECG.Weekday())

	// Таблица статическая - повторный вызов дает то же значение
	for _, svc := range AllServices() {
		assert.Equal(t, svc.Weekday(), svc.Weekday())
	}
}

func TestAllServicesOrderedByWeekday(t *testing.T) {
	services := AllServices()
	require.Len(t, services, 4)

	for i := 1; i < len(services); i++ {
		assert.Less(t, services[i-1].Weekday(), services[i].Weekday())
	}
	assert.Equal(t, ServiceUltrasound, services[0])
	assert.Equal(t, ServiceECG, services[3])
}

func TestTimeSlots2DEcho(t *testing.T) {
	labels := TimeSlotLabels(Service2DEcho)

	assert.Equal(t, []string{
		"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM",
		"11:00 AM", "11:30 AM", "12:00 PM", "12:30 PM",
	}, labels)
}

func TestTimeSlotsUltrasound(t *testing.T) {
	labels := TimeSlotLabels(ServiceUltrasound)

	require.Len(t, labels, 48)
	assert.Equal(t, "9:00 AM", labels[0])
	assert.Equal(t, "12:55 PM", labels[47])
}

func TestTimeSlotsEyeCheckUp(t *testing.T) {
	labels := TimeSlotLabels(ServiceEyeCheckUp)

	require.Len(t, labels, 16)
	assert.Equal(t, "9:00 AM", labels[0])
	assert.Equal(t, "12:45 PM", labels[15])
}

func TestTimeSlotsWithinClinicHours(t *testing.T) {
	for _, svc := range AllServices() {
		slots := TimeSlots(svc)
		require.NotEmpty(t, slots)

		for i, slot := range slots {
			// Слот в окне [открытие, закрытие), конец не выходит за закрытие
			assert.False(t, slot.Before(OpeningTime))
			assert.True(t, slot.Before(ClosingTime))
			assert.False(t, slot.AddMinutes(svc.SlotDurationMinutes()).After(ClosingTime))

			// Строго возрастают
			if i > 0 {
				assert.True(t, slots[i-1].Before(slot))
			}
		}
	}
}

func TestTimeSlotsNoFit(t *testing.T) {
	// Контроль формулы генерации: окно в 4 часа не вмещает ни одного
	// слота длиннее окна
	slots := make([]types.ClockTime, 0)
	current := OpeningTime
	duration := 300 // 5 часов
	for !current.AddMinutes(duration).After(ClosingTime) {
		slots = append(slots, current)
		current = current.AddMinutes(duration)
	}
	assert.Empty(t, slots)
}

func TestAvailableDates(t *testing.T) {
	// Понедельник 13 октября 2025
	today := time.Date(2025, 10, 13, 15, 30, 0, 0, time.Local)

	dates := AvailableDates(time.Tuesday, 4, today)
	require.Len(t, dates, 4)

	assert.Equal(t, "2025-10-14", dates[0].Value)
	assert.Equal(t, "Tuesday, 10/14/2025", dates[0].Label)

	prev, err := time.ParseInLocation(DateFormat, dates[0].Value, time.Local)
	require.NoError(t, err)
	assert.Equal(t, time.Tuesday, prev.Weekday())

	for _, d := range dates[1:] {
		parsed, err := time.ParseInLocation(DateFormat, d.Value, time.Local)
		require.NoError(t, err)
		assert.Equal(t, time.Tuesday, parsed.Weekday())
		assert.Equal(t, 7*24*time.Hour, parsed.Sub(prev))
		prev = parsed
	}
}

func TestAvailableDatesTodayIncluded(t *testing.T) {
	// Сегодня вторник - первая дата должна быть сегодняшней
	today := time.Date(2025, 10, 14, 9, 0, 0, 0, time.Local)

	dates := AvailableDates(time.Tuesday, 8, today)
	require.Len(t, dates, 8)
	assert.Equal(t, "2025-10-14", dates[0].Value)
}

func TestFirstAvailableSlot(t *testing.T) {
	// Среда 15 октября 2025: ближайшая пятница - 17-е
	today := time.Date(2025, 10, 15, 12, 0, 0, 0, time.Local)

	slot, ok := FirstAvailableSlot(Service2DEcho, today)
	require.True(t, ok)
	assert.Equal(t, "2025-10-17", slot.Date)
	assert.Equal(t, "9:00 AM", slot.Time)
}
