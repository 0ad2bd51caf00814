package domain

import (
	"time"

	"github.com/m04kA/SMC-ClinicService/pkg/types"
)

// DateOption календарная дата приема: машинное значение и подпись для пациента
type DateOption struct {
	Value string // YYYY-MM-DD
	Label string // "Tuesday, 10/14/2025"
}

// Slot первая доступная пара (дата, время) для услуги
type Slot struct {
	Date string // YYYY-MM-DD
	Time string // метка слота, например "9:00 AM"
}

// AvailableDates возвращает count ближайших дат, выпадающих на weekday,
// начиная с today (сегодня включается, если день недели совпадает).
// Даты считаются по локальному календарю без нормализации таймзоны.
func AvailableDates(weekday time.Weekday, count int, today time.Time) []DateOption {
	daysAhead := (int(weekday) - int(today.Weekday()) + 7) % 7
	d := today.AddDate(0, 0, daysAhead)

	out := make([]DateOption, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, DateOption{
			Value: d.Format(DateFormat),
			Label: d.Format(DateLabelFormat),
		})
		d = d.AddDate(0, 0, 7)
	}
	return out
}

// TimeSlots возвращает слоты услуги в часы приема клиники.
// Слоты идут с шагом длительности процедуры от открытия;
// слот включается, только если его конец не выходит за время закрытия.
func TimeSlots(svc Service) []types.ClockTime {
	duration := svc.SlotDurationMinutes()

	slots := make([]types.ClockTime, 0)
	current := OpeningTime
	for !current.AddMinutes(duration).After(ClosingTime) {
		slots = append(slots, current)
		current = current.AddMinutes(duration)
	}
	return slots
}

// TimeSlotLabels то же, что TimeSlots, но в виде меток для пациента
func TimeSlotLabels(svc Service) []string {
	slots := TimeSlots(svc)
	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.Label()
	}
	return labels
}

// FirstAvailableSlot возвращает самую раннюю пару (дата, время) для услуги:
// ближайшая дата услуги плюс самый ранний слот дня.
// Существующие записи НЕ учитываются - "доступность" здесь означает
// расписание клиники, а не отсутствие других пациентов на этом слоте.
func FirstAvailableSlot(svc Service, today time.Time) (Slot, bool) {
	dates := AvailableDates(svc.Weekday(), FirstSlotDateCount, today)
	if len(dates) == 0 {
		return Slot{}, false
	}

	times := TimeSlots(svc)
	if len(times) == 0 {
		return Slot{Date: dates[0].Value}, true
	}

	return Slot{
		Date: dates[0].Value,
		Time: times[0].Label(),
	}, true
}
