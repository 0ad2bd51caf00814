package types

import (
	"fmt"
)

// ClockTime время суток, хранится как количество минут с полуночи.
// Используется для генерации и сравнения слотов без привязки к дате и таймзоне.
type ClockTime int

// NewClockTime создает ClockTime из часов и минут
func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("clocktime: invalid hour %d", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clocktime: invalid minute %d", minute)
	}
	return ClockTime(hour*60 + minute), nil
}

// MustClockTime как NewClockTime, но паникует при некорректных значениях.
// Использовать только для статических констант.
func MustClockTime(hour, minute int) ClockTime {
	t, err := NewClockTime(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут
func (t ClockTime) AddMinutes(minutes int) ClockTime {
	return t + ClockTime(minutes)
}

// Before строгое сравнение "раньше"
func (t ClockTime) Before(other ClockTime) bool {
	return t < other
}

// After строгое сравнение "позже"
func (t ClockTime) After(other ClockTime) bool {
	return t > other
}

// Hour час (0-23)
func (t ClockTime) Hour() int {
	return int(t) / 60
}

// Minute минута (0-59)
func (t ClockTime) Minute() int {
	return int(t) % 60
}

// String формат HH:MM (24-часовой)
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Label формат для пациента: 12-часовой с AM/PM, без ведущего нуля ("9:00 AM", "12:30 PM")
func (t ClockTime) Label() string {
	h := t.Hour()
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, t.Minute(), ampm)
}
