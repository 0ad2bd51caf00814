package domain

import "github.com/m04kA/SMC-ClinicService/pkg/types"

// Часы приема клиники: слоты генерируются в окне [открытие, закрытие)
var (
	OpeningTime = types.MustClockTime(9, 0)
	ClosingTime = types.MustClockTime(13, 0)
)

// Параметры генерации дат
const (
	// DefaultDateCount сколько ближайших дат предлагается пациенту
	DefaultDateCount = 8

	// FirstSlotDateCount сколько дат просматривается при поиске первого свободного слота
	FirstSlotDateCount = 4
)

// Форматы даты
const (
	DateFormat      = "2006-01-02"        // YYYY-MM-DD
	DateLabelFormat = "Monday, 01/02/2006" // подпись даты для пациента
)
