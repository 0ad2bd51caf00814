package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-ClinicService/internal/usecase/get_available_slots"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Service        string         `json:"service"`
	Weekday        int            `json:"weekday"` // Sunday=0
	WeekdayName    string         `json:"weekdayName"`
	Dates          []DateOption   `json:"dates"`
	Times          []string       `json:"times"`
	FirstAvailable *FirstSlotInfo `json:"firstAvailable"`
}

// DateOption дата приема: значение для формы и подпись для пациента
type DateOption struct {
	Value string `json:"value"` // "2025-10-14"
	Label string `json:"label"` // "Tuesday, 10/14/2025"
}

// FirstSlotInfo первая доступная пара (дата, время)
type FirstSlotInfo struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	dates := make([]DateOption, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = DateOption{Value: d.Value, Label: d.Label}
	}

	out := &AvailabilityResponse{
		Service:     string(resp.Service),
		Weekday:     resp.Weekday,
		WeekdayName: resp.WeekdayName,
		Dates:       dates,
		Times:       resp.Times,
	}

	if resp.FirstAvailable != nil {
		out.FirstAvailable = &FirstSlotInfo{
			Date: resp.FirstAvailable.Date,
			Time: resp.FirstAvailable.Time,
		}
	}

	return out
}
