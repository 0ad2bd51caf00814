package models

import "strings"

// CreateAppointmentRequest модель запроса на создание заявки.
// Все поля обязательны; значения обрезаются от пробелов перед сохранением.
type CreateAppointmentRequest struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Service       string
	PreferredDate string
	PreferredTime string
}

// Trim возвращает копию запроса с обрезанными пробелами во всех полях
func (r *CreateAppointmentRequest) Trim() *CreateAppointmentRequest {
	return &CreateAppointmentRequest{
		FirstName:     strings.TrimSpace(r.FirstName),
		LastName:      strings.TrimSpace(r.LastName),
		Email:         strings.TrimSpace(r.Email),
		Phone:         strings.TrimSpace(r.Phone),
		Service:       strings.TrimSpace(r.Service),
		PreferredDate: strings.TrimSpace(r.PreferredDate),
		PreferredTime: strings.TrimSpace(r.PreferredTime),
	}
}

// RequiredFields пары (имя поля, значение) в порядке формы бронирования
func (r *CreateAppointmentRequest) RequiredFields() [][2]string {
	return [][2]string{
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"email", r.Email},
		{"phone", r.Phone},
		{"service", r.Service},
		{"preferredDate", r.PreferredDate},
		{"preferredTime", r.PreferredTime},
	}
}
