package create_appointment

import (
	"github.com/m04kA/SMC-ClinicService/internal/service/appointments/models"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Service       string `json:"service"`
	PreferredDate string `json:"preferredDate"` // "2025-10-14"
	PreferredTime string `json:"preferredTime"` // "9:30 AM"
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateAppointmentRequest) ToServiceRequest() *models.CreateAppointmentRequest {
	return &models.CreateAppointmentRequest{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		Service:       r.Service,
		PreferredDate: r.PreferredDate,
		PreferredTime: r.PreferredTime,
	}
}
