package domain

// AppointmentStatus статус заявки на прием
type AppointmentStatus string

const (
	StatusPending  AppointmentStatus = "pending"
	StatusApproved AppointmentStatus = "approved"
)

// ParseAppointmentStatus проверяет, что строка является допустимым статусом
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusApproved:
		return AppointmentStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Appointment заявка пациента на прием.
// JSON-теги задают формат как в файле хранилища, так и в API.
type Appointment struct {
	ID            string            `json:"id"`
	FirstName     string            `json:"firstName"`
	LastName      string            `json:"lastName"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Service       string            `json:"service"`
	PreferredDate string            `json:"preferredDate"` // YYYY-MM-DD
	PreferredTime string            `json:"preferredTime"` // метка слота, например "9:30 AM"
	CreatedAt     string            `json:"createdAt"`     // RFC3339
	Status        AppointmentStatus `json:"status"`
}

// IsPending заявка еще не подтверждена клиникой
func (a *Appointment) IsPending() bool {
	return a.Status == StatusPending
}

// IsApproved заявка подтверждена клиникой
func (a *Appointment) IsApproved() bool {
	return a.Status == StatusApproved
}
