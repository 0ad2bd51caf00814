package list_services

import (
	"net/http"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// ServiceInfo HTTP response model: услуга и ее статическое расписание
type ServiceInfo struct {
	Name                string `json:"name"`
	Weekday             int    `json:"weekday"` // Sunday=0
	WeekdayName         string `json:"weekdayName"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /services
// Услуги отсортированы по дню недели - в таком порядке их видит пациент.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services := domain.AllServices()

	out := make([]ServiceInfo, len(services))
	for i, svc := range services {
		out[i] = ServiceInfo{
			Name:                string(svc),
			Weekday:             int(svc.Weekday()),
			WeekdayName:         svc.Weekday().String(),
			SlotDurationMinutes: svc.SlotDurationMinutes(),
		}
	}

	handlers.RespondJSON(w, http.StatusOK, out)
}
