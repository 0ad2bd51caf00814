package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ClinicService/internal/usecase/get_available_slots"
)

const (
	msgServiceNotFound = "service not found"
	msgInvalidCount    = "count must be a positive integer"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /services/{service}/availability
// Название услуги в пути URL-экранировано (содержит пробелы).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	service := vars["service"]

	count := 0
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /services/{service}/availability - Invalid count %q", raw)
			handlers.RespondBadRequest(w, msgInvalidCount)
			return
		}
		count = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Service: service,
		Count:   count,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /services/{service}/availability - Service not found: %q", service)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /services/{service}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /services/{service}/availability - Failed: service=%q, error=%v", service, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{service}/availability - %d dates, %d times for %q",
		len(result.Dates), len(result.Times), service)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
