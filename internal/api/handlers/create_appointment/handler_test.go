package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/internal/service/appointments"
	"github.com/m04kA/SMC-ClinicService/internal/service/appointments/models"
)

type fakeService struct {
	appt *domain.Appointment
	err  error
	got  *models.CreateAppointmentRequest
}

func (f *fakeService) Create(ctx context.Context, req *models.CreateAppointmentRequest) (*domain.Appointment, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.appt, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleCreated(t *testing.T) {
	created := &domain.Appointment{
		ID:        "id-1",
		FirstName: "Anna",
		Service:   "2D ECHO",
		Status:    domain.StatusPending,
	}
	svc := &fakeService{appt: created}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, `{
		"firstName": "Anna", "lastName": "Petrova",
		"email": "anna@example.com", "phone": "+10000000001",
		"service": "2D ECHO", "preferredDate": "2025-10-17", "preferredTime": "9:00 AM"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, domain.StatusPending, got.Status)

	require.NotNil(t, svc.got)
	assert.Equal(t, "2D ECHO", svc.got.Service)
}

func TestHandleMissingField(t *testing.T) {
	svc := &fakeService{err: appointments.ErrMissingField}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, `{"firstName": "Anna"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required fields")
}

func TestHandleInvalidBody(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, "{not json")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.got)
}

func TestHandleStorageError(t *testing.T) {
	svc := &fakeService{err: errors.New("storage failed")}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, `{"firstName": "Anna"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
