package update_appointment_status

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/internal/service/appointments"
)

type fakeService struct {
	appt      *domain.Appointment
	err       error
	gotID     string
	gotStatus string
}

func (f *fakeService) UpdateStatus(ctx context.Context, id string, status string) (*domain.Appointment, error) {
	f.gotID = id
	f.gotStatus = status
	if f.err != nil {
		return nil, f.err
	}
	return f.appt, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, h *Handler, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/appointments/"+id, bytes.NewBufferString(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleUpdated(t *testing.T) {
	svc := &fakeService{
		appt: &domain.Appointment{ID: "id-1", Status: domain.StatusApproved},
	}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, "id-1", `{"status": "approved"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "id-1", svc.gotID)
	assert.Equal(t, "approved", svc.gotStatus)

	var got domain.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, domain.StatusApproved, got.Status)
}

func TestHandleInvalidStatus(t *testing.T) {
	svc := &fakeService{err: appointments.ErrInvalidStatus}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, "id-1", `{"status": "cancelled"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "pending")
}

func TestHandleNotFound(t *testing.T) {
	svc := &fakeService{err: appointments.ErrAppointmentNotFound}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, "unknown", `{"status": "approved"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found")
}

func TestHandleEmptyBodyTreatedAsEmptyStatus(t *testing.T) {
	svc := &fakeService{err: appointments.ErrInvalidStatus}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, "id-1", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "", svc.gotStatus)
}
