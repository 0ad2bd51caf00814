package ai_assist

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aiAssist "github.com/m04kA/SMC-ClinicService/internal/usecase/ai_assist"
	"github.com/m04kA/SMC-ClinicService/pkg/ptr"
)

type fakeUseCase struct {
	resp  *aiAssist.Response
	err   error
	panic bool
}

func (f *fakeUseCase) Execute(ctx context.Context, req *aiAssist.Request) (*aiAssist.Response, error) {
	if f.panic {
		panic("boom")
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ai-assist", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleSuggestion(t *testing.T) {
	uc := &fakeUseCase{
		resp: &aiAssist.Response{
			Reply:   "An ECG will check your heart rhythm.",
			Service: ptr.Ptr("ECG"),
			Date:    ptr.Ptr("2025-10-18"),
			Time:    ptr.Ptr("9:00 AM"),
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"message": "my heart races"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got AIAssistResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "An ECG will check your heart rhythm.", got.Reply)
	require.NotNil(t, got.Service)
	assert.Equal(t, "ECG", *got.Service)
	require.NotNil(t, got.Date)
	assert.Equal(t, "2025-10-18", *got.Date)
	assert.Nil(t, got.Error)
}

func TestHandleNullServiceIsExplicit(t *testing.T) {
	uc := &fakeUseCase{resp: &aiAssist.Response{Reply: "Tell me more."}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"message": "hello"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	// service/date/time присутствуют в JSON как null
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{"service", "date", "time"} {
		require.Contains(t, raw, key)
		assert.Equal(t, "null", string(raw[key]))
	}
	assert.NotContains(t, raw, "error")
}

func TestHandleMissingMessage(t *testing.T) {
	uc := &fakeUseCase{err: aiAssist.ErrMessageRequired}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"message": ""}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got MissingMessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Missing message", got.Error)
	assert.NotEmpty(t, got.Reply)
}

func TestHandleInvalidBody(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, "{not json")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDegradedResponseStays200(t *testing.T) {
	uc := &fakeUseCase{
		resp: &aiAssist.Response{
			Reply: "Sorry, the AI assistant is temporarily unavailable. Please try again or fill out the form manually.",
			Err:   ptr.Ptr("OpenAI API error"),
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"message": "help"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got AIAssistResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.Error)
	assert.Equal(t, "OpenAI API error", *got.Error)
	assert.Nil(t, got.Service)
}

func TestHandlePanicDegradesTo200(t *testing.T) {
	uc := &fakeUseCase{panic: true}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"message": "help"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got AIAssistResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.Error)
	assert.Equal(t, "Unexpected error", *got.Error)
	assert.NotEmpty(t, got.Reply)
}
