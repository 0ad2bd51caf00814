package ai_assist

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicService/internal/api/handlers"
	aiAssist "github.com/m04kA/SMC-ClinicService/internal/usecase/ai_assist"
	"github.com/m04kA/SMC-ClinicService/pkg/ptr"
)

const (
	msgInvalidRequestBody = "Invalid JSON body"
	msgMissingMessage     = "Missing message"
	replyMissingMessage   = "Please type your question or concern."
	replyUnexpected       = "Sorry, something went wrong talking to the AI assistant. Please try again or fill out the form manually."
)

type Handler struct {
	useCase AIAssistUseCase
	logger  Logger
}

func NewHandler(useCase AIAssistUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /ai-assist
//
// Контракт деградации: кроме пустого сообщения (400) путь всегда отвечает 200.
// Любой сбой ниже по стеку превращается в извинение с service=null, чтобы
// форма бронирования оставалась рабочей без ассистента.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Паника в AI-пути не должна ронять процесс и не должна давать 5xx
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("POST /ai-assist - Panic recovered: %v", rec)
			handlers.RespondJSON(w, http.StatusOK, &AIAssistResponse{
				Reply: replyUnexpected,
				Error: ptr.Ptr("Unexpected error"),
			})
		}
	}()

	var req AIAssistRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /ai-assist - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &aiAssist.Request{Message: req.Message})
	if err != nil {
		switch {
		case errors.Is(err, aiAssist.ErrMessageRequired):
			h.logger.Warn("POST /ai-assist - Missing message")
			handlers.RespondJSON(w, http.StatusBadRequest, &MissingMessageResponse{
				Error: msgMissingMessage,
				Reply: replyMissingMessage,
			})

		default:
			// Use case деградирует сам; сюда попадать не должно.
			// На всякий случай отвечаем в том же деградированном контракте.
			h.logger.Error("POST /ai-assist - Unexpected error: %v", err)
			handlers.RespondJSON(w, http.StatusOK, &AIAssistResponse{
				Reply: replyUnexpected,
				Error: ptr.Ptr("Unexpected error"),
			})
		}
		return
	}

	h.logger.Info("POST /ai-assist - Reply sent, service=%v", result.Service)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
