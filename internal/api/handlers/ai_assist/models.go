package ai_assist

import (
	aiAssist "github.com/m04kA/SMC-ClinicService/internal/usecase/ai_assist"
)

// AIAssistRequest HTTP request model
type AIAssistRequest struct {
	Message string `json:"message"`
}

// AIAssistResponse HTTP response model.
// service/date/time явно null, когда ассистент ничего не предложил, -
// фронту не нужно различать отсутствие ключа и null.
type AIAssistResponse struct {
	Reply   string  `json:"reply"`
	Service *string `json:"service"`
	Date    *string `json:"date"`
	Time    *string `json:"time"`
	Error   *string `json:"error,omitempty"`
}

// MissingMessageResponse тело 400 при пустом сообщении:
// кроме ошибки содержит подсказку, которую фронт может показать в чате
type MissingMessageResponse struct {
	Error string `json:"error"`
	Reply string `json:"reply"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *aiAssist.Response) *AIAssistResponse {
	return &AIAssistResponse{
		Reply:   resp.Reply,
		Service: resp.Service,
		Date:    resp.Date,
		Time:    resp.Time,
		Error:   resp.Err,
	}
}
