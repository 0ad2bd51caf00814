package ai_assist

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/pkg/ptr"
)

// Тексты для пациента при деградации AI-пути.
// Форма бронирования должна оставаться рабочей без ассистента,
// поэтому любой сбой превращается в вежливый ответ, а не в 5xx.
const (
	replyNotConfigured = "The AI assistant is not configured yet. Please fill out the form manually or contact the clinic."
	replyUnavailable   = "Sorry, the AI assistant is temporarily unavailable. Please try again or fill out the form manually."
	replyUnexpected    = "Sorry, something went wrong talking to the AI assistant. Please try again or fill out the form manually."
	replyUnparseable   = "Sorry, I couldn't understand the response."
)

// UseCase use case AI-ассистента: один вызов chat-completion,
// разбор предложенной услуги и подбор первого доступного слота под нее
type UseCase struct {
	chatClient   ChatCompletionClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(chatClient ChatCompletionClient, logger Logger) *UseCase {
	return &UseCase{
		chatClient:   chatClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute обрабатывает сообщение пациента.
//
// Ошибкой завершается только пустое сообщение. Все остальные сбои
// (нет ключа API, недоступность upstream, нечитаемый ответ модели)
// деградируют в Response с извинением, пустой услугой и полем Err.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		uc.logger.Warn("AIAssist: empty message")
		return nil, ErrMessageRequired
	}

	if !uc.chatClient.HasAPIKey() {
		uc.logger.Warn("AIAssist: api key is not configured, degrading")
		return &Response{
			Reply: replyNotConfigured,
			Err:   ptr.Ptr("OPENAI_API_KEY is not set on the server."),
		}, nil
	}

	raw, err := uc.chatClient.CreateChatCompletion(ctx, buildSystemPrompt(), message)
	if err != nil {
		uc.logger.Error("AIAssist: chat completion failed, degrading: %v", err)
		return &Response{
			Reply: replyUnavailable,
			Err:   ptr.Ptr("OpenAI API error"),
		}, nil
	}

	// Модель обязана вернуть один JSON-объект. Если она нарушила формат,
	// показываем сырой текст как ответ и не предлагаем услугу.
	var suggestion aiSuggestion
	if err := json.Unmarshal([]byte(raw), &suggestion); err != nil {
		uc.logger.Warn("AIAssist: unparseable model output, returning raw content")
		reply := raw
		if reply == "" {
			reply = replyUnparseable
		}
		return &Response{Reply: reply}, nil
	}

	resp := &Response{Reply: suggestion.Reply}
	if resp.Reply == "" {
		resp.Reply = raw
	}

	// Услуга вне фиксированного набора приравнивается к отсутствию предложения
	if suggestion.Service != nil {
		if svc, err := domain.ParseService(*suggestion.Service); err == nil {
			resp.Service = ptr.Ptr(string(svc))
			if slot, ok := domain.FirstAvailableSlot(svc, uc.timeProvider.Now()); ok {
				resp.Date = ptr.Ptr(slot.Date)
				if slot.Time != "" {
					resp.Time = ptr.Ptr(slot.Time)
				}
			}
		} else {
			uc.logger.Warn("AIAssist: model suggested unknown service %q", *suggestion.Service)
		}
	}

	uc.logger.Info("AIAssist: reply generated, service=%v", resp.Service)
	return resp, nil
}
