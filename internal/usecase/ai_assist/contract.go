package ai_assist

import (
	"context"
	"time"
)

// ChatCompletionClient интерфейс клиента chat-completion API
type ChatCompletionClient interface {
	HasAPIKey() bool
	CreateChatCompletion(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования).
// Нужен для подбора первого доступного слота под предложенную услугу.
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
