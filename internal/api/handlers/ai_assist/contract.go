package ai_assist

import (
	"context"

	aiAssist "github.com/m04kA/SMC-ClinicService/internal/usecase/ai_assist"
)

type AIAssistUseCase interface {
	Execute(ctx context.Context, req *aiAssist.Request) (*aiAssist.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
