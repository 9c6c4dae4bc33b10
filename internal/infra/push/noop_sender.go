package push

import (
	"context"
	"log/slog"

	"teachmatch/internal/domain/service"
)

type noopSender struct {
	logger *slog.Logger
}

// NewNoopSender creates a push sender that drops everything. Used when
// Firebase is not configured, typically in local development.
func NewNoopSender(logger *slog.Logger) service.PushSender {
	return &noopSender{logger: logger}
}

func (s *noopSender) SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	s.logger.Debug("push disabled, dropping batch",
		slog.String("title", title),
		slog.Int("tokens", len(tokens)),
	)

	return 0, 0, nil, nil
}
