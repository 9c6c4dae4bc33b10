package service

import (
	"context"
)

// PushSender defines the interface for the push delivery provider.
type PushSender interface {
	// SendBatch sends a push notification to multiple device tokens.
	// invalidTokens contains only tokens the provider reported as permanently
	// unregistered or malformed; transient failures count toward failureCount
	// but keep their tokens registered.
	SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
