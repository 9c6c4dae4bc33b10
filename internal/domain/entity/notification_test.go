package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationType_Priority(t *testing.T) {
	high := []NotificationType{
		NotificationShortlisted,
		NotificationRejected,
		NotificationInterview,
		NotificationHired,
		NotificationMessage,
	}
	for _, typ := range high {
		assert.Equal(t, PriorityHigh, typ.Priority(), string(typ))
	}

	low := []NotificationType{
		NotificationJobPosted,
		NotificationApplicationReceived,
		NotificationBlogPublished,
	}
	for _, typ := range low {
		assert.Equal(t, PriorityLow, typ.Priority(), string(typ))
	}

	// Unknown types sink to low so they can never pop or push by default.
	assert.Equal(t, PriorityLow, NotificationType("smoke_signal").Priority())
}

func TestNotificationType_IsValid(t *testing.T) {
	for _, typ := range AllNotificationTypes() {
		assert.True(t, typ.IsValid(), string(typ))
	}

	assert.False(t, NotificationType("").IsValid())
	assert.False(t, NotificationType("smoke_signal").IsValid())
}
