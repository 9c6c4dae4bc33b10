// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType is the closed set of user-facing event kinds the platform
// emits. Popup and push policy is driven off the type's priority, so adding a
// type here is the single place delivery behavior is decided.
type NotificationType string

const (
	// NotificationShortlisted tells a teacher their application was shortlisted.
	NotificationShortlisted NotificationType = "shortlist"
	// NotificationRejected tells a teacher their application was rejected.
	NotificationRejected NotificationType = "reject"
	// NotificationInterview tells a teacher an interview was scheduled.
	NotificationInterview NotificationType = "interview"
	// NotificationHired tells a teacher they were hired.
	NotificationHired NotificationType = "hired"
	// NotificationMessage tells a user they received a chat message.
	NotificationMessage NotificationType = "message"
	// NotificationJobPosted announces a new job posting to followers.
	NotificationJobPosted NotificationType = "job_posted"
	// NotificationApplicationReceived tells a school a teacher applied.
	NotificationApplicationReceived NotificationType = "application_received"
	// NotificationBlogPublished announces a new blog post.
	NotificationBlogPublished NotificationType = "blog_published"
)

// NotificationPriority buckets types for the popup/push policy.
type NotificationPriority int

const (
	// PriorityLow types never force a popup and push only when explicitly requested.
	PriorityLow NotificationPriority = iota
	// PriorityHigh types warrant a blocking popup on mobile and push by default.
	PriorityHigh
)

// notificationPriorities is the exhaustive priority table for the closed enum.
var notificationPriorities = map[NotificationType]NotificationPriority{
	NotificationShortlisted:         PriorityHigh,
	NotificationRejected:            PriorityHigh,
	NotificationInterview:           PriorityHigh,
	NotificationHired:               PriorityHigh,
	NotificationMessage:             PriorityHigh,
	NotificationJobPosted:           PriorityLow,
	NotificationApplicationReceived: PriorityLow,
	NotificationBlogPublished:       PriorityLow,
}

// IsValid checks if the NotificationType is a member of the closed set.
func (t NotificationType) IsValid() bool {
	_, ok := notificationPriorities[t]

	return ok
}

// Priority returns the delivery priority for this type. Unknown types are
// treated as low priority so they can never trigger popups or default push.
func (t NotificationType) Priority() NotificationPriority {
	return notificationPriorities[t]
}

// AllNotificationTypes returns every member of the closed type set.
func AllNotificationTypes() []NotificationType {
	types := make([]NotificationType, 0, len(notificationPriorities))
	for t := range notificationPriorities {
		types = append(types, t)
	}

	return types
}

// Notification is a persisted user-facing event record. It stays queryable
// through the pull API even when every live delivery channel failed.
type Notification struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Type      NotificationType  `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Data      map[string]string `json:"data,omitempty"` // Structured payload: entity ids plus denormalized labels.
	IsRead    bool              `json:"is_read"`
	ReadAt    *time.Time        `json:"read_at,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
