// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is the thread context for chat messages. Every conversation is
// bound to a job application and has exactly two parties: the teacher who
// applied and the school user who owns the job posting.
type Conversation struct {
	ID        uuid.UUID            `json:"id"`         // The Global Unique Identifier (GUID) for the conversation.
	JobID     uuid.UUID            `json:"job_id"`     // The job posting this application thread belongs to.
	SchoolID  uuid.UUID            `json:"school_id"`  // The user ID of the school side of the thread.
	TeacherID uuid.UUID            `json:"teacher_id"` // The user ID of the applying teacher.
	JobTitle  string               `json:"job_title"`  // Denormalized job title for display without a join.
	Log       []CommunicationEntry `json:"log"`        // Rolling mirror of recent messages kept for audit.
	CreatedAt time.Time            `json:"created_at"` // Timestamp of when this conversation was opened.
	UpdatedAt time.Time            `json:"updated_at"` // Timestamp of the last modification.
}

// CommunicationEntry is one row of the conversation's rolling communication log.
// It is a lightweight denormalized mirror of a Message, not the source of truth.
type CommunicationEntry struct {
	AuthorID uuid.UUID `json:"author_id"`
	Type     string    `json:"type"`
	Snippet  string    `json:"snippet"`
	SentAt   time.Time `json:"sent_at"`
}

// MaxCommunicationLogEntries bounds the rolling log kept on a conversation.
const MaxCommunicationLogEntries = 100

// IsParty reports whether the given user is one of the two conversation parties.
func (c *Conversation) IsParty(userID uuid.UUID) bool {
	return userID == c.SchoolID || userID == c.TeacherID
}

// Counterpart resolves the other party for a given sender. The second return
// value is false when the sender is not a party at all.
func (c *Conversation) Counterpart(senderID uuid.UUID) (uuid.UUID, bool) {
	switch senderID {
	case c.TeacherID:
		return c.SchoolID, true
	case c.SchoolID:
		return c.TeacherID, true
	default:
		return uuid.Nil, false
	}
}
