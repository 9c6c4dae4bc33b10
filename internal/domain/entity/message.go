// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageType classifies the payload of a chat message.
type MessageType string

const (
	// MessageTypeText is a plain text message.
	MessageTypeText MessageType = "text"
	// MessageTypeImage is a message carrying image attachments.
	MessageTypeImage MessageType = "image"
	// MessageTypeFile is a message carrying document attachments.
	MessageTypeFile MessageType = "file"
)

// String returns the wire representation of the message type.
func (t MessageType) String() string {
	return string(t)
}

// IsValid checks if the MessageType is a valid value.
func (t MessageType) IsValid() bool {
	switch t {
	case MessageTypeText, MessageTypeImage, MessageTypeFile:
		return true
	default:
		return false
	}
}

// Message is one chat message inside a conversation. A message is immutable
// after creation except for its read and delete flags: the receiver marks it
// read, the sender may soft-delete it. The receiver is always derived from the
// conversation parties, never supplied by the client.
type Message struct {
	ID             uuid.UUID   `json:"id"`
	ConversationID uuid.UUID   `json:"conversation_id"`
	SenderID       uuid.UUID   `json:"sender_id"`
	ReceiverID     uuid.UUID   `json:"receiver_id"`
	Body           string      `json:"body"`
	Type           MessageType `json:"type"`
	Attachments    []string    `json:"attachments,omitempty"` // Opaque attachment URLs; upload handling is external.
	IsRead         bool        `json:"is_read"`
	ReadAt         *time.Time  `json:"read_at,omitempty"`
	IsDeleted      bool        `json:"is_deleted"`
	DeletedAt      *time.Time  `json:"deleted_at,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
