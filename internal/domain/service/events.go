package service

// Event names shared by the live delivery surface and the fan-out engine.
// They appear verbatim on the wire inside event envelopes.
const (
	// EventNewMessage announces a chat message to the conversation room.
	EventNewMessage = "new_message"
	// EventMessagesRead tells the conversation room that unread messages of
	// one receiver were flipped to read.
	EventMessagesRead = "messages_read"
	// EventMessageDeleted tells the conversation room a message was removed.
	EventMessageDeleted = "message_deleted"
	// EventNewNotification delivers a persisted notification to the owner's
	// personal room together with its popup directive.
	EventNewNotification = "new_notification"
)
