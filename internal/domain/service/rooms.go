package service

import "github.com/google/uuid"

// Room identifiers are plain strings so the hub stays agnostic of what a room
// means. The builders below are the only place identifiers are formatted, so
// producers and subscribers can never drift apart.
const (
	// FeedRoom carries global announcements such as new job postings and blog
	// publications. Every connection joins it implicitly.
	FeedRoom = "feed"

	userRoomPrefix               = "user:"
	conversationRoomPrefix       = "conversation:"
	schoolApplicationsRoomPrefix = "school_applications:"
)

// UserRoom is the personal room a connection joins on authentication. All
// notification fan-out for the user lands here.
func UserRoom(userID uuid.UUID) string {
	return userRoomPrefix + userID.String()
}

// ConversationRoom carries live chat events for one application thread.
func ConversationRoom(conversationID uuid.UUID) string {
	return conversationRoomPrefix + conversationID.String()
}

// SchoolApplicationsRoom carries application activity for every job posting
// owned by the school user.
func SchoolApplicationsRoom(schoolID uuid.UUID) string {
	return schoolApplicationsRoomPrefix + schoolID.String()
}
