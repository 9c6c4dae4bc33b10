package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConversation_Parties(t *testing.T) {
	schoolID := uuid.New()
	teacherID := uuid.New()
	conversation := &Conversation{
		ID:        uuid.New(),
		SchoolID:  schoolID,
		TeacherID: teacherID,
	}

	assert.True(t, conversation.IsParty(schoolID))
	assert.True(t, conversation.IsParty(teacherID))
	assert.False(t, conversation.IsParty(uuid.New()))

	counterpart, ok := conversation.Counterpart(schoolID)
	assert.True(t, ok)
	assert.Equal(t, teacherID, counterpart)

	counterpart, ok = conversation.Counterpart(teacherID)
	assert.True(t, ok)
	assert.Equal(t, schoolID, counterpart)

	_, ok = conversation.Counterpart(uuid.New())
	assert.False(t, ok)
}
