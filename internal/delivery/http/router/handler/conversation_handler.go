package handler

import (
	"log/slog"
	"net/http"

	"teachmatch/internal/delivery/http/response"
	"teachmatch/internal/domain/entity"
	"teachmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConversationHandlerParams holds dependencies for ConversationHandler, injected by Fx.
type ConversationHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
	Logger    *slog.Logger
}

// ConversationHandler holds dependencies for conversation and message handlers
type ConversationHandler struct {
	messageUC usecase.MessageUsecase
	logger    *slog.Logger
}

// NewConversationHandler is the constructor for ConversationHandler
func NewConversationHandler(params ConversationHandlerParams) *ConversationHandler {
	return &ConversationHandler{
		messageUC: params.MessageUC,
		logger:    params.Logger,
	}
}

// OpenConversationRequest represents the request body for opening a thread.
// Called by the application flow when a teacher applies to a job.
type OpenConversationRequest struct {
	JobID     uuid.UUID `json:"job_id" validate:"required"`
	SchoolID  uuid.UUID `json:"school_id" validate:"required"`
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	JobTitle  string    `json:"job_title" validate:"required"`
}

// SendMessageRequest represents the request body for the pull-based send
// fallback used when no socket is available.
type SendMessageRequest struct {
	Body        string   `json:"body"`
	Type        string   `json:"type"`
	Attachments []string `json:"attachments"`
}

// ListConversations handles retrieving the user's conversation list
func (h *ConversationHandler) ListConversations(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	summaries, err := h.messageUC.ListConversations(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summaries, "Conversations retrieved successfully")
}

// OpenConversation handles creating an application thread
func (h *ConversationHandler) OpenConversation(c echo.Context) error {
	var req OpenConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid conversation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	conversation, err := h.messageUC.OpenConversation(c.Request().Context(),
		req.JobID, req.SchoolID, req.TeacherID, req.JobTitle)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, conversation, "Conversation opened successfully")
}

// ListMessages handles retrieving message history for a conversation.
// Fetching marks unread messages addressed to the caller as read.
func (h *ConversationHandler) ListMessages(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	conversationID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	limit, offset := parsePagination(c)
	messages, err := h.messageUC.ListConversationMessages(c.Request().Context(), userID, conversationID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved successfully")
}

// SendMessage handles sending a message over HTTP
func (h *ConversationHandler) SendMessage(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	conversationID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid message input")
	}

	message, err := h.messageUC.SendMessage(c.Request().Context(), userID, usecase.SendMessageInput{
		ConversationID: conversationID,
		Body:           req.Body,
		Type:           entity.MessageType(req.Type),
		Attachments:    req.Attachments,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent successfully")
}

// MarkRead handles flipping the caller's unread messages in a conversation
func (h *ConversationHandler) MarkRead(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	conversationID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	count, err := h.messageUC.MarkConversationRead(c.Request().Context(), userID, conversationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"marked": count}, "Messages marked as read")
}

// DeleteMessage handles soft-deleting a message on behalf of its sender
func (h *ConversationHandler) DeleteMessage(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	messageID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.messageUC.DeleteMessage(c.Request().Context(), userID, messageID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Message deleted successfully")
}
