// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"teachmatch/internal/delivery/http/middleware"
	"teachmatch/internal/delivery/http/router/handler"
	"teachmatch/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ConversationHandler *handler.ConversationHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	RealtimeHandler     *handler.RealtimeHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	conversationHandler *handler.ConversationHandler
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	realtimeHandler     *handler.RealtimeHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		conversationHandler: params.ConversationHandler,
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		realtimeHandler:     params.RealtimeHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// WebSocket endpoint; the handler authenticates the handshake itself
	// because browsers cannot attach headers to an upgrade request.
	e.GET("/ws", r.realtimeHandler.Connect)

	// Conversation routes that require authentication
	conversationGroup := e.Group("/conversations")
	conversationGroup.Use(r.authMiddleware.Authenticate)
	{
		conversationGroup.GET("", r.conversationHandler.ListConversations)
		conversationGroup.GET("/:id/messages", r.conversationHandler.ListMessages)
		conversationGroup.POST("/:id/messages", r.conversationHandler.SendMessage)
		conversationGroup.POST("/:id/read", r.conversationHandler.MarkRead)
	}

	messageGroup := e.Group("/messages")
	messageGroup.Use(r.authMiddleware.Authenticate)
	{
		messageGroup.DELETE("/:id", r.conversationHandler.DeleteMessage)
	}

	// Notification routes that require authentication
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.ListNotifications)
		notificationGroup.GET("/unread", r.notificationHandler.CountUnread)
		notificationGroup.POST("/:id/read", r.notificationHandler.MarkRead)
		notificationGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
		notificationGroup.DELETE("/:id", r.notificationHandler.DeleteNotification)
	}

	// Device routes that require authentication
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.DELETE("", r.deviceHandler.UnregisterDevice)
		deviceGroup.GET("", r.deviceHandler.ListDevices)
	}

	// Internal routes that require authentication and the "admin" role.
	// Thread creation and notification publishing are driven by the other
	// platform services, not end users.
	internalGroup := e.Group("/internal")
	internalGroup.Use(r.authMiddleware.Authenticate)
	internalGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleAdmin)))
	{
		internalGroup.POST("/conversations", r.conversationHandler.OpenConversation)
		internalGroup.POST("/notifications", r.notificationHandler.PublishNotification)
		internalGroup.GET("/realtime/stats", r.realtimeHandler.Stats)
	}
}
