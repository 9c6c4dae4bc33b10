package handler

import (
	"log/slog"
	"net/http"

	"teachmatch/config"
	deliverycontext "teachmatch/internal/delivery/context"
	"teachmatch/internal/delivery/http/response"
	domainerrors "teachmatch/internal/domain/errors"
	"teachmatch/internal/errors"
	"teachmatch/internal/realtime"
	"teachmatch/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RealtimeHandlerParams holds dependencies for RealtimeHandler, injected by Fx.
type RealtimeHandlerParams struct {
	fx.In

	Config        *config.Config
	Hub           *realtime.Hub
	Authenticator *realtime.Authenticator
	MessageUC     usecase.MessageUsecase
	Logger        *slog.Logger
}

// RealtimeHandler upgrades connections and hands them to the hub.
type RealtimeHandler struct {
	cfg           config.RealtimeConfig
	hub           *realtime.Hub
	authenticator *realtime.Authenticator
	messageUC     usecase.MessageUsecase
	upgrader      websocket.Upgrader
	logger        *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler.
func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	return &RealtimeHandler{
		cfg:           *params.Config.Realtime,
		hub:           params.Hub,
		authenticator: params.Authenticator,
		messageUC:     params.MessageUC,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Token auth replaces origin checks; mobile clients send no Origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: params.Logger,
	}
}

// Connect authenticates the handshake and upgrades it to a WebSocket session.
// The session blocks the handler goroutine until the connection closes, which
// is how echo expects long-lived connections to be held.
func (h *RealtimeHandler) Connect(c echo.Context) error {
	req := c.Request()
	ctx := deliverycontext.WithRequestID(req.Context(), deliverycontext.GetRequestID(c))

	user, err := h.authenticator.Authenticate(ctx, req)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return response.Unauthorized(c, appErr.ErrorCode(), appErr.Message())
		}

		h.logger.Error("websocket authentication failed",
			slog.String("error", err.Error()),
		)

		return response.InternalServerError(c, "INTERNAL_ERROR", "Something went wrong")
	}

	platform := realtime.ClassifyPlatform(req)

	conn, err := h.upgrader.Upgrade(c.Response(), req, nil)
	if err != nil {
		// Upgrade already wrote the failure response.
		h.logger.Warn("websocket upgrade failed",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()),
		)

		return nil
	}

	client := realtime.NewClient(conn, user.ID, platform, h.cfg)
	session := realtime.NewSession(ctx, client, h.hub, user, h.messageUC, h.cfg, h.logger)
	session.Run()

	return nil
}

// Stats exposes hub counters for operators.
func (h *RealtimeHandler) Stats(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.hub.Stats(), "Hub stats retrieved successfully")
}
