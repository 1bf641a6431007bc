package handler

import (
	"net/http"
	"strings"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"skillio/internal/infrastructure/token"
	ws "skillio/internal/infrastructure/websocket"
	"skillio/pkg/errors"
	"skillio/pkg/logger"
	"skillio/pkg/response"
)

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler subscribes a connection to its user channel, or to the admin
// channel when an admin session token is presented.
type WebSocketHandler struct {
	wsManager     *ws.Manager
	userVerifier  token.Verifier
	adminVerifier token.Verifier
}

func NewWebSocketHandler(wsManager *ws.Manager, userVerifier, adminVerifier token.Verifier) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:     wsManager,
		userVerifier:  userVerifier,
		adminVerifier: adminVerifier,
	}
}

// channelFor resolves the token. Browsers cannot set headers on websocket
// upgrades, so ?token= is accepted as well.
func (h *WebSocketHandler) channelFor(c echo.Context) (string, bool) {
	raw := c.QueryParam("token")
	if raw == "" {
		raw, _ = strings.CutPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
	}
	if raw == "" {
		return "", false
	}

	ctx := c.Request().Context()
	if id, err := h.adminVerifier.VerifyToken(ctx, raw); err == nil && id.Kind == token.KindAdmin {
		return ws.AdminChannel, true
	}
	if id, err := h.userVerifier.VerifyToken(ctx, raw); err == nil && id.Kind == token.KindUser {
		return id.UID, true
	}
	return "", false
}

func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	channel, ok := h.channelFor(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("websocket upgrade failed: %v", err)
		return nil
	}

	client := ws.NewClient(channel, conn)
	if !h.wsManager.Join(client) {
		logger.Warn("websocket manager stopped, closing connection for %s", channel)
		conn.Close()
		return nil
	}

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}
