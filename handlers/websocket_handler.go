package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/luismarketmedia/dash-fut/realtime"
	"github.com/luismarketmedia/dash-fut/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS policy is enforced by the router middleware.
		return true
	},
}

type WebSocketHandler struct {
	hub              *realtime.Hub
	workspaceService services.WorkspaceService
	logger           *slog.Logger
}

func NewWebSocketHandler(hub *realtime.Hub, workspaceService services.WorkspaceService, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, workspaceService: workspaceService, logger: logger}
}

// Serve upgrades the connection and joins the workspace room. The
// client then receives a snapshot push after every accepted action.
func (h *WebSocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromRequest(r)
	workspaceID := workspaceIDFromRequest(r)

	if err := h.workspaceService.Authorize(r.Context(), userID, workspaceID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", slog.Any("error", err))
		return
	}
	h.hub.NewClient(conn, workspaceID)
}
