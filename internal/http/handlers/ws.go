package handlers

import (
	"net/http"

	"github.com/GenioFalco/gardenTapTap2-sub000/internal/logger"
	"github.com/GenioFalco/gardenTapTap2-sub000/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WS upgrades the connection and attaches it to the notification hub, so
// the player receives achievement and rank-up pushes.
func (h *Handler) WS(hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := playerID(c)
		if !ok {
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("ws upgrade failed", "error", err)
			return
		}
		client := ws.NewClient(userID, conn, hub)
		go client.Run()
	}
}
