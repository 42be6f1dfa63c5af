package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	ws "github.com/gorilla/websocket"

	"github.com/moto-workshop/mws-dashboard-api/services"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard frontend is served from another origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GetNotifications handles GET /api/v1/notifications - the merged alert
// summary: badge count, the three categorized lists and per-source statuses
func GetNotifications(c *gin.Context) {
	notifier := services.GetNotifier()
	if notifier == nil {
		respondBadRequest(c, "Notifications are not running")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    notifier.Snapshot(),
	})
}

// RefreshNotifications handles POST /api/v1/notifications/refresh - forces a
// poll cycle ahead of the interval
func RefreshNotifications(c *gin.Context) {
	notifier := services.GetNotifier()
	if notifier == nil {
		respondBadRequest(c, "Notifications are not running")
		return
	}

	notifier.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    notifier.Snapshot(),
	})
}

// NotificationsWS handles GET /api/v1/notifications/ws - upgrades to a
// WebSocket that receives a badge update whenever the alert count changes
func NotificationsWS(c *gin.Context) {
	hub := services.GetHub()
	if hub == nil {
		respondBadRequest(c, "Notifications are not running")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade notification socket: %v", err)
		return
	}

	client := hub.Register(conn)
	defer hub.Unregister(client)

	// Push the current badge to this client only, so a reconnecting browser
	// does not wait for the next change
	if notifier := services.GetNotifier(); notifier != nil {
		hub.Send(client, services.BadgeUpdate{Total: notifier.Snapshot().Total})
	}

	// Drain client frames until the connection goes away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// RegisterNotificationRoutes mounts the notification routes. The socket
// route goes on the open group: browsers cannot attach an Authorization
// header to a WebSocket handshake.
func RegisterNotificationRoutes(open, protected *gin.RouterGroup) {
	protected.GET("/notifications", GetNotifications)
	protected.POST("/notifications/refresh", RefreshNotifications)
	open.GET("/notifications/ws", NotificationsWS)
}
