package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"

	"github.com/novashop/novashop-backend/config"
	"github.com/novashop/novashop-backend/internal/middleware"
	"github.com/novashop/novashop-backend/internal/websocket"
)

// EventsController upgrades a storefront session to a WebSocket stream of
// push events (insight_ready, cart_updated).
type EventsController struct {
	hub      *websocket.Hub
	upgrader gorilla.Upgrader
}

func NewEventsController(hub *websocket.Hub, cfg *config.Config) *EventsController {
	allowed := cfg.CORS.AllowedOrigins
	return &EventsController{
		hub: hub,
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, o := range allowed {
					if o == "*" || o == origin {
						return true
					}
				}
				return false
			},
		},
	}
}

// Stream handles the WebSocket upgrade
// GET /api/v1/events
func (ctrl *EventsController) Stream(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sess, ok := middleware.GetSession(c)
	if !ok {
		c.Status(http.StatusInternalServerError)
		return
	}

	conn, err := ctrl.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn("WebSocket upgrade failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	client := websocket.NewClient(ctrl.hub, conn, sess.ID())
	ctrl.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
