package controllers

import (
	"net/http"
	"time"

	"github.com/kunalgupta016/street-clean-eats/middlewares"
	"github.com/kunalgupta016/street-clean-eats/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind ALB/CloudFront if needed
}

// OrdersWS streams order events to an open vendor dashboard.
func OrdersWS(c *gin.Context) {
	details := middlewares.RequireVendorDetails(c)
	if details == nil {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{VendorID: details.ID, Conn: conn}
	services.Hub.Register(cl)

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				services.Hub.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error → unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			services.Hub.Unregister(cl)
			return
		}
	}
}
