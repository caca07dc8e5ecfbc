package handler

import (
	"log"

	"backend-enrollment/internal/realtime"

	"github.com/gofiber/websocket/v2"
)

// QueueWebSocket - feed display antrian. Client cuma dengar; koneksi
// ditutup begitu read gagal.
func QueueWebSocket(c *websocket.Conn) {
	realtime.Queue.Register <- c

	defer func() {
		realtime.Queue.Unregister <- c
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure,
			) {
				log.Printf("[queue-ws] unexpected close: %v", err)
			}
			return
		}
	}
}
