package realtime

import "github.com/gofiber/websocket/v2"

type QueueHub struct {
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	Clients    map[*websocket.Conn]bool
}

var Queue = QueueHub{
	Register:   make(chan *websocket.Conn),
	Unregister: make(chan *websocket.Conn),
	Broadcast:  make(chan []byte),
	Clients:    make(map[*websocket.Conn]bool),
}

func RunQueueBroadcaster() {
	for {
		select {
		case c := <-Queue.Register:
			Queue.Clients[c] = true
		case c := <-Queue.Unregister:
			delete(Queue.Clients, c)
			c.Close()
		case msg := <-Queue.Broadcast:
			for c := range Queue.Clients {
				c.WriteMessage(websocket.TextMessage, msg)
			}
		}
	}
}
