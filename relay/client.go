package relay

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// outbound events buffered per connection before the hub drops it
	sendBuffer = 64
)

var errSendBufferFull = errors.New("relay: send buffer full")

// wsClient adapts a websocket connection to the hub's Sender interface and
// translates inbound frames into hub calls.
type wsClient struct {
	hub    *Hub
	conn   *websocket.Conn
	connID string

	// identity verified by the HTTP layer before the upgrade
	userID string
	name   string

	out  chan Event
	quit chan struct{}
	once sync.Once
}

// ServeConn wires an upgraded websocket connection into the hub and blocks
// until the connection closes. userID and name are the caller's verified
// identity; the socket's own authenticate payload is never trusted.
func ServeConn(hub *Hub, conn *websocket.Conn, userID, name string) {
	c := &wsClient{
		hub:    hub,
		conn:   conn,
		userID: userID,
		name:   name,
		out:    make(chan Event, sendBuffer),
		quit:   make(chan struct{}),
	}
	c.connID = hub.Register(c)

	go c.writePump()
	c.readPump()
}

// Send queues an event for the write pump. Never blocks: a full buffer
// reports the connection as too slow and the hub disconnects it.
func (c *wsClient) Send(ev Event) error {
	select {
	case c.out <- ev:
		return nil
	case <-c.quit:
		return websocket.ErrCloseSent
	default:
		return errSendBufferFull
	}
}

// Close stops the write pump and closes the socket. Safe to call from both
// the hub and the read pump.
func (c *wsClient) Close() {
	c.once.Do(func() {
		close(c.quit)
		c.conn.Close()
	})
}

func (c *wsClient) readPump() {
	defer func() {
		c.hub.Disconnect(c.connID)
		c.Close()
	}()
	c.conn.SetReadLimit(16 * 1024)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var ev Event
		if err := c.conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.S().Debugw("relay read error", "connID", c.connID, "error", err)
			}
			return
		}
		c.handle(ev)
	}
}

func (c *wsClient) handle(ev Event) {
	switch ev.Type {
	case EventAuthenticate:
		c.hub.Authenticate(c.connID, c.userID, c.name)
	case EventJoinConversation:
		c.hub.JoinRoom(c.connID, ev.Room)
	case EventLeaveConversation:
		c.hub.LeaveRoom(c.connID, ev.Room)
	case EventSendMessage:
		// relayed to the whole room, sender included, so every client
		// renders the message from the same event
		c.hub.Publish(Event{Type: EventNewMessage, Room: ev.Room, Data: ev.Data}, "")
	case EventTyping:
		c.hub.Publish(Event{Type: EventTyping, Room: ev.Room, Data: ev.Data}, c.connID)
	default:
		zap.S().Debugw("relay ignoring unknown event", "type", ev.Type, "connID", c.connID)
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()
	for {
		select {
		case ev := <-c.out:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.quit:
			return
		}
	}
}
