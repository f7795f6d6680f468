package relay

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sender delivers events to one connected client. Send must not block: a
// transport that cannot accept the event returns an error and the hub drops
// the connection. Close releases the transport and must be idempotent.
type Sender interface {
	Send(Event) error
	Close()
}

type participant struct {
	connID string
	sender Sender

	// set by Authenticate; zero until then
	userID string
	name   string

	rooms map[string]struct{}
}

// Hub routes events between participants. All maps below are owned by the
// run goroutine and must only be touched from ops closures.
type Hub struct {
	participants map[string]*participant          // connID -> participant
	rooms        map[string]map[string]*participant // roomID -> connID -> participant

	ops  chan func()
	done chan struct{}
	log  *zap.SugaredLogger
}

// NewHub starts the dispatch goroutine and returns the hub.
func NewHub() *Hub {
	h := &Hub{
		participants: make(map[string]*participant),
		rooms:        make(map[string]map[string]*participant),
		ops:          make(chan func(), 256),
		done:         make(chan struct{}),
		log:          zap.S(),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case op := <-h.ops:
			op()
		case <-h.done:
			for _, p := range h.participants {
				p.sender.Close()
			}
			return
		}
	}
}

// Stop shuts the dispatch loop down and closes every connection. Events
// still queued are discarded.
func (h *Hub) Stop() {
	close(h.done)
}

// do runs fn on the dispatch goroutine and waits for it to finish.
func (h *Hub) do(fn func()) {
	ran := make(chan struct{})
	select {
	case h.ops <- func() { fn(); close(ran) }:
		<-ran
	case <-h.done:
	}
}

// Register attaches a connection and returns its connection id. The
// connection receives global events only after Authenticate.
func (h *Hub) Register(s Sender) string {
	connID := uuid.New().String()
	h.do(func() {
		h.participants[connID] = &participant{
			connID: connID,
			sender: s,
			rooms:  make(map[string]struct{}),
		}
	})
	return connID
}

// Authenticate binds a verified identity to a connection and announces it
// to everyone else. Identity comes from the HTTP auth layer, never from the
// socket payload. The connection is also subscribed to a personal room named
// by its user id, which HTTP handlers use for targeted events.
func (h *Hub) Authenticate(connID, userID, name string) {
	h.do(func() {
		p, ok := h.participants[connID]
		if !ok {
			return
		}
		// repeated authenticate frames are no-ops
		if p.userID != "" {
			return
		}
		p.userID = userID
		p.name = name
		h.join(connID, userID)
		h.log.Debugw("relay participant authenticated", "connID", connID, "userID", userID)
		h.broadcast(Event{Type: EventUserConnected, Data: map[string]interface{}{
			"userId": userID,
			"name":   name,
		}}, connID)
	})
}

// JoinRoom subscribes the connection to a room, creating the room on first
// join.
func (h *Hub) JoinRoom(connID, roomID string) {
	if roomID == "" {
		return
	}
	h.do(func() {
		h.join(connID, roomID)
	})
}

func (h *Hub) join(connID, roomID string) {
	p, ok := h.participants[connID]
	if !ok || roomID == "" {
		return
	}
	room, ok := h.rooms[roomID]
	if !ok {
		room = make(map[string]*participant)
		h.rooms[roomID] = room
	}
	room[connID] = p
	p.rooms[roomID] = struct{}{}
}

// LeaveRoom unsubscribes the connection; the room is deleted once empty.
func (h *Hub) LeaveRoom(connID, roomID string) {
	h.do(func() {
		h.leaveRoom(connID, roomID)
	})
}

func (h *Hub) leaveRoom(connID, roomID string) {
	p, ok := h.participants[connID]
	if !ok {
		return
	}
	delete(p.rooms, roomID)
	room, ok := h.rooms[roomID]
	if !ok {
		return
	}
	delete(room, connID)
	if len(room) == 0 {
		delete(h.rooms, roomID)
	}
}

// Publish delivers an event to every subscriber of ev.Room. When
// excludeConnID is non-empty that connection is skipped, which is how
// typing indicators avoid echoing back to the typist.
func (h *Hub) Publish(ev Event, excludeConnID string) {
	h.do(func() {
		room, ok := h.rooms[ev.Room]
		if !ok {
			return
		}
		for connID, p := range room {
			if connID == excludeConnID {
				continue
			}
			h.deliver(p, ev)
		}
	})
}

// BroadcastGlobal delivers an event to every authenticated connection,
// optionally excluding one.
func (h *Hub) BroadcastGlobal(ev Event, excludeConnID string) {
	h.do(func() {
		h.broadcast(ev, excludeConnID)
	})
}

func (h *Hub) broadcast(ev Event, excludeConnID string) {
	for connID, p := range h.participants {
		if connID == excludeConnID || p.userID == "" {
			continue
		}
		h.deliver(p, ev)
	}
}

// deliver is best effort. A failed send means the transport is gone or too
// slow, so the participant is dropped on the spot.
func (h *Hub) deliver(p *participant, ev Event) {
	if err := p.sender.Send(ev); err != nil {
		h.log.Debugw("relay dropping slow or dead connection", "connID", p.connID, "error", err)
		h.remove(p.connID, false)
	}
}

// Disconnect removes a connection, leaves all its rooms and, if it was
// authenticated, announces the departure.
func (h *Hub) Disconnect(connID string) {
	h.do(func() {
		h.remove(connID, true)
	})
}

func (h *Hub) remove(connID string, announce bool) {
	p, ok := h.participants[connID]
	if !ok {
		return
	}
	for roomID := range p.rooms {
		h.leaveRoom(connID, roomID)
	}
	delete(h.participants, connID)
	p.sender.Close()
	if announce && p.userID != "" {
		h.broadcast(Event{Type: EventUserDisconnected, Data: map[string]interface{}{
			"userId": p.userID,
			"name":   p.name,
		}}, connID)
	}
}

// ConnectedUsers returns the user ids of all authenticated connections,
// deduplicated. Used by the health endpoint.
func (h *Hub) ConnectedUsers() []string {
	var users []string
	h.do(func() {
		seen := make(map[string]struct{})
		for _, p := range h.participants {
			if p.userID == "" {
				continue
			}
			if _, dup := seen[p.userID]; dup {
				continue
			}
			seen[p.userID] = struct{}{}
			users = append(users, p.userID)
		}
	})
	return users
}

// RoomSize reports the number of subscribers in a room, zero if the room
// does not exist.
func (h *Hub) RoomSize(roomID string) int {
	var n int
	h.do(func() {
		n = len(h.rooms[roomID])
	})
	return n
}
