package relay

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender records deliveries. Hub ops are synchronous, so after a hub
// call returns the recorded slice is complete.
type fakeSender struct {
	mu     sync.Mutex
	events []Event
	closed bool
	err    error
}

func (f *fakeSender) Send(ev Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, ev)
	return nil
}

func (f *fakeSender) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *fakeSender) got() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Event, len(f.events))
	copy(out, f.events)
	return out
}

func (f *fakeSender) types() []string {
	var types []string
	for _, ev := range f.got() {
		types = append(types, ev.Type)
	}
	return types
}

func connect(t *testing.T, h *Hub, userID, name string) (string, *fakeSender) {
	t.Helper()
	s := &fakeSender{}
	connID := h.Register(s)
	h.Authenticate(connID, userID, name)
	return connID, s
}

func TestAuthenticateAnnouncesToOthersOnly(t *testing.T) {
	h := NewHub()
	defer h.Stop()

	_, alice := connect(t, h, "u1", "Alice")
	_, bob := connect(t, h, "u2", "Bob")

	// Alice was alone when she authenticated; Bob's arrival reached her.
	require.Len(t, alice.got(), 1)
	assert.Equal(t, EventUserConnected, alice.got()[0].Type)
	assert.Equal(t, "u2", alice.got()[0].Data.(map[string]interface{})["userId"])

	// Bob never sees his own user-connected.
	assert.Empty(t, bob.got())
}

func TestUnauthenticatedConnectionsGetNoBroadcasts(t *testing.T) {
	h := NewHub()
	defer h.Stop()

	lurker := &fakeSender{}
	h.Register(lurker)

	connect(t, h, "u1", "Alice")
	h.BroadcastGlobal(Event{Type: EventNewInvite}, "")

	assert.Empty(t, lurker.got())
	assert.Equal(t, []string{"u1"}, h.ConnectedUsers())
}

func TestPublishReachesRoomMembersOnly(t *testing.T) {
	h := NewHub()
	defer h.Stop()

	aliceID, alice := connect(t, h, "u1", "Alice")
	bobID, bob := connect(t, h, "u2", "Bob")
	_, eve := connect(t, h, "u3", "Eve")

	h.JoinRoom(aliceID, "conv1")
	h.JoinRoom(bobID, "conv1")

	h.Publish(Event{Type: EventNewMessage, Room: "conv1", Data: "hi"}, "")

	assert.Contains(t, alice.types(), EventNewMessage)
	assert.Contains(t, bob.types(), EventNewMessage)
	assert.NotContains(t, eve.types(), EventNewMessage)
}

func TestPublishExcludesSender(t *testing.T) {
	h := NewHub()
	defer h.Stop()

	aliceID, alice := connect(t, h, "u1", "Alice")
	bobID, bob := connect(t, h, "u2", "Bob")
	h.JoinRoom(aliceID, "conv1")
	h.JoinRoom(bobID, "conv1")

	h.Publish(Event{Type: EventTyping, Room: "conv1"}, aliceID)

	assert.NotContains(t, alice.types(), EventTyping)
	assert.Contains(t, bob.types(), EventTyping)
}

func TestPublishPreservesOrderPerRoom(t *testing.T) {
	h := NewHub()
	defer h.Stop()

	aliceID, _ := connect(t, h, "u1", "Alice")
	bobID, bob := connect(t, h, "u2", "Bob")
	h.JoinRoom(aliceID, "conv1")
	h.JoinRoom(bobID, "conv1")

	for i := 0; i < 20; i++ {
		h.Publish(Event{Type: EventNewMessage, Room: "conv1", Data: i}, aliceID)
	}

	var seen []int
	for _, ev := range bob.got() {
		if ev.Type == EventNewMessage {
			seen = append(seen, ev.Data.(int))
		}
	}
	require.Len(t, seen, 20)
	for i, v := range seen {
		assert.Equal(t, i, v)
	}
}

func TestLeaveRoomGarbageCollectsEmptyRooms(t *testing.T) {
	h := NewHub()
	defer h.Stop()

	aliceID, _ := connect(t, h, "u1", "Alice")
	h.JoinRoom(aliceID, "conv1")
	assert.Equal(t, 1, h.RoomSize("conv1"))

	h.LeaveRoom(aliceID, "conv1")
	assert.Equal(t, 0, h.RoomSize("conv1"))

	var exists bool
	h.do(func() { _, exists = h.rooms["conv1"] })
	assert.False(t, exists, "empty room must be deleted, not kept at size zero")
}

func TestDisconnectAnnouncesAndCleansRooms(t *testing.T) {
	h := NewHub()
	defer h.Stop()

	aliceID, alice := connect(t, h, "u1", "Alice")
	_, bob := connect(t, h, "u2", "Bob")
	h.JoinRoom(aliceID, "conv1")

	h.Disconnect(aliceID)

	assert.Equal(t, 0, h.RoomSize("conv1"))
	assert.Equal(t, []string{"u2"}, h.ConnectedUsers())
	assert.Contains(t, bob.types(), EventUserDisconnected)

	alice.mu.Lock()
	closed := alice.closed
	alice.mu.Unlock()
	assert.True(t, closed)
}

func TestFailingSenderIsDropped(t *testing.T) {
	h := NewHub()
	defer h.Stop()

	slow := &fakeSender{err: errSendBufferFull}
	slowID := h.Register(slow)
	h.Authenticate(slowID, "u1", "Slow")
	h.JoinRoom(slowID, "conv1")
	require.Equal(t, []string{"u1"}, h.ConnectedUsers())

	h.Publish(Event{Type: EventNewMessage, Room: "conv1"}, "")

	assert.Empty(t, h.ConnectedUsers())
	assert.Equal(t, 0, h.RoomSize("conv1"))

	slow.mu.Lock()
	closed := slow.closed
	slow.mu.Unlock()
	assert.True(t, closed)
}

func TestBroadcastGlobalExcludesOneConnection(t *testing.T) {
	h := NewHub()
	defer h.Stop()

	aliceID, alice := connect(t, h, "u1", "Alice")
	_, bob := connect(t, h, "u2", "Bob")

	h.BroadcastGlobal(Event{Type: EventDocumentUploaded}, aliceID)

	assert.NotContains(t, alice.types(), EventDocumentUploaded)
	assert.Contains(t, bob.types(), EventDocumentUploaded)
}

func TestAuthenticateJoinsPersonalRoom(t *testing.T) {
	h := NewHub()
	defer h.Stop()

	_, alice := connect(t, h, "u1", "Alice")
	_, bob := connect(t, h, "u2", "Bob")

	h.Publish(Event{Type: EventNewAppointment, Room: "u1"}, "")

	assert.Contains(t, alice.types(), EventNewAppointment)
	assert.NotContains(t, bob.types(), EventNewAppointment)
}

func TestRepeatedAuthenticateIsNoOp(t *testing.T) {
	h := NewHub()
	defer h.Stop()

	aliceConn, _ := connect(t, h, "u1", "Alice")
	_, bob := connect(t, h, "u2", "Bob")

	h.Authenticate(aliceConn, "u1", "Alice")
	h.Authenticate(aliceConn, "u1", "Alice")

	// Bob saw nothing: repeats never re-announce user-connected.
	assert.Empty(t, bob.got())
}

func TestConnectedUsersDeduplicatesMultipleConnections(t *testing.T) {
	h := NewHub()
	defer h.Stop()

	connect(t, h, "u1", "Alice")
	connect(t, h, "u1", "Alice")

	assert.Equal(t, []string{"u1"}, h.ConnectedUsers())
}
