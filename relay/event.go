// Package relay is the realtime event fan-out between connected clients. It
// carries no business state: every event is produced elsewhere (HTTP
// handlers or a peer's socket) and the relay only routes it to room or
// global subscribers. All routing state lives on a single dispatch
// goroutine, so there are no locks.
package relay

// Inbound event types, sent by clients over the socket.
const (
	EventAuthenticate      = "authenticate"
	EventJoinConversation  = "join-conversation"
	EventLeaveConversation = "leave-conversation"
	EventSendMessage       = "send-message"
	EventTyping            = "typing"
)

// Outbound event types, produced by the relay or by HTTP handlers.
const (
	EventNewMessage          = "new-message"
	EventNewAppointment      = "new-appointment"
	EventAppointmentUpdate   = "appointment-update"
	EventNewInvite           = "new-invite"
	EventDocumentUploaded    = "document-uploaded"
	EventDocumentShared      = "document-shared"
	EventDocumentDeleted     = "document-deleted"
	EventConversationDeleted = "conversation-deleted"
	EventUserConnected       = "user-connected"
	EventUserDisconnected    = "user-disconnected"
)

// Event is one frame on the wire, in both directions.
type Event struct {
	Type string      `json:"event"`
	Room string      `json:"room,omitempty"`
	Data interface{} `json:"data,omitempty"`
}
