package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/legalconnect/legalconnect-api/api"
	"github.com/legalconnect/legalconnect-api/databases"
	"github.com/legalconnect/legalconnect-api/relay"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Socket exported for testing purposes
type Socket struct {
	Hub *relay.Hub
	DB  databases.UserDatabase
}

// ServeHTTP authenticates the caller, upgrades the connection and hands it
// to the relay. Browsers cannot set headers on websocket requests, so the
// bearer token is also accepted as a query parameter.
func (s Socket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") == "" {
		if token := r.URL.Query().Get("token"); token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
	}

	info, err := api.AuthenticateRequest(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID := info.ID()

	name := info.UserName()
	ctx, cancel := api.WithQueryTimeout(r.Context())
	user, err := s.DB.FindOne(ctx, bson.M{"_id": userID})
	cancel()
	if err == nil && user.Details.Name != "" {
		name = user.Details.Name
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnw("websocket upgrade failed", "user", userID, "error", err)
		return
	}

	relay.ServeConn(s.Hub, conn, userID, name)
}
