package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/legalconnect/legalconnect-api/api"
	"github.com/legalconnect/legalconnect-api/config"
	"github.com/legalconnect/legalconnect-api/databases"
	"github.com/legalconnect/legalconnect-api/models"
	"github.com/legalconnect/legalconnect-api/relay"
)

// Message exported for testing purposes
type Message struct {
	DB  databases.MessageDatabase
	CDB databases.ConversationDatabase
	Hub *relay.Hub
}

// PaginatedMessages holds the structure for paginated message responses
type PaginatedMessages struct {
	Page       int              `json:"page"`
	TotalCount int64            `json:"totalCount"`
	Data       []models.Message `json:"data"`
}

// CreateMessageHandler persists a message and relays it to the conversation room
func (m Message) CreateMessageHandler(w http.ResponseWriter, r *http.Request) {
	var details models.MessageDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if details.ConversationID == "" || details.Content == "" {
		config.ErrorStatus("missing fields", http.StatusBadRequest, w, fmt.Errorf("conversationId and content are required"))
		return
	}

	cID, err := primitive.ObjectIDFromHex(details.ConversationID)
	if err != nil {
		config.ErrorStatus("invalid conversation ID", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := m.CDB.FindOne(ctx, bson.M{"_id": cID}); err != nil {
		config.ErrorStatus("conversation not found", http.StatusNotFound, w, err)
		return
	}

	details.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	newMessage := models.Message{
		ID:      primitive.NewObjectID(),
		Details: details,
	}

	if _, err := m.DB.InsertOne(ctx, newMessage); err != nil {
		config.ErrorStatus("failed to create message", http.StatusInternalServerError, w, err)
		return
	}

	err = m.CDB.UpdateOne(ctx, bson.M{"_id": cID}, bson.M{"$set": bson.M{
		"conversation.updatedAt": primitive.NewDateTimeFromTime(time.Now()),
	}})
	if err != nil {
		zap.S().Warnw("failed to bump conversation updatedAt", "conversationId", details.ConversationID, "error", err)
	}

	// relayed to everyone in the room, sender included
	if m.Hub != nil {
		m.Hub.Publish(relay.Event{
			Type: relay.EventNewMessage,
			Room: details.ConversationID,
			Data: newMessage,
		}, "")
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(newMessage)
}

// MessagesByConversationIDHandler returns a page of messages for a conversation
func (m Message) MessagesByConversationIDHandler(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["conversation_id"]

	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf("limit not set, using default of %v, err: %v", 50, err)
		Limit = 50
	}
	limit64 := int64(Limit)
	Page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		Page = 0
	}
	skip64 := int64(Page * Limit)

	filter := bson.M{"message.conversationId": conversationID}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	totalCount, err := m.DB.CountDocuments(ctx, filter)
	if err != nil {
		config.ErrorStatus("failed to get total count of messages", http.StatusInternalServerError, w, err)
		return
	}

	dbResp, err := m.DB.Find(ctx, filter, &options.FindOptions{Limit: &limit64, Skip: &skip64})
	if err != nil {
		config.ErrorStatus("failed to get messages", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Message{}
	}

	paginatedResponse := PaginatedMessages{
		Page:       Page,
		TotalCount: totalCount,
		Data:       dbResp,
	}

	respB, err := json.Marshal(paginatedResponse)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(respB)
}
