package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/legalconnect/legalconnect-api/api"
	"github.com/legalconnect/legalconnect-api/config"
	"github.com/legalconnect/legalconnect-api/databases"
	"github.com/legalconnect/legalconnect-api/models"
	"github.com/legalconnect/legalconnect-api/relay"
)

// Conversation exported for testing purposes
type Conversation struct {
	DB  databases.ConversationDatabase
	MDB databases.MessageDatabase
	Hub *relay.Hub
}

// CreateConversationHandler starts a conversation between two participants.
// If one already exists between them it is returned instead of duplicated.
func (c Conversation) CreateConversationHandler(w http.ResponseWriter, r *http.Request) {
	var details models.ConversationDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if len(details.Participants) != 2 {
		config.ErrorStatus("invalid participants", http.StatusBadRequest, w, fmt.Errorf("a conversation needs exactly two participants"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	// one conversation per participant pair
	existing, err := c.DB.FindOne(ctx, bson.M{
		"conversation.participants.userId": bson.M{"$all": []string{
			details.Participants[0].UserID,
			details.Participants[1].UserID,
		}},
	})
	if err == nil && existing != nil {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(existing)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	details.CreatedAt = now
	details.UpdatedAt = now
	newConversation := models.Conversation{
		ID:      primitive.NewObjectID(),
		Details: details,
	}

	if _, err := c.DB.InsertOne(ctx, newConversation); err != nil {
		config.ErrorStatus("failed to create conversation", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(newConversation)
}

// ConversationByIDHandler returns a conversation by its ID
func (c Conversation) ConversationByIDHandler(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["conversation_id"]

	cID, err := primitive.ObjectIDFromHex(conversationID)
	if err != nil {
		config.ErrorStatus("invalid conversation ID", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	conversation, err := c.DB.FindOne(ctx, bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to find conversation", http.StatusNotFound, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(conversation)
}

// ConversationsByUserIDHandler returns every conversation a user takes part in
func (c Conversation) ConversationsByUserIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := c.DB.Find(ctx, bson.M{"conversation.participants.userId": userID})
	if err != nil {
		config.ErrorStatus("failed to get conversations", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Conversation{}
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// DeleteConversationHandler removes a conversation and tells its room
func (c Conversation) DeleteConversationHandler(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["conversation_id"]

	cID, err := primitive.ObjectIDFromHex(conversationID)
	if err != nil {
		config.ErrorStatus("invalid conversation ID", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := c.DB.DeleteOne(ctx, bson.M{"_id": cID}); err != nil {
		config.ErrorStatus("failed to delete conversation", http.StatusInternalServerError, w, err)
		return
	}

	// drop the transcript with the conversation
	if _, err := c.MDB.DeleteMany(ctx, bson.M{"message.conversationId": conversationID}); err != nil {
		config.ErrorStatus("failed to delete conversation messages", http.StatusInternalServerError, w, err)
		return
	}

	if c.Hub != nil {
		c.Hub.Publish(relay.Event{
			Type: relay.EventConversationDeleted,
			Room: conversationID,
			Data: map[string]interface{}{"conversationId": conversationID},
		}, "")
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "conversation deleted successfully"}`))
}
