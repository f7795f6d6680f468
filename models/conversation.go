package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Conversation holds the structure for the conversation collection in mongo
type Conversation struct {
	ID      primitive.ObjectID  `json:"_id" bson:"_id"`
	Details ConversationDetails `json:"conversation" bson:"conversation"`
	Version int32               `json:"__v" bson:"__v"`
}

// ConversationDetails holds the structure for the inner conversation details
type ConversationDetails struct {
	Participants []Participant      `json:"participants" bson:"participants"`
	CreatedAt    primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt    primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// Participant identifies one member of a conversation
type Participant struct {
	UserID string `json:"userId" bson:"userId"`
	Name   string `json:"name" bson:"name"`
	Role   string `json:"role" bson:"role"`
}
