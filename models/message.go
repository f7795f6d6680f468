package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Message holds the structure for the message collection in mongo
type Message struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details MessageDetails     `json:"message" bson:"message"`
	Version int32              `json:"__v" bson:"__v"`
}

// MessageDetails holds the structure for the inner message details
type MessageDetails struct {
	ConversationID string             `json:"conversationId" bson:"conversationId"`
	SenderID       string             `json:"senderId" bson:"senderId"`
	SenderName     string             `json:"senderName" bson:"senderName"`
	SenderRole     string             `json:"senderRole" bson:"senderRole"`
	Content        string             `json:"content" bson:"content"`
	IsAssistant    bool               `json:"isAssistant" bson:"isAssistant"`
	Attachments    []Attachment       `json:"attachments,omitempty" bson:"attachments,omitempty"`
	CreatedAt      primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

// Attachment describes a file attached to a message
type Attachment struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
	URL  string `json:"url" bson:"url"`
	Type string `json:"type" bson:"type"`
	Size int64  `json:"size" bson:"size"`
}
