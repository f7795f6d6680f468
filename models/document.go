package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Document holds the structure for the document collection in mongo
type Document struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details DocumentDetails    `json:"document" bson:"document"`
	Version int32              `json:"__v" bson:"__v"`
}

// DocumentDetails holds the structure for the inner document details
type DocumentDetails struct {
	Name            string             `json:"name" bson:"name"`
	URL             string             `json:"url" bson:"url"`
	PublicID        string             `json:"publicId,omitempty" bson:"publicId,omitempty"`
	Type            string             `json:"type" bson:"type"`
	Size            int64              `json:"size" bson:"size"`
	OwnerID         string             `json:"ownerId" bson:"ownerId"`
	SharedWith      []string           `json:"sharedWith" bson:"sharedWith"` // user ids
	ConversationIDs []string           `json:"conversationIds" bson:"conversationIds"`
	UploadedAt      primitive.DateTime `json:"uploadedAt" bson:"uploadedAt"`
}
