package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Invite holds the structure for the invite collection in mongo
type Invite struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details InviteDetails      `json:"invite" bson:"invite"`
	Version int32              `json:"__v" bson:"__v"`
}

// InviteDetails holds the structure for the inner invite details
type InviteDetails struct {
	Code        string             `json:"code" bson:"code"`
	FromUserID  string             `json:"fromUserId" bson:"fromUserId"`
	FromName    string             `json:"fromName" bson:"fromName"`
	ToUserID    string             `json:"toUserId" bson:"toUserId"`
	ToEmail     string             `json:"toEmail" bson:"toEmail"`
	Matter      string             `json:"matter,omitempty" bson:"matter,omitempty"`
	Accepted    bool               `json:"accepted" bson:"accepted"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
	RespondedAt primitive.DateTime `json:"respondedAt,omitempty" bson:"respondedAt,omitempty"`
}
