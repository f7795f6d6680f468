package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Appointment holds the structure for the appointment collection in mongo
type Appointment struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details AppointmentDetails `json:"appointment" bson:"appointment"`
	Version int32              `json:"__v" bson:"__v"`
}

// AppointmentDetails holds the structure for the inner appointment details
type AppointmentDetails struct {
	ClientID    string             `json:"clientId" bson:"clientId"`
	ClientEmail string             `json:"clientEmail" bson:"clientEmail"`
	LawyerID    string             `json:"lawyerId" bson:"lawyerId"`
	Date        string             `json:"date" bson:"date"` // YYYY-MM-DD
	Time        string             `json:"time" bson:"time"` // HH:MM
	Duration    int                `json:"duration" bson:"duration"` // minutes
	Status      string             `json:"status" bson:"status"`
	Purpose     string             `json:"purpose" bson:"purpose"`
	Notes       string             `json:"notes,omitempty" bson:"notes,omitempty"`
	FeeCents    int64              `json:"feeCents,omitempty" bson:"feeCents,omitempty"`
	CreatedAt   primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt   primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// Appointment status values
const (
	AppointmentPending   = "pending"
	AppointmentApproved  = "approved"
	AppointmentRejected  = "rejected"
	AppointmentCompleted = "completed"
	AppointmentExpired   = "expired"
)
