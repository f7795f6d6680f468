package models

// User holds the structure for the user collection in mongo
type User struct {
	ID      string      `json:"_id" bson:"_id"`
	Details UserDetails `json:"user" bson:"user"`
	Version int32       `json:"__v" bson:"__v"`
}

// UserDetails holds the structure for the inner user structure as defined in the user collection in mongo
type UserDetails struct {
	Name         string      `json:"name" bson:"name"`
	Email        string      `json:"email" bson:"email"`
	Password     string      `json:"password" bson:"password"`
	Role         string      `json:"role" bson:"role"` // "client" or "lawyer"
	BarCouncilID string      `json:"barCouncilId,omitempty" bson:"barCouncilId,omitempty"`
	Verified     bool        `json:"verified" bson:"verified"`
	Online       bool        `json:"online" bson:"online"`
	CreatedAt    interface{} `json:"createdAt" bson:"createdAt"`
	UpdatedAt    interface{} `json:"updatedAt" bson:"updatedAt"`
}

const (
	// RoleClient identifies a client user
	RoleClient = "client"
	// RoleLawyer identifies a lawyer user
	RoleLawyer = "lawyer"
)
