package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User represents an account in the marketplace. Accounts are created on
// first sign-in and keyed by email.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Role     string             `bson:"role" json:"role"` // "buyer", "seller" or "admin"
	Verified bool               `bson:"verified" json:"verified"`
}
