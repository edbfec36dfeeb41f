package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a shop account. Email is unique across the collection (enforced
// by an index, see store.EnsureIndexes). The password is stored as given.
type User struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email           string             `json:"email" bson:"email"`
	Password        string             `json:"password" bson:"password"`
	Username        string             `json:"username" bson:"username"`
	PurchaseHistory []any              `json:"purchaseHistory" bson:"purchaseHistory"`
	ShippingAddress string             `json:"shippingAddress" bson:"shippingAddress"`
}

// UserInput is the create-user request body.
type UserInput struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	Username        string `json:"username"`
	PurchaseHistory []any  `json:"purchaseHistory"`
	ShippingAddress string `json:"shippingAddress"`
}

// UserUpdate carries the optional fields of a user update.
type UserUpdate struct {
	Email           *string `json:"email"`
	Password        *string `json:"password"`
	Username        *string `json:"username"`
	PurchaseHistory *[]any  `json:"purchaseHistory"`
	ShippingAddress *string `json:"shippingAddress"`
}

// SetFields returns the supplied fields as a $set document.
func (u UserUpdate) SetFields() bson.M {
	set := bson.M{}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Password != nil {
		set["password"] = *u.Password
	}
	if u.Username != nil {
		set["username"] = *u.Username
	}
	if u.PurchaseHistory != nil {
		set["purchaseHistory"] = *u.PurchaseHistory
	}
	if u.ShippingAddress != nil {
		set["shippingAddress"] = *u.ShippingAddress
	}
	return set
}
