package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart pairs product references with quantities by position: Quantities[i]
// belongs to Products[i]. The pairing is positional only; the lengths are
// not validated against each other.
type Cart struct {
	ID         primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Products   []primitive.ObjectID `json:"products" bson:"products"`
	Quantities []int                `json:"quantities" bson:"quantities"`
	User       primitive.ObjectID   `json:"user" bson:"user"`
}

// CartExpanded is a cart with its references resolved into full entities.
// A reference whose target no longer exists resolves to null.
type CartExpanded struct {
	ID         primitive.ObjectID `json:"id,omitempty"`
	Products   []*Product         `json:"products"`
	Quantities []int              `json:"quantities"`
	User       *User              `json:"user"`
}

// CartInput is the create-cart request body.
type CartInput struct {
	Products   []primitive.ObjectID `json:"products"`
	Quantities []int                `json:"quantities"`
	User       primitive.ObjectID   `json:"user" binding:"required"`
}

// CartUpdate carries the optional fields of a cart update.
type CartUpdate struct {
	Products   *[]primitive.ObjectID `json:"products"`
	Quantities *[]int                `json:"quantities"`
	User       *primitive.ObjectID   `json:"user"`
}

// SetFields returns the supplied fields as a $set document.
func (u CartUpdate) SetFields() bson.M {
	set := bson.M{}
	if u.Products != nil {
		set["products"] = *u.Products
	}
	if u.Quantities != nil {
		set["quantities"] = *u.Quantities
	}
	if u.User != nil {
		set["user"] = *u.User
	}
	return set
}
