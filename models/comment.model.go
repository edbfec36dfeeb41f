package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a product review left by a user. Images holds the stored
// locations of up to ten attached pictures.
type Comment struct {
	ID      primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Product primitive.ObjectID `json:"product" bson:"product"`
	User    primitive.ObjectID `json:"user" bson:"user"`
	Rating  float64            `json:"rating" bson:"rating"`
	Images  []string           `json:"images" bson:"images"`
	Text    string             `json:"text" bson:"text"`
}

// CommentUpdate carries the optional fields of a comment update.
// Images, when non-nil, replaces the stored sequence entirely.
type CommentUpdate struct {
	Product *primitive.ObjectID
	User    *primitive.ObjectID
	Rating  *float64
	Images  *[]string
	Text    *string
}

// SetFields returns the supplied fields as a $set document.
func (u CommentUpdate) SetFields() bson.M {
	set := bson.M{}
	if u.Product != nil {
		set["product"] = *u.Product
	}
	if u.User != nil {
		set["user"] = *u.User
	}
	if u.Rating != nil {
		set["rating"] = *u.Rating
	}
	if u.Images != nil {
		set["images"] = *u.Images
	}
	if u.Text != nil {
		set["text"] = *u.Text
	}
	return set
}
