package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog item. Image holds the stored location of the
// product picture (a /static path or a cloudinary URL).
type Product struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Description  string             `json:"description" bson:"description"`
	Image        string             `json:"image" bson:"image"`
	Pricing      float64            `json:"pricing" bson:"pricing"`
	ShippingCost float64            `json:"shippingCost" bson:"shippingCost"`
}

// ProductUpdate carries the optional fields of a product update.
type ProductUpdate struct {
	Description  *string
	Image        *string
	Pricing      *float64
	ShippingCost *float64
}

// SetFields returns the supplied fields as a $set document.
func (u ProductUpdate) SetFields() bson.M {
	set := bson.M{}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Image != nil {
		set["image"] = *u.Image
	}
	if u.Pricing != nil {
		set["pricing"] = *u.Pricing
	}
	if u.ShippingCost != nil {
		set["shippingCost"] = *u.ShippingCost
	}
	return set
}
