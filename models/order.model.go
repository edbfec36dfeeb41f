package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is one order line: a product reference with the quantity and
// the unit price at the time the order was placed.
type OrderItem struct {
	Product  primitive.ObjectID `json:"product" bson:"product"`
	Quantity int                `json:"quantity" bson:"quantity"`
	Price    float64            `json:"price" bson:"price"`
}

// Order is a placed order. OrderDate defaults to the creation time and
// Status defaults to "Pending"; both defaults apply on create only.
type Order struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	User            primitive.ObjectID `json:"user" bson:"user"`
	Products        []OrderItem        `json:"products" bson:"products"`
	TotalAmount     float64            `json:"totalAmount" bson:"totalAmount"`
	ShippingAddress string             `json:"shippingAddress" bson:"shippingAddress"`
	OrderDate       time.Time          `json:"orderDate" bson:"orderDate"`
	Status          string             `json:"status" bson:"status"`
}

// OrderItemExpanded is an order line with the product reference resolved.
type OrderItemExpanded struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
	Price    float64  `json:"price"`
}

// OrderExpanded is an order with its references resolved into full entities.
type OrderExpanded struct {
	ID              primitive.ObjectID  `json:"id,omitempty"`
	User            *User               `json:"user"`
	Products        []OrderItemExpanded `json:"products"`
	TotalAmount     float64             `json:"totalAmount"`
	ShippingAddress string              `json:"shippingAddress"`
	OrderDate       time.Time           `json:"orderDate"`
	Status          string              `json:"status"`
}

// OrderInput is the create-order request body. OrderDate and Status are
// optional; absent values take the creation-time defaults.
type OrderInput struct {
	User            primitive.ObjectID `json:"user" binding:"required"`
	Products        []OrderItem        `json:"products"`
	TotalAmount     float64            `json:"totalAmount"`
	ShippingAddress string             `json:"shippingAddress"`
	OrderDate       *time.Time         `json:"orderDate"`
	Status          string             `json:"status"`
}

// OrderUpdate carries the optional fields of an order update. Status is
// free text; any string may be written.
type OrderUpdate struct {
	User            *primitive.ObjectID `json:"user"`
	Products        *[]OrderItem        `json:"products"`
	TotalAmount     *float64            `json:"totalAmount"`
	ShippingAddress *string             `json:"shippingAddress"`
	OrderDate       *time.Time          `json:"orderDate"`
	Status          *string             `json:"status"`
}

// SetFields returns the supplied fields as a $set document.
func (u OrderUpdate) SetFields() bson.M {
	set := bson.M{}
	if u.User != nil {
		set["user"] = *u.User
	}
	if u.Products != nil {
		set["products"] = *u.Products
	}
	if u.TotalAmount != nil {
		set["totalAmount"] = *u.TotalAmount
	}
	if u.ShippingAddress != nil {
		set["shippingAddress"] = *u.ShippingAddress
	}
	if u.OrderDate != nil {
		set["orderDate"] = *u.OrderDate
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	return set
}
