package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"shopstack-backend/models"
)

// Reference expansion is done as explicit follow-up reads rather than an
// aggregation join. A reference whose target was deleted resolves to nil;
// dangling references are allowed (no cascade delete anywhere).

func (s *Store) findProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := s.db.Collection(Products).FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Store) findUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.db.Collection(Users).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) expandCart(ctx context.Context, cart *models.Cart) (*models.CartExpanded, error) {
	expanded := &models.CartExpanded{
		ID:         cart.ID,
		Products:   make([]*models.Product, 0, len(cart.Products)),
		Quantities: cart.Quantities,
	}
	for _, id := range cart.Products {
		product, err := s.findProduct(ctx, id)
		if err != nil {
			return nil, err
		}
		expanded.Products = append(expanded.Products, product)
	}
	user, err := s.findUser(ctx, cart.User)
	if err != nil {
		return nil, err
	}
	expanded.User = user
	return expanded, nil
}

func (s *Store) expandOrder(ctx context.Context, order *models.Order) (*models.OrderExpanded, error) {
	expanded := &models.OrderExpanded{
		ID:              order.ID,
		Products:        make([]models.OrderItemExpanded, 0, len(order.Products)),
		TotalAmount:     order.TotalAmount,
		ShippingAddress: order.ShippingAddress,
		OrderDate:       order.OrderDate,
		Status:          order.Status,
	}
	for _, item := range order.Products {
		product, err := s.findProduct(ctx, item.Product)
		if err != nil {
			return nil, err
		}
		expanded.Products = append(expanded.Products, models.OrderItemExpanded{
			Product:  product,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	user, err := s.findUser(ctx, order.User)
	if err != nil {
		return nil, err
	}
	expanded.User = user
	return expanded, nil
}

// GetCartExpanded fetches one cart with its references resolved.
func (s *Store) GetCartExpanded(ctx context.Context, id string) (*models.CartExpanded, error) {
	var cart models.Cart
	if err := s.FindByID(ctx, Carts, id, &cart); err != nil {
		return nil, err
	}
	return s.expandCart(ctx, &cart)
}

// ListCartsExpanded fetches every cart with references resolved.
func (s *Store) ListCartsExpanded(ctx context.Context) ([]*models.CartExpanded, error) {
	var carts []models.Cart
	if err := s.FindAll(ctx, Carts, &carts); err != nil {
		return nil, err
	}
	expanded := make([]*models.CartExpanded, 0, len(carts))
	for i := range carts {
		e, err := s.expandCart(ctx, &carts[i])
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, e)
	}
	return expanded, nil
}

// GetOrderExpanded fetches one order with its references resolved.
func (s *Store) GetOrderExpanded(ctx context.Context, id string) (*models.OrderExpanded, error) {
	var order models.Order
	if err := s.FindByID(ctx, Orders, id, &order); err != nil {
		return nil, err
	}
	return s.expandOrder(ctx, &order)
}

// ListOrdersExpanded fetches every order with references resolved.
func (s *Store) ListOrdersExpanded(ctx context.Context) ([]*models.OrderExpanded, error) {
	var orders []models.Order
	if err := s.FindAll(ctx, Orders, &orders); err != nil {
		return nil, err
	}
	expanded := make([]*models.OrderExpanded, 0, len(orders))
	for i := range orders {
		e, err := s.expandOrder(ctx, &orders[i])
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, e)
	}
	return expanded, nil
}
