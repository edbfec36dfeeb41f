// File: controllers/order.controller.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shopstack-backend/models"
	"shopstack-backend/store"
)

// GetOrders handles fetching all orders with references expanded.
func (ctrl *Controller) GetOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orderList, err := ctrl.Store.ListOrdersExpanded(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orderList)
}

// CreateOrder handles placing an order. OrderDate defaults to now and
// Status defaults to "Pending" when absent from the request.
func (ctrl *Controller) CreateOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !ctrl.checkReference(ctx, c, store.Users, input.User, "user") {
		return
	}
	for _, item := range input.Products {
		if !ctrl.checkReference(ctx, c, store.Products, item.Product, "product") {
			return
		}
	}

	order := models.Order{
		User:            input.User,
		Products:        input.Products,
		TotalAmount:     input.TotalAmount,
		ShippingAddress: input.ShippingAddress,
		OrderDate:       time.Now(),
		Status:          "Pending",
	}
	if input.OrderDate != nil {
		order.OrderDate = *input.OrderDate
	}
	if input.Status != "" {
		order.Status = input.Status
	}

	var err error
	order.ID, err = ctrl.Store.Insert(ctx, store.Orders, order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrder handles fetching a single order by ID with references expanded.
func (ctrl *Controller) GetOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	order, err := ctrl.Store.GetOrderExpanded(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrder merges the supplied fields into the stored order. Status is
// free text; no transition rules apply.
func (ctrl *Controller) UpdateOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var update models.OrderUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if update.User != nil && !ctrl.checkReference(ctx, c, store.Users, *update.User, "user") {
		return
	}
	if update.Products != nil {
		for _, item := range *update.Products {
			if !ctrl.checkReference(ctx, c, store.Products, item.Product, "product") {
				return
			}
		}
	}

	set := update.SetFields()
	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	id := c.Param("id")
	if err := ctrl.Store.UpdateByID(ctx, store.Orders, id, set); err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := ctrl.Store.FindByID(ctx, store.Orders, id, &order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder handles removing an order.
func (ctrl *Controller) DeleteOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.Store.DeleteByID(ctx, store.Orders, c.Param("id")); err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
