// File: controllers/cart.controller.go
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

// GetCarts handles fetching all carts with references expanded.
func (ctrl *Controller) GetCarts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cartList, err := ctrl.Store.ListCartsExpanded(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cartList)
}

// CreateCart handles creating a cart. Quantities pair with products by
// position; the two lengths are not validated against each other.
func (ctrl *Controller) CreateCart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.CartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !ctrl.checkReference(ctx, c, store.Users, input.User, "user") {
		return
	}
	for _, productID := range input.Products {
		if !ctrl.checkReference(ctx, c, store.Products, productID, "product") {
			return
		}
	}

	cart := models.Cart{
		Products:   input.Products,
		Quantities: input.Quantities,
		User:       input.User,
	}

	var err error
	cart.ID, err = ctrl.Store.Insert(ctx, store.Carts, cart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cart)
}

// GetCart handles fetching a single cart by ID with references expanded.
func (ctrl *Controller) GetCart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cart, err := ctrl.Store.GetCartExpanded(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// UpdateCart merges the supplied fields into the stored cart.
func (ctrl *Controller) UpdateCart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var update models.CartUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if update.User != nil && !ctrl.checkReference(ctx, c, store.Users, *update.User, "user") {
		return
	}
	if update.Products != nil {
		for _, productID := range *update.Products {
			if !ctrl.checkReference(ctx, c, store.Products, productID, "product") {
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
	if err := ctrl.Store.UpdateByID(ctx, store.Carts, id, set); err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var cart models.Cart
	if err := ctrl.Store.FindByID(ctx, store.Carts, id, &cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// DeleteCart handles removing a cart.
func (ctrl *Controller) DeleteCart(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.Store.DeleteByID(ctx, store.Carts, c.Param("id")); err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart deleted successfully"})
}
