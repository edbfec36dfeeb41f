// File: controllers/product.controller.go
package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shopstack-backend/models"
	"shopstack-backend/store"
)

// GetProducts handles fetching all products.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var productList []models.Product
	if err := ctrl.Store.FindAll(ctx, store.Products, &productList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, productList)
}

// CreateProduct handles creating a new product from a multipart form with
// an optional single image attachment under the "image" field.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	product := models.Product{
		Description: c.PostForm("description"),
	}

	var err error
	if product.Pricing, err = parseDecimal(c.PostForm("pricing")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pricing value"})
		return
	}
	if product.ShippingCost, err = parseDecimal(c.PostForm("shippingCost")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shippingCost value"})
		return
	}

	if file, ferr := c.FormFile("image"); ferr == nil {
		location, serr := ctrl.Media.Save(ctx, file)
		if serr != nil {
			log.Println("Image upload error:", serr)
			c.JSON(uploadStatus(serr), gin.H{"error": serr.Error()})
			return
		}
		product.Image = location
	}

	product.ID, err = ctrl.Store.Insert(ctx, store.Products, product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// GetProduct handles fetching a single product by ID.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	err := ctrl.Store.FindByID(ctx, store.Products, c.Param("id"), &product)
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProduct merges the supplied form fields, plus a replacement image
// if one is attached, into the stored product.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var update models.ProductUpdate
	if v, ok := c.GetPostForm("description"); ok {
		update.Description = &v
	}
	if v, ok := c.GetPostForm("pricing"); ok {
		p, err := parseDecimal(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pricing value"})
			return
		}
		update.Pricing = &p
	}
	if v, ok := c.GetPostForm("shippingCost"); ok {
		p, err := parseDecimal(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shippingCost value"})
			return
		}
		update.ShippingCost = &p
	}

	if file, ferr := c.FormFile("image"); ferr == nil {
		location, serr := ctrl.Media.Save(ctx, file)
		if serr != nil {
			log.Println("Image upload error:", serr)
			c.JSON(uploadStatus(serr), gin.H{"error": serr.Error()})
			return
		}
		update.Image = &location
	}

	set := update.SetFields()
	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	id := c.Param("id")
	if err := ctrl.Store.UpdateByID(ctx, store.Products, id, set); err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	if err := ctrl.Store.FindByID(ctx, store.Products, id, &product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles removing a product. Carts, orders and comments that
// reference it are left untouched; their references dangle.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.Store.DeleteByID(ctx, store.Products, c.Param("id")); err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
