// File: controllers/comment.controller.go
package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopstack-backend/media"
	"shopstack-backend/models"
	"shopstack-backend/store"
)

// saveAll stores up to media.MaxCommentImages attachments and returns their
// recorded locations.
func (ctrl *Controller) saveAll(ctx context.Context, c *gin.Context, files []*multipart.FileHeader) ([]string, bool) {
	if len(files) > media.MaxCommentImages {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Too many images: maximum is %d", media.MaxCommentImages),
		})
		return nil, false
	}
	locations := make([]string, 0, len(files))
	for _, file := range files {
		location, err := ctrl.Media.Save(ctx, file)
		if err != nil {
			log.Println("Image upload error:", err)
			c.JSON(uploadStatus(err), gin.H{"error": err.Error()})
			return nil, false
		}
		locations = append(locations, location)
	}
	return locations, true
}

// checkReference verifies the referenced document exists, answering 400
// with a message when it does not.
func (ctrl *Controller) checkReference(ctx context.Context, c *gin.Context, coll string, id primitive.ObjectID, name string) bool {
	ok, err := ctrl.Store.Exists(ctx, coll, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return false
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced " + name + " does not exist"})
		return false
	}
	return true
}

// GetComments handles fetching all comments.
func (ctrl *Controller) GetComments(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var commentList []models.Comment
	if err := ctrl.Store.FindAll(ctx, store.Comments, &commentList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, commentList)
}

// CreateComment handles creating a comment from a multipart form with up to
// ten image attachments under the "images" field.
func (ctrl *Controller) CreateComment(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expected multipart form data"})
		return
	}

	productID, err := primitive.ObjectIDFromHex(c.PostForm("product"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}
	userID, err := primitive.ObjectIDFromHex(c.PostForm("user"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	rating, err := parseDecimal(c.PostForm("rating"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating value"})
		return
	}

	if !ctrl.checkReference(ctx, c, store.Products, productID, "product") {
		return
	}
	if !ctrl.checkReference(ctx, c, store.Users, userID, "user") {
		return
	}

	images, ok := ctrl.saveAll(ctx, c, form.File["images"])
	if !ok {
		return
	}

	comment := models.Comment{
		Product: productID,
		User:    userID,
		Rating:  rating,
		Images:  images,
		Text:    c.PostForm("text"),
	}
	comment.ID, err = ctrl.Store.Insert(ctx, store.Comments, comment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// GetComment handles fetching a single comment by ID.
func (ctrl *Controller) GetComment(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var comment models.Comment
	err := ctrl.Store.FindByID(ctx, store.Comments, c.Param("id"), &comment)
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comment)
}

// UpdateComment merges the supplied form fields into the stored comment.
// Newly attached images replace the stored sequence entirely; absent fields
// are left as they are.
func (ctrl *Controller) UpdateComment(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var update models.CommentUpdate
	if v, ok := c.GetPostForm("product"); ok {
		productID, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		if !ctrl.checkReference(ctx, c, store.Products, productID, "product") {
			return
		}
		update.Product = &productID
	}
	if v, ok := c.GetPostForm("user"); ok {
		userID, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		if !ctrl.checkReference(ctx, c, store.Users, userID, "user") {
			return
		}
		update.User = &userID
	}
	if v, ok := c.GetPostForm("rating"); ok {
		rating, err := parseDecimal(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating value"})
			return
		}
		update.Rating = &rating
	}
	if v, ok := c.GetPostForm("text"); ok {
		update.Text = &v
	}

	if form, err := c.MultipartForm(); err == nil && len(form.File["images"]) > 0 {
		images, ok := ctrl.saveAll(ctx, c, form.File["images"])
		if !ok {
			return
		}
		update.Images = &images
	}

	set := update.SetFields()
	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	id := c.Param("id")
	if err := ctrl.Store.UpdateByID(ctx, store.Comments, id, set); err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var comment models.Comment
	if err := ctrl.Store.FindByID(ctx, store.Comments, id, &comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteComment handles removing a comment.
func (ctrl *Controller) DeleteComment(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.Store.DeleteByID(ctx, store.Comments, c.Param("id")); err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
