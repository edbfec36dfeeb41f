package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"shopstack-backend/models"
	"shopstack-backend/store"
)

// HealthCheck reports database connectivity.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	dbStatus := "connected"
	if err := ctrl.Store.Ping(ctx); err != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().Unix(),
	})
}

// GetStats returns application-wide statistics.
func (ctrl *Controller) GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	totalProducts, _ := ctrl.Store.Count(ctx, store.Products)
	totalUsers, _ := ctrl.Store.Count(ctx, store.Users)
	totalOrders, _ := ctrl.Store.Count(ctx, store.Orders)

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$pricing"},
		}},
	}
	cursor, err := ctrl.Store.Collection(store.Products).Aggregate(ctx, pipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var result []bson.M
	var catalogValue float64
	if err := cursor.All(ctx, &result); err == nil && len(result) > 0 {
		if val, ok := result[0]["total"].(float64); ok {
			catalogValue = val
		}
	}

	stats := models.Stats{
		TotalProducts: totalProducts,
		TotalUsers:    totalUsers,
		TotalOrders:   totalOrders,
		CatalogValue:  catalogValue,
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
