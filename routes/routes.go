package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shopstack-backend/config"
	"shopstack-backend/controllers"
)

// Setup configures and returns the Gin engine.
func Setup(ctrl *controllers.Controller, cfg *config.AppConfig) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:8000"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Uploaded images, when the disk strategy is active. Read-only.
	r.Static("/static", "./static")

	// Utility routes
	r.GET("/health", ctrl.HealthCheck)
	r.GET("/stats", ctrl.GetStats)

	// Product routes (multipart create/update, single "image" field)
	r.POST("/product", ctrl.CreateProduct)
	r.GET("/products", ctrl.GetProducts)
	r.GET("/product/:id", ctrl.GetProduct)
	r.PUT("/product/:id", ctrl.UpdateProduct)
	r.DELETE("/product/:id", ctrl.DeleteProduct)

	// User routes
	r.POST("/user", ctrl.CreateUser)
	r.GET("/users", ctrl.GetUsers)
	r.GET("/user/:id", ctrl.GetUser)
	r.PUT("/user/:id", ctrl.UpdateUser)
	r.DELETE("/user/:id", ctrl.DeleteUser)

	// Comment routes (multipart create/update, "images" field, max 10)
	r.POST("/comment", ctrl.CreateComment)
	r.GET("/comments", ctrl.GetComments)
	r.GET("/comment/:id", ctrl.GetComment)
	r.PUT("/comment/:id", ctrl.UpdateComment)
	r.DELETE("/comment/:id", ctrl.DeleteComment)

	// Cart routes (get and list expand references)
	r.POST("/cart", ctrl.CreateCart)
	r.GET("/carts", ctrl.GetCarts)
	r.GET("/cart/:id", ctrl.GetCart)
	r.PUT("/cart/:id", ctrl.UpdateCart)
	r.DELETE("/cart/:id", ctrl.DeleteCart)

	// Order routes (get and list expand references)
	r.POST("/order", ctrl.CreateOrder)
	r.GET("/orders", ctrl.GetOrders)
	r.GET("/order/:id", ctrl.GetOrder)
	r.PUT("/order/:id", ctrl.UpdateOrder)
	r.DELETE("/order/:id", ctrl.DeleteOrder)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
