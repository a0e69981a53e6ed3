package handlers

import (
	"net/http"
	"time"

	"roomspace-backend/config"
	"roomspace-backend/service"

	"github.com/gin-gonic/gin"
)

// RouterDeps bundles the handlers and services the router needs
type RouterDeps struct {
	Config         *config.Config
	AuthService    *service.AuthService
	AuthHandler    *AuthHandler
	RoomHandler    *RoomHandler
	DesignHandler  *DesignHandler
	ProductHandler *ProductHandler
}

// NewRouter builds the gin engine with all application routes
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"services": gin.H{
				"database":   deps.Config.ServiceAvailable("database"),
				"generation": deps.Config.ServiceAvailable("generation"),
				"amazon":     deps.Config.ServiceAvailable("amazon"),
				"google":     deps.Config.ServiceAvailable("google"),
				"apple":      deps.Config.ServiceAvailable("apple"),
			},
		})
	})

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", deps.AuthHandler.Register)
		auth.POST("/login", deps.AuthHandler.Login)
		auth.POST("/google", deps.AuthHandler.GoogleAuth)
		auth.POST("/apple", deps.AuthHandler.AppleAuth)
	}

	protected := api.Group("")
	protected.Use(RequireAuth(deps.AuthService))

	rooms := protected.Group("/rooms")
	{
		// The mobile client posts scans to /rooms/scan; plain /rooms is kept
		// as an alias for the same create.
		rooms.POST("", deps.RoomHandler.CreateRoom)
		rooms.POST("/scan", deps.RoomHandler.CreateRoom)
		rooms.GET("", deps.RoomHandler.ListRooms)
		rooms.GET("/:id", deps.RoomHandler.GetRoom)
		rooms.PUT("/:id", deps.RoomHandler.UpdateRoom)
		rooms.DELETE("/:id", deps.RoomHandler.DeleteRoom)
		rooms.POST("/:id/scan", deps.RoomHandler.UploadScanArchive)
		rooms.GET("/:id/scan", deps.RoomHandler.DownloadScanArchive)
	}

	designs := protected.Group("/designs")
	{
		designs.POST("/generate", deps.DesignHandler.GenerateDesign)
		designs.GET("", deps.DesignHandler.ListDesigns)
		designs.GET("/:id", deps.DesignHandler.GetDesign)
		designs.PUT("/:id", deps.DesignHandler.UpdateDesign)
		designs.DELETE("/:id", deps.DesignHandler.DeleteDesign)
	}

	products := protected.Group("/products")
	{
		products.GET("/search", deps.ProductHandler.SearchProducts)
		products.GET("/details/:asin", deps.ProductHandler.GetProductDetails)
		products.POST("/recommendations", deps.ProductHandler.GetRecommendations)
		products.POST("/favorites", deps.ProductHandler.SaveFavorite)
		products.GET("/favorites", deps.ProductHandler.ListFavorites)
		products.DELETE("/favorites/:asin", deps.ProductHandler.RemoveFavorite)
	}

	return router
}
