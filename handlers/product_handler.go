package handlers

import (
	"errors"
	"net/http"
	"strings"

	"roomspace-backend/models"
	"roomspace-backend/repository"
	"roomspace-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductHandler handles HTTP requests for product search and favorites
type ProductHandler struct {
	products  *service.ProductService
	favorites repository.FavoriteStore
	designs   repository.DesignStore
	logger    *zap.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(products *service.ProductService, favorites repository.FavoriteStore, designs repository.DesignStore, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		products:  products,
		favorites: favorites,
		designs:   designs,
		logger:    logger,
	}
}

// ProductSearchQuery represents the query parameters for product search
type ProductSearchQuery struct {
	Keywords string   `form:"keywords" binding:"required"`
	Category string   `form:"category"`
	MinPrice *float64 `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice *float64 `form:"maxPrice" binding:"omitempty,gte=0"`
	SortBy   string   `form:"sortBy" binding:"omitempty,oneof=relevance price_low price_high rating"`
}

// SearchProducts handles GET /api/products/search
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	var query ProductSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		validationError(c, err)
		return
	}
	if query.SortBy == "" {
		query.SortBy = service.SortRelevance
	}

	products := h.products.SearchProducts(c.Request.Context(), service.SearchQuery{
		Keywords: query.Keywords,
		Category: query.Category,
		MinPrice: query.MinPrice,
		MaxPrice: query.MaxPrice,
		SortBy:   query.SortBy,
	})

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GetProductDetails handles GET /api/products/details/:asin.
// TODO: replace the placeholder once the product API integration can fetch
// single-item details.
func (h *ProductHandler) GetProductDetails(c *gin.Context) {
	asin := c.Param("asin")

	c.JSON(http.StatusOK, gin.H{
		"message":     "Product details endpoint - implementation pending",
		"asin":        asin,
		"placeholder": true,
	})
}

// RecommendationsRequest represents the request body for recommendations
type RecommendationsRequest struct {
	DesignID       *string                `json:"designId"`
	FurnitureItems []models.FurnitureItem `json:"furnitureItems"`
}

// Recommendation is the product suggestions for one furniture item
type Recommendation struct {
	Item           string           `json:"item"`
	Category       string           `json:"category"`
	EstimatedPrice float64          `json:"estimatedPrice"`
	Products       []models.Product `json:"products"`
}

// GetRecommendations handles POST /api/products/recommendations
func (h *ProductHandler) GetRecommendations(c *gin.Context) {
	var req RecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	if req.DesignID == nil && len(req.FurnitureItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Either designId or furnitureItems array is required",
		})
		return
	}

	userID := currentUserID(c)
	items := req.FurnitureItems

	if req.DesignID != nil {
		designID, err := uuid.Parse(*req.DesignID)
		if err != nil {
			validationDetailError(c, "designId must be a valid id")
			return
		}

		design, err := h.designs.GetByID(c.Request.Context(), userID, designID)
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Design not found",
			})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to fetch design",
			})
			return
		}

		items = design.FurnitureItems
	}

	recommendations := make([]Recommendation, 0, len(items))
	for _, item := range items {
		keywords := strings.Join(item.SearchTerms, " ")
		if keywords == "" {
			keywords = item.Name
		}

		query := service.SearchQuery{
			Keywords: keywords,
			Category: "Home & Kitchen",
			SortBy:   service.SortRelevance,
		}
		if item.EstimatedPrice > 0 {
			maxPrice := item.EstimatedPrice * 1.5
			query.MaxPrice = &maxPrice
		}

		products := h.products.SearchProducts(c.Request.Context(), query)
		if len(products) > 5 {
			products = products[:5]
		}

		recommendations = append(recommendations, Recommendation{
			Item:           item.Name,
			Category:       item.Category,
			EstimatedPrice: item.EstimatedPrice,
			Products:       products,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Furniture recommendations generated",
		"recommendations": recommendations,
		"total":           len(recommendations),
	})
}

// SaveFavoriteRequest represents the request body for saving a favorite
type SaveFavoriteRequest struct {
	ASIN     string   `json:"asin" binding:"required"`
	Title    string   `json:"title" binding:"required"`
	Price    *float64 `json:"price" binding:"omitempty,gte=0"`
	ImageURL *string  `json:"imageUrl"`
	DesignID *string  `json:"designId" binding:"omitempty,uuid"`
}

// SaveFavorite handles POST /api/products/favorites
func (h *ProductHandler) SaveFavorite(c *gin.Context) {
	var req SaveFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	userID := currentUserID(c)

	favorite := &models.FavoriteProduct{
		ProductASIN:     req.ASIN,
		ProductTitle:    req.Title,
		ProductPrice:    req.Price,
		ProductImageURL: req.ImageURL,
	}
	if req.DesignID != nil {
		designID, err := uuid.Parse(*req.DesignID)
		if err == nil {
			favorite.DesignID = &designID
		}
	}

	err := h.favorites.Create(c.Request.Context(), userID, favorite)
	if errors.Is(err, repository.ErrDuplicateFavorite) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Product is already in favorites",
		})
		return
	}
	if err != nil {
		h.logger.Error("failed to save favorite",
			zap.String("operation", "save_favorite"),
			zap.String("owner_id", userID.String()),
			zap.String("asin", req.ASIN),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to save favorite",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Product saved to favorites",
		"favorite": favorite,
	})
}

// ListFavorites handles GET /api/products/favorites
func (h *ProductHandler) ListFavorites(c *gin.Context) {
	userID := currentUserID(c)

	favorites, err := h.favorites.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to fetch favorites",
			zap.String("operation", "list_favorites"),
			zap.String("owner_id", userID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch favorites",
		})
		return
	}

	if favorites == nil {
		favorites = []*models.FavoriteProduct{}
	}

	c.JSON(http.StatusOK, gin.H{
		"favorites": favorites,
	})
}

// RemoveFavorite handles DELETE /api/products/favorites/:asin
func (h *ProductHandler) RemoveFavorite(c *gin.Context) {
	asin := c.Param("asin")

	userID := currentUserID(c)

	err := h.favorites.DeleteByASIN(c.Request.Context(), userID, asin)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Favorite not found",
		})
		return
	}
	if err != nil {
		h.logger.Error("failed to remove favorite",
			zap.String("operation", "remove_favorite"),
			zap.String("owner_id", userID.String()),
			zap.String("asin", asin),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to remove favorite",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product removed from favorites",
	})
}
