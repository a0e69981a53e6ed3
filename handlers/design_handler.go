package handlers

import (
	"errors"
	"net/http"

	"roomspace-backend/models"
	"roomspace-backend/repository"
	"roomspace-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DesignHandler handles HTTP requests for saved designs
type DesignHandler struct {
	designs       repository.DesignStore
	rooms         repository.RoomStore
	designService *service.DesignService
	logger        *zap.Logger
}

// NewDesignHandler creates a new design handler
func NewDesignHandler(designs repository.DesignStore, rooms repository.RoomStore, designService *service.DesignService, logger *zap.Logger) *DesignHandler {
	return &DesignHandler{
		designs:       designs,
		rooms:         rooms,
		designService: designService,
		logger:        logger,
	}
}

// GenerateDesignRequest represents the request body for design generation
type GenerateDesignRequest struct {
	RoomID      string                     `json:"roomId" binding:"required,uuid"`
	Style       string                     `json:"style" binding:"required,oneof=modern minimalist scandinavian industrial bohemian"`
	Budget      *budgetPayload             `json:"budget" binding:"required"`
	Preferences *service.DesignPreferences `json:"preferences"`
}

// GenerateDesign handles POST /api/designs/generate. Generation is
// best-effort: the endpoint succeeds with a fallback design when the
// generation service is unavailable.
func (h *DesignHandler) GenerateDesign(c *gin.Context) {
	var req GenerateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	if !req.Budget.ordered() {
		validationDetailError(c, budgetOrderDetail)
		return
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		validationDetailError(c, "roomId must be a valid id")
		return
	}

	userID := currentUserID(c)

	room, err := h.rooms.GetByID(c.Request.Context(), userID, roomID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Room not found",
		})
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch room for generation",
			zap.String("operation", "generate_design"),
			zap.String("owner_id", userID.String()),
			zap.String("room_id", roomID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to generate design",
		})
		return
	}

	budget := models.BudgetRange{Min: req.Budget.Min, Max: req.Budget.Max}
	payload := h.designService.GenerateDesign(c.Request.Context(), service.GenerateDesignRequest{
		Room:        room,
		Style:       models.Style(req.Style),
		Budget:      budget,
		Preferences: req.Preferences,
	})

	design := &models.Design{
		RoomID:         room.ID,
		Style:          models.Style(req.Style),
		Budget:         budget,
		DesignData:     *payload,
		FurnitureItems: payload.FurnitureItems,
		TotalCost:      payload.TotalCost,
	}

	if err := h.designs.Create(c.Request.Context(), userID, design); err != nil {
		h.logger.Error("failed to save design",
			zap.String("operation", "generate_design"),
			zap.String("owner_id", userID.String()),
			zap.String("room_id", roomID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to save design",
		})
		return
	}

	design.Room = &models.RoomSummary{
		ID:         room.ID,
		Name:       room.Name,
		RoomType:   room.RoomType,
		Dimensions: room.Dimensions,
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Design generated successfully",
		"design":  design,
	})
}

// ListDesigns handles GET /api/designs
func (h *DesignHandler) ListDesigns(c *gin.Context) {
	userID := currentUserID(c)

	designs, err := h.designs.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to fetch designs",
			zap.String("operation", "list_designs"),
			zap.String("owner_id", userID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch designs",
		})
		return
	}

	if designs == nil {
		designs = []*models.Design{}
	}

	c.JSON(http.StatusOK, gin.H{
		"designs": designs,
	})
}

// GetDesign handles GET /api/designs/:id
func (h *DesignHandler) GetDesign(c *gin.Context) {
	designID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid design ID format",
		})
		return
	}

	userID := currentUserID(c)

	design, err := h.designs.GetByID(c.Request.Context(), userID, designID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Design not found",
		})
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch design",
			zap.String("operation", "get_design"),
			zap.String("owner_id", userID.String()),
			zap.String("design_id", designID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch design",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"design": design,
	})
}

// UpdateDesignRequest represents the request body for updating a design.
// All fields are optional; absent fields keep their stored values.
type UpdateDesignRequest struct {
	FurnitureItems *models.FurnitureItems `json:"furniture_items"`
	DesignData     *models.DesignPayload  `json:"design_data"`
	Notes          *string                `json:"notes"`
	IsFavorite     *bool                  `json:"is_favorite"`
	CustomLayout   models.CustomLayout    `json:"custom_layout"`
}

// UpdateDesign handles PUT /api/designs/:id. When the furniture list changes
// (directly or inside design_data), total_cost is recomputed from the items
// rather than trusted from the client.
func (h *DesignHandler) UpdateDesign(c *gin.Context) {
	designID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid design ID format",
		})
		return
	}

	var req UpdateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	userID := currentUserID(c)

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

	furnitureChanged := false
	if req.DesignData != nil {
		design.DesignData = *req.DesignData
		design.FurnitureItems = req.DesignData.FurnitureItems
		furnitureChanged = true
	}
	if req.FurnitureItems != nil {
		design.FurnitureItems = *req.FurnitureItems
		design.DesignData.FurnitureItems = *req.FurnitureItems
		furnitureChanged = true
	}
	if req.Notes != nil {
		design.Notes = req.Notes
	}
	if req.IsFavorite != nil {
		design.IsFavorite = *req.IsFavorite
	}
	if req.CustomLayout != nil {
		design.CustomLayout = req.CustomLayout
	}

	if furnitureChanged {
		total := 0.0
		for _, item := range design.FurnitureItems {
			total += item.EstimatedPrice
		}
		design.TotalCost = total
		design.DesignData.TotalCost = total
	}

	if err := h.designs.Update(c.Request.Context(), userID, design); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Design not found",
			})
			return
		}
		h.logger.Error("failed to update design",
			zap.String("operation", "update_design"),
			zap.String("owner_id", userID.String()),
			zap.String("design_id", designID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update design",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Design updated successfully",
		"design":  design,
	})
}

// DeleteDesign handles DELETE /api/designs/:id
func (h *DesignHandler) DeleteDesign(c *gin.Context) {
	designID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid design ID format",
		})
		return
	}

	userID := currentUserID(c)

	err = h.designs.Delete(c.Request.Context(), userID, designID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Design not found",
		})
		return
	}
	if err != nil {
		h.logger.Error("failed to delete design",
			zap.String("operation", "delete_design"),
			zap.String("owner_id", userID.String()),
			zap.String("design_id", designID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete design",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Design deleted successfully",
	})
}
