package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"roomspace-backend/models"
	"roomspace-backend/repository"
	"roomspace-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoomHandler handles HTTP requests for room scans
type RoomHandler struct {
	rooms       repository.RoomStore
	storage     storage.Storage
	logger      *zap.Logger
	maxScanSize int64
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(rooms repository.RoomStore, scanStorage storage.Storage, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{
		rooms:       rooms,
		storage:     scanStorage,
		logger:      logger,
		maxScanSize: 50 * 1024 * 1024, // 50MB, raw ARKit exports are large
	}
}

type dimensionsPayload struct {
	Width  float64 `json:"width" binding:"required,gt=0"`
	Length float64 `json:"length" binding:"required,gt=0"`
	Height float64 `json:"height" binding:"required,gt=0"`
}

// RoomScanRequest represents the request body for creating or replacing a room scan
type RoomScanRequest struct {
	Name       string             `json:"name" binding:"required"`
	Dimensions *dimensionsPayload `json:"dimensions" binding:"required"`
	ScanData   string             `json:"scanData" binding:"required"`
	RoomType   string             `json:"roomType" binding:"required,oneof=living_room bedroom kitchen dining_room office other"`
	Budget     *budgetPayload     `json:"budget" binding:"required"`
	Style      string             `json:"style" binding:"required,oneof=modern minimalist scandinavian industrial bohemian"`
}

func (req *RoomScanRequest) toModel() *models.RoomScan {
	return &models.RoomScan{
		Name: req.Name,
		Dimensions: models.Dimensions{
			Width:  req.Dimensions.Width,
			Length: req.Dimensions.Length,
			Height: req.Dimensions.Height,
		},
		ScanData: req.ScanData,
		RoomType: models.RoomType(req.RoomType),
		Budget:   models.BudgetRange{Min: req.Budget.Min, Max: req.Budget.Max},
		Style:    models.Style(req.Style),
	}
}

// CreateRoom handles POST /api/rooms
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req RoomScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	if !req.Budget.ordered() {
		validationDetailError(c, budgetOrderDetail)
		return
	}

	userID := currentUserID(c)
	room := req.toModel()

	if err := h.rooms.Create(c.Request.Context(), userID, room); err != nil {
		h.logger.Error("failed to save room scan",
			zap.String("operation", "create_room"),
			zap.String("owner_id", userID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to save room scan",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Room scan saved successfully",
		"room":    room,
	})
}

// ListRooms handles GET /api/rooms
func (h *RoomHandler) ListRooms(c *gin.Context) {
	userID := currentUserID(c)

	rooms, err := h.rooms.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to fetch rooms",
			zap.String("operation", "list_rooms"),
			zap.String("owner_id", userID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch rooms",
		})
		return
	}

	if rooms == nil {
		rooms = []*models.RoomScan{}
	}

	c.JSON(http.StatusOK, gin.H{
		"rooms": rooms,
	})
}

// GetRoom handles GET /api/rooms/:id
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid room ID format",
		})
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
		h.logger.Error("failed to fetch room",
			zap.String("operation", "get_room"),
			zap.String("owner_id", userID.String()),
			zap.String("room_id", roomID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch room",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room": room,
	})
}

// UpdateRoom handles PUT /api/rooms/:id
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid room ID format",
		})
		return
	}

	var req RoomScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	if !req.Budget.ordered() {
		validationDetailError(c, budgetOrderDetail)
		return
	}

	userID := currentUserID(c)
	room := req.toModel()
	room.ID = roomID

	err = h.rooms.Update(c.Request.Context(), userID, room)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Room not found",
		})
		return
	}
	if err != nil {
		h.logger.Error("failed to update room",
			zap.String("operation", "update_room"),
			zap.String("owner_id", userID.String()),
			zap.String("room_id", roomID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update room",
		})
		return
	}

	updated, err := h.rooms.GetByID(c.Request.Context(), userID, roomID)
	if err != nil {
		updated = room
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Room updated successfully",
		"room":    updated,
	})
}

// DeleteRoom handles DELETE /api/rooms/:id. Saved designs generated for the
// room are intentionally left in place.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid room ID format",
		})
		return
	}

	userID := currentUserID(c)

	err = h.rooms.Delete(c.Request.Context(), userID, roomID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Room not found",
		})
		return
	}
	if err != nil {
		h.logger.Error("failed to delete room",
			zap.String("operation", "delete_room"),
			zap.String("owner_id", userID.String()),
			zap.String("room_id", roomID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete room",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Room deleted successfully",
	})
}

// UploadScanArchive handles POST /api/rooms/:id/scan. The raw ARKit export
// is stored as an opaque blob; only its storage path lands on the room.
func (h *RoomHandler) UploadScanArchive(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid room ID format",
		})
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
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch room",
		})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "File is required",
		})
		return
	}

	if fileHeader.Size > h.maxScanSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("Scan archive exceeds maximum of %d bytes", h.maxScanSize),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to read uploaded file",
		})
		return
	}
	defer file.Close()

	storagePath, err := h.storage.Upload(c.Request.Context(), room.ID, fileHeader.Filename, file)
	if err != nil {
		h.logger.Error("failed to store scan archive",
			zap.String("operation", "upload_scan_archive"),
			zap.String("owner_id", userID.String()),
			zap.String("room_id", roomID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to store scan archive",
		})
		return
	}

	if err := h.rooms.SetScanArchivePath(c.Request.Context(), userID, roomID, storagePath); err != nil {
		h.storage.Delete(c.Request.Context(), storagePath)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to record scan archive",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":           "Scan archive uploaded successfully",
		"scan_archive_path": storagePath,
	})
}

// DownloadScanArchive handles GET /api/rooms/:id/scan
func (h *RoomHandler) DownloadScanArchive(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid room ID format",
		})
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
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch room",
		})
		return
	}

	if room.ScanArchivePath == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Scan archive not found",
		})
		return
	}

	reader, err := h.storage.Download(c.Request.Context(), *room.ScanArchivePath)
	if err != nil {
		h.logger.Error("failed to download scan archive",
			zap.String("operation", "download_scan_archive"),
			zap.String("owner_id", userID.String()),
			zap.String("room_id", roomID.String()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to download scan archive",
		})
		return
	}
	defer reader.Close()

	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=\"%s.scan\"", room.ID),
	}
	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", reader, headers)
}
