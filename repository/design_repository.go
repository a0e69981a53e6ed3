package repository

import (
	"context"
	"errors"

	"roomspace-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DesignRepository handles database operations for saved designs
type DesignRepository struct {
	db *pgxpool.Pool
}

// NewDesignRepository creates a new design repository
func NewDesignRepository(db *pgxpool.Pool) *DesignRepository {
	return &DesignRepository{db: db}
}

// Create creates a new saved design owned by ownerID
func (r *DesignRepository) Create(ctx context.Context, ownerID uuid.UUID, design *models.Design) error {
	design.UserID = ownerID

	query := `
		INSERT INTO saved_designs (
			user_id, room_id, style, budget_min, budget_max,
			design_data, furniture_items, total_cost, is_favorite, notes, custom_layout
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(
		ctx, query,
		design.UserID,
		design.RoomID,
		design.Style,
		design.Budget.Min,
		design.Budget.Max,
		design.DesignData,
		design.FurnitureItems,
		design.TotalCost,
		design.IsFavorite,
		design.Notes,
		design.CustomLayout,
	).Scan(&design.ID, &design.CreatedAt, &design.UpdatedAt)
}

// ListByOwner retrieves all designs for a user, newest first, each with a
// summary of its room when the room still exists.
func (r *DesignRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Design, error) {
	query := `
		SELECT d.id, d.user_id, d.room_id, d.style, d.budget_min, d.budget_max,
			d.design_data, d.furniture_items, d.total_cost, d.is_favorite,
			d.notes, d.custom_layout, d.created_at, d.updated_at,
			rs.id, rs.name, rs.room_type, rs.dimensions
		FROM saved_designs d
		LEFT JOIN room_scans rs ON rs.id = d.room_id
		WHERE d.user_id = $1
		ORDER BY d.created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var designs []*models.Design
	for rows.Next() {
		design := &models.Design{}
		if err := scanDesign(rows, design, false); err != nil {
			return nil, err
		}
		designs = append(designs, design)
	}

	return designs, rows.Err()
}

// GetByID retrieves a design by ID, scoped to its owner, with its room
// (including the raw scan payload) embedded when the room still exists.
func (r *DesignRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Design, error) {
	query := `
		SELECT d.id, d.user_id, d.room_id, d.style, d.budget_min, d.budget_max,
			d.design_data, d.furniture_items, d.total_cost, d.is_favorite,
			d.notes, d.custom_layout, d.created_at, d.updated_at,
			rs.id, rs.name, rs.room_type, rs.dimensions, rs.scan_data
		FROM saved_designs d
		LEFT JOIN room_scans rs ON rs.id = d.room_id
		WHERE d.id = $1 AND d.user_id = $2`

	design := &models.Design{}
	err := scanDesign(r.db.QueryRow(ctx, query, id, ownerID), design, true)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return design, nil
}

// Update replaces a design's mutable fields, scoped to its owner
func (r *DesignRepository) Update(ctx context.Context, ownerID uuid.UUID, design *models.Design) error {
	query := `
		UPDATE saved_designs SET
			design_data = $3,
			furniture_items = $4,
			total_cost = $5,
			is_favorite = $6,
			notes = $7,
			custom_layout = $8,
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRow(
		ctx, query,
		design.ID,
		ownerID,
		design.DesignData,
		design.FurnitureItems,
		design.TotalCost,
		design.IsFavorite,
		design.Notes,
		design.CustomLayout,
	).Scan(&design.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete deletes a design, scoped to its owner
func (r *DesignRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `DELETE FROM saved_designs WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanDesign(row pgx.Row, design *models.Design, withScanData bool) error {
	var (
		roomID       *uuid.UUID
		roomName     *string
		roomType     *string
		roomDims     models.Dimensions
		roomScanData *string
	)

	dest := []interface{}{
		&design.ID,
		&design.UserID,
		&design.RoomID,
		&design.Style,
		&design.Budget.Min,
		&design.Budget.Max,
		&design.DesignData,
		&design.FurnitureItems,
		&design.TotalCost,
		&design.IsFavorite,
		&design.Notes,
		&design.CustomLayout,
		&design.CreatedAt,
		&design.UpdatedAt,
		&roomID,
		&roomName,
		&roomType,
		&roomDims,
	}
	if withScanData {
		dest = append(dest, &roomScanData)
	}

	if err := row.Scan(dest...); err != nil {
		return err
	}

	// LEFT JOIN: the room may have been deleted out from under the design
	if roomID != nil {
		summary := &models.RoomSummary{
			ID:         *roomID,
			Dimensions: roomDims,
		}
		if roomName != nil {
			summary.Name = *roomName
		}
		if roomType != nil {
			summary.RoomType = models.RoomType(*roomType)
		}
		if roomScanData != nil {
			summary.ScanData = *roomScanData
		}
		design.Room = summary
	}

	return nil
}
