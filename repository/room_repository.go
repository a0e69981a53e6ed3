package repository

import (
	"context"
	"errors"

	"roomspace-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RoomRepository handles database operations for room scans
type RoomRepository struct {
	db *pgxpool.Pool
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create creates a new room scan owned by ownerID
func (r *RoomRepository) Create(ctx context.Context, ownerID uuid.UUID, room *models.RoomScan) error {
	room.UserID = ownerID

	query := `
		INSERT INTO room_scans (
			user_id, name, room_type, dimensions, scan_data,
			budget_min, budget_max, style
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(
		ctx, query,
		room.UserID,
		room.Name,
		room.RoomType,
		room.Dimensions,
		room.ScanData,
		room.Budget.Min,
		room.Budget.Max,
		room.Style,
	).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
}

// ListByOwner retrieves all room scans for a user, newest first
func (r *RoomRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.RoomScan, error) {
	query := `
		SELECT id, user_id, name, room_type, dimensions, scan_data,
			budget_min, budget_max, style, scan_archive_path, created_at, updated_at
		FROM room_scans
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.RoomScan
	for rows.Next() {
		room := &models.RoomScan{}
		if err := scanRoom(rows, room); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

// GetByID retrieves a room scan by ID, scoped to its owner
func (r *RoomRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.RoomScan, error) {
	query := `
		SELECT id, user_id, name, room_type, dimensions, scan_data,
			budget_min, budget_max, style, scan_archive_path, created_at, updated_at
		FROM room_scans
		WHERE id = $1 AND user_id = $2`

	room := &models.RoomScan{}
	err := scanRoom(r.db.QueryRow(ctx, query, id, ownerID), room)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return room, nil
}

// Update replaces a room scan's mutable fields, scoped to its owner
func (r *RoomRepository) Update(ctx context.Context, ownerID uuid.UUID, room *models.RoomScan) error {
	query := `
		UPDATE room_scans SET
			name = $3,
			room_type = $4,
			dimensions = $5,
			scan_data = $6,
			budget_min = $7,
			budget_max = $8,
			style = $9,
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRow(
		ctx, query,
		room.ID,
		ownerID,
		room.Name,
		room.RoomType,
		room.Dimensions,
		room.ScanData,
		room.Budget.Min,
		room.Budget.Max,
		room.Style,
	).Scan(&room.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// SetScanArchivePath records where a room's raw scan archive is stored
func (r *RoomRepository) SetScanArchivePath(ctx context.Context, ownerID, id uuid.UUID, path string) error {
	query := `
		UPDATE room_scans SET scan_archive_path = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, id, ownerID, path)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a room scan, scoped to its owner. Saved designs referencing
// the room are left in place.
func (r *RoomRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := `DELETE FROM room_scans WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRoom(row pgx.Row, room *models.RoomScan) error {
	return row.Scan(
		&room.ID,
		&room.UserID,
		&room.Name,
		&room.RoomType,
		&room.Dimensions,
		&room.ScanData,
		&room.Budget.Min,
		&room.Budget.Max,
		&room.Style,
		&room.ScanArchivePath,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
}
