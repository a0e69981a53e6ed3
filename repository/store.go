package repository

import (
	"context"
	"errors"

	"roomspace-backend/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound covers both "record absent" and "record owned by someone
	// else"; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail signals a registration against an existing email
	ErrDuplicateEmail = errors.New("user already exists with this email")

	// ErrDuplicateFavorite signals a favorite that the owner already saved
	ErrDuplicateFavorite = errors.New("product already saved to favorites")
)

// UserStore handles account persistence
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// RoomStore handles room scan persistence. Every operation is scoped by the
// owning user; ownerID is a mandatory parameter so a caller cannot forget it.
type RoomStore interface {
	Create(ctx context.Context, ownerID uuid.UUID, room *models.RoomScan) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.RoomScan, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.RoomScan, error)
	Update(ctx context.Context, ownerID uuid.UUID, room *models.RoomScan) error
	SetScanArchivePath(ctx context.Context, ownerID, id uuid.UUID, path string) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// DesignStore handles saved design persistence, owner-scoped like RoomStore.
// Reads embed a summary of the design's room when it still exists; designs
// survive room deletion, so a nil Room is a valid result.
type DesignStore interface {
	Create(ctx context.Context, ownerID uuid.UUID, design *models.Design) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Design, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Design, error)
	Update(ctx context.Context, ownerID uuid.UUID, design *models.Design) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// FavoriteStore handles favorite product persistence
type FavoriteStore interface {
	Create(ctx context.Context, ownerID uuid.UUID, favorite *models.FavoriteProduct) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.FavoriteProduct, error)
	DeleteByASIN(ctx context.Context, ownerID uuid.UUID, asin string) error
}
