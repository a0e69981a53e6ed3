package repository

import (
	"context"
	"errors"

	"roomspace-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FavoriteRepository handles database operations for favorite products
type FavoriteRepository struct {
	db *pgxpool.Pool
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create creates a new favorite owned by ownerID
func (r *FavoriteRepository) Create(ctx context.Context, ownerID uuid.UUID, favorite *models.FavoriteProduct) error {
	favorite.UserID = ownerID

	query := `
		INSERT INTO user_favorites (
			user_id, product_asin, product_title, product_price,
			product_image_url, design_id
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		favorite.UserID,
		favorite.ProductASIN,
		favorite.ProductTitle,
		favorite.ProductPrice,
		favorite.ProductImageURL,
		favorite.DesignID,
	).Scan(&favorite.ID, &favorite.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateFavorite
	}

	return err
}

// ListByOwner retrieves all favorites for a user, newest first
func (r *FavoriteRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.FavoriteProduct, error) {
	query := `
		SELECT id, user_id, product_asin, product_title, product_price,
			product_image_url, design_id, created_at
		FROM user_favorites
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []*models.FavoriteProduct
	for rows.Next() {
		favorite := &models.FavoriteProduct{}
		err := rows.Scan(
			&favorite.ID,
			&favorite.UserID,
			&favorite.ProductASIN,
			&favorite.ProductTitle,
			&favorite.ProductPrice,
			&favorite.ProductImageURL,
			&favorite.DesignID,
			&favorite.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, favorite)
	}

	return favorites, rows.Err()
}

// DeleteByASIN removes a favorite by product identifier, scoped to its owner
func (r *FavoriteRepository) DeleteByASIN(ctx context.Context, ownerID uuid.UUID, asin string) error {
	query := `DELETE FROM user_favorites WHERE user_id = $1 AND product_asin = $2`

	tag, err := r.db.Exec(ctx, query, ownerID, asin)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
