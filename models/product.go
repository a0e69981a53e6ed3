package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductPrice is a price with currency
type ProductPrice struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// ProductImages holds the primary image plus thumbnails
type ProductImages struct {
	Primary    string   `json:"primary"`
	Thumbnails []string `json:"thumbnails"`
}

// Product is one product search result
type Product struct {
	ASIN         string        `json:"asin"`
	Title        string        `json:"title"`
	Price        ProductPrice  `json:"price"`
	Images       ProductImages `json:"images"`
	Rating       float64       `json:"rating"`
	ReviewCount  int           `json:"reviewCount"`
	Features     []string      `json:"features"`
	AffiliateURL string        `json:"affiliate_url"`
	Availability string        `json:"availability"`
}

// FavoriteProduct is a product a user saved, with cached display fields
type FavoriteProduct struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	ProductASIN     string     `json:"product_asin"`
	ProductTitle    string     `json:"product_title"`
	ProductPrice    *float64   `json:"product_price,omitempty"`
	ProductImageURL *string    `json:"product_image_url,omitempty"`
	DesignID        *uuid.UUID `json:"design_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
