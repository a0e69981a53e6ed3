package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Position locates a furniture item or zone in the room plan
type Position struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z,omitempty"`
	Rotation float64 `json:"rotation,omitempty"`
}

// ItemDimensions holds furniture piece measurements in inches
type ItemDimensions struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

// FurnitureItem is one recommended piece within a design
type FurnitureItem struct {
	Name           string         `json:"name"`
	Category       string         `json:"category"`
	EstimatedPrice float64        `json:"estimatedPrice"`
	Position       Position       `json:"position"`
	Dimensions     ItemDimensions `json:"dimensions"`
	SearchTerms    []string       `json:"searchTerms"`
}

// FurnitureItems is the JSONB-stored furniture list of a design
type FurnitureItems []FurnitureItem

// Value implements driver.Valuer for JSONB
func (f FurnitureItems) Value() (driver.Value, error) {
	if f == nil {
		f = FurnitureItems{}
	}
	return json.Marshal(f)
}

// Scan implements sql.Scanner for JSONB
func (f *FurnitureItems) Scan(value interface{}) error {
	if value == nil {
		*f = FurnitureItems{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	if len(bytes) == 0 {
		*f = FurnitureItems{}
		return nil
	}
	return json.Unmarshal(bytes, f)
}

// LayoutZone groups furniture into a functional area of the room
type LayoutZone struct {
	Name      string   `json:"name"`
	Furniture []string `json:"furniture"`
	Position  Position `json:"position"`
}

// Layout describes the overall furniture arrangement
type Layout struct {
	Description string       `json:"description"`
	Zones       []LayoutZone `json:"zones"`
}

// ColorScheme is a three-color palette keyed by role
type ColorScheme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// DesignPayload is the structured output of a generation call
type DesignPayload struct {
	Layout         Layout         `json:"layout"`
	FurnitureItems FurnitureItems `json:"furnitureItems"`
	ColorScheme    ColorScheme    `json:"colorScheme"`
	Lighting       []string       `json:"lighting"`
	Accessories    []string       `json:"accessories"`
	TotalCost      float64        `json:"totalCost"`
}

// Value implements driver.Valuer for JSONB
func (p DesignPayload) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for JSONB
func (p *DesignPayload) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	if len(bytes) == 0 {
		return nil
	}
	return json.Unmarshal(bytes, p)
}

// CustomLayout is an optional client-edited layout override, stored opaquely
type CustomLayout map[string]interface{}

// Value implements driver.Valuer for JSONB
func (c CustomLayout) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB
func (c *CustomLayout) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	if len(bytes) == 0 {
		return nil
	}
	return json.Unmarshal(bytes, c)
}

// Design represents one saved AI-generated design.
// Designs keep a reference to the room they were generated for, but survive
// its deletion: Room is nil when the room no longer exists.
type Design struct {
	ID             uuid.UUID      `json:"id"`
	UserID         uuid.UUID      `json:"user_id"`
	RoomID         uuid.UUID      `json:"room_id"`
	Style          Style          `json:"style"`
	Budget         BudgetRange    `json:"budget"`
	DesignData     DesignPayload  `json:"design_data"`
	FurnitureItems FurnitureItems `json:"furniture_items"`
	TotalCost      float64        `json:"total_cost"`
	IsFavorite     bool           `json:"is_favorite"`
	Notes          *string        `json:"notes,omitempty"`
	CustomLayout   CustomLayout   `json:"custom_layout,omitempty"`
	Room           *RoomSummary   `json:"room,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
