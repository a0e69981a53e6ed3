package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RoomType restricts the kind of room a scan can describe
type RoomType string

const (
	RoomTypeLivingRoom RoomType = "living_room"
	RoomTypeBedroom    RoomType = "bedroom"
	RoomTypeKitchen    RoomType = "kitchen"
	RoomTypeDiningRoom RoomType = "dining_room"
	RoomTypeOffice     RoomType = "office"
	RoomTypeOther      RoomType = "other"
)

// Style restricts the design style vocabulary
type Style string

const (
	StyleModern       Style = "modern"
	StyleMinimalist   Style = "minimalist"
	StyleScandinavian Style = "scandinavian"
	StyleIndustrial   Style = "industrial"
	StyleBohemian     Style = "bohemian"
)

// Dimensions holds the measured size of a scanned room in feet
type Dimensions struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
}

// Value implements driver.Valuer for JSONB
func (d Dimensions) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner for JSONB
func (d *Dimensions) Scan(value interface{}) error {
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
	return json.Unmarshal(bytes, d)
}

// BudgetRange is an inclusive price range in dollars
type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// RoomScan represents one scanned room owned by a user
type RoomScan struct {
	ID              uuid.UUID   `json:"id"`
	UserID          uuid.UUID   `json:"user_id"`
	Name            string      `json:"name"`
	RoomType        RoomType    `json:"room_type"`
	Dimensions      Dimensions  `json:"dimensions"`
	ScanData        string      `json:"scan_data"` // Base64 encoded ARKit scan, stored opaquely
	Budget          BudgetRange `json:"budget"`
	Style           Style       `json:"style"`
	ScanArchivePath *string     `json:"scan_archive_path,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// RoomSummary is the subset of a room embedded in design responses
type RoomSummary struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	RoomType   RoomType   `json:"room_type"`
	Dimensions Dimensions `json:"dimensions"`
	ScanData   string     `json:"scan_data,omitempty"`
}
