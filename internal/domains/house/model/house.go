package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// House is a persisted property listing.
// UserID is the owner identifier: stamped once at creation, never updated.
type House struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Image               string    `json:"image"`
	Country             string    `json:"country"`
	County              string    `json:"county"`
	City                string    `json:"city,omitempty"`
	LocationDescription string    `json:"location_description"`
	Gym                 bool      `json:"gym"`
	Spa                 bool      `json:"spa"`
	Bar                 bool      `json:"bar"`
	Parking             bool      `json:"parking"`
	SwimmingPool        bool      `json:"swimming_pool"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Room belongs to a House. Read-only in this service: rooms are fetched
// alongside a house for the detail view but never created or edited here.
type Room struct {
	ID            uuid.UUID       `json:"id"`
	HouseID       uuid.UUID       `json:"house_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	BedCount      int             `json:"bed_count"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
}

// HouseWithRooms is the detail-view shape.
type HouseWithRooms struct {
	House
	Rooms []Room `json:"rooms"`
}

// GenerateHouseDetailCacheKey builds the redis key for a house detail.
func GenerateHouseDetailCacheKey(id string) string {
	return "house:detail:" + id
}
