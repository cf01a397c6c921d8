package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TravelPackage mirrors the externally-owned package catalog. The upstream
// admin tooling writes these records with loosely typed price fields
// (numbers, "₹50,000", "N/A"), so the price columns stay as raw strings and
// are normalized at read time by the matching service.
type TravelPackage struct {
	BaseModel
	DestinationID   uuid.UUID
	DestinationName string
	Overview        string
	DurationDays    int
	DurationNights  int
	PriceMin        string
	PriceRange      string
	Price           string
	Budget          string
	TravelType      string
	Mood            string
	StarCategory    string
	Theme           string
	PrimaryImage    string
	Highlights      pq.StringArray `gorm:"type:text[]"`
	Activities      pq.StringArray `gorm:"type:text[]"`
	Inclusions      pq.StringArray `gorm:"type:text[]"`
	Itinerary       string
}
