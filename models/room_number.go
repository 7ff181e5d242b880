package models

import (
	"time"
)

// RoomNumber is a single numbered room belonging to one property.
// RoomNo is caller-supplied and immutable, not an auto-increment.
type RoomNumber struct {
	RoomNo        uint   `gorm:"primaryKey;autoIncrement:false" json:"roomNo"`
	PropertyID    uint   `gorm:"not null;index" json:"propertyId"`
	SpecialDetail string `gorm:"type:text" json:"specialDetail"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
