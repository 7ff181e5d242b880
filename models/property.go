package models

import (
	"time"

	"gorm.io/datatypes"
)

// Property is a rentable villa in the catalog.
type Property struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"type:varchar(120);uniqueIndex;not null" json:"name"`
	Detail string `gorm:"type:text" json:"detail"`

	Rate      float64 `json:"rate"`
	Occupancy int     `json:"occupancy"`
	Area      float64 `json:"area"`

	ImageURL string `gorm:"column:image_url;type:varchar(500)" json:"imageUrl"`

	// JSON array of amenity names, e.g. ["pool","wifi"].
	Amenity datatypes.JSON `gorm:"column:amenity" json:"amenity,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Room numbers go away with their property.
	RoomNumbers []RoomNumber `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
}
