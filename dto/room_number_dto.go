package dto

import "time"

// RoomNumberDto is the full public view of a room number.
type RoomNumberDto struct {
	RoomNo        uint      `json:"roomNo"`
	PropertyID    uint      `json:"propertyId"`
	SpecialDetail string    `json:"specialDetail"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RoomNumberCreateDto carries the caller-supplied room number and its
// owning property.
type RoomNumberCreateDto struct {
	RoomNo        uint   `json:"roomNo"`
	PropertyID    uint   `json:"propertyId"`
	SpecialDetail string `json:"specialDetail"`
}

// RoomNumberUpdateDto is the editable shape for full updates and
// patches. RoomNo is the immutable primary key and must match the
// request path.
type RoomNumberUpdateDto struct {
	RoomNo        uint   `json:"roomNo"`
	PropertyID    uint   `json:"propertyId"`
	SpecialDetail string `json:"specialDetail"`
}

// Validate returns the shape-level violations, empty when valid.
// Property existence is a cross-entity check done by the service.
func (d *RoomNumberCreateDto) Validate() []string {
	return validateRoomNumber(d.RoomNo, d.PropertyID)
}

// Validate returns the shape-level violations, empty when valid.
func (d *RoomNumberUpdateDto) Validate() []string {
	return validateRoomNumber(d.RoomNo, d.PropertyID)
}

func validateRoomNumber(roomNo, propertyID uint) []string {
	var errs []string
	if roomNo == 0 {
		errs = append(errs, "roomNo is required")
	}
	if propertyID == 0 {
		errs = append(errs, "propertyId is required")
	}
	return errs
}
