// Package mapper holds the fixed set of shape pairs the API maps
// between: storage models on one side, public DTOs on the other.
package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"villa-backend/dto"
	"villa-backend/models"
)

func amenityToList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}

func amenityFromList(list []string) datatypes.JSON {
	if len(list) == 0 {
		return nil
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

// ToPropertyDto maps storage shape to the public view.
func ToPropertyDto(m models.Property) dto.PropertyDto {
	return dto.PropertyDto{
		ID:        m.ID,
		Name:      m.Name,
		Detail:    m.Detail,
		Rate:      m.Rate,
		Occupancy: m.Occupancy,
		Area:      m.Area,
		ImageURL:  m.ImageURL,
		Amenity:   amenityToList(m.Amenity),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToPropertyDtoList maps a slice of properties to public views.
func ToPropertyDtoList(ms []models.Property) []dto.PropertyDto {
	out := make([]dto.PropertyDto, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPropertyDto(m))
	}
	return out
}

// FromPropertyCreateDto maps a create request to a storage entity.
// ID and timestamps stay zero; the service assigns them.
func FromPropertyCreateDto(d dto.PropertyCreateDto) models.Property {
	return models.Property{
		Name:      d.Name,
		Detail:    d.Detail,
		Rate:      d.Rate,
		Occupancy: d.Occupancy,
		Area:      d.Area,
		ImageURL:  d.ImageURL,
		Amenity:   amenityFromList(d.Amenity),
	}
}

// FromPropertyUpdateDto maps the editable shape back to storage shape.
func FromPropertyUpdateDto(d dto.PropertyUpdateDto) models.Property {
	return models.Property{
		ID:        d.ID,
		Name:      d.Name,
		Detail:    d.Detail,
		Rate:      d.Rate,
		Occupancy: d.Occupancy,
		Area:      d.Area,
		ImageURL:  d.ImageURL,
		Amenity:   amenityFromList(d.Amenity),
	}
}

// ToPropertyUpdateDto projects a stored property into its editable shape.
func ToPropertyUpdateDto(m models.Property) dto.PropertyUpdateDto {
	return dto.PropertyUpdateDto{
		ID:        m.ID,
		Name:      m.Name,
		Detail:    m.Detail,
		Rate:      m.Rate,
		Occupancy: m.Occupancy,
		Area:      m.Area,
		ImageURL:  m.ImageURL,
		Amenity:   amenityToList(m.Amenity),
	}
}

// ToRoomNumberDto maps storage shape to the public view.
func ToRoomNumberDto(m models.RoomNumber) dto.RoomNumberDto {
	return dto.RoomNumberDto{
		RoomNo:        m.RoomNo,
		PropertyID:    m.PropertyID,
		SpecialDetail: m.SpecialDetail,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToRoomNumberDtoList maps a slice of room numbers to public views.
func ToRoomNumberDtoList(ms []models.RoomNumber) []dto.RoomNumberDto {
	out := make([]dto.RoomNumberDto, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToRoomNumberDto(m))
	}
	return out
}

// FromRoomNumberCreateDto maps a create request to a storage entity.
func FromRoomNumberCreateDto(d dto.RoomNumberCreateDto) models.RoomNumber {
	return models.RoomNumber{
		RoomNo:        d.RoomNo,
		PropertyID:    d.PropertyID,
		SpecialDetail: d.SpecialDetail,
	}
}

// FromRoomNumberUpdateDto maps the editable shape back to storage shape.
func FromRoomNumberUpdateDto(d dto.RoomNumberUpdateDto) models.RoomNumber {
	return models.RoomNumber{
		RoomNo:        d.RoomNo,
		PropertyID:    d.PropertyID,
		SpecialDetail: d.SpecialDetail,
	}
}

// ToRoomNumberUpdateDto projects a stored room number into its editable
// shape.
func ToRoomNumberUpdateDto(m models.RoomNumber) dto.RoomNumberUpdateDto {
	return dto.RoomNumberUpdateDto{
		RoomNo:        m.RoomNo,
		PropertyID:    m.PropertyID,
		SpecialDetail: m.SpecialDetail,
	}
}
