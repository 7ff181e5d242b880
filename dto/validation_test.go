package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyCreateDtoValidate(t *testing.T) {
	valid := PropertyCreateDto{Name: "Villa Real", Rate: 200, Occupancy: 5, Area: 50}
	assert.Empty(t, valid.Validate())

	invalid := PropertyCreateDto{Name: "   ", Rate: -1, Occupancy: -2, Area: -3}
	errs := invalid.Validate()
	assert.Len(t, errs, 4)
}

func TestPropertyUpdateDtoValidateSharesCreateRules(t *testing.T) {
	d := PropertyUpdateDto{ID: 1, Name: "", Rate: 10}
	errs := d.Validate()
	assert.Equal(t, []string{"name is required"}, errs)
}

func TestRoomNumberDtoValidate(t *testing.T) {
	valid := RoomNumberCreateDto{RoomNo: 101, PropertyID: 1}
	assert.Empty(t, valid.Validate())

	invalid := RoomNumberUpdateDto{}
	errs := invalid.Validate()
	assert.Contains(t, errs, "roomNo is required")
	assert.Contains(t, errs, "propertyId is required")
}
