package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestApplyToPropertyReplacesNamedFields(t *testing.T) {
	d := PropertyUpdateDto{ID: 1, Name: "Villa Real", Rate: 200}

	doc := PatchDocument{
		{Op: "replace", Path: "/name", Value: raw(t, "Villa Nueva")},
		{Op: "replace", Path: "/rate", Value: raw(t, 350.5)},
		{Op: "replace", Path: "/amenity", Value: raw(t, []string{"pool", "wifi"})},
	}
	errs := doc.ApplyToProperty(&d)
	assert.Empty(t, errs)
	assert.Equal(t, "Villa Nueva", d.Name)
	assert.Equal(t, 350.5, d.Rate)
	assert.Equal(t, []string{"pool", "wifi"}, d.Amenity)
	assert.Equal(t, uint(1), d.ID)
}

func TestApplyToPropertyPathIsCaseAndSlashInsensitive(t *testing.T) {
	d := PropertyUpdateDto{ID: 1, Name: "Villa Real"}

	doc := PatchDocument{{Op: "replace", Path: "ImageURL", Value: raw(t, "https://example.com/v.jpg")}}
	errs := doc.ApplyToProperty(&d)
	assert.Empty(t, errs)
	assert.Equal(t, "https://example.com/v.jpg", d.ImageURL)
}

func TestApplyToPropertyCollectsIndependentFailures(t *testing.T) {
	d := PropertyUpdateDto{ID: 1, Name: "Villa Real"}

	doc := PatchDocument{
		{Op: "replace", Path: "/nope", Value: raw(t, 1)},
		{Op: "replace", Path: "/rate", Value: json.RawMessage(`"not a number"`)},
		{Op: "remove", Path: "/name"},
		{Op: "replace", Path: "/detail", Value: raw(t, "still applied")},
	}
	errs := doc.ApplyToProperty(&d)
	assert.Len(t, errs, 3)
	// A failing op does not stop later ops from applying.
	assert.Equal(t, "still applied", d.Detail)
}

func TestApplyToPropertyMissingValue(t *testing.T) {
	d := PropertyUpdateDto{}

	doc := PatchDocument{{Op: "replace", Path: "/name"}}
	errs := doc.ApplyToProperty(&d)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "missing value")
}

func TestApplyToPropertyIsIdempotent(t *testing.T) {
	d := PropertyUpdateDto{ID: 1, Name: "Villa Real"}

	doc := PatchDocument{{Op: "replace", Path: "/occupancy", Value: raw(t, 7)}}
	require.Empty(t, doc.ApplyToProperty(&d))
	require.Empty(t, doc.ApplyToProperty(&d))
	assert.Equal(t, 7, d.Occupancy)
}

func TestApplyToRoomNumberRejectsKeyPath(t *testing.T) {
	d := RoomNumberUpdateDto{RoomNo: 101, PropertyID: 1}

	doc := PatchDocument{{Op: "replace", Path: "/roomNo", Value: raw(t, 202)}}
	errs := doc.ApplyToRoomNumber(&d)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "unknown patch path")
	assert.Equal(t, uint(101), d.RoomNo)
}

func TestApplyToRoomNumberReplacesFields(t *testing.T) {
	d := RoomNumberUpdateDto{RoomNo: 101, PropertyID: 1}

	doc := PatchDocument{
		{Op: "add", Path: "/specialDetail", Value: raw(t, "top floor")},
		{Op: "replace", Path: "/propertyId", Value: raw(t, 2)},
	}
	errs := doc.ApplyToRoomNumber(&d)
	assert.Empty(t, errs)
	assert.Equal(t, "top floor", d.SpecialDetail)
	assert.Equal(t, uint(2), d.PropertyID)
}
