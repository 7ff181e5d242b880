package dto

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PatchOp is a single field-level edit: replace the field named by Path
// with Value. "add" is accepted and treated like "replace" since every
// editable field is scalar-valued.
type PatchOp struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value"`
}

// PatchDocument is an ordered list of edits applied in sequence.
type PatchDocument []PatchOp

func normalizePath(p string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(p), "/"))
}

func (op PatchOp) checkOp() string {
	switch strings.ToLower(op.Op) {
	case "replace", "add", "":
		return ""
	default:
		return fmt.Sprintf("unsupported patch op %q for path %q", op.Op, op.Path)
	}
}

func decodeValue(op PatchOp, target any) string {
	if len(op.Value) == 0 {
		return fmt.Sprintf("missing value for path %q", op.Path)
	}
	if err := json.Unmarshal(op.Value, target); err != nil {
		return fmt.Sprintf("invalid value for path %q: %v", op.Path, err)
	}
	return ""
}

// ApplyToProperty applies the document to the editable property shape,
// returning every per-op failure. Identifier and timestamp fields are
// not patchable.
func (doc PatchDocument) ApplyToProperty(d *PropertyUpdateDto) []string {
	var errs []string
	for _, op := range doc {
		if msg := op.checkOp(); msg != "" {
			errs = append(errs, msg)
			continue
		}
		var msg string
		switch normalizePath(op.Path) {
		case "name":
			msg = decodeValue(op, &d.Name)
		case "detail":
			msg = decodeValue(op, &d.Detail)
		case "rate":
			msg = decodeValue(op, &d.Rate)
		case "occupancy":
			msg = decodeValue(op, &d.Occupancy)
		case "area":
			msg = decodeValue(op, &d.Area)
		case "imageurl":
			msg = decodeValue(op, &d.ImageURL)
		case "amenity":
			msg = decodeValue(op, &d.Amenity)
		default:
			msg = fmt.Sprintf("unknown patch path %q", op.Path)
		}
		if msg != "" {
			errs = append(errs, msg)
		}
	}
	return errs
}

// ApplyToRoomNumber applies the document to the editable room-number
// shape. RoomNo is the primary key and cannot be patched.
func (doc PatchDocument) ApplyToRoomNumber(d *RoomNumberUpdateDto) []string {
	var errs []string
	for _, op := range doc {
		if msg := op.checkOp(); msg != "" {
			errs = append(errs, msg)
			continue
		}
		var msg string
		switch normalizePath(op.Path) {
		case "propertyid":
			msg = decodeValue(op, &d.PropertyID)
		case "specialdetail":
			msg = decodeValue(op, &d.SpecialDetail)
		default:
			msg = fmt.Sprintf("unknown patch path %q", op.Path)
		}
		if msg != "" {
			errs = append(errs, msg)
		}
	}
	return errs
}
