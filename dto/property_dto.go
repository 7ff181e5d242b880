package dto

import (
	"strings"
	"time"
)

// PropertyDto is the full public view of a property.
type PropertyDto struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Detail    string    `json:"detail"`
	Rate      float64   `json:"rate"`
	Occupancy int       `json:"occupancy"`
	Area      float64   `json:"area"`
	ImageURL  string    `json:"imageUrl"`
	Amenity   []string  `json:"amenity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PropertyCreateDto omits the server-assigned fields.
type PropertyCreateDto struct {
	Name      string   `json:"name"`
	Detail    string   `json:"detail"`
	Rate      float64  `json:"rate"`
	Occupancy int      `json:"occupancy"`
	Area      float64  `json:"area"`
	ImageURL  string   `json:"imageUrl"`
	Amenity   []string `json:"amenity"`
}

// PropertyUpdateDto is the editable shape for full updates and patches.
type PropertyUpdateDto struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Detail    string   `json:"detail"`
	Rate      float64  `json:"rate"`
	Occupancy int      `json:"occupancy"`
	Area      float64  `json:"area"`
	ImageURL  string   `json:"imageUrl"`
	Amenity   []string `json:"amenity"`
}

// Validate returns the shape-level violations, empty when valid.
func (d *PropertyCreateDto) Validate() []string {
	return validateProperty(d.Name, d.Rate, d.Occupancy, d.Area)
}

// Validate returns the shape-level violations, empty when valid.
// The identifier is checked by the service against the request path.
func (d *PropertyUpdateDto) Validate() []string {
	return validateProperty(d.Name, d.Rate, d.Occupancy, d.Area)
}

func validateProperty(name string, rate float64, occupancy int, area float64) []string {
	var errs []string
	if strings.TrimSpace(name) == "" {
		errs = append(errs, "name is required")
	}
	if rate < 0 {
		errs = append(errs, "rate must not be negative")
	}
	if occupancy < 0 {
		errs = append(errs, "occupancy must not be negative")
	}
	if area < 0 {
		errs = append(errs, "area must not be negative")
	}
	return errs
}
