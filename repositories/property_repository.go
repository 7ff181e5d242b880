package repositories

import (
	"context"

	"gorm.io/gorm"

	"villa-backend/models"
)

// PropertyRepository is the data-access contract for properties.
type PropertyRepository interface {
	ListAll(ctx context.Context) ([]models.Property, error)
	FindByID(ctx context.Context, id uint) (*models.Property, error)
	FindByName(ctx context.Context, name string) (*models.Property, error)
	Create(ctx context.Context, property *models.Property) error
	Update(ctx context.Context, property *models.Property) error
	Remove(ctx context.Context, property *models.Property) error
}

type propertyRepository struct {
	base[models.Property]
}

// NewPropertyRepository builds the GORM-backed property repository.
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{base[models.Property]{db: db}}
}

func (r *propertyRepository) FindByID(ctx context.Context, id uint) (*models.Property, error) {
	return r.FindOne(ctx, "id = ?", id)
}

// FindByName matches case-insensitively; the store's unique index is
// the authoritative guard behind this advisory lookup.
func (r *propertyRepository) FindByName(ctx context.Context, name string) (*models.Property, error) {
	return r.FindOne(ctx, "LOWER(name) = LOWER(?)", name)
}

func (r *propertyRepository) Update(ctx context.Context, property *models.Property) error {
	return r.update(ctx, property, "id = ?", property.ID)
}
