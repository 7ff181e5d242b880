package repositories

import (
	"context"

	"gorm.io/gorm"

	"villa-backend/models"
)

// RoomNumberRepository is the data-access contract for room numbers.
type RoomNumberRepository interface {
	ListAll(ctx context.Context) ([]models.RoomNumber, error)
	FindByRoomNo(ctx context.Context, roomNo uint) (*models.RoomNumber, error)
	Create(ctx context.Context, roomNumber *models.RoomNumber) error
	Update(ctx context.Context, roomNumber *models.RoomNumber) error
	Remove(ctx context.Context, roomNumber *models.RoomNumber) error
}

type roomNumberRepository struct {
	base[models.RoomNumber]
}

// NewRoomNumberRepository builds the GORM-backed room-number repository.
func NewRoomNumberRepository(db *gorm.DB) RoomNumberRepository {
	return &roomNumberRepository{base[models.RoomNumber]{db: db}}
}

func (r *roomNumberRepository) FindByRoomNo(ctx context.Context, roomNo uint) (*models.RoomNumber, error) {
	return r.FindOne(ctx, "room_no = ?", roomNo)
}

func (r *roomNumberRepository) Update(ctx context.Context, roomNumber *models.RoomNumber) error {
	return r.update(ctx, roomNumber, "room_no = ?", roomNumber.RoomNo)
}
