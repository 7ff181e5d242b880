package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"villa-backend/models"
	"villa-backend/repositories"
)

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	n := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:svctest%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Property{}, &models.RoomNumber{}))
	return db
}

// newServices builds both services over one shared test store.
func newServices(t *testing.T) (*PropertyService, *RoomNumberService) {
	t.Helper()
	db := newTestDB(t)
	propertyRepo := repositories.NewPropertyRepository(db)
	roomNumberRepo := repositories.NewRoomNumberRepository(db)
	return NewPropertyService(propertyRepo), NewRoomNumberService(roomNumberRepo, propertyRepo)
}
