package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// base is the generic data-access layer shared by the entity
// repositories. Every read hands back a detached copy: mutating a
// returned value changes nothing until it is passed to an update.
type base[T any] struct {
	db *gorm.DB
}

// ListAll returns every stored record in storage order.
func (r *base[T]) ListAll(ctx context.Context) ([]T, error) {
	var out []T
	err := r.db.WithContext(ctx).Find(&out).Error
	return out, err
}

// FindOne returns the first record matching the condition, or
// (nil, nil) when none does. Absence is not an error.
func (r *base[T]) FindOne(ctx context.Context, query string, args ...any) (*T, error) {
	var out T
	err := r.db.WithContext(ctx).Where(query, args...).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create persists the entity, filling any generated primary key back
// into it. Constraint violations come back as ErrDuplicateKey.
func (r *base[T]) Create(ctx context.Context, entity *T) error {
	return translateWriteError(r.db.WithContext(ctx).Create(entity).Error)
}

// update fully replaces the record addressed by the primary-key
// condition, keeping created_at. Zero rows affected can mean either a
// missing record or an identical row, so absence is checked before
// reporting ErrNotFound.
func (r *base[T]) update(ctx context.Context, entity *T, pkQuery string, pkValue any) error {
	res := r.db.WithContext(ctx).
		Model(entity).
		Select("*").
		Omit("created_at").
		Where(pkQuery, pkValue).
		Updates(entity)
	if res.Error != nil {
		return translateWriteError(res.Error)
	}
	if res.RowsAffected == 0 {
		var n int64
		if err := r.db.WithContext(ctx).Model(new(T)).Where(pkQuery, pkValue).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
	}
	return nil
}

// Remove deletes the record sharing the entity's primary key. The
// store's foreign-key rules handle any cascade.
func (r *base[T]) Remove(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Delete(entity).Error
}
