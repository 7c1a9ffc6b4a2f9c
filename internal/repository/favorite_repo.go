package repository

import (
	"errors"

	"github.com/lejebolig/lejebolig-backend/internal/domain"
	"gorm.io/gorm"
)

// FavoriteRepository is the favorites data access interface
type FavoriteRepository interface {
	Add(userID, propertyID uint64) error
	Remove(userID, propertyID uint64) error
	FindByUser(userID uint64) ([]*domain.Property, error)
	IsFavorite(userID, propertyID uint64) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new FavoriteRepository
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add saves a property for a user. Adding twice is a no-op thanks to
// the unique (user_id, property_id) index.
func (r *favoriteRepository) Add(userID, propertyID uint64) error {
	fav := domain.Favorite{UserID: userID, PropertyID: propertyID}
	err := r.db.Create(&fav).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *favoriteRepository) Remove(userID, propertyID uint64) error {
	return r.db.Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&domain.Favorite{}).Error
}

// FindByUser returns the favorited properties, newest favorite first
func (r *favoriteRepository) FindByUser(userID uint64) ([]*domain.Property, error) {
	var properties []*domain.Property
	err := r.db.Model(&domain.Property{}).
		Joins("JOIN favorites ON favorites.property_id = properties.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&properties).Error
	return properties, err
}

func (r *favoriteRepository) IsFavorite(userID, propertyID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Favorite{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&count).Error
	return count > 0, err
}
