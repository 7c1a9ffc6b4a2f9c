package service

import (
	"github.com/lejebolig/lejebolig-backend/internal/common"
	"github.com/lejebolig/lejebolig-backend/internal/domain"
	"github.com/lejebolig/lejebolig-backend/internal/repository"
)

// FavoriteService handles saved listings
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	propertyRepo repository.PropertyRepository
}

// NewFavoriteService creates a new FavoriteService
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, propertyRepo repository.PropertyRepository) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		propertyRepo: propertyRepo,
	}
}

// Add saves a property for a user
func (s *FavoriteService) Add(userID, propertyID uint64) error {
	exists, err := s.propertyRepo.Exists(propertyID)
	if err != nil {
		return err
	}
	if !exists {
		return common.ErrPropertyNotFound
	}
	return s.favoriteRepo.Add(userID, propertyID)
}

// Remove unsaves a property for a user
func (s *FavoriteService) Remove(userID, propertyID uint64) error {
	return s.favoriteRepo.Remove(userID, propertyID)
}

// List returns the user's favorited properties
func (s *FavoriteService) List(userID uint64) ([]*domain.Property, error) {
	return s.favoriteRepo.FindByUser(userID)
}

// IsFavorite reports whether the user has saved the property
func (s *FavoriteService) IsFavorite(userID, propertyID uint64) (bool, error) {
	return s.favoriteRepo.IsFavorite(userID, propertyID)
}
