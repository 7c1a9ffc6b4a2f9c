package service

import (
	"errors"
	"fmt"

	"github.com/lejebolig/lejebolig-backend/internal/common"
	"github.com/lejebolig/lejebolig-backend/internal/domain"
	"github.com/lejebolig/lejebolig-backend/internal/repository"
	"gorm.io/gorm"
)

// PropertyService handles listing CRUD and search
type PropertyService struct {
	propertyRepo repository.PropertyRepository
}

// NewPropertyService creates a new PropertyService
func NewPropertyService(propertyRepo repository.PropertyRepository) *PropertyService {
	return &PropertyService{propertyRepo: propertyRepo}
}

// Create adds a listing owned by the given landlord
func (s *PropertyService) Create(landlordID uint64, req domain.CreatePropertyRequest) (*domain.Property, error) {
	propertyType := req.PropertyType
	if propertyType == "" {
		propertyType = "apartment"
	}

	property := &domain.Property{
		LandlordID:   landlordID,
		Title:        req.Title,
		Description:  req.Description,
		Address:      req.Address,
		City:         req.City,
		PostalCode:   req.PostalCode,
		Price:        req.Price,
		Deposit:      req.Deposit,
		Rooms:        req.Rooms,
		SizeM2:       req.SizeM2,
		PropertyType: propertyType,
		Available:    true,
		ImageURL:     req.ImageURL,
	}
	if err := s.propertyRepo.Create(property); err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}
	return property, nil
}

// Get returns a single listing
func (s *PropertyService) Get(id uint64) (*domain.Property, error) {
	property, err := s.propertyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPropertyNotFound
		}
		return nil, err
	}
	return property, nil
}

// Search returns listings matching the filter with pagination
func (s *PropertyService) Search(filter domain.PropertyFilter) ([]*domain.Property, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 || filter.PerPage > 100 {
		filter.PerPage = 20
	}
	return s.propertyRepo.Search(filter)
}

// ListByLandlord returns a landlord's own listings
func (s *PropertyService) ListByLandlord(landlordID uint64) ([]*domain.Property, error) {
	return s.propertyRepo.FindByLandlord(landlordID)
}

// Update modifies a listing; only the owning landlord may update
func (s *PropertyService) Update(id, landlordID uint64, req domain.UpdatePropertyRequest) (*domain.Property, error) {
	property, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if property.LandlordID != landlordID {
		return nil, common.ErrForbidden
	}

	if req.Title != nil {
		property.Title = *req.Title
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.City != nil {
		property.City = *req.City
	}
	if req.PostalCode != nil {
		property.PostalCode = *req.PostalCode
	}
	if req.Price != nil {
		property.Price = *req.Price
	}
	if req.Deposit != nil {
		property.Deposit = req.Deposit
	}
	if req.Rooms != nil {
		property.Rooms = *req.Rooms
	}
	if req.SizeM2 != nil {
		property.SizeM2 = req.SizeM2
	}
	if req.PropertyType != nil {
		property.PropertyType = *req.PropertyType
	}
	if req.Available != nil {
		property.Available = *req.Available
	}
	if req.ImageURL != nil {
		property.ImageURL = req.ImageURL
	}

	if err := s.propertyRepo.Update(property); err != nil {
		return nil, fmt.Errorf("update property: %w", err)
	}
	return property, nil
}

// Delete removes a listing; only the owning landlord may delete
func (s *PropertyService) Delete(id, landlordID uint64) error {
	property, err := s.Get(id)
	if err != nil {
		return err
	}
	if property.LandlordID != landlordID {
		return common.ErrForbidden
	}
	return s.propertyRepo.Delete(id)
}
