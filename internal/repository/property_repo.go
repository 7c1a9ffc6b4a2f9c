package repository

import (
	"github.com/lejebolig/lejebolig-backend/internal/domain"
	"gorm.io/gorm"
)

// PropertyRepository is the property listing data access interface
type PropertyRepository interface {
	Create(property *domain.Property) error
	FindByID(id uint64) (*domain.Property, error)
	Update(property *domain.Property) error
	Delete(id uint64) error
	Search(filter domain.PropertyFilter) ([]*domain.Property, int64, error)
	FindByLandlord(landlordID uint64) ([]*domain.Property, error)
	Exists(id uint64) (bool, error)
	FindTitlesByIDs(ids []uint64) (map[uint64]string, error)
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new PropertyRepository
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(property *domain.Property) error {
	return r.db.Create(property).Error
}

func (r *propertyRepository) FindByID(id uint64) (*domain.Property, error) {
	var property domain.Property
	err := r.db.Where("id = ?", id).First(&property).Error
	return &property, err
}

func (r *propertyRepository) Update(property *domain.Property) error {
	return r.db.Save(property).Error
}

func (r *propertyRepository) Delete(id uint64) error {
	return r.db.Delete(&domain.Property{}, id).Error
}

// Search applies the listing filters with pagination.
// All filters are optional; zero values mean "no constraint".
func (r *propertyRepository) Search(filter domain.PropertyFilter) ([]*domain.Property, int64, error) {
	var properties []*domain.Property
	var total int64

	query := r.db.Model(&domain.Property{})
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.MinPrice > 0 {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.MinRooms > 0 {
		query = query.Where("rooms >= ?", filter.MinRooms)
	}
	if filter.PropertyType != "" {
		query = query.Where("property_type = ?", filter.PropertyType)
	}
	if filter.AvailableOnly {
		query = query.Where("available = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (filter.Page - 1) * filter.PerPage
	if err := query.Order("created_at DESC, id DESC").
		Offset(offset).Limit(filter.PerPage).
		Find(&properties).Error; err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

func (r *propertyRepository) FindByLandlord(landlordID uint64) ([]*domain.Property, error) {
	var properties []*domain.Property
	err := r.db.Where("landlord_id = ?", landlordID).
		Order("created_at DESC, id DESC").
		Find(&properties).Error
	return properties, err
}

func (r *propertyRepository) Exists(id uint64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Property{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// FindTitlesByIDs batch-loads listing titles for the given property ids
func (r *propertyRepository) FindTitlesByIDs(ids []uint64) (map[uint64]string, error) {
	if len(ids) == 0 {
		return map[uint64]string{}, nil
	}

	type row struct {
		ID    uint64 `gorm:"column:id"`
		Title string `gorm:"column:title"`
	}
	var rows []row
	if err := r.db.Model(&domain.Property{}).
		Select("id, title").
		Where("id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	titles := make(map[uint64]string, len(rows))
	for _, row := range rows {
		titles[row.ID] = row.Title
	}
	return titles, nil
}
