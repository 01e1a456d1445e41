// Package developers provides database operations for game studios.
package developers

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/playdeck/storefront/internal/database"
	"github.com/playdeck/storefront/internal/entities"
)

// Repository handles all developer database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new developers repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new developer. A duplicate studio name fails with
// ErrUniqueViolation.
func (r *Repository) Create(dev *entities.Developer) (*entities.Developer, error) {
	if dev.StudioName == "" || dev.ContactEmail == "" {
		return nil, fmt.Errorf("%w: studio_name and contact_email are required", database.ErrConstraintViolation)
	}
	if len(dev.CountryCode) != 2 {
		return nil, fmt.Errorf("%w: country_code must be a 2-letter code", database.ErrConstraintViolation)
	}

	if err := r.db.Create(dev).Error; err != nil {
		return nil, database.Translate(err)
	}
	return dev, nil
}

// GetByID retrieves a developer by ID.
func (r *Repository) GetByID(id uint) (*entities.Developer, error) {
	var dev entities.Developer
	if err := r.db.First(&dev, id).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &dev, nil
}

// GetByStudioName retrieves a developer by its unique studio name.
func (r *Repository) GetByStudioName(name string) (*entities.Developer, error) {
	var dev entities.Developer
	if err := r.db.Where("studio_name = ?", name).First(&dev).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &dev, nil
}

// AllIDs returns every developer ID in ascending order.
func (r *Repository) AllIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&entities.Developer{}).Order("developer_id").Pluck("developer_id", &ids).Error
	return ids, err
}

// RandomID returns a uniformly random developer ID.
func (r *Repository) RandomID() (uint, error) {
	var id uint
	err := r.db.Model(&entities.Developer{}).Select("developer_id").
		Order("RANDOM()").Limit(1).Scan(&id).Error
	if err != nil {
		return 0, err
	}
	if id == 0 {
		var count int64
		if err := r.db.Model(&entities.Developer{}).Count(&count).Error; err != nil {
			return 0, err
		}
		if count == 0 {
			return 0, fmt.Errorf("%w: no developers", database.ErrNotFound)
		}
	}
	return id, nil
}

// Count returns the number of developers.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Developer{}).Count(&count).Error
	return count, err
}

// AddRevenue atomically increments a developer's lifetime revenue.
func (r *Repository) AddRevenue(id uint, revenue float64) error {
	return r.db.Model(&entities.Developer{}).Where("developer_id = ?", id).
		Update("total_revenue", gorm.Expr("total_revenue + ?", revenue)).Error
}
