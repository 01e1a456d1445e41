// Package users provides database operations for storefront users.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetByUsername("alice")
package users

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/playdeck/storefront/internal/database"
	"github.com/playdeck/storefront/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user. Duplicate usernames or emails fail with
// ErrUniqueViolation.
func (r *Repository) Create(user *entities.User) (*entities.User, error) {
	if user.Username == "" || user.Email == "" {
		return nil, fmt.Errorf("%w: username and email are required", database.ErrConstraintViolation)
	}
	if len(user.CountryCode) != 2 {
		return nil, fmt.Errorf("%w: country_code must be a 2-letter code", database.ErrConstraintViolation)
	}
	if user.RegistrationDate.IsZero() {
		return nil, fmt.Errorf("%w: registration_date is required", database.ErrConstraintViolation)
	}

	if err := r.db.Create(user).Error; err != nil {
		return nil, database.Translate(err)
	}
	return user, nil
}

// GetByID retrieves a user by ID.
func (r *Repository) GetByID(id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &user, nil
}

// GetByUsername retrieves a user by username.
func (r *Repository) GetByUsername(username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email.
func (r *Repository) GetByEmail(email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &user, nil
}

// ListByCountry returns users registered under the given country code,
// served by idx_users_country.
func (r *Repository) ListByCountry(countryCode string) ([]entities.User, error) {
	var users []entities.User
	err := r.db.Where("country_code = ?", countryCode).Order("user_id").Find(&users).Error
	return users, err
}

// AllIDs returns every user ID in ascending order.
func (r *Repository) AllIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&entities.User{}).Order("user_id").Pluck("user_id", &ids).Error
	return ids, err
}

// Count returns the number of users.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.User{}).Count(&count).Error
	return count, err
}

// TouchLastActive marks a single user as active at the given time.
func (r *Repository) TouchLastActive(id uint, at time.Time) error {
	res := r.db.Model(&entities.User{}).Where("user_id = ?", id).Update("last_active", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: user %d", database.ErrNotFound, id)
	}
	return nil
}

// TouchLastActiveBatch marks many users as active in one statement.
func (r *Repository) TouchLastActiveBatch(ids []uint, at time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.Model(&entities.User{}).Where("user_id IN ?", ids).Update("last_active", at)
	return res.RowsAffected, res.Error
}

// AddSpent atomically increments a user's lifetime spend.
func (r *Repository) AddSpent(id uint, amount float64) error {
	return r.db.Model(&entities.User{}).Where("user_id = ?", id).
		Update("total_spent", gorm.Expr("total_spent + ?", amount)).Error
}
