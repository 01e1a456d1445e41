// Package library provides database operations for game ownership records.
package library

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/playdeck/storefront/internal/database"
	"github.com/playdeck/storefront/internal/entities"
)

// Repository handles all user library database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new library repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add records that a user owns a game. A second record for the same
// (user, game) pair fails with ErrDuplicateOwnership.
func (r *Repository) Add(userID, gameID uint, purchaseDate time.Time) (*entities.UserLibrary, error) {
	entry := entities.UserLibrary{
		UserID:       userID,
		GameID:       gameID,
		PurchaseDate: purchaseDate,
	}
	if err := r.db.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: user %d, game %d", database.ErrDuplicateOwnership, userID, gameID)
		}
		return nil, database.Translate(err)
	}
	return &entry, nil
}

// ListForUser returns the user's owned games ordered by purchase date
// ascending. Limit and offset make the listing restartable; zero limit
// means no bound.
func (r *Repository) ListForUser(userID uint, limit, offset int) ([]entities.Game, error) {
	query := r.db.Model(&entities.Game{}).
		Joins("JOIN user_library ON user_library.game_id = games.game_id").
		Where("user_library.user_id = ?", userID).
		Order("user_library.purchase_date ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var games []entities.Game
	err := query.Find(&games).Error
	return games, err
}

// EntriesForUser returns the raw ownership records for a user, oldest
// purchase first.
func (r *Repository) EntriesForUser(userID uint) ([]entities.UserLibrary, error) {
	var entries []entities.UserLibrary
	err := r.db.Where("user_id = ?", userID).Order("purchase_date ASC").Find(&entries).Error
	return entries, err
}

// UserIDsWithoutGame returns the IDs of users that do not own the given
// game, in ascending order.
func (r *Repository) UserIDsWithoutGame(gameID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&entities.User{}).
		Where("user_id NOT IN (?)",
			r.db.Model(&entities.UserLibrary{}).Select("user_id").Where("game_id = ?", gameID)).
		Order("user_id").
		Pluck("user_id", &ids).Error
	return ids, err
}

// Owns reports whether the user already owns the game.
func (r *Repository) Owns(userID, gameID uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.UserLibrary{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).Count(&count).Error
	return count > 0, err
}

// Count returns the number of ownership records.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.UserLibrary{}).Count(&count).Error
	return count, err
}
