// Package games provides database operations for the game catalog.
package games

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/playdeck/storefront/internal/database"
	"github.com/playdeck/storefront/internal/entities"
)

// Repository handles all game database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new games repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new game. An unknown developer fails with
// ErrForeignKeyViolation; a monetization type outside {free, paid} fails
// with ErrConstraintViolation.
func (r *Repository) Create(game *entities.Game) (*entities.Game, error) {
	if game.Title == "" || game.GenreMain == "" || game.AgeRating == "" {
		return nil, fmt.Errorf("%w: title, genre_main and age_rating are required", database.ErrConstraintViolation)
	}
	if !game.MonetizationType.Valid() {
		return nil, fmt.Errorf("%w: monetization_type %q not in {free, paid}", database.ErrConstraintViolation, game.MonetizationType)
	}
	if game.ReleaseDate.IsZero() {
		return nil, fmt.Errorf("%w: release_date is required", database.ErrConstraintViolation)
	}

	// The developer reference is checked up front so the caller gets a
	// foreign key failure even when the driver cannot enforce it.
	var count int64
	err := r.db.Model(&entities.Developer{}).Where("developer_id = ?", game.DeveloperID).Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: developer %d", database.ErrForeignKeyViolation, game.DeveloperID)
	}

	if err := r.db.Create(game).Error; err != nil {
		return nil, database.Translate(err)
	}
	return game, nil
}

// GetByID retrieves a game by ID.
func (r *Repository) GetByID(id uint) (*entities.Game, error) {
	var game entities.Game
	if err := r.db.First(&game, id).Error; err != nil {
		return nil, database.Translate(err)
	}
	return &game, nil
}

// ListByDeveloper returns a developer's games ordered by release date,
// served by idx_games_developer.
func (r *Repository) ListByDeveloper(developerID uint) ([]entities.Game, error) {
	var games []entities.Game
	err := r.db.Where("developer_id = ?", developerID).Order("release_date").Find(&games).Error
	return games, err
}

// ListByGenre returns games with the given main genre, served by
// idx_games_genre.
func (r *Repository) ListByGenre(genre string) ([]entities.Game, error) {
	var games []entities.Game
	err := r.db.Where("genre_main = ?", genre).Order("game_id").Find(&games).Error
	return games, err
}

// RandomActive returns a uniformly random active game.
func (r *Repository) RandomActive() (*entities.Game, error) {
	var game entities.Game
	err := r.db.Where("is_active = ?", true).Order("RANDOM()").First(&game).Error
	if err != nil {
		return nil, database.Translate(err)
	}
	return &game, nil
}

// MaxID returns the highest assigned game ID, or zero for an empty catalog.
// Deletions leave gaps, so this is not the same as Count.
func (r *Repository) MaxID() (uint, error) {
	var max uint
	err := r.db.Model(&entities.Game{}).
		Select("COALESCE(MAX(game_id), 0)").Scan(&max).Error
	return max, err
}

// Deactivate soft-removes a game from the catalog. History is untouched.
func (r *Repository) Deactivate(id uint) error {
	res := r.db.Model(&entities.Game{}).Where("game_id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: game %d", database.ErrNotFound, id)
	}
	return nil
}

// IncrementPurchases atomically bumps a game's purchase counter.
func (r *Repository) IncrementPurchases(id uint, by int) error {
	return r.db.Model(&entities.Game{}).Where("game_id = ?", id).
		Update("total_purchases", gorm.Expr("total_purchases + ?", by)).Error
}

// Count returns the number of games.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Game{}).Count(&count).Error
	return count, err
}
