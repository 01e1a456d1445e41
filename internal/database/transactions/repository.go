// Package transactions provides database operations for purchase history.
package transactions

import (
	"time"

	"gorm.io/gorm"

	"github.com/playdeck/storefront/internal/database"
	"github.com/playdeck/storefront/internal/entities"
)

// Repository handles all transaction database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new transactions repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create records a transaction. The monetary split is stored verbatim.
func (r *Repository) Create(txn *entities.Transaction) (*entities.Transaction, error) {
	if err := r.db.Create(txn).Error; err != nil {
		return nil, database.Translate(err)
	}
	return txn, nil
}

// ListForUser returns a user's transactions, oldest first.
func (r *Repository) ListForUser(userID uint) ([]entities.Transaction, error) {
	var txns []entities.Transaction
	err := r.db.Where("user_id = ?", userID).Order("transaction_date ASC").Find(&txns).Error
	return txns, err
}

// ListByDateRange returns transactions within [from, to), served by
// idx_transactions_date.
func (r *Repository) ListByDateRange(from, to time.Time) ([]entities.Transaction, error) {
	var txns []entities.Transaction
	err := r.db.Where("transaction_date >= ? AND transaction_date < ?", from, to).
		Order("transaction_date ASC").Find(&txns).Error
	return txns, err
}

// TotalPlatformRevenue sums the platform commission over all transactions.
func (r *Repository) TotalPlatformRevenue() (float64, error) {
	var total float64
	err := r.db.Model(&entities.Transaction{}).
		Select("COALESCE(SUM(platform_commission), 0)").Scan(&total).Error
	return total, err
}

// DailyPlatformRevenue sums the platform commission for a single day.
func (r *Repository) DailyPlatformRevenue(day time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&entities.Transaction{}).
		Select("COALESCE(SUM(platform_commission), 0)").
		Where("DATE(transaction_date) = DATE(?)", day).Scan(&total).Error
	return total, err
}

// Count returns the number of transactions.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Transaction{}).Count(&count).Error
	return count, err
}
