package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/playdeck/storefront/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the storefront database, enabling foreign key
// enforcement, and migrates the schema.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Developer{},
		&entities.Game{},
		&entities.UserLibrary{},
		&entities.Transaction{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// PurchaseGame records a purchase as a single atomic unit: the library row,
// the transaction row, and the three aggregate columns all commit together
// or not at all. A duplicate (user, game) pair fails with
// ErrDuplicateOwnership and leaves no transaction row behind.
func (d *Database) PurchaseGame(userID, gameID uint, amount, developerRevenue, platformCommission float64) (*entities.Transaction, error) {
	var record entities.Transaction

	err := d.DB.Transaction(func(tx *gorm.DB) error {
		var user entities.User
		if err := tx.First(&user, userID).Error; err != nil {
			return fmt.Errorf("purchase user lookup: %w", Translate(err))
		}
		var game entities.Game
		if err := tx.First(&game, gameID).Error; err != nil {
			return fmt.Errorf("purchase game lookup: %w", Translate(err))
		}

		now := time.Now()
		entry := entities.UserLibrary{
			UserID:       userID,
			GameID:       gameID,
			PurchaseDate: now,
		}
		if err := tx.Create(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: user %d, game %d", ErrDuplicateOwnership, userID, gameID)
			}
			return Translate(err)
		}

		uid, gid := userID, gameID
		record = entities.Transaction{
			UserID:             &uid,
			GameID:             &gid,
			TransactionDate:    now,
			Amount:             amount,
			DeveloperRevenue:   developerRevenue,
			PlatformCommission: platformCommission,
		}
		if err := tx.Create(&record).Error; err != nil {
			return Translate(err)
		}

		// Aggregates are maintained inside the purchase unit so readers
		// never observe a committed purchase without its totals.
		err := tx.Model(&entities.User{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
			"total_spent": gorm.Expr("total_spent + ?", amount),
			"last_active": now,
		}).Error
		if err != nil {
			return err
		}
		err = tx.Model(&entities.Game{}).Where("game_id = ?", gameID).
			Update("total_purchases", gorm.Expr("total_purchases + 1")).Error
		if err != nil {
			return err
		}
		return tx.Model(&entities.Developer{}).Where("developer_id = ?", game.DeveloperID).
			Update("total_revenue", gorm.Expr("total_revenue + ?", developerRevenue)).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteDeveloper removes a developer and cascades to its games. Library
// rows for those games are deleted with them; transaction rows are kept
// with the game reference nullified.
func (d *Database) DeleteDeveloper(developerID uint) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		var dev entities.Developer
		if err := tx.First(&dev, developerID).Error; err != nil {
			return Translate(err)
		}

		var gameIDs []uint
		err := tx.Model(&entities.Game{}).Where("developer_id = ?", developerID).
			Pluck("game_id", &gameIDs).Error
		if err != nil {
			return err
		}

		if len(gameIDs) > 0 {
			err = tx.Model(&entities.Transaction{}).Where("game_id IN ?", gameIDs).
				Update("game_id", nil).Error
			if err != nil {
				return err
			}
			if err = tx.Where("game_id IN ?", gameIDs).Delete(&entities.UserLibrary{}).Error; err != nil {
				return err
			}
			if err = tx.Where("developer_id = ?", developerID).Delete(&entities.Game{}).Error; err != nil {
				return err
			}
		}

		return Translate(tx.Delete(&entities.Developer{}, developerID).Error)
	})
}

// ReconcileAggregates recomputes the denormalized totals from the
// transaction and library tables. Returns the number of updated rows.
func (d *Database) ReconcileAggregates() (int64, error) {
	var affected int64

	err := d.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`UPDATE users SET total_spent = COALESCE(
			(SELECT SUM(t.amount) FROM transactions t WHERE t.user_id = users.user_id), 0)`)
		if res.Error != nil {
			return res.Error
		}
		affected += res.RowsAffected

		res = tx.Exec(`UPDATE developers SET total_revenue = COALESCE(
			(SELECT SUM(t.developer_revenue) FROM transactions t
			 JOIN games g ON g.game_id = t.game_id
			 WHERE g.developer_id = developers.developer_id), 0)`)
		if res.Error != nil {
			return res.Error
		}
		affected += res.RowsAffected

		res = tx.Exec(`UPDATE games SET total_purchases =
			(SELECT COUNT(*) FROM user_library ul WHERE ul.game_id = games.game_id)`)
		if res.Error != nil {
			return res.Error
		}
		affected += res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// PruneInactiveUsers deletes users whose last activity predates the cutoff.
// Users referenced by library or transaction rows are left alone, since
// their foreign keys carry no delete cascade.
func (d *Database) PruneInactiveUsers(before time.Time) (int64, error) {
	res := d.DB.Exec(`DELETE FROM users
		WHERE last_active IS NOT NULL AND last_active < ?
		AND user_id NOT IN (SELECT user_id FROM user_library WHERE user_id IS NOT NULL)
		AND user_id NOT IN (SELECT user_id FROM transactions WHERE user_id IS NOT NULL)`, before)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Stats is a snapshot of platform-wide counters.
type Stats struct {
	Users           int64   `json:"users"`
	Developers      int64   `json:"developers"`
	Games           int64   `json:"games"`
	Transactions    int64   `json:"transactions"`
	PlatformRevenue float64 `json:"platform_revenue"`
}

func (d *Database) GetStats() (Stats, error) {
	var stats Stats
	if err := d.DB.Model(&entities.User{}).Count(&stats.Users).Error; err != nil {
		return stats, err
	}
	if err := d.DB.Model(&entities.Developer{}).Count(&stats.Developers).Error; err != nil {
		return stats, err
	}
	if err := d.DB.Model(&entities.Game{}).Count(&stats.Games).Error; err != nil {
		return stats, err
	}
	if err := d.DB.Model(&entities.Transaction{}).Count(&stats.Transactions).Error; err != nil {
		return stats, err
	}
	err := d.DB.Model(&entities.Transaction{}).
		Select("COALESCE(SUM(platform_commission), 0)").Scan(&stats.PlatformRevenue).Error
	return stats, err
}
