package games

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playdeck/storefront/internal/database"
	"github.com/playdeck/storefront/internal/entities"
)

func setupTestDB(t *testing.T) (*database.Database, *Repository, func()) {
	t.Helper()

	dbPath := "./test_games_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	repo := NewRepository(db.DB)
	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, repo, cleanup
}

func createDeveloper(t *testing.T, db *database.Database, studio string) *entities.Developer {
	t.Helper()

	dev := &entities.Developer{
		StudioName:   studio,
		CountryCode:  "JP",
		ContactEmail: strings.ToLower(studio) + "@example.com",
	}
	require.NoError(t, db.DB.Create(dev).Error)
	return dev
}

func testGame(title string, developerID uint, released time.Time) *entities.Game {
	return &entities.Game{
		Title:            title,
		DeveloperID:      developerID,
		ReleaseDate:      released,
		BasePrice:        29.99,
		CurrentPrice:     29.99,
		MonetizationType: entities.MonetizationPaid,
		GenreMain:        "rpg",
		AgeRating:        "12+",
		IsActive:         true,
	}
}

func TestRepository_Create(t *testing.T) {
	released := time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates a game", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		dev := createDeveloper(t, db, "Acme")
		game, err := repo.Create(testGame("Foo", dev.DeveloperID, released))
		require.NoError(t, err)
		assert.NotZero(t, game.GameID)
		assert.True(t, game.IsActive)
	})

	t.Run("unknown developer fails with foreign key violation", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := repo.Create(testGame("Foo", 999, released))
		require.ErrorIs(t, err, database.ErrForeignKeyViolation)
	})

	t.Run("invalid monetization type fails with constraint violation", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		dev := createDeveloper(t, db, "Acme")
		game := testGame("Foo", dev.DeveloperID, released)
		game.MonetizationType = "subscription"
		_, err := repo.Create(game)
		require.ErrorIs(t, err, database.ErrConstraintViolation)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		dev := createDeveloper(t, db, "Acme")
		game := testGame("", dev.DeveloperID, released)
		_, err := repo.Create(game)
		require.ErrorIs(t, err, database.ErrConstraintViolation)
	})

	t.Run("rejects missing release date", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		dev := createDeveloper(t, db, "Acme")
		_, err := repo.Create(testGame("Foo", dev.DeveloperID, time.Time{}))
		require.ErrorIs(t, err, database.ErrConstraintViolation)
	})
}

func TestRepository_ListByDeveloper(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	acme := createDeveloper(t, db, "Acme")
	other := createDeveloper(t, db, "Other")

	// Inserted newest first; listing must come back oldest first.
	_, err := repo.Create(testGame("Newer", acme.DeveloperID, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	_, err = repo.Create(testGame("Older", acme.DeveloperID, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	_, err = repo.Create(testGame("Elsewhere", other.DeveloperID, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	games, err := repo.ListByDeveloper(acme.DeveloperID)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "Older", games[0].Title)
	assert.Equal(t, "Newer", games[1].Title)
}

func TestRepository_ListByGenre(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	dev := createDeveloper(t, db, "Acme")
	released := time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC)

	rpg := testGame("Foo", dev.DeveloperID, released)
	_, err := repo.Create(rpg)
	require.NoError(t, err)

	shooter := testGame("Bar", dev.DeveloperID, released)
	shooter.GenreMain = "shooter"
	_, err = repo.Create(shooter)
	require.NoError(t, err)

	games, err := repo.ListByGenre("rpg")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Foo", games[0].Title)
}

func TestRepository_Deactivate(t *testing.T) {
	t.Run("delists a game without touching history", func(t *testing.T) {
		db, repo, cleanup := setupTestDB(t)
		defer cleanup()

		dev := createDeveloper(t, db, "Acme")
		game, err := repo.Create(testGame("Foo", dev.DeveloperID, time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC)))
		require.NoError(t, err)

		require.NoError(t, repo.Deactivate(game.GameID))

		var updated entities.Game
		require.NoError(t, db.DB.First(&updated, game.GameID).Error)
		assert.False(t, updated.IsActive)
	})

	t.Run("unknown game fails with not found", func(t *testing.T) {
		_, repo, cleanup := setupTestDB(t)
		defer cleanup()

		err := repo.Deactivate(999)
		require.ErrorIs(t, err, database.ErrNotFound)
	})
}

func TestRepository_RandomActive(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	dev := createDeveloper(t, db, "Acme")
	released := time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC)

	active, err := repo.Create(testGame("Active", dev.DeveloperID, released))
	require.NoError(t, err)
	retired, err := repo.Create(testGame("Retired", dev.DeveloperID, released))
	require.NoError(t, err)
	require.NoError(t, repo.Deactivate(retired.GameID))

	for i := 0; i < 5; i++ {
		game, err := repo.RandomActive()
		require.NoError(t, err)
		assert.Equal(t, active.GameID, game.GameID)
	}
}

func TestRepository_IncrementPurchases(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	dev := createDeveloper(t, db, "Acme")
	game, err := repo.Create(testGame("Foo", dev.DeveloperID, time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	require.NoError(t, repo.IncrementPurchases(game.GameID, 1))
	require.NoError(t, repo.IncrementPurchases(game.GameID, 2))

	var updated entities.Game
	require.NoError(t, db.DB.First(&updated, game.GameID).Error)
	assert.Equal(t, 3, updated.TotalPurchases)
}
