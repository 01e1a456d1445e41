package simulator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/playdeck/storefront/internal/database"
	"github.com/playdeck/storefront/internal/database/developers"
	"github.com/playdeck/storefront/internal/database/games"
	"github.com/playdeck/storefront/internal/database/users"
	"github.com/playdeck/storefront/internal/generator"
)

// SeedStats reports how many rows an initial seed produced.
type SeedStats struct {
	Users      int
	Developers int
	Games      int
}

// Seed populates an empty database with a starting population: users
// registered on the start date, studios, and an initial catalogue of one
// to eight titles per studio.
func Seed(db *database.Database, gen *generator.Generator, userCount, developerCount int, startDate time.Time) (SeedStats, error) {
	var stats SeedStats

	userRepo := users.NewRepository(db.DB)
	devRepo := developers.NewRepository(db.DB)
	gameRepo := games.NewRepository(db.DB)

	for _, user := range gen.NewUsers(userCount, startDate) {
		if _, err := userRepo.Create(user); err != nil {
			return stats, fmt.Errorf("seed user: %w", err)
		}
		stats.Users++
	}

	// Catalogue sizes only shape the seed, so a fixed source is fine.
	rng := rand.New(rand.NewSource(int64(userCount)*31 + int64(developerCount)))

	for _, dev := range gen.NewDevelopers(developerCount, startDate) {
		if _, err := devRepo.Create(dev); err != nil {
			return stats, fmt.Errorf("seed developer: %w", err)
		}
		stats.Developers++

		titles := rng.Intn(8) + 1
		for _, game := range gen.NewGames(titles, startDate, dev.DeveloperID) {
			if _, err := gameRepo.Create(game); err != nil {
				return stats, fmt.Errorf("seed game: %w", err)
			}
			stats.Games++
		}
	}

	return stats, nil
}
