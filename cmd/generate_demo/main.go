// Command generate_demo creates a demo storefront database: a seeded
// population plus a burst of purchases so listings and stats have data.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/playdeck/storefront/internal/database"
	"github.com/playdeck/storefront/internal/database/games"
	"github.com/playdeck/storefront/internal/database/library"
	"github.com/playdeck/storefront/internal/generator"
	"github.com/playdeck/storefront/internal/simulator"
)

const (
	defaultDemoDatabasePath = "./demo/storefront-demo.db"
	commissionRate          = 0.20
)

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	users := flag.Int("users", 200, "number of users to create")
	developers := flag.Int("developers", 8, "number of studios to create")
	purchases := flag.Int("purchases", 400, "number of purchases to simulate")
	seed := flag.Int64("seed", 42, "random seed for reproducible output")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	startDate, err := time.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		log.Fatalf("Invalid start date: %v", err)
	}
	gen := generator.New(*seed)

	stats, err := simulator.Seed(db, gen, *users, *developers, startDate)
	if err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}
	log.Printf("Seeded %d users, %d studios, %d games", stats.Users, stats.Developers, stats.Games)

	sold := runPurchases(db, *purchases, *seed)
	log.Printf("Recorded %d purchases", sold)

	log.Println("Demo database generated successfully!")
}

func runPurchases(db *database.Database, count int, seed int64) int {
	rng := rand.New(rand.NewSource(seed))
	gameRepo := games.NewRepository(db.DB)
	libraryRepo := library.NewRepository(db.DB)

	sold := 0
	for i := 0; i < count; i++ {
		game, err := gameRepo.RandomActive()
		if err != nil {
			break
		}
		buyers, err := libraryRepo.UserIDsWithoutGame(game.GameID)
		if err != nil || len(buyers) == 0 {
			continue
		}
		buyer := buyers[rng.Intn(len(buyers))]

		amount := game.CurrentPrice
		commission := math.Round(amount*commissionRate*100) / 100
		revenue := math.Round((amount-commission)*100) / 100

		if _, err := db.PurchaseGame(buyer, game.GameID, amount, revenue, commission); err != nil {
			log.Printf("Purchase failed (user %d, game %d): %v", buyer, game.GameID, err)
			continue
		}
		sold++
	}
	return sold
}
