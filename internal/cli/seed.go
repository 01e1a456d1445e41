// Package cli implements the command line subcommands.
package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/playdeck/storefront/internal/config"
	"github.com/playdeck/storefront/internal/database"
	"github.com/playdeck/storefront/internal/generator"
	"github.com/playdeck/storefront/internal/simulator"
)

// SeedCommand populates a storefront database with synthetic users,
// studios, and games.
type SeedCommand struct {
	DatabasePath string
	Users        int
	Developers   int
	Seed         int64
	StartDate    string
}

// NewSeedCommand creates a new SeedCommand
func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

// ParseFlags parses command line flags
func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the storefront database file")
	fs.IntVar(&cmd.Users, "users", 10000, "Number of users to create")
	fs.IntVar(&cmd.Developers, "developers", 10, "Number of studios to create")
	fs.Int64Var(&cmd.Seed, "seed", 42, "Random seed for reproducible output")
	fs.StringVar(&cmd.StartDate, "start-date", "2008-01-01", "Registration date for the seeded population (YYYY-MM-DD)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Populate a storefront database with synthetic data.\n\n")
		fmt.Fprintf(os.Stderr, "This command:\n")
		fmt.Fprintf(os.Stderr, "  1. Creates the database schema when missing\n")
		fmt.Fprintf(os.Stderr, "  2. Generates users, studios, and a catalogue of games\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s seed\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s seed -users 500 -developers 5\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s seed -db ./data/storefront.db -seed 7\n", os.Args[0])
	}

	return fs.Parse(args)
}

// Run executes the seed command
func (cmd *SeedCommand) Run() error {
	startDate, err := time.Parse("2006-01-02", cmd.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", cmd.StartDate, err)
	}

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absDBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	fmt.Printf("Seeding %s with %d users and %d studios...\n", absDBPath, cmd.Users, cmd.Developers)

	gen := generator.New(cmd.Seed)
	stats, err := simulator.Seed(db, gen, cmd.Users, cmd.Developers, startDate)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Printf("Done: %d users, %d studios, %d games\n", stats.Users, stats.Developers, stats.Games)
	return nil
}
