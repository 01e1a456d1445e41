// Package simulator drives a continuous market simulation against the
// storefront database: simulated days tick by, users register, studios
// form, games ship, and purchases flow through the same repository layer
// the API uses.
package simulator

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/robfig/cron/v3"

	"github.com/playdeck/storefront/internal/database"
	"github.com/playdeck/storefront/internal/database/developers"
	"github.com/playdeck/storefront/internal/database/games"
	"github.com/playdeck/storefront/internal/database/library"
	"github.com/playdeck/storefront/internal/database/users"
	"github.com/playdeck/storefront/internal/generator"
	"github.com/playdeck/storefront/internal/tasks"
)

// Caps per tick so a growth spike cannot stall the database.
const (
	maxUsersPerTick     = 500
	maxGamesPerTick     = 50
	maxPurchasesPerTick = 200
)

// Config controls the simulation pace and economics.
type Config struct {
	StartDate         time.Time
	Seed              int64
	TickSchedule      string // cron spec, e.g. "@every 1m"
	StatsSchedule     string
	PruneSchedule     string
	CommissionRate    float64 // platform share of each sale
	PurchaseShare     float64 // share of active users buying per day
	UserRetentionDays int
	InitialUsers      int
	InitialDevelopers int
}

// TaskEnqueuer enqueues background tasks; satisfied by tasks.Client.
type TaskEnqueuer interface {
	Add(tasks ...backlite.Task) *backlite.TaskAddOp
}

// Simulator owns the simulation clock and the cron jobs feeding the
// database.
type Simulator struct {
	cfg   Config
	db    *database.Database
	users *users.Repository
	devs  *developers.Repository
	games *games.Repository
	lib   *library.Repository
	gen   *generator.Generator
	clock *Clock
	econ  *Economy
	rng   *rand.Rand
	queue TaskEnqueuer

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool

	// Fractional growth carried between ticks. Ticks and the stats job run
	// on separate cron goroutines, so access goes through statsMu.
	statsMu     sync.Mutex
	carryUsers  float64
	carryDevs   float64
	carryGames  float64
	activeUsers int
}

// New creates a simulator. The task enqueuer may be nil, in which case
// pruning runs inline.
func New(cfg Config, db *database.Database, queue TaskEnqueuer) *Simulator {
	rng := rand.New(rand.NewSource(cfg.Seed))
	return &Simulator{
		cfg:   cfg,
		db:    db,
		users: users.NewRepository(db.DB),
		devs:  developers.NewRepository(db.DB),
		games: games.NewRepository(db.DB),
		lib:   library.NewRepository(db.DB),
		gen:   generator.New(cfg.Seed),
		clock: NewClock(cfg.StartDate),
		econ:  NewEconomy(rng),
		rng:   rng,
		queue: queue,
		cron:  cron.New(),
	}
}

// Start seeds an empty database and begins the cron jobs. Stops when the
// context is cancelled.
func (s *Simulator) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := s.alignGenerator(); err != nil {
		return fmt.Errorf("align generator counters: %w", err)
	}

	userCount, err := s.users.Count()
	if err != nil {
		return err
	}
	if userCount == 0 {
		stats, err := Seed(s.db, s.gen, s.cfg.InitialUsers, s.cfg.InitialDevelopers, s.clock.Date())
		if err != nil {
			return fmt.Errorf("seed initial data: %w", err)
		}
		log.Printf("Seeded initial dataset: %d users, %d developers, %d games",
			stats.Users, stats.Developers, stats.Games)
	}

	jobs := []struct {
		schedule string
		run      func()
	}{
		{s.cfg.TickSchedule, s.tick},
		{s.cfg.StatsSchedule, s.logStats},
		{s.cfg.PruneSchedule, s.pruneInactiveUsers},
	}
	for _, job := range jobs {
		if _, err := s.cron.AddFunc(job.schedule, job.run); err != nil {
			return fmt.Errorf("schedule simulation job: %w", err)
		}
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Simulation started at simulated date %s (1 real minute = 1 simulated day)",
		s.clock.Date().Format("2006-01-02"))

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop halts the cron jobs and waits for running ones to finish.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false

	log.Printf("Simulation stopped at day %d", s.clock.Day())
}

// IsRunning reports whether the simulation jobs are active.
func (s *Simulator) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

// alignGenerator moves the ID counters past any existing rows.
func (s *Simulator) alignGenerator() error {
	userIDs, err := s.users.AllIDs()
	if err != nil {
		return err
	}
	devIDs, err := s.devs.AllIDs()
	if err != nil {
		return err
	}
	maxGameID, err := s.games.MaxID()
	if err != nil {
		return err
	}

	var nextUser, nextDev uint
	if len(userIDs) > 0 {
		nextUser = userIDs[len(userIDs)-1] + 1
	}
	if len(devIDs) > 0 {
		nextDev = devIDs[len(devIDs)-1] + 1
	}
	s.gen.SetNextIDs(nextUser, nextDev, maxGameID+1)
	return nil
}

// tick advances one simulated day: accrue growth, insert the accrued
// batches, refresh activity, and run the day's purchases.
func (s *Simulator) tick() {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()

	s.accrueGrowth()
	s.spawnUsers()
	s.spawnDevelopers()
	s.spawnGames()
	s.updateActivity()
	s.runPurchases()
}

func (s *Simulator) accrueGrowth() {
	userCount, err := s.users.Count()
	if err != nil {
		log.Printf("Simulation growth: user count failed: %v", err)
		return
	}
	devCount, _ := s.devs.Count()
	gameCount, _ := s.games.Count()

	now := s.clock.DateTime(s.rng)

	// Daily activity rate combines base engagement with seasonal and
	// weekday demand.
	rate := (0.1 + s.rng.Float64()*0.15) *
		SeasonalMultiplier(now.Month()) *
		WeekdayMultiplier(now.Weekday()) *
		(0.9 + s.rng.Float64()*0.2)
	rate = math.Min(math.Max(rate, 0.25), 0.8)
	s.activeUsers = int(float64(userCount) * rate)

	s.carryUsers += s.econ.DailyUserGrowth(userCount, gameCount, now.Month())
	s.carryDevs += s.econ.DailyDeveloperGrowth(devCount, userCount)

	gameGrowth := s.econ.DailyGameGrowth(devCount, gameCount, int64(s.activeUsers))
	s.carryGames += math.Min(gameGrowth, float64(devCount)/175)
}

func (s *Simulator) spawnUsers() {
	count := int(s.carryUsers)
	if count <= 0 {
		return
	}
	if count > maxUsersPerTick {
		count = maxUsersPerTick
	}
	s.carryUsers -= float64(count)

	date := s.clock.Date()
	created := 0
	for _, user := range s.gen.NewUsers(count, date) {
		if _, err := s.users.Create(user); err != nil {
			log.Printf("Simulation: user insert failed: %v", err)
			continue
		}
		created++
	}
	log.Printf("[Day %d] Registered %d new users", s.clock.Day(), created)
}

func (s *Simulator) spawnDevelopers() {
	count := int(s.carryDevs)
	if count <= 0 {
		return
	}
	s.carryDevs -= float64(count)

	date := s.clock.Date()
	created := 0
	for _, dev := range s.gen.NewDevelopers(count, date) {
		if _, err := s.devs.Create(dev); err != nil {
			log.Printf("Simulation: developer insert failed: %v", err)
			continue
		}
		created++
	}
	log.Printf("[Day %d] Founded %d new studios", s.clock.Day(), created)
}

func (s *Simulator) spawnGames() {
	count := int(s.carryGames)
	if count <= 0 {
		return
	}
	if count > maxGamesPerTick {
		count = maxGamesPerTick
	}
	s.carryGames -= float64(count)

	date := s.clock.Date()
	created := 0
	for i := 0; i < count; i++ {
		devID, err := s.devs.RandomID()
		if err != nil {
			log.Printf("Simulation: no developer for new game: %v", err)
			return
		}
		if _, err := s.games.Create(s.gen.NewGame(date, devID)); err != nil {
			log.Printf("Simulation: game insert failed: %v", err)
			continue
		}
		created++
	}
	log.Printf("[Day %d] Released %d new games", s.clock.Day(), created)
}

func (s *Simulator) updateActivity() {
	ids, err := s.users.AllIDs()
	if err != nil || len(ids) == 0 {
		return
	}

	active := s.activeUsers
	if active > len(ids) {
		active = len(ids)
	}
	s.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	updated, err := s.users.TouchLastActiveBatch(ids[:active], s.clock.DateTime(s.rng))
	if err != nil {
		log.Printf("Simulation: activity update failed: %v", err)
		return
	}
	log.Printf("[Day %d] Updated activity for %d users", s.clock.Day(), updated)
}

func (s *Simulator) runPurchases() {
	want := int(float64(s.activeUsers) * s.cfg.PurchaseShare)
	if want <= 0 {
		return
	}
	if want > maxPurchasesPerTick {
		want = maxPurchasesPerTick
	}

	sold := 0
	for i := 0; i < want; i++ {
		game, err := s.games.RandomActive()
		if err != nil {
			break
		}
		buyers, err := s.lib.UserIDsWithoutGame(game.GameID)
		if err != nil || len(buyers) == 0 {
			continue
		}
		buyer := buyers[s.rng.Intn(len(buyers))]

		amount := game.CurrentPrice
		commission := round2(amount * s.cfg.CommissionRate)
		revenue := round2(amount - commission)

		if _, err := s.db.PurchaseGame(buyer, game.GameID, amount, revenue, commission); err != nil {
			log.Printf("Simulation: purchase failed (user %d, game %d): %v", buyer, game.GameID, err)
			continue
		}
		sold++
	}
	log.Printf("[Day %d] Sold %d games", s.clock.Day(), sold)
}

func (s *Simulator) pruneInactiveUsers() {
	cutoff := s.clock.DateTime(s.rng).AddDate(0, 0, -s.cfg.UserRetentionDays)

	if s.queue != nil {
		task := tasks.PruneInactiveUsersTask{
			RetentionDays: s.cfg.UserRetentionDays,
			Now:           s.clock.DateTime(s.rng),
		}
		if _, err := s.queue.Add(task).Ctx(context.Background()).Save(); err != nil {
			log.Printf("Simulation: failed to enqueue prune task: %v", err)
		}
		return
	}

	deleted, err := s.db.PruneInactiveUsers(cutoff)
	if err != nil {
		log.Printf("Simulation: prune failed: %v", err)
		return
	}
	log.Printf("[Day %d] Pruned %d inactive users", s.clock.Day(), deleted)
}

func (s *Simulator) logStats() {
	s.statsMu.Lock()
	active := s.activeUsers
	s.statsMu.Unlock()

	stats, err := s.db.GetStats()
	if err != nil {
		log.Printf("Simulation stats failed: %v", err)
		return
	}
	log.Printf("[Day %d] users=%d developers=%d games=%d transactions=%d platform_revenue=%.2f active=%d",
		s.clock.Day(), stats.Users, stats.Developers, stats.Games,
		stats.Transactions, stats.PlatformRevenue, active)
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
