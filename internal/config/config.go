package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Simulation
		Tasks
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}

	Database struct {
		Path string
	}

	Simulation struct {
		Enabled           bool
		Seed              int64
		StartDate         string // "2006-01-02"; simulation day zero
		TickSchedule      string // Cron format: "@every 1m" = 1 simulated day per minute
		StatsSchedule     string
		PruneSchedule     string
		CommissionRate    float64 // Platform share of each sale (default: 0.20)
		PurchaseShare     float64 // Share of active users buying per day (default: 0.03)
		UserRetentionDays int     // Inactive users older than this get pruned (default: 730)
		InitialUsers      int
		InitialDevelopers int
	}

	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Simulation defaults
	v.SetDefault("simulation_enabled", false)
	v.SetDefault("simulation_seed", 42)
	v.SetDefault("simulation_start_date", "2008-01-01")
	v.SetDefault("simulation_tick_schedule", "@every 1m")
	v.SetDefault("simulation_stats_schedule", "@every 5m")
	v.SetDefault("simulation_prune_schedule", "@every 30m")
	v.SetDefault("simulation_commission_rate", 0.20)
	v.SetDefault("simulation_purchase_share", 0.03)
	v.SetDefault("simulation_user_retention_days", 730)
	v.SetDefault("simulation_initial_users", 10000)
	v.SetDefault("simulation_initial_developers", 10)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Simulation: Simulation{
			Enabled:           v.GetBool("SIMULATION_ENABLED"),
			Seed:              v.GetInt64("SIMULATION_SEED"),
			StartDate:         v.GetString("SIMULATION_START_DATE"),
			TickSchedule:      v.GetString("SIMULATION_TICK_SCHEDULE"),
			StatsSchedule:     v.GetString("SIMULATION_STATS_SCHEDULE"),
			PruneSchedule:     v.GetString("SIMULATION_PRUNE_SCHEDULE"),
			CommissionRate:    v.GetFloat64("SIMULATION_COMMISSION_RATE"),
			PurchaseShare:     v.GetFloat64("SIMULATION_PURCHASE_SHARE"),
			UserRetentionDays: v.GetInt("SIMULATION_USER_RETENTION_DAYS"),
			InitialUsers:      v.GetInt("SIMULATION_INITIAL_USERS"),
			InitialDevelopers: v.GetInt("SIMULATION_INITIAL_DEVELOPERS"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
	}
}

// StartTime parses the configured simulation start date, falling back to
// the current day on a malformed value.
func (s Simulation) StartTime() time.Time {
	parsed, err := time.Parse("2006-01-02", s.StartDate)
	if err != nil {
		return time.Now().Truncate(24 * time.Hour)
	}
	return parsed
}
