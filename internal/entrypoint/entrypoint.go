package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/playdeck/storefront/internal/config"
	"github.com/playdeck/storefront/internal/database"
	http_controllers "github.com/playdeck/storefront/internal/http"
	"github.com/playdeck/storefront/internal/simulator"
	"github.com/playdeck/storefront/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM. SIGKILL cannot be caught.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the simulation and task
	// queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Storefront v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		// Register task queues
		taskClient.Register(
			tasks.NewPruneInactiveUsersQueue(db),
			tasks.NewReconcileAggregatesQueue(db),
		)

		// Start task workers in background
		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Start the market simulation if enabled
	var sim *simulator.Simulator
	var simCancel context.CancelFunc
	if cfg.Simulation.Enabled {
		simCfg := simulator.Config{
			StartDate:         cfg.Simulation.StartTime(),
			Seed:              cfg.Simulation.Seed,
			TickSchedule:      cfg.Simulation.TickSchedule,
			StatsSchedule:     cfg.Simulation.StatsSchedule,
			PruneSchedule:     cfg.Simulation.PruneSchedule,
			CommissionRate:    cfg.Simulation.CommissionRate,
			PurchaseShare:     cfg.Simulation.PurchaseShare,
			UserRetentionDays: cfg.Simulation.UserRetentionDays,
			InitialUsers:      cfg.Simulation.InitialUsers,
			InitialDevelopers: cfg.Simulation.InitialDevelopers,
		}

		var queue simulator.TaskEnqueuer
		if taskClient != nil {
			queue = taskClient
		}
		sim = simulator.New(simCfg, db, queue)

		var simCtx context.Context
		simCtx, simCancel = context.WithCancel(context.Background())
		if err := sim.Start(simCtx); err != nil {
			log.Fatalf("Failed to start simulation: %v", err)
		}
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:       db,
		TaskClient:     taskClient,
		CommissionRate: cfg.Simulation.CommissionRate,
		RetentionDays:  cfg.Simulation.UserRetentionDays,
		Version:        version,
	})

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		if sim != nil {
			sim.Stop()
			simCancel()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
