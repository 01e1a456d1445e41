package http

import (
	"github.com/gin-gonic/gin"

	"github.com/playdeck/storefront/internal/database"
	"github.com/playdeck/storefront/internal/database/developers"
	"github.com/playdeck/storefront/internal/database/games"
	"github.com/playdeck/storefront/internal/database/library"
	"github.com/playdeck/storefront/internal/database/transactions"
	"github.com/playdeck/storefront/internal/database/users"
	"github.com/playdeck/storefront/internal/tasks"
)

// RouterConfig carries router dependencies. The task client and retention
// settings are optional; admin endpoints appear only when a client is set.
type RouterConfig struct {
	Database       *database.Database
	TaskClient     *tasks.Client
	CommissionRate float64
	RetentionDays  int
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	userRepo := users.NewRepository(cfg.Database.DB)
	devRepo := developers.NewRepository(cfg.Database.DB)
	gameRepo := games.NewRepository(cfg.Database.DB)
	libraryRepo := library.NewRepository(cfg.Database.DB)
	txnRepo := transactions.NewRepository(cfg.Database.DB)

	health := NewHealthController(cfg.Database, cfg.Version)
	usersController := NewUsersController(userRepo, libraryRepo, txnRepo)
	developersController := NewDevelopersController(devRepo, gameRepo, cfg.Database)
	gamesController := NewGamesController(gameRepo)
	purchasesController := NewPurchasesController(cfg.Database, gameRepo, cfg.CommissionRate)
	statsController := NewStatsController(cfg.Database, txnRepo)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// User endpoints
	router.POST("/api/users", usersController.CreateUser)
	router.GET("/api/users", usersController.ListUsersByCountry)
	router.GET("/api/users/:id", usersController.GetUser)
	router.GET("/api/users/:id/library", usersController.GetLibrary)
	router.GET("/api/users/:id/transactions", usersController.GetTransactions)

	// Developer endpoints
	router.POST("/api/developers", developersController.CreateDeveloper)
	router.GET("/api/developers/:id", developersController.GetDeveloper)
	router.GET("/api/developers/:id/games", developersController.GetDeveloperGames)
	router.DELETE("/api/developers/:id", developersController.DeleteDeveloper)

	// Game endpoints
	router.POST("/api/games", gamesController.CreateGame)
	router.GET("/api/games", gamesController.ListGamesByGenre)
	router.GET("/api/games/:id", gamesController.GetGame)
	router.DELETE("/api/games/:id", gamesController.DeactivateGame)

	// Purchase endpoint
	router.POST("/api/purchases", purchasesController.Purchase)

	// Stats endpoints
	router.GET("/api/stats", statsController.GetStats)
	router.GET("/api/stats/revenue", statsController.GetDailyRevenue)

	// Admin endpoints run through the task queue
	if cfg.TaskClient != nil {
		adminController := NewAdminController(cfg.TaskClient, cfg.RetentionDays)
		router.POST("/api/admin/reconcile", adminController.ReconcileAggregates)
		router.POST("/api/admin/prune-users", adminController.PruneInactiveUsers)
	}

	return router
}
