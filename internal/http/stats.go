package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/playdeck/storefront/internal/database"
)

// StatsStore provides storefront-wide counters and revenue totals.
type StatsStore interface {
	GetStats() (database.Stats, error)
}

// RevenueStore provides commission sums over purchase history.
type RevenueStore interface {
	TotalPlatformRevenue() (float64, error)
	DailyPlatformRevenue(day time.Time) (float64, error)
}

type StatsController struct {
	store   StatsStore
	revenue RevenueStore
}

func NewStatsController(store StatsStore, revenue RevenueStore) *StatsController {
	return &StatsController{store: store, revenue: revenue}
}

// GetStats returns table counts and total platform revenue.
// GET /api/stats
func (sc *StatsController) GetStats(c *gin.Context) {
	stats, err := sc.store.GetStats()
	if err != nil {
		respondInternalError(c, err, "get stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetDailyRevenue returns the platform commission earned on one day.
// GET /api/stats/revenue?date=2024-06-01
func (sc *StatsController) GetDailyRevenue(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		total, err := sc.revenue.TotalPlatformRevenue()
		if err != nil {
			respondInternalError(c, err, "get total revenue")
			return
		}
		c.JSON(http.StatusOK, gin.H{"platform_revenue": total})
		return
	}

	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		respondBadRequest(c, "date must be formatted as YYYY-MM-DD")
		return
	}

	total, err := sc.revenue.DailyPlatformRevenue(day)
	if err != nil {
		respondInternalError(c, err, "get daily revenue")
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": day.Format("2006-01-02"), "platform_revenue": total})
}
