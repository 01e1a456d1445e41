package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playdeck/storefront/internal/entities"
)

func TestCreateDeveloper(t *testing.T) {
	t.Run("creates a developer", func(t *testing.T) {
		router, _, cleanup := setupRouter(t)
		defer cleanup()

		id := createDeveloperViaAPI(t, router, "Acme")
		assert.NotZero(t, id)
	})

	t.Run("duplicate studio name returns 409", func(t *testing.T) {
		router, _, cleanup := setupRouter(t)
		defer cleanup()

		createDeveloperViaAPI(t, router, "Acme")

		w := doJSON(t, router, "POST", "/api/developers", gin.H{
			"studio_name":   "Acme",
			"country_code":  "US",
			"contact_email": "other@example.com",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		router, _, cleanup := setupRouter(t)
		defer cleanup()

		w := doJSON(t, router, "POST", "/api/developers", gin.H{"studio_name": "Acme"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetDeveloperGames(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	devID := createDeveloperViaAPI(t, router, "Acme")
	createGameViaAPI(t, router, "Foo", devID, 10)
	createGameViaAPI(t, router, "Bar", devID, 20)

	w := doJSON(t, router, "GET", "/api/developers/1/games", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, 2, resp.Count)

	w = doJSON(t, router, "GET", "/api/developers/999/games", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteDeveloper(t *testing.T) {
	t.Run("cascades to catalogue and library but keeps transactions", func(t *testing.T) {
		router, db, cleanup := setupRouter(t)
		defer cleanup()

		userID := createUserViaAPI(t, router, "alice")
		devID := createDeveloperViaAPI(t, router, "Acme")
		gameID := createGameViaAPI(t, router, "Foo", devID, 10)

		w := doJSON(t, router, "POST", "/api/purchases", gin.H{"user_id": userID, "game_id": gameID})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, router, "DELETE", "/api/developers/1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var gameCount, libCount int64
		db.DB.Model(&entities.Game{}).Count(&gameCount)
		db.DB.Model(&entities.UserLibrary{}).Count(&libCount)
		assert.Zero(t, gameCount)
		assert.Zero(t, libCount)

		var txns []entities.Transaction
		require.NoError(t, db.DB.Find(&txns).Error)
		require.Len(t, txns, 1)
		assert.Nil(t, txns[0].GameID)
	})

	t.Run("unknown developer returns 404", func(t *testing.T) {
		router, _, cleanup := setupRouter(t)
		defer cleanup()

		w := doJSON(t, router, "DELETE", "/api/developers/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetStatsEndpoint(t *testing.T) {
	router, _, cleanup := setupRouter(t)
	defer cleanup()

	userID := createUserViaAPI(t, router, "alice")
	devID := createDeveloperViaAPI(t, router, "Acme")
	gameID := createGameViaAPI(t, router, "Foo", devID, 10)

	w := doJSON(t, router, "POST", "/api/purchases", gin.H{"user_id": userID, "game_id": gameID})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "GET", "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		Users           int64   `json:"users"`
		Games           int64   `json:"games"`
		Transactions    int64   `json:"transactions"`
		PlatformRevenue float64 `json:"platform_revenue"`
	}
	decodeBody(t, w, &stats)
	assert.Equal(t, int64(1), stats.Users)
	assert.Equal(t, int64(1), stats.Games)
	assert.Equal(t, int64(1), stats.Transactions)
	assert.Equal(t, 2.00, stats.PlatformRevenue)

	w = doJSON(t, router, "GET", "/api/stats/revenue", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/api/stats/revenue?date=not-a-date", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
