package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/playdeck/storefront/internal/database"
)

func setupRouter(t *testing.T) (*gin.Engine, *database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		Database:       db,
		CommissionRate: 0.20,
		RetentionDays:  730,
		Version:        "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, db, cleanup
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(encoded)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

func createUserViaAPI(t *testing.T, router *gin.Engine, username string) uint {
	t.Helper()

	w := doJSON(t, router, "POST", "/api/users", gin.H{
		"username":     username,
		"email":        username + "@example.com",
		"country_code": "US",
		"region":       "California",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		UserID uint `json:"user_id"`
	}
	decodeBody(t, w, &created)
	return created.UserID
}

func createDeveloperViaAPI(t *testing.T, router *gin.Engine, studio string) uint {
	t.Helper()

	w := doJSON(t, router, "POST", "/api/developers", gin.H{
		"studio_name":   studio,
		"country_code":  "US",
		"contact_email": strings.ToLower(studio) + "@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		DeveloperID uint `json:"developer_id"`
	}
	decodeBody(t, w, &created)
	return created.DeveloperID
}

func createGameViaAPI(t *testing.T, router *gin.Engine, title string, developerID uint, price float64) uint {
	t.Helper()

	w := doJSON(t, router, "POST", "/api/games", gin.H{
		"title":             title,
		"developer_id":      developerID,
		"release_date":      "2021-06-01T00:00:00Z",
		"base_price":        price,
		"monetization_type": "paid",
		"genre_main":        "rpg",
		"age_rating":        "12+",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		GameID uint `json:"game_id"`
	}
	decodeBody(t, w, &created)
	return created.GameID
}
