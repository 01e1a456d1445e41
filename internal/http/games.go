package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/playdeck/storefront/internal/entities"
)

// GamesStore defines database operations for the game catalogue.
type GamesStore interface {
	Create(game *entities.Game) (*entities.Game, error)
	GetByID(id uint) (*entities.Game, error)
	ListByGenre(genre string) ([]entities.Game, error)
	Deactivate(id uint) error
	Count() (int64, error)
}

type GamesController struct {
	store GamesStore
}

func NewGamesController(store GamesStore) *GamesController {
	return &GamesController{store: store}
}

// CreateGameRequest is the payload for publishing a game.
type CreateGameRequest struct {
	Title            string    `json:"title" binding:"required"`
	DeveloperID      uint      `json:"developer_id" binding:"required"`
	ReleaseDate      time.Time `json:"release_date" binding:"required"`
	BasePrice        float64   `json:"base_price" binding:"gte=0"`
	CurrentPrice     *float64  `json:"current_price" binding:"omitempty,gte=0"`
	MonetizationType string    `json:"monetization_type" binding:"required"`
	GenreMain        string    `json:"genre_main" binding:"required"`
	GenreTags        string    `json:"genre_tags"`
	AgeRating        string    `json:"age_rating" binding:"required"`
}

// CreateGame publishes a new game under an existing studio.
// POST /api/games
func (gc *GamesController) CreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	current := req.BasePrice
	if req.CurrentPrice != nil {
		current = *req.CurrentPrice
	}

	game, err := gc.store.Create(&entities.Game{
		Title:            req.Title,
		DeveloperID:      req.DeveloperID,
		ReleaseDate:      req.ReleaseDate,
		BasePrice:        req.BasePrice,
		CurrentPrice:     current,
		MonetizationType: entities.MonetizationType(req.MonetizationType),
		GenreMain:        req.GenreMain,
		GenreTags:        req.GenreTags,
		AgeRating:        req.AgeRating,
		IsActive:         true,
	})
	if err != nil {
		respondStoreError(c, err, "create game")
		return
	}

	respondCreated(c, game)
}

// GetGame returns a game by ID.
// GET /api/games/:id
func (gc *GamesController) GetGame(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	game, err := gc.store.GetByID(id)
	if err != nil {
		respondStoreError(c, err, "get game")
		return
	}

	c.JSON(http.StatusOK, game)
}

// ListGamesByGenre returns games with the given main genre.
// GET /api/games?genre=rpg
func (gc *GamesController) ListGamesByGenre(c *gin.Context) {
	genre := c.Query("genre")
	if genre == "" {
		respondBadRequest(c, "genre query parameter is required")
		return
	}

	games, err := gc.store.ListByGenre(genre)
	if err != nil {
		respondInternalError(c, err, "list games by genre")
		return
	}

	c.JSON(http.StatusOK, gin.H{"games": games, "count": len(games)})
}

// DeactivateGame delists a game. Ownership and purchase history remain.
// DELETE /api/games/:id
func (gc *GamesController) DeactivateGame(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := gc.store.Deactivate(id); err != nil {
		respondStoreError(c, err, "deactivate game")
		return
	}

	respondSuccess(c, "game deactivated")
}
