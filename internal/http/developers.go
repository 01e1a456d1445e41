package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playdeck/storefront/internal/entities"
)

// DevelopersStore defines database operations for studio management.
type DevelopersStore interface {
	Create(dev *entities.Developer) (*entities.Developer, error)
	GetByID(id uint) (*entities.Developer, error)
	Count() (int64, error)
}

// DeveloperGamesStore lists a studio's catalogue.
type DeveloperGamesStore interface {
	ListByDeveloper(developerID uint) ([]entities.Game, error)
}

// DeveloperDeleter removes a studio together with its games, their
// ownership records, and the game references in monetary history.
type DeveloperDeleter interface {
	DeleteDeveloper(developerID uint) error
}

type DevelopersController struct {
	store   DevelopersStore
	games   DeveloperGamesStore
	deleter DeveloperDeleter
}

func NewDevelopersController(store DevelopersStore, games DeveloperGamesStore, deleter DeveloperDeleter) *DevelopersController {
	return &DevelopersController{
		store:   store,
		games:   games,
		deleter: deleter,
	}
}

// CreateDeveloperRequest is the payload for onboarding a studio.
type CreateDeveloperRequest struct {
	StudioName     string `json:"studio_name" binding:"required"`
	CountryCode    string `json:"country_code" binding:"required,len=2"`
	FoundationYear *int   `json:"foundation_year"`
	ContactEmail   string `json:"contact_email" binding:"required,email"`
}

// CreateDeveloper onboards a new studio.
// POST /api/developers
func (dc *DevelopersController) CreateDeveloper(c *gin.Context) {
	var req CreateDeveloperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	dev, err := dc.store.Create(&entities.Developer{
		StudioName:     req.StudioName,
		CountryCode:    req.CountryCode,
		FoundationYear: req.FoundationYear,
		ContactEmail:   req.ContactEmail,
	})
	if err != nil {
		respondStoreError(c, err, "create developer")
		return
	}

	respondCreated(c, dev)
}

// GetDeveloper returns a studio by ID.
// GET /api/developers/:id
func (dc *DevelopersController) GetDeveloper(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	dev, err := dc.store.GetByID(id)
	if err != nil {
		respondStoreError(c, err, "get developer")
		return
	}

	c.JSON(http.StatusOK, dev)
}

// GetDeveloperGames returns a studio's games ordered by release date.
// GET /api/developers/:id/games
func (dc *DevelopersController) GetDeveloperGames(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := dc.store.GetByID(id); err != nil {
		respondStoreError(c, err, "get developer for games")
		return
	}

	games, err := dc.games.ListByDeveloper(id)
	if err != nil {
		respondInternalError(c, err, "list developer games")
		return
	}

	c.JSON(http.StatusOK, gin.H{"games": games, "count": len(games)})
}

// DeleteDeveloper removes a studio and cascades to its catalogue.
// DELETE /api/developers/:id
func (dc *DevelopersController) DeleteDeveloper(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := dc.deleter.DeleteDeveloper(id); err != nil {
		respondStoreError(c, err, "delete developer")
		return
	}

	respondSuccess(c, "developer deleted")
}
