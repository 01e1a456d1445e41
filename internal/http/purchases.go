package http

import (
	"math"

	"github.com/gin-gonic/gin"

	"github.com/playdeck/storefront/internal/entities"
)

// PurchaseStore executes a purchase as one atomic unit: ownership record,
// monetary transaction, and aggregate updates together.
type PurchaseStore interface {
	PurchaseGame(userID, gameID uint, amount, developerRevenue, platformCommission float64) (*entities.Transaction, error)
}

// GameReader resolves the game being bought, for its current price.
type GameReader interface {
	GetByID(id uint) (*entities.Game, error)
}

type PurchasesController struct {
	store          PurchaseStore
	games          GameReader
	commissionRate float64
}

func NewPurchasesController(store PurchaseStore, games GameReader, commissionRate float64) *PurchasesController {
	return &PurchasesController{
		store:          store,
		games:          games,
		commissionRate: commissionRate,
	}
}

// PurchaseRequest is the payload for buying a game. Amount defaults to the
// game's current price.
type PurchaseRequest struct {
	UserID uint     `json:"user_id" binding:"required"`
	GameID uint     `json:"game_id" binding:"required"`
	Amount *float64 `json:"amount" binding:"omitempty,gte=0"`
}

// Purchase sells a game to a user.
// POST /api/purchases
func (pc *PurchasesController) Purchase(c *gin.Context) {
	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	game, err := pc.games.GetByID(req.GameID)
	if err != nil {
		respondStoreError(c, err, "get game for purchase")
		return
	}

	amount := game.CurrentPrice
	if req.Amount != nil {
		amount = *req.Amount
	}
	commission := round2(amount * pc.commissionRate)
	revenue := round2(amount - commission)

	txn, err := pc.store.PurchaseGame(req.UserID, req.GameID, amount, revenue, commission)
	if err != nil {
		respondStoreError(c, err, "purchase game")
		return
	}

	respondCreated(c, txn)
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
