package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/playdeck/storefront/internal/entities"
)

// UsersStore defines database operations for user management.
type UsersStore interface {
	Create(user *entities.User) (*entities.User, error)
	GetByID(id uint) (*entities.User, error)
	GetByUsername(username string) (*entities.User, error)
	ListByCountry(countryCode string) ([]entities.User, error)
	Count() (int64, error)
}

// LibraryStore defines read operations on ownership records.
type LibraryStore interface {
	ListForUser(userID uint, limit, offset int) ([]entities.Game, error)
}

// UserTransactionsStore defines read operations on a user's purchase
// history.
type UserTransactionsStore interface {
	ListForUser(userID uint) ([]entities.Transaction, error)
}

type UsersController struct {
	store        UsersStore
	library      LibraryStore
	transactions UserTransactionsStore
}

func NewUsersController(store UsersStore, library LibraryStore, transactions UserTransactionsStore) *UsersController {
	return &UsersController{
		store:        store,
		library:      library,
		transactions: transactions,
	}
}

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	Username         string     `json:"username" binding:"required"`
	Email            string     `json:"email" binding:"required,email"`
	CountryCode      string     `json:"country_code" binding:"required,len=2"`
	Region           string     `json:"region"`
	RegistrationDate *time.Time `json:"registration_date"`
}

// CreateUser registers a new user.
// POST /api/users
func (uc *UsersController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	registered := time.Now()
	if req.RegistrationDate != nil {
		registered = *req.RegistrationDate
	}

	user, err := uc.store.Create(&entities.User{
		Username:         req.Username,
		Email:            req.Email,
		CountryCode:      req.CountryCode,
		Region:           req.Region,
		RegistrationDate: registered,
	})
	if err != nil {
		respondStoreError(c, err, "create user")
		return
	}

	respondCreated(c, user)
}

// GetUser returns a user by ID.
// GET /api/users/:id
func (uc *UsersController) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := uc.store.GetByID(id)
	if err != nil {
		respondStoreError(c, err, "get user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsersByCountry returns users registered under a country code.
// GET /api/users?country=US
func (uc *UsersController) ListUsersByCountry(c *gin.Context) {
	country := c.Query("country")
	if len(country) != 2 {
		respondBadRequest(c, "country query parameter must be a 2-letter code")
		return
	}

	users, err := uc.store.ListByCountry(country)
	if err != nil {
		respondInternalError(c, err, "list users by country")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// GetLibrary returns the user's owned games ordered by purchase date.
// GET /api/users/:id/library
func (uc *UsersController) GetLibrary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := uc.store.GetByID(id); err != nil {
		respondStoreError(c, err, "get user for library")
		return
	}

	limit, offset := parsePagination(c, 0, 1000)
	games, err := uc.library.ListForUser(id, limit, offset)
	if err != nil {
		respondInternalError(c, err, "list library")
		return
	}

	c.JSON(http.StatusOK, gin.H{"games": games, "count": len(games)})
}

// GetTransactions returns the user's purchase history, oldest first.
// GET /api/users/:id/transactions
func (uc *UsersController) GetTransactions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := uc.store.GetByID(id); err != nil {
		respondStoreError(c, err, "get user for transactions")
		return
	}

	txns, err := uc.transactions.ListForUser(id)
	if err != nil {
		respondInternalError(c, err, "list transactions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txns, "count": len(txns)})
}
