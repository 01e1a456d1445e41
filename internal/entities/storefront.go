package entities

import "time"

type MonetizationType string

const (
	MonetizationFree MonetizationType = "free"
	MonetizationPaid MonetizationType = "paid"
)

// Valid reports whether the monetization type is one of the allowed values.
func (m MonetizationType) Valid() bool {
	return m == MonetizationFree || m == MonetizationPaid
}

type User struct {
	UserID           uint          `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username         string        `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Email            string        `gorm:"uniqueIndex;size:255;not null" json:"email"`
	CountryCode      string        `gorm:"column:country_code;type:char(2);not null;index:idx_users_country" json:"country_code"`
	Region           string        `gorm:"size:100" json:"region,omitempty"`
	RegistrationDate time.Time     `gorm:"not null" json:"registration_date"`
	TotalSpent       float64       `gorm:"type:decimal(12,2);default:0.00" json:"total_spent"`
	LastActive       *time.Time    `json:"last_active,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	Library          []UserLibrary `gorm:"foreignKey:UserID;references:UserID" json:"-"`
	Transactions     []Transaction `gorm:"foreignKey:UserID;references:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

type Developer struct {
	DeveloperID    uint      `gorm:"column:developer_id;primaryKey" json:"developer_id"`
	StudioName     string    `gorm:"column:studio_name;uniqueIndex;size:255;not null" json:"studio_name"`
	CountryCode    string    `gorm:"column:country_code;type:char(2);not null" json:"country_code"`
	FoundationYear *int      `gorm:"column:foundation_year" json:"foundation_year,omitempty"`
	TotalRevenue   float64   `gorm:"type:decimal(12,2);default:0.00" json:"total_revenue"`
	ContactEmail   string    `gorm:"column:contact_email;size:255;not null" json:"contact_email"`
	CreatedAt      time.Time `json:"created_at"`
	Games          []Game    `gorm:"foreignKey:DeveloperID;references:DeveloperID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Developer) TableName() string {
	return "developers"
}

type Game struct {
	GameID           uint             `gorm:"column:game_id;primaryKey" json:"game_id"`
	Title            string           `gorm:"size:255;not null" json:"title"`
	DeveloperID      uint             `gorm:"column:developer_id;not null;index:idx_games_developer" json:"developer_id"`
	ReleaseDate      time.Time        `gorm:"type:date;not null" json:"release_date"`
	BasePrice        float64          `gorm:"type:decimal(10,2);default:0.00" json:"base_price"`
	CurrentPrice     float64          `gorm:"type:decimal(10,2);default:0.00" json:"current_price"`
	MonetizationType MonetizationType `gorm:"size:10;not null;check:monetization_type IN ('free','paid')" json:"monetization_type"`
	GenreMain        string           `gorm:"column:genre_main;size:50;not null;index:idx_games_genre" json:"genre_main"`
	GenreTags        string           `gorm:"type:text" json:"genre_tags,omitempty"`
	AgeRating        string           `gorm:"column:age_rating;size:10;not null" json:"age_rating"`
	TotalPurchases   int              `gorm:"default:0" json:"total_purchases"`
	IsActive         bool             `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time        `json:"created_at"`
	// Ownership records die with the game; monetary history survives with
	// the game reference nullified.
	Library      []UserLibrary `gorm:"foreignKey:GameID;references:GameID;constraint:OnDelete:CASCADE" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:GameID;references:GameID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Game) TableName() string {
	return "games"
}

// UserLibrary records that a user owns a game, independent of the
// transaction that granted it. The (user_id, game_id) pair is unique.
type UserLibrary struct {
	UserGameID   uint      `gorm:"column:user_game_id;primaryKey;autoIncrement" json:"user_game_id"`
	UserID       uint      `gorm:"column:user_id;index:idx_user_library_user;uniqueIndex:uniq_user_library_pair" json:"user_id"`
	GameID       uint      `gorm:"column:game_id;index:idx_user_library_game;uniqueIndex:uniq_user_library_pair" json:"game_id"`
	PurchaseDate time.Time `gorm:"column:purchase_date;autoCreateTime" json:"purchase_date"`
}

func (UserLibrary) TableName() string {
	return "user_library"
}

type Transaction struct {
	TransactionID      uint      `gorm:"column:transaction_id;primaryKey;autoIncrement" json:"transaction_id"`
	UserID             *uint     `gorm:"column:user_id" json:"user_id,omitempty"`
	GameID             *uint     `gorm:"column:game_id" json:"game_id,omitempty"`
	TransactionDate    time.Time `gorm:"column:transaction_date;index:idx_transactions_date;autoCreateTime" json:"transaction_date"`
	Amount             float64   `gorm:"type:decimal(10,2)" json:"amount"`
	DeveloperRevenue   float64   `gorm:"column:developer_revenue;type:decimal(10,2)" json:"developer_revenue"`
	PlatformCommission float64   `gorm:"column:platform_commission;type:decimal(10,2)" json:"platform_commission"`
}

func (Transaction) TableName() string {
	return "transactions"
}
