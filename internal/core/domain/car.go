package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CarStatus indicates the availability of a dealer listing.
// The hide toggle is independent of the sold terminal state: a dealer may
// sell a car that is currently hidden from search.
type CarStatus string

const (
	CarActive CarStatus = "active"
	CarHidden CarStatus = "hidden"
	CarSold   CarStatus = "sold"
)

// Car is a dealer inventory listing.
type Car struct {
	ID          int64           `json:"id"`
	Status      CarStatus       `json:"status"`
	DealerID    string          `json:"dealerID"` // UUID of the owning dealer
	Make        string          `json:"make"`
	Model       string          `json:"model"`
	Year        int             `json:"year"`
	Mileage     int             `json:"mileage"`
	Price       decimal.Decimal `json:"price"`
	City        string          `json:"city"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"` // immutable once created
}
