package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CarResponse is the marketplace API wire shape for a dealer listing.
type CarResponse struct {
	ID          int64           `json:"id"`
	Status      string          `json:"status"`
	DealerID    string          `json:"dealerID"`
	Make        string          `json:"make"`
	Model       string          `json:"model"`
	Year        int             `json:"year"`
	Mileage     int             `json:"mileage"`
	Price       decimal.Decimal `json:"price"`
	City        string          `json:"city"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}
