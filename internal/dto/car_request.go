package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CarRequestResponse is the marketplace API wire shape for a buyer request.
type CarRequestResponse struct {
	ID           int64           `json:"id"`
	Status       string          `json:"status"`
	BuyerID      string          `json:"buyerID"`
	Make         string          `json:"make"`
	Model        string          `json:"model"`
	YearFrom     int             `json:"yearFrom"`
	YearTo       int             `json:"yearTo"`
	MaxPrice     decimal.Decimal `json:"maxPrice"`
	Requirements string          `json:"requirements"`
	CreatedAt    time.Time       `json:"createdAt"`
}
