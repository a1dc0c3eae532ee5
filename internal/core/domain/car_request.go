package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus indicates whether a buyer request is open for dealer offers.
type RequestStatus string

const (
	RequestActive RequestStatus = "active"
	RequestClosed RequestStatus = "closed"
)

// CarRequest is a buyer's "wanted" posting. Unlike Inquiry, close is
// reversible: buyers reopen requests when a purchase falls through.
type CarRequest struct {
	ID           int64           `json:"id"`
	Status       RequestStatus   `json:"status"`
	BuyerID      string          `json:"buyerID"` // UUID of the owning buyer
	Make         string          `json:"make"`
	Model        string          `json:"model"`
	YearFrom     int             `json:"yearFrom"`
	YearTo       int             `json:"yearTo"`
	MaxPrice     decimal.Decimal `json:"maxPrice"`
	Requirements string          `json:"requirements"`
	CreatedAt    time.Time       `json:"createdAt"` // immutable once created
}
