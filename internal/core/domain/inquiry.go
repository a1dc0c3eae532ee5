package domain

import "time"

// InquiryStatus indicates where a buyer inquiry sits in its lifecycle.
type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "new"
	InquiryResponded InquiryStatus = "responded"
	InquiryClosed    InquiryStatus = "closed"
)

// Inquiry is a buyer-to-dealer message about a specific car listing.
// Status moves only through the lifecycle engine; viewing an inquiry is not
// a transition.
type Inquiry struct {
	ID          int64         `json:"id"`
	Status      InquiryStatus `json:"status"`
	BuyerID     string        `json:"buyerID"`  // UUID of the owning buyer
	DealerID    string        `json:"dealerID"` // UUID of the counterpart dealer
	CarID       int64         `json:"carID"`
	Message     string        `json:"message"`
	BuyerName   string        `json:"buyerName"`
	BuyerEmail  string        `json:"buyerEmail"`
	CreatedAt   time.Time     `json:"createdAt"` // immutable once created
	RespondedAt *time.Time    `json:"respondedAt,omitempty"`
}
