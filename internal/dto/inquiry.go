package dto

import "time"

// InquiryResponse is the marketplace API wire shape for an inquiry.
type InquiryResponse struct {
	ID          int64      `json:"id"`
	Status      string     `json:"status"`
	BuyerID     string     `json:"buyerID"`
	DealerID    string     `json:"dealerID"`
	CarID       int64      `json:"carID"`
	Message     string     `json:"message"`
	BuyerName   string     `json:"buyerName"`
	BuyerEmail  string     `json:"buyerEmail"`
	CreatedAt   time.Time  `json:"createdAt"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`
}

// UpdateStatusRequest is the payload for status change calls, shared by all
// entity endpoints.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
