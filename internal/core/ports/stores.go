package ports

import (
	"context"

	"github.com/arale275/autix-sub001/internal/core/domain"
)

// Store ports are the engine's only view of the marketplace backend. The
// adapter decides wire format; services validate transitions before any
// persist call goes out. Context is included for cancellation/timeouts.

// InquiryStore defines the backend operations for dealer inquiries.
type InquiryStore interface {
	ListInquiries(ctx context.Context, dealerID string) ([]domain.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, id int64, target domain.InquiryStatus) (*domain.Inquiry, error)
	DeleteInquiry(ctx context.Context, id int64) error
}

// RequestStore defines the backend operations for buyer car requests.
type RequestStore interface {
	ListRequests(ctx context.Context, buyerID string) ([]domain.CarRequest, error)
	UpdateRequestStatus(ctx context.Context, id int64, target domain.RequestStatus) (*domain.CarRequest, error)
	DeleteRequest(ctx context.Context, id int64) error
}

// CarStore defines the backend operations for dealer inventory listings.
type CarStore interface {
	ListCars(ctx context.Context, dealerID string) ([]domain.Car, error)
	UpdateCarStatus(ctx context.Context, id int64, target domain.CarStatus) (*domain.Car, error)
	DeleteCar(ctx context.Context, id int64) error
}
