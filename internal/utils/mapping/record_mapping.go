package mapping

import (
	"github.com/arale275/autix-sub001/internal/core/domain"
	"github.com/arale275/autix-sub001/internal/dto"
)

// ToDomainInquiry converts a wire inquiry to a domain Inquiry.
func ToDomainInquiry(r dto.InquiryResponse) domain.Inquiry {
	return domain.Inquiry{
		ID:          r.ID,
		Status:      domain.InquiryStatus(r.Status),
		BuyerID:     r.BuyerID,
		DealerID:    r.DealerID,
		CarID:       r.CarID,
		Message:     r.Message,
		BuyerName:   r.BuyerName,
		BuyerEmail:  r.BuyerEmail,
		CreatedAt:   r.CreatedAt,
		RespondedAt: r.RespondedAt,
	}
}

// ToDomainInquirySlice converts a slice of wire inquiries.
func ToDomainInquirySlice(rs []dto.InquiryResponse) []domain.Inquiry {
	ds := make([]domain.Inquiry, len(rs))
	for i, r := range rs {
		ds[i] = ToDomainInquiry(r)
	}
	return ds
}

// ToDomainCarRequest converts a wire request to a domain CarRequest.
func ToDomainCarRequest(r dto.CarRequestResponse) domain.CarRequest {
	return domain.CarRequest{
		ID:           r.ID,
		Status:       domain.RequestStatus(r.Status),
		BuyerID:      r.BuyerID,
		Make:         r.Make,
		Model:        r.Model,
		YearFrom:     r.YearFrom,
		YearTo:       r.YearTo,
		MaxPrice:     r.MaxPrice,
		Requirements: r.Requirements,
		CreatedAt:    r.CreatedAt,
	}
}

// ToDomainCarRequestSlice converts a slice of wire requests.
func ToDomainCarRequestSlice(rs []dto.CarRequestResponse) []domain.CarRequest {
	ds := make([]domain.CarRequest, len(rs))
	for i, r := range rs {
		ds[i] = ToDomainCarRequest(r)
	}
	return ds
}

// ToDomainCar converts a wire listing to a domain Car.
func ToDomainCar(r dto.CarResponse) domain.Car {
	return domain.Car{
		ID:          r.ID,
		Status:      domain.CarStatus(r.Status),
		DealerID:    r.DealerID,
		Make:        r.Make,
		Model:       r.Model,
		Year:        r.Year,
		Mileage:     r.Mileage,
		Price:       r.Price,
		City:        r.City,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

// ToDomainCarSlice converts a slice of wire listings.
func ToDomainCarSlice(rs []dto.CarResponse) []domain.Car {
	ds := make([]domain.Car, len(rs))
	for i, r := range rs {
		ds[i] = ToDomainCar(r)
	}
	return ds
}
