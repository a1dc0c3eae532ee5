package lifecycle

import (
	"time"

	"github.com/arale275/autix-sub001/internal/core/domain"
)

// TransitionInquiry returns a copy of in with the target status applied.
// Transitioning to the current status is idempotent and returns the input
// unchanged. Moving to responded stamps RespondedAt with now.
func TransitionInquiry(in domain.Inquiry, target domain.InquiryStatus, now time.Time) (domain.Inquiry, error) {
	if err := inquiryRules.Validate(in.Status, target); err != nil {
		return domain.Inquiry{}, err
	}
	if in.Status == target {
		return in, nil
	}
	out := in
	out.Status = target
	if target == domain.InquiryResponded && out.RespondedAt == nil {
		t := now
		out.RespondedAt = &t
	}
	return out, nil
}

// TransitionRequest returns a copy of req with the target status applied.
func TransitionRequest(req domain.CarRequest, target domain.RequestStatus) (domain.CarRequest, error) {
	if err := requestRules.Validate(req.Status, target); err != nil {
		return domain.CarRequest{}, err
	}
	if req.Status == target {
		return req, nil
	}
	out := req
	out.Status = target
	return out, nil
}

// TransitionCar returns a copy of car with the target status applied.
func TransitionCar(car domain.Car, target domain.CarStatus) (domain.Car, error) {
	if err := carRules.Validate(car.Status, target); err != nil {
		return domain.Car{}, err
	}
	if car.Status == target {
		return car, nil
	}
	out := car
	out.Status = target
	return out, nil
}
