// Package stats derives summary counts from full, unfiltered collections.
// Feeding it a filtered view breaks the totals invariant; callers must pass
// the raw snapshot. All functions are single-pass and safe on empty input.
package stats

import (
	"math"
	"time"

	"github.com/arale275/autix-sub001/internal/core/domain"
	"github.com/arale275/autix-sub001/internal/core/lifecycle"
)

// InquiryStats summarizes a dealer's inquiry collection.
type InquiryStats struct {
	Total        int `json:"total"`
	New          int `json:"new"`
	Responded    int `json:"responded"`
	Closed       int `json:"closed"`
	Today        int `json:"today"`
	ThisWeek     int `json:"thisWeek"`
	Urgent       int `json:"urgent"`
	ResponseRate int `json:"responseRate"` // percent, rounded to nearest
}

// RequestStats summarizes a buyer's car request collection.
type RequestStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Closed   int `json:"closed"`
	Today    int `json:"today"`
	ThisWeek int `json:"thisWeek"`
}

// CarStats summarizes a dealer's inventory.
type CarStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Hidden   int `json:"hidden"`
	Sold     int `json:"sold"`
	Today    int `json:"today"`
	ThisWeek int `json:"thisWeek"`
}

// Inquiries aggregates the collection at the reference time now.
func Inquiries(list []domain.Inquiry, now time.Time) InquiryStats {
	s := InquiryStats{Total: len(list)}
	midnight := localMidnight(now)
	weekAgo := now.Add(-7 * 24 * time.Hour)
	for _, in := range list {
		switch in.Status {
		case domain.InquiryNew:
			s.New++
		case domain.InquiryResponded:
			s.Responded++
		case domain.InquiryClosed:
			s.Closed++
		}
		bump(&s.Today, &s.ThisWeek, in.CreatedAt, midnight, weekAgo, now)
		if lifecycle.InquiryUrgency(in, now) == lifecycle.UrgencyUrgent {
			s.Urgent++
		}
	}
	if s.Total > 0 {
		s.ResponseRate = int(math.Round(float64(s.Responded) / float64(s.Total) * 100))
	}
	return s
}

// Requests aggregates the collection at the reference time now.
func Requests(list []domain.CarRequest, now time.Time) RequestStats {
	s := RequestStats{Total: len(list)}
	midnight := localMidnight(now)
	weekAgo := now.Add(-7 * 24 * time.Hour)
	for _, r := range list {
		switch r.Status {
		case domain.RequestActive:
			s.Active++
		case domain.RequestClosed:
			s.Closed++
		}
		bump(&s.Today, &s.ThisWeek, r.CreatedAt, midnight, weekAgo, now)
	}
	return s
}

// Cars aggregates the collection at the reference time now.
func Cars(list []domain.Car, now time.Time) CarStats {
	s := CarStats{Total: len(list)}
	midnight := localMidnight(now)
	weekAgo := now.Add(-7 * 24 * time.Hour)
	for _, c := range list {
		switch c.Status {
		case domain.CarActive:
			s.Active++
		case domain.CarHidden:
			s.Hidden++
		case domain.CarSold:
			s.Sold++
		}
		bump(&s.Today, &s.ThisWeek, c.CreatedAt, midnight, weekAgo, now)
	}
	return s
}

func localMidnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

func bump(today, thisWeek *int, createdAt, midnight, weekAgo, now time.Time) {
	if createdAt.After(now) {
		return
	}
	if !createdAt.Before(midnight) {
		*today++
	}
	if !createdAt.Before(weekAgo) {
		*thisWeek++
	}
}
