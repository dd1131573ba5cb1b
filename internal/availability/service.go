package availability

import (
	"context"

	"github.com/nekogravitycat/dineflex-backend/internal/restaurant"
)

type Service interface {
	// Get computes the slots offered by a restaurant on date. Dates in the
	// past are not rejected; callers only offer selectable dates.
	Get(ctx context.Context, restaurantID, date string) (*Availability, error)
}

type service struct {
	restaurants restaurant.Service
}

func NewService(restaurants restaurant.Service) Service {
	return &service{restaurants: restaurants}
}

func (s *service) Get(ctx context.Context, restaurantID, date string) (*Availability, error) {
	if date == "" {
		return nil, ErrMissingDate
	}
	if !ValidDate(date) {
		return nil, ErrInvalidDate
	}

	d, err := s.restaurants.GetDetail(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	slots := ComputeOfferableSlots(d.HasEarlyBird, d.HasLastMinute, date)
	if offer, ok := d.FirstOffer(); ok {
		BindOffer(slots, offer.ID)
	}

	return &Availability{
		RestaurantID: d.ID,
		Date:         date,
		Slots:        slots,
	}, nil
}
