package reservation

import (
	"context"

	"github.com/nekogravitycat/dineflex-backend/internal/availability"
	"github.com/nekogravitycat/dineflex-backend/internal/booking"
	"github.com/nekogravitycat/dineflex-backend/internal/restaurant"
)

// LocalTransport calls the services in process.
type LocalTransport struct {
	restaurants  restaurant.Service
	availability availability.Service
	bookings     booking.Service
}

func NewLocalTransport(restaurants restaurant.Service, availability availability.Service, bookings booking.Service) *LocalTransport {
	return &LocalTransport{
		restaurants:  restaurants,
		availability: availability,
		bookings:     bookings,
	}
}

func (t *LocalTransport) ListRestaurants(ctx context.Context, filter restaurant.Filter) ([]*restaurant.Restaurant, error) {
	return t.restaurants.List(ctx, filter)
}

func (t *LocalTransport) GetRestaurant(ctx context.Context, id string) (*restaurant.Detail, error) {
	return t.restaurants.GetDetail(ctx, id)
}

func (t *LocalTransport) GetAvailability(ctx context.Context, restaurantID, date string) (*availability.Availability, error) {
	return t.availability.Get(ctx, restaurantID, date)
}

func (t *LocalTransport) CreateBooking(ctx context.Context, req booking.Request) (*booking.Result, error) {
	return t.bookings.Create(ctx, req)
}

func (t *LocalTransport) GetBooking(ctx context.Context, id string) (*booking.Result, error) {
	return t.bookings.GetByID(ctx, id)
}
