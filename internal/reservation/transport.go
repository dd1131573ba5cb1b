// Package reservation is the boundary through which consumers reach the
// restaurant catalog, availability and bookings.
package reservation

import (
	"context"

	"github.com/nekogravitycat/dineflex-backend/internal/availability"
	"github.com/nekogravitycat/dineflex-backend/internal/booking"
	"github.com/nekogravitycat/dineflex-backend/internal/restaurant"
)

// Transport performs the reservation operations. Errors are *apperror.AppError
// values, except for context cancellation which is returned as is.
type Transport interface {
	ListRestaurants(ctx context.Context, filter restaurant.Filter) ([]*restaurant.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*restaurant.Detail, error)
	GetAvailability(ctx context.Context, restaurantID, date string) (*availability.Availability, error)
	CreateBooking(ctx context.Context, req booking.Request) (*booking.Result, error)
	GetBooking(ctx context.Context, id string) (*booking.Result, error)
}
