package reservation

import (
	"context"
	"strconv"
	"strings"

	"github.com/nekogravitycat/dineflex-backend/internal/availability"
	"github.com/nekogravitycat/dineflex-backend/internal/booking"
	"github.com/nekogravitycat/dineflex-backend/internal/lifecycle"
	"github.com/nekogravitycat/dineflex-backend/internal/restaurant"
)

// AvailabilityQuery identifies one availability lookup.
type AvailabilityQuery struct {
	RestaurantID string
	Date         string
}

// Client exposes each Transport operation through its own lifecycle
// controller. Presentation code subscribes to the controllers and calls the
// methods.
type Client struct {
	Restaurants  *lifecycle.Controller[restaurant.Filter, []*restaurant.Restaurant]
	Detail       *lifecycle.Controller[string, *restaurant.Detail]
	Availability *lifecycle.Controller[AvailabilityQuery, *availability.Availability]
	Submit       *lifecycle.Controller[booking.Request, *booking.Result]
	Lookup       *lifecycle.Controller[string, *booking.Result]
}

// NewClient wraps t. Booking requests are checked with v before they are
// sent, so invalid input never reaches t.
func NewClient(t Transport, v *booking.Validator) *Client {
	return &Client{
		Restaurants: lifecycle.New(t.ListRestaurants, func(f restaurant.Filter) string {
			return joinKey(string(f.Deal), strings.ToLower(strings.TrimSpace(f.Query)))
		}),
		Detail: lifecycle.New(t.GetRestaurant, identity),
		Availability: lifecycle.New(func(ctx context.Context, q AvailabilityQuery) (*availability.Availability, error) {
			return t.GetAvailability(ctx, q.RestaurantID, q.Date)
		}, func(q AvailabilityQuery) string {
			return joinKey(q.RestaurantID, q.Date)
		}),
		Submit: lifecycle.New(func(ctx context.Context, req booking.Request) (*booking.Result, error) {
			req, err := v.Validate(req)
			if err != nil {
				return nil, err
			}
			return t.CreateBooking(ctx, req)
		}, bookingKey),
		Lookup: lifecycle.New(t.GetBooking, identity),
	}
}

func (c *Client) ListRestaurants(ctx context.Context, filter restaurant.Filter) ([]*restaurant.Restaurant, error) {
	return c.Restaurants.Trigger(ctx, filter)
}

func (c *Client) GetRestaurant(ctx context.Context, id string) (*restaurant.Detail, error) {
	return c.Detail.Trigger(ctx, id)
}

func (c *Client) GetAvailability(ctx context.Context, restaurantID, date string) (*availability.Availability, error) {
	return c.Availability.Trigger(ctx, AvailabilityQuery{RestaurantID: restaurantID, Date: date})
}

func (c *Client) CreateBooking(ctx context.Context, req booking.Request) (*booking.Result, error) {
	return c.Submit.Trigger(ctx, req)
}

func (c *Client) GetBooking(ctx context.Context, id string) (*booking.Result, error) {
	return c.Lookup.Trigger(ctx, id)
}

// Close discards every pending result.
func (c *Client) Close() {
	c.Restaurants.Close()
	c.Detail.Close()
	c.Availability.Close()
	c.Submit.Close()
	c.Lookup.Close()
}

func identity(s string) string { return s }

func joinKey(parts ...string) string {
	return strings.Join(parts, "\x1f")
}

func bookingKey(r booking.Request) string {
	return joinKey(
		r.RestaurantID,
		r.Date,
		r.Time,
		strconv.Itoa(r.PartySize),
		r.CustomerName,
		r.CustomerEmail,
		r.CustomerPhone,
	)
}
