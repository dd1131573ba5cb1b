package reservation

import (
	"context"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/nekogravitycat/dineflex-backend/internal/availability"
	"github.com/nekogravitycat/dineflex-backend/internal/booking"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/logger"
	"github.com/nekogravitycat/dineflex-backend/internal/restaurant"
)

// SimulationConfig controls latency and failure injection.
type SimulationConfig struct {
	Latency     time.Duration
	FailureRate float64        // Probability in [0,1] that a call fails with SERVER_ERROR
	Rand        func() float64 // Defaults to math/rand/v2.Float64
	Logger      *logger.Logger // Optional
}

type simulatedTransport struct {
	next Transport
	cfg  SimulationConfig
}

// Simulate wraps next so every call waits for cfg.Latency and may fail.
// Injected failures never reach next.
func Simulate(next Transport, cfg SimulationConfig) Transport {
	if cfg.Rand == nil {
		cfg.Rand = rand.Float64
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}
	return &simulatedTransport{next: next, cfg: cfg}
}

func (s *simulatedTransport) before(ctx context.Context, op string) error {
	if s.cfg.Latency > 0 {
		timer := time.NewTimer(s.cfg.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	if s.cfg.FailureRate > 0 && s.cfg.Rand() < s.cfg.FailureRate {
		s.cfg.Logger.Warn("injected failure", "operation", op)
		return apperror.New(http.StatusServiceUnavailable, apperror.CodeServer, "The service is temporarily unavailable")
	}
	return nil
}

func (s *simulatedTransport) ListRestaurants(ctx context.Context, filter restaurant.Filter) ([]*restaurant.Restaurant, error) {
	if err := s.before(ctx, "listRestaurants"); err != nil {
		return nil, err
	}
	return s.next.ListRestaurants(ctx, filter)
}

func (s *simulatedTransport) GetRestaurant(ctx context.Context, id string) (*restaurant.Detail, error) {
	if err := s.before(ctx, "getRestaurant"); err != nil {
		return nil, err
	}
	return s.next.GetRestaurant(ctx, id)
}

func (s *simulatedTransport) GetAvailability(ctx context.Context, restaurantID, date string) (*availability.Availability, error) {
	if err := s.before(ctx, "getAvailability"); err != nil {
		return nil, err
	}
	return s.next.GetAvailability(ctx, restaurantID, date)
}

func (s *simulatedTransport) CreateBooking(ctx context.Context, req booking.Request) (*booking.Result, error) {
	if err := s.before(ctx, "createBooking"); err != nil {
		return nil, err
	}
	return s.next.CreateBooking(ctx, req)
}

func (s *simulatedTransport) GetBooking(ctx context.Context, id string) (*booking.Result, error) {
	if err := s.before(ctx, "getBooking"); err != nil {
		return nil, err
	}
	return s.next.GetBooking(ctx, id)
}
