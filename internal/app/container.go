package app

import (
	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/dineflex-backend/internal/api"
	"github.com/nekogravitycat/dineflex-backend/internal/availability"
	"github.com/nekogravitycat/dineflex-backend/internal/booking"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/logger"
	"github.com/nekogravitycat/dineflex-backend/internal/restaurant"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  []string
	Logger       *logger.Logger

	// RestaurantRepo defaults to the fixture catalog.
	RestaurantRepo restaurant.Repository
	// BookingRepo defaults to an empty in-memory store.
	BookingRepo booking.Repository
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine

	Restaurants  restaurant.Service
	Availability availability.Service
	Bookings     booking.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}
	if cfg.RestaurantRepo == nil {
		cfg.RestaurantRepo = restaurant.NewFixtureRepository()
	}
	if cfg.BookingRepo == nil {
		cfg.BookingRepo = booking.NewMemoryRepository()
	}

	// Restaurant Module
	restService := restaurant.NewService(cfg.RestaurantRepo)

	// Availability Module
	availService := availability.NewService(restService)

	// Booking Module
	bookingService := booking.NewService(
		cfg.BookingRepo,
		restService,
		availService,
		booking.NewValidator(),
		cfg.Logger.With("module", "booking"),
	)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		Logger:              cfg.Logger.With("module", "http"),
		RestaurantService:   restService,
		AvailabilityService: availService,
		BookingService:      bookingService,
	})

	return &Container{
		Router:       router,
		Restaurants:  restService,
		Availability: availService,
		Bookings:     bookingService,
	}
}
