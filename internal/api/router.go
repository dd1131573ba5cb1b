package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/dineflex-backend/internal/availability"
	availHttp "github.com/nekogravitycat/dineflex-backend/internal/availability/http"
	"github.com/nekogravitycat/dineflex-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/dineflex-backend/internal/booking/http"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/logger"
	"github.com/nekogravitycat/dineflex-backend/internal/restaurant"
	restHttp "github.com/nekogravitycat/dineflex-backend/internal/restaurant/http"
)

// Config holds the dependencies for the router.
type Config struct {
	IsProduction bool
	ProdOrigins  []string
	Logger       *logger.Logger

	RestaurantService   restaurant.Service
	AvailabilityService availability.Service
	BookingService      booking.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - RequestLogger: Logs request information through the app logger.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	config := cors.DefaultConfig()
	if cfg.IsProduction && len(cfg.ProdOrigins) > 0 {
		config.AllowOrigins = cfg.ProdOrigins
	} else {
		config.AllowOrigins = []string{
			"http://localhost:5173", // Vite dev server
			"http://localhost:8081",
		}
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(config))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	restHandler := restHttp.NewHandler(cfg.RestaurantService)
	availHandler := availHttp.NewHandler(cfg.AvailabilityService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		restHttp.RegisterRoutes(v1, restHandler)
		availHttp.RegisterRoutes(v1, availHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
	}

	return r
}
