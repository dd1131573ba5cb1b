package reservation_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/dineflex-backend/internal/app"
	"github.com/nekogravitycat/dineflex-backend/internal/availability"
	"github.com/nekogravitycat/dineflex-backend/internal/booking"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/dineflex-backend/internal/reservation"
	"github.com/nekogravitycat/dineflex-backend/internal/restaurant"
)

func newTestCatalog(t *testing.T) restaurant.Repository {
	t.Helper()
	repo, err := restaurant.NewMemoryRepository([]restaurant.Restaurant{
		{ID: "R1", Name: "Test Kitchen", Location: "Dublin", Cuisine: "Irish", ThumbnailURL: "https://img/r1.jpg", HasEarlyBird: true, HasLastMinute: true},
		{ID: "R2", Name: "Plain Diner", Location: "Cork", Cuisine: "American"},
	}, []restaurant.Detail{{
		Restaurant:      restaurant.Restaurant{ID: "R1"},
		Description:     "Curated",
		Images:          []string{"https://img/r1-a.jpg"},
		EarlyBirdOffers: []restaurant.Offer{{ID: "eb1", Title: "Early", AvailableTimes: "17:00-19:00"}},
	}})
	require.NoError(t, err)
	return repo
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c := app.NewContainer(app.Config{RestaurantRepo: newTestCatalog(t)})
	srv := httptest.NewServer(c.Router)
	t.Cleanup(srv.Close)
	return srv
}

func scenarioRequest() booking.Request {
	return booking.Request{
		RestaurantID:  "R1",
		Date:          "2024-06-01",
		Time:          "19:00",
		PartySize:     4,
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+353871234567",
	}
}

func TestHTTPTransport_Roundtrip(t *testing.T) {
	srv := newServer(t)
	tr := reservation.NewHTTPTransport(srv.URL+"/v1/", 5*time.Second)
	ctx := context.Background()

	list, err := tr.ListRestaurants(ctx, restaurant.Filter{Deal: restaurant.DealEarlyBird})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Test Kitchen", list[0].Name)
	assert.True(t, list[0].HasLastMinute)

	d, err := tr.GetRestaurant(ctx, "R1")
	require.NoError(t, err)
	assert.Equal(t, "Curated", d.Description)
	assert.Equal(t, "eb1", d.EarlyBirdOffers[0].ID)
	assert.True(t, d.LastMinuteAvailable)

	a, err := tr.GetAvailability(ctx, "R1", "2024-06-01")
	require.NoError(t, err)
	require.Len(t, a.Slots, 8)
	assert.Equal(t, availability.Slot{Time: "17:30", Category: availability.CategoryEarlyBird, OfferID: "eb1"}, a.Slots[0])
	assert.Equal(t, availability.Slot{Time: "20:30", Category: availability.CategoryLastMinute, Discount: "20%"}, a.Slots[6])

	b, err := tr.CreateBooking(ctx, scenarioRequest())
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, b.Status)
	assert.Equal(t, "Test Kitchen", b.RestaurantName)

	got, err := tr.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestHTTPTransport_DecodesErrors(t *testing.T) {
	srv := newServer(t)
	tr := reservation.NewHTTPTransport(srv.URL+"/v1", 5*time.Second)
	ctx := context.Background()

	t.Run("restaurant not found", func(t *testing.T) {
		d, err := tr.GetRestaurant(ctx, "nonexistent-id")
		assert.Nil(t, d)
		assert.ErrorIs(t, err, restaurant.ErrNotFound)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})

	t.Run("booking not found", func(t *testing.T) {
		_, err := tr.GetBooking(ctx, "booking-1")
		assert.ErrorIs(t, err, booking.ErrNotFound)
	})

	t.Run("validation fields survive the wire", func(t *testing.T) {
		req := scenarioRequest()
		req.PartySize = 13
		req.CustomerEmail = "not-an-email"
		_, err := tr.CreateBooking(ctx, req)
		appErr := apperror.From(err)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.Status)
		assert.Equal(t, apperror.KindValidation, appErr.Kind())
		assert.ElementsMatch(t, []string{"partySize", "customerEmail"}, appErr.FieldNames())
	})

	t.Run("slot unavailable", func(t *testing.T) {
		req := scenarioRequest()
		req.RestaurantID = "R2"
		req.Time = "21:00"
		_, err := tr.CreateBooking(ctx, req)
		require.Error(t, err)
		assert.Equal(t, apperror.FieldSlotUnavailable, apperror.From(err).Fields[0].Code)
	})
}

func TestHTTPTransport_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := reservation.NewHTTPTransport(srv.URL, time.Second).ListRestaurants(context.Background(), restaurant.Filter{})
	appErr := apperror.From(err)
	assert.Equal(t, apperror.CodeServer, appErr.Code)
	assert.True(t, appErr.Retryable())
}

func TestHTTPTransport_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	_, err := reservation.NewHTTPTransport(srv.URL, time.Second).GetBooking(context.Background(), "x")
	assert.Equal(t, apperror.KindServer, apperror.KindOf(err))
}

func TestHTTPTransport_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := reservation.NewHTTPTransport(url, time.Second).ListRestaurants(context.Background(), restaurant.Filter{})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNetwork, apperror.KindOf(err))
}

func TestHTTPTransport_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := reservation.NewHTTPTransport(srv.URL, 50*time.Millisecond).GetRestaurant(context.Background(), "R1")
	assert.Equal(t, apperror.KindNetwork, apperror.KindOf(err))
}

func TestHTTPTransport_CallerCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := reservation.NewHTTPTransport(srv.URL, 5*time.Second).GetRestaurant(ctx, "R1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
