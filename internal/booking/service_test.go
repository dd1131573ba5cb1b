package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/dineflex-backend/internal/availability"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/logger"
	"github.com/nekogravitycat/dineflex-backend/internal/restaurant"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	repo, err := restaurant.NewMemoryRepository([]restaurant.Restaurant{
		{ID: "R1", Name: "Test Kitchen", HasEarlyBird: true, HasLastMinute: true},
		{ID: "R2", Name: "Plain Diner"},
	}, nil)
	require.NoError(t, err)

	restaurants := restaurant.NewService(repo)
	return NewService(
		NewMemoryRepository(),
		restaurants,
		availability.NewService(restaurants),
		NewValidator(),
		logger.Discard(),
	)
}

func TestService_CreateScenario(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := validRequest()
	b, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, "Test Kitchen", b.RestaurantName)
	assert.NotEmpty(t, b.ID)
	assert.NotEmpty(t, b.ConfirmationCode)

	got, err := svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, req.RestaurantID, got.RestaurantID)
	assert.Equal(t, req.Date, got.Date)
	assert.Equal(t, req.Time, got.Time)
	assert.Equal(t, req.PartySize, got.PartySize)
	assert.Equal(t, req.CustomerName, got.CustomerName)
}

func TestService_CreateDistinct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first := validRequest()
	second := validRequest()
	second.Time = "20:30"
	second.CustomerName = "John Roe"

	a, err := svc.Create(ctx, first)
	require.NoError(t, err)
	b, err := svc.Create(ctx, second)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.ConfirmationCode, b.ConfirmationCode)
}

func TestService_CreateErrors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("invalid request", func(t *testing.T) {
		req := validRequest()
		req.PartySize = 13
		_, err := svc.Create(ctx, req)
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		assert.Equal(t, []string{"partySize"}, apperror.From(err).FieldNames())
	})

	t.Run("restaurant vanished", func(t *testing.T) {
		req := validRequest()
		req.RestaurantID = "gone"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, restaurant.ErrNotFound)
	})

	t.Run("time not offered", func(t *testing.T) {
		req := validRequest()
		req.Time = "13:15"
		_, err := svc.Create(ctx, req)
		require.Error(t, err)
		appErr := apperror.From(err)
		assert.Equal(t, apperror.KindValidation, appErr.Kind())
		require.Len(t, appErr.Fields, 1)
		assert.Equal(t, "time", appErr.Fields[0].Field)
		assert.Equal(t, apperror.FieldSlotUnavailable, appErr.Fields[0].Code)
	})

	t.Run("early bird slot at restaurant without early bird", func(t *testing.T) {
		req := validRequest()
		req.RestaurantID = "R2"
		req.Time = "17:30"
		_, err := svc.Create(ctx, req)
		assert.Equal(t, apperror.FieldSlotUnavailable, apperror.From(err).Fields[0].Code)
	})
}

func TestService_GetByIDNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByID(context.Background(), "booking-1234")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
