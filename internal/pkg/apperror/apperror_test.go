package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	tests := []struct {
		code string
		want Kind
	}{
		{CodeRestaurantNotFound, KindNotFound},
		{CodeBookingNotFound, KindNotFound},
		{CodeNotFound, KindNotFound},
		{CodeValidation, KindValidation},
		{CodeNetwork, KindNetwork},
		{CodeServer, KindServer},
		{"SOMETHING_ELSE", KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, New(http.StatusTeapot, tt.code, "x").Kind())
		})
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := New(http.StatusNotFound, CodeBookingNotFound, "booking not found")
	decoded := FromBody(http.StatusNotFound, Body{Code: CodeBookingNotFound, Message: "Booking not found"})

	assert.ErrorIs(t, decoded, sentinel)
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", decoded), sentinel)
	assert.NotErrorIs(t, New(http.StatusNotFound, CodeRestaurantNotFound, "x"), sentinel)
}

func TestFrom(t *testing.T) {
	assert.Nil(t, From(nil))

	plain := errors.New("boom")
	got := From(plain)
	assert.Equal(t, CodeUnknown, got.Code)
	assert.ErrorIs(t, got, plain)

	v := Validation(FieldError{Field: "partySize", Code: FieldOutOfRange, Message: "too many"})
	assert.Same(t, v, From(fmt.Errorf("ctx: %w", v)))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(nil))
	assert.Equal(t, KindUnknown, KindOf(errors.New("x")))
	assert.Equal(t, KindNetwork, KindOf(Network(errors.New("dial tcp: refused"))))
	assert.True(t, Network(errors.New("x")).Retryable())
	assert.False(t, Validation().Retryable())
}

func TestBodyRoundTripKeepsFields(t *testing.T) {
	orig := Validation(
		FieldError{Field: "customerEmail", Code: FieldInvalidFormat, Message: "Invalid email address"},
		FieldError{Field: "partySize", Code: FieldOutOfRange, Message: "Party size cannot exceed 12"},
	)

	back := FromBody(orig.Status, orig.Body())

	require.Len(t, back.Fields, 2)
	assert.Equal(t, orig.Fields, back.Fields)
	assert.Equal(t, []string{"customerEmail", "partySize"}, back.FieldNames())
	assert.Equal(t, KindValidation, back.Kind())
}

func TestFromBodyFallsBackToStatus(t *testing.T) {
	assert.Equal(t, CodeServer, FromBody(http.StatusBadGateway, Body{}).Code)
	assert.Equal(t, CodeNotFound, FromBody(http.StatusNotFound, Body{}).Code)
	assert.Equal(t, "Not Found", FromBody(http.StatusNotFound, Body{}).Message)
	assert.Nil(t, New(http.StatusNotFound, CodeNotFound, "x").Body().Details)
}
