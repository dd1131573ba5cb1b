package http

import "github.com/nekogravitycat/dineflex-backend/internal/booking"

type BookingResponse struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	RestaurantID     string `json:"restaurantId"`
	RestaurantName   string `json:"restaurantName"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	PartySize        int    `json:"partySize"`
	CustomerName     string `json:"customerName"`
	ConfirmationCode string `json:"confirmationCode"`
}

func NewBookingResponse(b *booking.Result) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		Status:           string(b.Status),
		RestaurantID:     b.RestaurantID,
		RestaurantName:   b.RestaurantName,
		Date:             b.Date,
		Time:             b.Time,
		PartySize:        b.PartySize,
		CustomerName:     b.CustomerName,
		ConfirmationCode: b.ConfirmationCode,
	}
}

// ToResult converts a decoded response back to the domain type.
func (r BookingResponse) ToResult() *booking.Result {
	return &booking.Result{
		ID:               r.ID,
		Status:           booking.Status(r.Status),
		RestaurantID:     r.RestaurantID,
		RestaurantName:   r.RestaurantName,
		Date:             r.Date,
		Time:             r.Time,
		PartySize:        r.PartySize,
		CustomerName:     r.CustomerName,
		ConfirmationCode: r.ConfirmationCode,
	}
}
