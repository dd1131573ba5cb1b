package booking

import (
	"fmt"
	"net/http"

	"github.com/nekogravitycat/dineflex-backend/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.New(http.StatusNotFound, apperror.CodeBookingNotFound, "Booking not found")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

// Request is a booking as submitted by a guest. The json names are the field
// names reported in validation errors.
type Request struct {
	RestaurantID  string `json:"restaurantId" validate:"required"`
	Date          string `json:"date" validate:"required,iso_date"`
	Time          string `json:"time" validate:"required,wall_time"`
	PartySize     int    `json:"partySize" validate:"min=1,max=12"`
	CustomerName  string `json:"customerName" validate:"trimmed_min=2"`
	CustomerEmail string `json:"customerEmail" validate:"required,email,email_domain"`
	CustomerPhone string `json:"customerPhone" validate:"min=7"`
}

// Result is a stored booking. RestaurantName is a snapshot taken at booking
// time and is not updated if the restaurant changes.
type Result struct {
	ID               string
	Status           Status
	RestaurantID     string
	RestaurantName   string
	Date             string
	Time             string
	PartySize        int
	CustomerName     string
	ConfirmationCode string
}

// GuestLabel renders the party size for display, e.g. "1 guest" or "4 guests".
func (r *Result) GuestLabel() string {
	if r.PartySize == 1 {
		return "1 guest"
	}
	return fmt.Sprintf("%d guests", r.PartySize)
}
