package availability

import (
	"time"

	"github.com/nekogravitycat/dineflex-backend/internal/pkg/apperror"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrInvalidDate = apperror.Validation(apperror.FieldError{
		Field:   "date",
		Code:    apperror.FieldInvalidFormat,
		Message: "date must be formatted as YYYY-MM-DD",
	})
	ErrMissingDate = apperror.Validation(apperror.FieldError{
		Field:   "date",
		Code:    apperror.FieldRequired,
		Message: "date is required",
	})
)

// Category classifies a slot by the kind of deal attached to it.
type Category string

const (
	CategoryEarlyBird  Category = "earlyBird"
	CategoryRegular    Category = "regular"
	CategoryLastMinute Category = "lastMinute"
)

// Slot is one bookable wall-clock time.
type Slot struct {
	Time     string // "HH:MM", restaurant-local
	Category Category
	OfferID  string // Only for CategoryEarlyBird, empty when no offer is bound
	Discount string // Only for CategoryLastMinute, e.g. "20%"
}

// Availability lists the slots offered by a restaurant on one date.
type Availability struct {
	RestaurantID string
	Date         string
	Slots        []Slot
}

// HasTime reports whether t is one of the offered slot times.
func (a *Availability) HasTime(t string) bool {
	for _, s := range a.Slots {
		if s.Time == t {
			return true
		}
	}
	return false
}

// ValidDate reports whether s is a calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

// ValidTime reports whether s is a 24-hour HH:MM wall-clock time.
func ValidTime(s string) bool {
	t, err := time.Parse(TimeLayout, s)
	return err == nil && t.Format(TimeLayout) == s
}
