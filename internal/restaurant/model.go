package restaurant

import (
	"errors"
	"net/http"
	"strings"

	"github.com/nekogravitycat/dineflex-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, apperror.CodeRestaurantNotFound, "Restaurant not found")
	ErrInvalidDeal = apperror.Validation(apperror.FieldError{
		Field:   "deal",
		Code:    apperror.FieldInvalidFormat,
		Message: "deal must be one of all, earlyBird, lastMinute",
	})

	errNoDetail    = errors.New("no curated detail record")
	errDuplicateID = errors.New("duplicate restaurant id")
)

// Restaurant is the catalog summary shown in listings.
type Restaurant struct {
	ID            string
	Name          string
	Location      string
	Cuisine       string
	ThumbnailURL  string
	HasEarlyBird  bool
	HasLastMinute bool
}

// Offer is an early-bird deal a restaurant runs.
type Offer struct {
	ID             string
	Title          string
	Description    string
	AvailableTimes string // Free text, e.g. "17:00-19:00"
}

// Detail extends Restaurant with the fields shown on the restaurant page.
type Detail struct {
	Restaurant
	Description         string
	Images              []string
	Address             string
	Phone               string
	OpeningHours        string // Human readable, never parsed
	EarlyBirdOffers     []Offer
	LastMinuteAvailable bool
}

// Deal selects restaurants by the kind of discount they offer.
type Deal string

const (
	DealAll        Deal = "all"
	DealEarlyBird  Deal = "earlyBird"
	DealLastMinute Deal = "lastMinute"
)

// ParseDeal accepts the empty string as DealAll.
func ParseDeal(s string) (Deal, error) {
	switch Deal(s) {
	case "", DealAll:
		return DealAll, nil
	case DealEarlyBird, DealLastMinute:
		return Deal(s), nil
	default:
		return "", ErrInvalidDeal
	}
}

// Filter defines parameters for listing restaurants.
type Filter struct {
	Deal  Deal
	Query string // Case-insensitive match on name, cuisine or location
}

// Matches reports whether r passes the filter.
func (f Filter) Matches(r Restaurant) bool {
	switch f.Deal {
	case DealEarlyBird:
		if !r.HasEarlyBird {
			return false
		}
	case DealLastMinute:
		if !r.HasLastMinute {
			return false
		}
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Cuisine), q) ||
		strings.Contains(strings.ToLower(r.Location), q)
}
