package http

import "github.com/nekogravitycat/dineflex-backend/internal/availability"

type AvailabilityRequest struct {
	Date string `form:"date"`
}

type SlotResponse struct {
	Time     string `json:"time"`
	Type     string `json:"type"`
	OfferID  string `json:"offerId,omitempty"`
	Discount string `json:"discount,omitempty"`
}

type AvailabilityResponse struct {
	RestaurantID   string         `json:"restaurantId"`
	Date           string         `json:"date"`
	AvailableSlots []SlotResponse `json:"availableSlots"`
}

func NewAvailabilityResponse(a *availability.Availability) AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(a.Slots))
	for _, s := range a.Slots {
		slots = append(slots, SlotResponse{
			Time:     s.Time,
			Type:     string(s.Category),
			OfferID:  s.OfferID,
			Discount: s.Discount,
		})
	}
	return AvailabilityResponse{
		RestaurantID:   a.RestaurantID,
		Date:           a.Date,
		AvailableSlots: slots,
	}
}

// ToAvailability converts a decoded response back to the domain type.
func (r AvailabilityResponse) ToAvailability() *availability.Availability {
	slots := make([]availability.Slot, 0, len(r.AvailableSlots))
	for _, s := range r.AvailableSlots {
		slots = append(slots, availability.Slot{
			Time:     s.Time,
			Category: availability.Category(s.Type),
			OfferID:  s.OfferID,
			Discount: s.Discount,
		})
	}
	return &availability.Availability{
		RestaurantID: r.RestaurantID,
		Date:         r.Date,
		Slots:        slots,
	}
}
