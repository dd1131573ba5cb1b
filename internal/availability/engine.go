package availability

import (
	"slices"
	"strings"
)

// Template is the full-day schedule every restaurant's slots are cut from.
var Template = []Slot{
	{Time: "17:30", Category: CategoryEarlyBird},
	{Time: "18:00", Category: CategoryEarlyBird},
	{Time: "18:30", Category: CategoryEarlyBird},
	{Time: "19:00", Category: CategoryRegular},
	{Time: "19:30", Category: CategoryRegular},
	{Time: "20:00", Category: CategoryRegular},
	{Time: "20:30", Category: CategoryLastMinute, Discount: "20%"},
	{Time: "21:00", Category: CategoryLastMinute, Discount: "25%"},
}

// ComputeOfferableSlots filters the template by the restaurant's deal flags.
// Regular slots are always kept. The result is sorted by time and may be empty.
// date is accepted for callers keying by (restaurant, date); the template does
// not vary by day.
func ComputeOfferableSlots(hasEarlyBird, hasLastMinute bool, date string) []Slot {
	return filterTemplate(Template, hasEarlyBird, hasLastMinute)
}

func filterTemplate(template []Slot, hasEarlyBird, hasLastMinute bool) []Slot {
	out := make([]Slot, 0, len(template))
	for _, s := range template {
		switch s.Category {
		case CategoryEarlyBird:
			if !hasEarlyBird {
				continue
			}
		case CategoryLastMinute:
			if !hasLastMinute {
				continue
			}
		}
		out = append(out, s)
	}
	// HH:MM sorts lexically.
	slices.SortStableFunc(out, func(a, b Slot) int {
		return strings.Compare(a.Time, b.Time)
	})
	return out
}

// BindOffer sets offerID on every early-bird slot.
func BindOffer(slots []Slot, offerID string) {
	for i := range slots {
		if slots[i].Category == CategoryEarlyBird {
			slots[i].OfferID = offerID
		}
	}
}
