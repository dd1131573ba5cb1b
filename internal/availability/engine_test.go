package availability

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categories(slots []Slot) map[Category]int {
	out := make(map[Category]int)
	for _, s := range slots {
		out[s.Category]++
	}
	return out
}

func TestComputeOfferableSlots(t *testing.T) {
	tests := []struct {
		name          string
		hasEarlyBird  bool
		hasLastMinute bool
		want          map[Category]int
	}{
		{"both deals", true, true, map[Category]int{CategoryEarlyBird: 3, CategoryRegular: 3, CategoryLastMinute: 2}},
		{"early bird only", true, false, map[Category]int{CategoryEarlyBird: 3, CategoryRegular: 3}},
		{"last minute only", false, true, map[Category]int{CategoryRegular: 3, CategoryLastMinute: 2}},
		{"no deals", false, false, map[Category]int{CategoryRegular: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeOfferableSlots(tt.hasEarlyBird, tt.hasLastMinute, "2024-06-01")
			assert.Equal(t, tt.want, categories(got))

			assert.True(t, slices.IsSortedFunc(got, func(a, b Slot) int {
				if a.Time < b.Time {
					return -1
				}
				if a.Time > b.Time {
					return 1
				}
				return 0
			}), "slots must be ascending by time")

			seen := make(map[string]bool)
			for _, s := range got {
				assert.False(t, seen[s.Time], "duplicate time %s", s.Time)
				seen[s.Time] = true
				assert.True(t, ValidTime(s.Time), s.Time)
				if s.Category != CategoryLastMinute {
					assert.Empty(t, s.Discount)
				}
				assert.Empty(t, s.OfferID)
			}
		})
	}
}

func TestComputeOfferableSlots_Idempotent(t *testing.T) {
	a := ComputeOfferableSlots(true, true, "2024-06-01")
	b := ComputeOfferableSlots(true, true, "2024-06-01")
	assert.Equal(t, a, b)

	// Mutating a result must not leak into the template.
	BindOffer(a, "offer")
	c := ComputeOfferableSlots(true, true, "2024-06-01")
	assert.Equal(t, b, c)
}

func TestComputeOfferableSlots_LastMinuteDiscounts(t *testing.T) {
	got := ComputeOfferableSlots(false, true, "2024-06-01")
	var discounts []string
	for _, s := range got {
		if s.Category == CategoryLastMinute {
			discounts = append(discounts, s.Discount)
		}
	}
	assert.Equal(t, []string{"20%", "25%"}, discounts)
}

func TestFilterTemplate_Unsorted(t *testing.T) {
	got := filterTemplate([]Slot{
		{Time: "21:00", Category: CategoryLastMinute},
		{Time: "17:00", Category: CategoryEarlyBird},
		{Time: "19:00", Category: CategoryRegular},
	}, true, true)
	require.Len(t, got, 3)
	assert.Equal(t, "17:00", got[0].Time)
	assert.Equal(t, "21:00", got[2].Time)
}

func TestFilterTemplate_EmptyIsValid(t *testing.T) {
	got := filterTemplate([]Slot{{Time: "17:00", Category: CategoryEarlyBird}}, false, false)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBindOffer(t *testing.T) {
	slots := ComputeOfferableSlots(true, true, "2024-06-01")
	BindOffer(slots, "early1")
	for _, s := range slots {
		if s.Category == CategoryEarlyBird {
			assert.Equal(t, "early1", s.OfferID)
		} else {
			assert.Empty(t, s.OfferID)
		}
	}
}

func TestValidDateAndTime(t *testing.T) {
	assert.True(t, ValidDate("2024-06-01"))
	assert.False(t, ValidDate("2024-6-1"))
	assert.False(t, ValidDate("2024-02-30"))
	assert.False(t, ValidDate("tomorrow"))

	assert.True(t, ValidTime("19:00"))
	assert.False(t, ValidTime("7:00"))
	assert.False(t, ValidTime("25:00"))
	assert.False(t, ValidTime("19:00:00"))
}
