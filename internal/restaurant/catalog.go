package restaurant

// FixtureRestaurants returns the demo catalog served when no other source is configured.
func FixtureRestaurants() []Restaurant {
	return []Restaurant{
		{
			ID:            "1",
			Name:          "La Trattoria",
			ThumbnailURL:  "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800&auto=format&fit=crop",
			Location:      "Dublin",
			Cuisine:       "Italian",
			HasEarlyBird:  true,
			HasLastMinute: true,
		},
		{
			ID:            "2",
			Name:          "The Golden Dragon",
			ThumbnailURL:  "https://images.unsplash.com/photo-1525648199074-cee30ba79a4a?w=800&auto=format&fit=crop",
			Location:      "Cork",
			Cuisine:       "Chinese",
			HasEarlyBird:  true,
			HasLastMinute: false,
		},
		{
			ID:            "3",
			Name:          "Seafood Harbor",
			ThumbnailURL:  "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?w=800&auto=format&fit=crop",
			Location:      "Galway",
			Cuisine:       "Seafood",
			HasEarlyBird:  false,
			HasLastMinute: true,
		},
		{
			ID:            "4",
			Name:          "Bistro Parisienne",
			ThumbnailURL:  "https://images.unsplash.com/photo-1550966871-3ed3cdb5ed0c?w=800&auto=format&fit=crop",
			Location:      "Dublin",
			Cuisine:       "French",
			HasEarlyBird:  true,
			HasLastMinute: true,
		},
		{
			ID:            "5",
			Name:          "The Grill House",
			ThumbnailURL:  "https://images.unsplash.com/photo-1514933651103-005eec06c04b?w=800&auto=format&fit=crop",
			Location:      "Belfast",
			Cuisine:       "Steakhouse",
			HasEarlyBird:  true,
			HasLastMinute: false,
		},
	}
}

// FixtureDetails returns the curated detail records. Restaurants without one
// get a generated fallback from the service.
func FixtureDetails() []Detail {
	rs := FixtureRestaurants()
	return []Detail{
		{
			Restaurant:  rs[0],
			Description: "Authentic Italian cuisine in the heart of Dublin. Our chefs prepare traditional dishes using the finest imported ingredients.",
			Images: []string{
				"https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1600891964599-f61ba0e24092?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1595295333158-4742f28fbd85?w=800&auto=format&fit=crop",
			},
			Address:      "42 Grafton Street, Dublin",
			Phone:        "+353 1 234 5678",
			OpeningHours: "Mon-Fri: 12:00-22:00, Sat-Sun: 13:00-23:00",
			EarlyBirdOffers: []Offer{
				{
					ID:             "early1",
					Title:          "Early Dinner Special",
					Description:    "3 courses for €25",
					AvailableTimes: "17:00-19:00",
				},
			},
			LastMinuteAvailable: true,
		},
		{
			Restaurant:  rs[1],
			Description: "Award-winning Chinese restaurant offering classic dishes alongside innovative specialties. Family-owned for three generations.",
			Images: []string{
				"https://images.unsplash.com/photo-1525648199074-cee30ba79a4a?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1563245372-f21724e3856d?w=800&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1551632436-cbf8dd35adfa?w=800&auto=format&fit=crop",
			},
			Address:      "15 Patrick Street, Cork",
			Phone:        "+353 21 987 6543",
			OpeningHours: "Mon-Sun: 12:00-23:00",
			EarlyBirdOffers: []Offer{
				{
					ID:             "early2",
					Title:          "Early Week Special",
					Description:    "Banquet menu for two €50",
					AvailableTimes: "17:30-19:30, Monday-Thursday",
				},
			},
			LastMinuteAvailable: false,
		},
	}
}
