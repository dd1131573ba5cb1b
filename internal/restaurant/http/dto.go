package http

import "github.com/nekogravitycat/dineflex-backend/internal/restaurant"

// ListRestaurantsRequest defines query parameters for listing restaurants.
type ListRestaurantsRequest struct {
	Deal  string `form:"deal"`
	Query string `form:"q"`
}

type RestaurantResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	Cuisine       string `json:"cuisine"`
	ThumbnailURL  string `json:"thumbnailUrl"`
	HasEarlyBird  bool   `json:"hasEarlyBird"`
	HasLastMinute bool   `json:"hasLastMinute"`
}

type OfferResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	AvailableTimes string `json:"availableTimes"`
}

type RestaurantDetailResponse struct {
	RestaurantResponse
	Description         string          `json:"description"`
	Images              []string        `json:"images"`
	Address             string          `json:"address"`
	Phone               string          `json:"phone"`
	OpeningHours        string          `json:"openingHours"`
	EarlyBirdOffers     []OfferResponse `json:"earlyBirdOffers"`
	LastMinuteAvailable bool            `json:"lastMinuteAvailable"`
}

func NewRestaurantResponse(r *restaurant.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:            r.ID,
		Name:          r.Name,
		Location:      r.Location,
		Cuisine:       r.Cuisine,
		ThumbnailURL:  r.ThumbnailURL,
		HasEarlyBird:  r.HasEarlyBird,
		HasLastMinute: r.HasLastMinute,
	}
}

func NewRestaurantDetailResponse(d *restaurant.Detail) RestaurantDetailResponse {
	images := d.Images
	if images == nil {
		images = []string{}
	}
	offers := make([]OfferResponse, 0, len(d.EarlyBirdOffers))
	for _, o := range d.EarlyBirdOffers {
		offers = append(offers, OfferResponse(o))
	}
	return RestaurantDetailResponse{
		RestaurantResponse:  NewRestaurantResponse(&d.Restaurant),
		Description:         d.Description,
		Images:              images,
		Address:             d.Address,
		Phone:               d.Phone,
		OpeningHours:        d.OpeningHours,
		EarlyBirdOffers:     offers,
		LastMinuteAvailable: d.LastMinuteAvailable,
	}
}

// ToRestaurant converts a decoded response back to the domain type.
func (r RestaurantResponse) ToRestaurant() *restaurant.Restaurant {
	return &restaurant.Restaurant{
		ID:            r.ID,
		Name:          r.Name,
		Location:      r.Location,
		Cuisine:       r.Cuisine,
		ThumbnailURL:  r.ThumbnailURL,
		HasEarlyBird:  r.HasEarlyBird,
		HasLastMinute: r.HasLastMinute,
	}
}

// ToDetail converts a decoded response back to the domain type.
func (r RestaurantDetailResponse) ToDetail() *restaurant.Detail {
	offers := make([]restaurant.Offer, 0, len(r.EarlyBirdOffers))
	for _, o := range r.EarlyBirdOffers {
		offers = append(offers, restaurant.Offer(o))
	}
	return &restaurant.Detail{
		Restaurant:          *r.RestaurantResponse.ToRestaurant(),
		Description:         r.Description,
		Images:              r.Images,
		Address:             r.Address,
		Phone:               r.Phone,
		OpeningHours:        r.OpeningHours,
		EarlyBirdOffers:     offers,
		LastMinuteAvailable: r.LastMinuteAvailable,
	}
}
