package restaurant

import (
	"context"
	"errors"
	"fmt"
)

const fallbackDescription = "Experience fine dining at its best with exceptional food and service."

type Service interface {
	List(ctx context.Context, filter Filter) ([]*Restaurant, error)
	GetByID(ctx context.Context, id string) (*Restaurant, error)
	GetDetail(ctx context.Context, id string) (*Detail, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Restaurant, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Restaurant, 0, len(all))
	for _, r := range all {
		if filter.Matches(*r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}

// GetDetail returns the curated record for id, or a detail generated from the
// summary when none exists. The result always agrees with the summary flags.
func (s *service) GetDetail(ctx context.Context, id string) (*Detail, error) {
	d, err := s.repo.GetDetail(ctx, id)
	switch {
	case errors.Is(err, errNoDetail):
		r, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return fallbackDetail(*r), nil
	case err != nil:
		return nil, err
	}

	// The summary is the source of truth for capability flags.
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load summary for detail %q: %w", id, err)
	}
	d.Restaurant = *r
	normalize(d)
	return d, nil
}

func fallbackDetail(r Restaurant) *Detail {
	d := &Detail{
		Restaurant:  r,
		Description: fallbackDescription,
	}
	if r.ThumbnailURL != "" {
		d.Images = []string{r.ThumbnailURL}
	}
	normalize(d)
	return d
}

func normalize(d *Detail) {
	if !d.HasEarlyBird || d.EarlyBirdOffers == nil {
		d.EarlyBirdOffers = []Offer{}
	}
	if len(d.Images) == 0 && d.ThumbnailURL != "" {
		d.Images = []string{d.ThumbnailURL}
	}
	d.LastMinuteAvailable = d.HasLastMinute
}

// FirstOffer returns the offer early-bird slots should reference, if any.
func (d *Detail) FirstOffer() (Offer, bool) {
	if !d.HasEarlyBird || len(d.EarlyBirdOffers) == 0 {
		return Offer{}, false
	}
	return d.EarlyBirdOffers[0], true
}
