package restaurant

import (
	"context"
	"fmt"
	"slices"
)

type Repository interface {
	List(ctx context.Context) ([]*Restaurant, error)
	GetByID(ctx context.Context, id string) (*Restaurant, error)
	// GetDetail returns the curated detail record, or errNoDetail when the
	// restaurant exists without one.
	GetDetail(ctx context.Context, id string) (*Detail, error)
}

// memoryRepository serves an immutable catalog snapshot. Every read returns
// fresh copies so callers cannot mutate the snapshot.
type memoryRepository struct {
	restaurants []Restaurant
	index       map[string]int
	details     map[string]Detail
}

// NewMemoryRepository builds a repository over the given snapshot.
// Restaurant ids must be unique; details for unknown ids are ignored.
func NewMemoryRepository(restaurants []Restaurant, details []Detail) (Repository, error) {
	r := &memoryRepository{
		restaurants: slices.Clone(restaurants),
		index:       make(map[string]int, len(restaurants)),
		details:     make(map[string]Detail, len(details)),
	}
	for i, rest := range r.restaurants {
		if _, ok := r.index[rest.ID]; ok {
			return nil, fmt.Errorf("%w: %q", errDuplicateID, rest.ID)
		}
		r.index[rest.ID] = i
	}
	for _, d := range details {
		if _, ok := r.index[d.ID]; ok {
			r.details[d.ID] = d
		}
	}
	return r, nil
}

// NewFixtureRepository serves the demo catalog.
func NewFixtureRepository() Repository {
	repo, err := NewMemoryRepository(FixtureRestaurants(), FixtureDetails())
	if err != nil {
		panic(err)
	}
	return repo
}

func (r *memoryRepository) List(ctx context.Context) ([]*Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]*Restaurant, 0, len(r.restaurants))
	for _, rest := range r.restaurants {
		out = append(out, &rest)
	}
	return out, nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	i, ok := r.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	rest := r.restaurants[i]
	return &rest, nil
}

func (r *memoryRepository) GetDetail(ctx context.Context, id string) (*Detail, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	d, ok := r.details[id]
	if !ok {
		return nil, errNoDetail
	}
	d.Images = slices.Clone(d.Images)
	d.EarlyBirdOffers = slices.Clone(d.EarlyBirdOffers)
	return &d, nil
}
