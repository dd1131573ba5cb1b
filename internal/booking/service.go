package booking

import (
	"context"

	"github.com/nekogravitycat/dineflex-backend/internal/availability"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/dineflex-backend/internal/pkg/logger"
	"github.com/nekogravitycat/dineflex-backend/internal/restaurant"
)

type Service interface {
	Create(ctx context.Context, req Request) (*Result, error)
	GetByID(ctx context.Context, id string) (*Result, error)
}

type service struct {
	repo         Repository
	restaurants  restaurant.Service
	availability availability.Service
	validator    *Validator
	log          *logger.Logger
}

func NewService(
	repo Repository,
	restaurants restaurant.Service,
	availability availability.Service,
	validator *Validator,
	log *logger.Logger,
) Service {
	return &service{
		repo:         repo,
		restaurants:  restaurants,
		availability: availability,
		validator:    validator,
		log:          log,
	}
}

func (s *service) Create(ctx context.Context, req Request) (*Result, error) {
	// 1. Validate the request shape
	req, err := s.validator.Validate(req)
	if err != nil {
		return nil, err
	}

	// 2. Restaurant must still exist
	rest, err := s.restaurants.GetByID(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}

	// 3. Time must be one of the offered slots
	avail, err := s.availability.Get(ctx, req.RestaurantID, req.Date)
	if err != nil {
		return nil, err
	}
	if !avail.HasTime(req.Time) {
		return nil, apperror.Validation(apperror.FieldError{
			Field:   "time",
			Code:    apperror.FieldSlotUnavailable,
			Message: "The selected time is not available",
		})
	}

	result := &Result{
		Status:         StatusConfirmed,
		RestaurantID:   rest.ID,
		RestaurantName: rest.Name,
		Date:           req.Date,
		Time:           req.Time,
		PartySize:      req.PartySize,
		CustomerName:   req.CustomerName,
	}
	if err := s.repo.Create(ctx, result); err != nil {
		return nil, err
	}

	s.log.Info("booking created",
		"booking_id", result.ID,
		"restaurant_id", result.RestaurantID,
		"date", result.Date,
		"time", result.Time,
		"party_size", result.PartySize,
	)
	return result, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Result, error) {
	return s.repo.GetByID(ctx, id)
}
