package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const (
	idPrefix        = "booking-"
	codePrefix      = "DINE"
	maxCodeAttempts = 16
)

var errCodeSpaceExhausted = errors.New("could not allocate a unique confirmation code")

type Repository interface {
	// Create assigns the booking id and confirmation code.
	Create(ctx context.Context, r *Result) error
	GetByID(ctx context.Context, id string) (*Result, error)
}

type memoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]Result
	codes    map[string]struct{}
	newCode  func() string
}

func NewMemoryRepository() Repository {
	return newMemoryRepository(randomCode)
}

func newMemoryRepository(newCode func() string) *memoryRepository {
	return &memoryRepository{
		bookings: make(map[string]Result),
		codes:    make(map[string]struct{}),
		newCode:  newCode,
	}
}

// randomCode returns DINE followed by five digits.
func randomCode() string {
	return fmt.Sprintf("%s%05d", codePrefix, 10000+rand.IntN(90000))
}

func (r *memoryRepository) Create(ctx context.Context, b *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	code, err := r.allocateCode()
	if err != nil {
		return err
	}
	b.ID = idPrefix + uuid.NewString()
	b.ConfirmationCode = code
	r.bookings[b.ID] = *b
	return nil
}

// allocateCode must be called with mu held.
func (r *memoryRepository) allocateCode() (string, error) {
	for range maxCodeAttempts {
		code := r.newCode()
		if _, taken := r.codes[code]; !taken {
			r.codes[code] = struct{}{}
			return code, nil
		}
	}
	return "", errCodeSpaceExhausted
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, ErrNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func validID(id string) bool {
	rest, ok := strings.CutPrefix(id, idPrefix)
	if !ok {
		return false
	}
	return uuid.Validate(rest) == nil
}
