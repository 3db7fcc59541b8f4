package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
)

type UserRepository struct {
	s *Store
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

type PropertyRepository struct {
	s *Store
}

func (r *PropertyRepository) GetByID(_ context.Context, id string) (*domain.Property, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	c := *p
	return &c, nil
}

func (r *PropertyRepository) GetPrice(
	_ context.Context, propertyID string, weekday time.Weekday, shift domain.Shift,
) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	price, ok := r.s.prices[priceKey{propertyID: propertyID, weekday: weekday, shift: shift}]
	if !ok {
		return decimal.Zero, domain.ErrPricingNotFound
	}
	return price, nil
}
