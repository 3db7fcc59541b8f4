package memory

import (
	"context"
	"sort"
	"time"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
)

type BookingRepository struct {
	s *Store
}

func (r *BookingRepository) TryCreate(_ context.Context, b *domain.Booking) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[b.UserID]; !ok {
		return domain.ErrUserNotFound
	}
	if _, ok := s.properties[b.PropertyID]; !ok {
		return domain.ErrPropertyNotFound
	}
	if s.slotTaken(b.Slot()) {
		return domain.ErrSlotTaken
	}
	for _, other := range s.bookings {
		if b.Code != "" && other.Code == b.Code {
			return domain.ErrBookingCodeTaken
		}
	}

	c := cloneBooking(b)
	c.BookingDate = domain.DateOnly(c.BookingDate)
	s.bookings[c.ID] = c
	return nil
}

func (r *BookingRepository) Transition(_ context.Context, t domain.Transition) (*domain.Booking, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[t.BookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if !t.Allows(b.Status) {
		return nil, &domain.StatusError{BookingID: b.ID, Current: b.Status, Err: domain.ErrStaleStatus}
	}

	now := s.tick(b.UpdatedAt)
	b.Status = t.To
	b.UpdatedAt = now
	if t.To == domain.BookingStatusPending {
		b.PendingSince = now
	}
	if t.Reason != "" {
		b.Reason = t.Reason
	}
	if t.VerifiedBy != "" {
		b.VerifiedBy = t.VerifiedBy
	}
	if t.RejectedBy != "" {
		b.RejectedBy = t.RejectedBy
	}
	if t.Notes != "" {
		b.Notes = t.Notes
	}
	if t.Claim != nil {
		b.Claim = cloneBooking(&domain.Booking{Claim: t.Claim}).Claim
	}

	return cloneBooking(b), nil
}

func (r *BookingRepository) FindPending(
	_ context.Context, pendingBefore time.Time, after *domain.PendingCursor, limit int,
) ([]*domain.Booking, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*domain.Booking
	for _, b := range s.bookings {
		if b.Status == domain.BookingStatusPending && b.PendingSince.Before(pendingBefore) && after.After(b) {
			res = append(res, cloneBooking(b))
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].PendingSince.Equal(res[j].PendingSince) {
			return res[i].PendingSince.Before(res[j].PendingSince)
		}
		return res[i].ID < res[j].ID
	})
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}

	return res, nil
}

func (r *BookingRepository) Get(_ context.Context, ref string) (*domain.Booking, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.bookings[ref]; ok {
		return cloneBooking(b), nil
	}

	for _, b := range s.bookings {
		if b.Code == ref {
			return cloneBooking(b), nil
		}
	}

	return nil, domain.ErrBookingNotFound
}

func (r *BookingRepository) IsSlotTaken(_ context.Context, slot domain.Slot) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.s.slotTaken(slot), nil
}

func (r *BookingRepository) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*domain.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			res = append(res, cloneBooking(b))
		}
	}
	sortByCreatedDesc(res)

	return res, nil
}

// slotTaken expects s.mu to be held.
func (s *Store) slotTaken(slot domain.Slot) bool {
	date := domain.DateOnly(slot.Date)
	for _, b := range s.bookings {
		if b.PropertyID == slot.PropertyID && b.BookingDate.Equal(date) &&
			b.Shift == slot.Shift && b.Status.IsActive() {
			return true
		}
	}
	return false
}
