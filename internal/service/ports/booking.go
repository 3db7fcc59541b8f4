package ports

import (
	"context"
	"time"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
)

type BookingRepo interface {
	// TryCreate checks the slot and inserts atomically; domain.ErrSlotTaken on conflict.
	TryCreate(ctx context.Context, b *domain.Booking) error
	// Transition is a compare-and-swap on the current status.
	Transition(ctx context.Context, t domain.Transition) (*domain.Booking, error)
	// FindPending pages through Pending bookings older than pendingBefore in
	// (pending_since, id) order, starting strictly after the cursor.
	FindPending(ctx context.Context, pendingBefore time.Time, after *domain.PendingCursor, limit int) ([]*domain.Booking, error)
	Get(ctx context.Context, ref string) (*domain.Booking, error)
	IsSlotTaken(ctx context.Context, slot domain.Slot) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}
