package ports

import (
	"context"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
)

// BookingNotifier never fails the caller: delivery problems come back in Delivery.Err.
type BookingNotifier interface {
	Notify(ctx context.Context, n domain.Notification) domain.Delivery
}
