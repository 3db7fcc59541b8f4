package ports

import (
	"context"
	"time"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	GetLatestByUser(ctx context.Context, userID string) (*domain.Session, error)
	AttachBooking(ctx context.Context, sessionID, propertyID, bookingID string) error
	DeleteInactive(ctx context.Context, idleSince time.Time) (int64, error)
}
