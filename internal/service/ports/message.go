package ports

import (
	"context"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
)

type MessageRepo interface {
	// Claim inserts the audit row; domain.ErrDuplicateMessage if the dedup key exists.
	Claim(ctx context.Context, m *domain.Message) error
	MarkOutcome(ctx context.Context, id string, delivered bool, externalID, errText string) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]*domain.Message, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.Message, error)
}
