package memory

import (
	"context"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
)

type MessageRepository struct {
	s *Store
}

func (r *MessageRepository) Claim(_ context.Context, m *domain.Message) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dedup[m.DedupKey]; ok {
		return domain.ErrDuplicateMessage
	}
	s.dedup[m.DedupKey] = struct{}{}
	s.messages = append(s.messages, cloneMessage(m))
	return nil
}

func (r *MessageRepository) MarkOutcome(_ context.Context, id string, delivered bool, externalID, errText string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, m := range r.s.messages {
		if m.ID == id {
			m.Delivered = delivered
			m.ExternalID = externalID
			m.Error = errText
			return nil
		}
	}
	return nil
}

// ListBySession returns the last limit messages in chronological order.
func (r *MessageRepository) ListBySession(_ context.Context, sessionID string, limit int) ([]*domain.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var res []*domain.Message
	for _, m := range r.s.messages {
		if m.SessionID != nil && *m.SessionID == sessionID {
			res = append(res, cloneMessage(m))
		}
	}
	if limit > 0 && len(res) > limit {
		res = res[len(res)-limit:]
	}
	return res, nil
}

func (r *MessageRepository) ListByBooking(_ context.Context, bookingID string) ([]*domain.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var res []*domain.Message
	for _, m := range r.s.messages {
		if m.BookingID == bookingID {
			res = append(res, cloneMessage(m))
		}
	}
	return res, nil
}
