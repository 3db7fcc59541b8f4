package memory

import (
	"context"
	"time"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
)

type SessionRepository struct {
	s *Store
}

func (r *SessionRepository) Create(_ context.Context, sess *domain.Session) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[sess.UserID]; !ok {
		return domain.ErrUserNotFound
	}
	s.sessions[sess.ID] = cloneSession(sess)
	return nil
}

func (r *SessionRepository) Get(_ context.Context, id string) (*domain.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sess, ok := r.s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return cloneSession(sess), nil
}

func (r *SessionRepository) GetLatestByUser(_ context.Context, userID string) (*domain.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var latest *domain.Session
	for _, sess := range r.s.sessions {
		if sess.UserID == userID && (latest == nil || sess.UpdatedAt.After(latest.UpdatedAt)) {
			latest = sess
		}
	}
	if latest == nil {
		return nil, domain.ErrSessionNotFound
	}
	return cloneSession(latest), nil
}

func (r *SessionRepository) AttachBooking(_ context.Context, sessionID, propertyID, bookingID string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return domain.ErrSessionNotFound
	}
	sess.PropertyID = &propertyID
	sess.BookingID = &bookingID
	sess.UpdatedAt = s.tick(sess.UpdatedAt)
	return nil
}

func (r *SessionRepository) DeleteInactive(_ context.Context, idleSince time.Time) (int64, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, sess := range s.sessions {
		if !sess.UpdatedAt.Before(idleSince) {
			continue
		}
		delete(s.sessions, id)
		n++
		// история сообщений переживает сессию
		for _, m := range s.messages {
			if m.SessionID != nil && *m.SessionID == id {
				m.SessionID = nil
			}
		}
	}
	return n, nil
}
