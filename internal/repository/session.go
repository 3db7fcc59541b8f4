package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (id, user_id, source, property_id, booking_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.UserID, s.Source, s.PropertyID, s.BookingID, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return persistErr("insert session", err)
	}

	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT id, user_id, source, property_id, booking_id, created_at, updated_at
			  FROM sessions
			  WHERE id::text = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, persistErr("get session", err)
	}

	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, persistErr("scan session", err)
	}

	return s, nil
}

func (r *SessionRepository) GetLatestByUser(ctx context.Context, userID string) (*domain.Session, error) {
	query := `SELECT id, user_id, source, property_id, booking_id, created_at, updated_at
			  FROM sessions
			  WHERE user_id::text = $1
			  ORDER BY updated_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, persistErr("get latest session", err)
	}

	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, persistErr("scan session", err)
	}

	return s, nil
}

func (r *SessionRepository) AttachBooking(ctx context.Context, sessionID, propertyID, bookingID string) error {
	query := `UPDATE sessions
			  SET property_id = $2, booking_id = $3, updated_at = NOW()
			  WHERE id::text = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, sessionID, propertyID, bookingID)
	if err != nil {
		return persistErr("attach booking", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return persistErr("attach booking", err)
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

// DeleteInactive удаляет сессии без активности с idleSince; сообщения остаются.
func (r *SessionRepository) DeleteInactive(ctx context.Context, idleSince time.Time) (int64, error) {
	query := `DELETE FROM sessions WHERE updated_at < $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, idleSince)
	if err != nil {
		return 0, persistErr("delete inactive sessions", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, persistErr("delete inactive sessions", err)
	}

	return n, nil
}

func scanSession(row rowScanner) (*domain.Session, error) {
	var (
		s          domain.Session
		propertyID sql.NullString
		bookingID  sql.NullString
	)
	if err := row.Scan(&s.ID, &s.UserID, &s.Source, &propertyID, &bookingID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if propertyID.Valid {
		s.PropertyID = &propertyID.String
	}
	if bookingID.Valid {
		s.BookingID = &bookingID.String
	}

	return &s, nil
}
