package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const messageColumns = `id, user_id, session_id, booking_id, sender, channel, event, audience,
	content, delivered, external_id, error, created_at`

type MessageRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMessageRepo(db *dbpg.DB) *MessageRepository {
	return &MessageRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Claim вставляет строку аудита до отправки; повторный ключ означает уже обработанное событие.
func (r *MessageRepository) Claim(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (id, user_id, session_id, booking_id, sender, channel, event, audience,
				content, dedup_key, delivered, external_id, error, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Master.ExecContext(
		ctx, query,
		m.ID, m.UserID, m.SessionID, m.BookingID, m.Sender, m.Channel, m.Event, m.Audience,
		m.Content, m.DedupKey, m.Delivered, m.ExternalID, m.Error, m.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateMessage
		}
		return persistErr("insert message", err)
	}

	return nil
}

func (r *MessageRepository) MarkOutcome(ctx context.Context, id string, delivered bool, externalID, errText string) error {
	query := `UPDATE messages
			  SET delivered = $2, external_id = $3, error = $4
			  WHERE id = $1`

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, delivered, externalID, errText)
	if err != nil {
		return persistErr("mark message outcome", err)
	}

	return nil
}

func (r *MessageRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]*domain.Message, error) {
	query := `SELECT ` + messageColumns + `
			  FROM (
			    SELECT * FROM messages
			    WHERE session_id::text = $1
			    ORDER BY created_at DESC
			    LIMIT $2
			  ) recent
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, sessionID, limit)
	if err != nil {
		return nil, persistErr("list session messages", err)
	}
	defer rows.Close()

	return collectMessages(rows)
}

func (r *MessageRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.Message, error) {
	query := `SELECT ` + messageColumns + `
			  FROM messages
			  WHERE booking_id::text = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, persistErr("list booking messages", err)
	}
	defer rows.Close()

	return collectMessages(rows)
}

func collectMessages(rows *sql.Rows) ([]*domain.Message, error) {
	var res []*domain.Message
	for rows.Next() {
		var (
			m         domain.Message
			sessionID sql.NullString
		)
		err := rows.Scan(
			&m.ID, &m.UserID, &sessionID, &m.BookingID, &m.Sender, &m.Channel, &m.Event, &m.Audience,
			&m.Content, &m.Delivered, &m.ExternalID, &m.Error, &m.CreatedAt,
		)
		if err != nil {
			return nil, persistErr("scan message", err)
		}
		if sessionID.Valid {
			m.SessionID = &sessionID.String
		}
		res = append(res, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, persistErr("iterate messages", err)
	}
	return res, nil
}
