package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, name, phone, telegram_chat_id, created_at
    		  FROM users
    		  WHERE id::text = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, persistErr("get user", err)
	}

	var (
		u      domain.User
		chatID sql.NullInt64
	)
	if err = row.Scan(&u.ID, &u.Name, &u.Phone, &chatID, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, persistErr("scan user", err)
	}
	if chatID.Valid {
		u.ChatID = &chatID.Int64
	}

	return &u, nil
}
