package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PropertyRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPropertyRepo(db *dbpg.DB) *PropertyRepository {
	return &PropertyRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	query := `SELECT id, name, created_at
			  FROM properties
			  WHERE id::text = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, persistErr("get property", err)
	}

	var p domain.Property
	if err = row.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, persistErr("scan property", err)
	}

	return &p, nil
}

// GetPrice возвращает цену слота по дню недели (0 = воскресенье) и смене.
func (r *PropertyRepository) GetPrice(
	ctx context.Context, propertyID string, weekday time.Weekday, shift domain.Shift,
) (decimal.Decimal, error) {
	query := `SELECT price
			  FROM property_pricing
			  WHERE property_id::text = $1 AND day_of_week = $2 AND shift_type = $3`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, propertyID, int(weekday), shift)
	if err != nil {
		return decimal.Zero, persistErr("get price", err)
	}

	var price decimal.Decimal
	if err = row.Scan(&price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, domain.ErrPricingNotFound
		}
		return decimal.Zero, persistErr("scan price", err)
	}

	return price, nil
}
