package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
)

type PropertyRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	GetPrice(ctx context.Context, propertyID string, weekday time.Weekday, shift domain.Shift) (decimal.Decimal, error)
}
