package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Property struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Price struct {
	PropertyID string          `json:"property_id"`
	Weekday    time.Weekday    `json:"weekday"`
	Shift      Shift           `json:"shift"`
	Amount     decimal.Decimal `json:"amount"`
}
