package ports

import (
	"context"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
)

type UserRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
