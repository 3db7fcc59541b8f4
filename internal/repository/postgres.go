package repository

import (
	"fmt"
	"time"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/wb-go/wbf/retry"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

func persistErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrPersistence, op, err)
}
