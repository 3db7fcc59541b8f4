package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"
)

func fastPolicy() Policy {
	return Policy{
		Timeout:  50 * time.Millisecond,
		Strategy: retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2},
	}
}

func TestPolicy_RetriesTransient(t *testing.T) {
	calls := 0
	err := fastPolicy().Call(context.Background(), "send", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection reset")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestPolicy_GivesUpAfterAttempts(t *testing.T) {
	calls := 0
	err := fastPolicy().Call(context.Background(), "send", func(context.Context) error {
		calls++
		return errors.New("503")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, domain.ErrIntegration)
	assert.Contains(t, err.Error(), "send failed after 3 attempt(s)")
}

func TestPolicy_PermanentStopsImmediately(t *testing.T) {
	calls := 0
	cause := errors.New("chat not found")
	err := fastPolicy().Call(context.Background(), "send", func(context.Context) error {
		calls++
		return Permanent(cause)
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, domain.ErrIntegration)
	assert.True(t, IsPermanent(err))
}

func TestPolicy_PerAttemptTimeout(t *testing.T) {
	calls := 0
	err := fastPolicy().Call(context.Background(), "slow", func(ctx context.Context) error {
		calls++
		<-ctx.Done()
		return ctx.Err()
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestIsClientStatus(t *testing.T) {
	assert.True(t, IsClientStatus(400))
	assert.True(t, IsClientStatus(403))
	assert.False(t, IsClientStatus(429+100))
	assert.False(t, IsClientStatus(200))
}

func TestPermanent_Nil(t *testing.T) {
	assert.NoError(t, Permanent(nil))
}
