// Package integration bounds calls to external services: every attempt gets
// its own timeout, transient failures are retried with exponential backoff,
// and permanent (4xx-class) failures are returned immediately.
package integration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/wb-go/wbf/retry"
)

type Policy struct {
	Timeout  time.Duration
	Strategy retry.Strategy
}

func DefaultPolicy() Policy {
	return Policy{
		Timeout: 10 * time.Second,
		Strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// IsClientStatus reports whether an HTTP-ish status code is a 4xx.
func IsClientStatus(code int) bool {
	return code >= 400 && code < 500
}

// Call runs fn under the policy. The returned error wraps domain.ErrIntegration.
func (p Policy) Call(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	var permanent error
	attempts := 0

	err := retry.DoContext(ctx, p.Strategy, func() error {
		attempts++
		callCtx, cancel := context.WithTimeout(ctx, p.Timeout)
		defer cancel()

		err := fn(callCtx)
		if err != nil && IsPermanent(err) {
			// остановить ретраи: DoContext прекращает на nil
			permanent = err
			return nil
		}
		return err
	})
	if permanent != nil {
		err = permanent
	}
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %s failed after %d attempt(s): %w", domain.ErrIntegration, name, attempts, err)
}
