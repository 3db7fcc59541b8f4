package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/repository/memory"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.SweepTimeout = time.Second
	return cfg
}

func TestSweeper_RunOnce_ExpiresAndNotifies(t *testing.T) {
	store := mocks.NewMockPendingStore(t)
	notifier := mocks.NewMockExpiryNotifier(t)
	s := New(store, mocks.NewMockSessionCleaner(t), notifier, testConfig(), newTestLogger(t))

	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	pending := []*domain.Booking{{ID: "b1", Status: domain.BookingStatusPending}}
	store.EXPECT().FindPending(mock.Anything, now.Add(-15*time.Minute), (*domain.PendingCursor)(nil), 100).
		Return(pending, nil).Once()
	store.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(tr domain.Transition) bool {
		return tr.BookingID == "b1" && tr.To == domain.BookingStatusExpired &&
			len(tr.From) == 1 && tr.From[0] == domain.BookingStatusPending
	})).Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusExpired, UpdatedAt: now}, nil).Once()
	notifier.EXPECT().Notify(mock.Anything, domain.Notification{
		BookingID: "b1",
		Event:     domain.EventBookingExpired,
		Audience:  domain.AudienceCustomer,
		Version:   now,
	}).Return(domain.Delivery{Delivered: true}).Once()

	report, err := s.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, report.Expired)
	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, report, s.Status().LastSweep)
}

func TestSweeper_RunOnce_OneFailureDoesNotAbort(t *testing.T) {
	store := mocks.NewMockPendingStore(t)
	notifier := mocks.NewMockExpiryNotifier(t)
	s := New(store, mocks.NewMockSessionCleaner(t), notifier, testConfig(), newTestLogger(t))

	pending := []*domain.Booking{{ID: "raced"}, {ID: "broken"}, {ID: "ok"}}
	store.EXPECT().FindPending(mock.Anything, mock.Anything, mock.Anything, 100).Return(pending, nil).Once()
	store.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(tr domain.Transition) bool { return tr.BookingID == "raced" })).
		Return(nil, &domain.StatusError{BookingID: "raced", Current: domain.BookingStatusWaiting, Err: domain.ErrStaleStatus}).Once()
	store.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(tr domain.Transition) bool { return tr.BookingID == "broken" })).
		Return(nil, errors.New("connection reset")).Once()
	store.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(tr domain.Transition) bool { return tr.BookingID == "ok" })).
		Return(&domain.Booking{ID: "ok", Status: domain.BookingStatusExpired}, nil).Once()
	notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(domain.Delivery{}).Once()

	report, err := s.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, report.Scanned)
	assert.Equal(t, []string{"ok"}, report.Expired)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Failed)
}

func TestSweeper_RunOnce_FailedBatchDoesNotHideLaterBookings(t *testing.T) {
	store := mocks.NewMockPendingStore(t)
	cfg := testConfig()
	cfg.BatchSize = 2
	s := New(store, mocks.NewMockSessionCleaner(t), nil, cfg, newTestLogger(t))

	at := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	stuck := []*domain.Booking{
		{ID: "a", PendingSince: at},
		{ID: "b", PendingSince: at},
	}
	later := []*domain.Booking{{ID: "c", PendingSince: at.Add(time.Minute)}}

	store.EXPECT().FindPending(mock.Anything, mock.Anything, (*domain.PendingCursor)(nil), 2).
		Return(stuck, nil).Once()
	store.EXPECT().FindPending(mock.Anything, mock.Anything, &domain.PendingCursor{PendingSince: at, ID: "b"}, 2).
		Return(later, nil).Once()
	store.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(tr domain.Transition) bool { return tr.BookingID != "c" })).
		Return(nil, errors.New("db down")).Twice()
	store.EXPECT().Transition(mock.Anything, mock.MatchedBy(func(tr domain.Transition) bool { return tr.BookingID == "c" })).
		Return(&domain.Booking{ID: "c", Status: domain.BookingStatusExpired}, nil).Once()

	report, err := s.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, report.Scanned)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, []string{"c"}, report.Expired)
}

func TestSweeper_RunOnce_PagesThroughStore(t *testing.T) {
	at := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	store := memory.New(memory.WithClock(func() time.Time { return at.Add(time.Hour) }))
	store.AddUser(domain.User{ID: "u1", Name: "Alice"})
	store.AddProperty(domain.Property{ID: "p1", Name: "River Hut"})
	for i, id := range []string{"b1", "b2", "b3", "b4", "b5"} {
		require.NoError(t, store.Bookings().TryCreate(context.Background(), &domain.Booking{
			ID:           id,
			UserID:       "u1",
			PropertyID:   "p1",
			BookingDate:  at.AddDate(0, 1, i),
			Shift:        domain.ShiftDay,
			TotalCost:    decimal.NewFromInt(5000),
			Status:       domain.BookingStatusPending,
			PendingSince: at,
			CreatedAt:    at,
			UpdatedAt:    at,
		}))
	}

	cfg := testConfig()
	cfg.BatchSize = 2
	s := New(store.Bookings(), store.Sessions(), nil, cfg, newTestLogger(t))
	s.now = func() time.Time { return at.Add(time.Hour) }

	report, err := s.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, report.Scanned)
	assert.ElementsMatch(t, []string{"b1", "b2", "b3", "b4", "b5"}, report.Expired)
}

func TestSweeper_RunOnce_FindError(t *testing.T) {
	store := mocks.NewMockPendingStore(t)
	s := New(store, mocks.NewMockSessionCleaner(t), nil, testConfig(), newTestLogger(t))

	store.EXPECT().FindPending(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db error")).Once()

	report, err := s.RunOnce(context.Background())

	require.Error(t, err)
	assert.NotNil(t, report)
	assert.Empty(t, report.Expired)
}

func TestSweeper_RunOnce_WaitsForRunningSweep(t *testing.T) {
	store := mocks.NewMockPendingStore(t)
	s := New(store, mocks.NewMockSessionCleaner(t), nil, testConfig(), newTestLogger(t))

	release := make(chan struct{})
	var inFlight, maxInFlight atomic.Int32
	store.EXPECT().FindPending(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Time, *domain.PendingCursor, int) ([]*domain.Booking, error) {
			n := inFlight.Add(1)
			if n > maxInFlight.Load() {
				maxInFlight.Store(n)
			}
			<-release
			inFlight.Add(-1)
			return nil, nil
		}).Twice()

	done := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, _ = s.RunOnce(context.Background())
			done <- struct{}{}
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	<-done
	<-done

	assert.Equal(t, int32(1), maxInFlight.Load())
}

func TestSweeper_StartStatusStop(t *testing.T) {
	s := New(mocks.NewMockPendingStore(t), mocks.NewMockSessionCleaner(t), nil, testConfig(), newTestLogger(t))

	assert.False(t, s.Status().Running)

	s.Start()
	s.Start() // повторный старт игнорируется

	st := s.Status()
	assert.True(t, st.Running)
	assert.False(t, st.NextSweep.IsZero())
	assert.False(t, st.NextSessionCleanup.IsZero())
	assert.True(t, st.NextSessionCleanup.After(st.NextSweep))

	require.NoError(t, s.Stop(context.Background()))
	assert.False(t, s.Status().Running)
	require.NoError(t, s.Stop(context.Background()))
}

func TestSweeper_StopWaitsForManualRun(t *testing.T) {
	store := mocks.NewMockPendingStore(t)
	s := New(store, mocks.NewMockSessionCleaner(t), nil, testConfig(), newTestLogger(t))

	entered := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool
	store.EXPECT().FindPending(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Time, *domain.PendingCursor, int) ([]*domain.Booking, error) {
			close(entered)
			<-release
			finished.Store(true)
			return nil, nil
		}).Once()

	s.Start()
	go func() { _, _ = s.RunOnce(context.Background()) }()
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := s.Stop(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, finished.Load())

	stopped := make(chan error, 1)
	go func() { stopped <- s.Stop(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	close(release)

	require.NoError(t, <-stopped)
	assert.True(t, finished.Load())
	assert.False(t, s.Status().Running)
}

func TestSweeper_ScheduledRunFires(t *testing.T) {
	store := mocks.NewMockPendingStore(t)
	cfg := testConfig()
	cfg.Interval = time.Second
	s := New(store, mocks.NewMockSessionCleaner(t), nil, cfg, newTestLogger(t))

	var calls atomic.Int32
	store.EXPECT().FindPending(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, time.Time, *domain.PendingCursor, int) ([]*domain.Booking, error) {
			calls.Add(1)
			return nil, nil
		}).Maybe()

	s.Start()
	defer func() { _ = s.Stop(context.Background()) }()

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
}

func TestSweeper_CleanupSessions(t *testing.T) {
	sessions := mocks.NewMockSessionCleaner(t)
	s := New(mocks.NewMockPendingStore(t), sessions, nil, testConfig(), newTestLogger(t))

	now := time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	sessions.EXPECT().DeleteInactive(mock.Anything, now.Add(-24*time.Hour)).Return(int64(3), nil).Once()

	n, err := s.CleanupSessions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, int64(3), s.Status().SessionsRemoved)
}

func TestSweeper_ExpiryBoundary(t *testing.T) {
	created := time.Date(2030, 3, 1, 10, 0, 0, 0, time.UTC)
	eps := time.Second

	tests := []struct {
		name    string
		sweepAt time.Time
		expired bool
	}{
		{name: "just before ttl", sweepAt: created.Add(15*time.Minute - eps), expired: false},
		{name: "exactly at ttl", sweepAt: created.Add(15 * time.Minute), expired: false},
		{name: "just after ttl", sweepAt: created.Add(15*time.Minute + eps), expired: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.New(memory.WithClock(func() time.Time { return tt.sweepAt }))
			store.AddUser(domain.User{ID: "u1", Name: "Alice"})
			store.AddProperty(domain.Property{ID: "p1", Name: "River Hut"})
			require.NoError(t, store.Bookings().TryCreate(context.Background(), &domain.Booking{
				ID:           "b1",
				UserID:       "u1",
				PropertyID:   "p1",
				BookingDate:  created.AddDate(0, 1, 0),
				Shift:        domain.ShiftDay,
				TotalCost:    decimal.NewFromInt(5000),
				Status:       domain.BookingStatusPending,
				PendingSince: created,
				CreatedAt:    created,
				UpdatedAt:    created,
			}))

			s := New(store.Bookings(), store.Sessions(), nil, testConfig(), newTestLogger(t))
			s.now = func() time.Time { return tt.sweepAt }

			report, err := s.RunOnce(context.Background())
			require.NoError(t, err)

			b, err := store.Bookings().Get(context.Background(), "b1")
			require.NoError(t, err)
			if tt.expired {
				assert.Equal(t, domain.BookingStatusExpired, b.Status)
				assert.Equal(t, []string{"b1"}, report.Expired)
			} else {
				assert.Equal(t, domain.BookingStatusPending, b.Status)
				assert.Empty(t, report.Expired)
			}
		})
	}
}
