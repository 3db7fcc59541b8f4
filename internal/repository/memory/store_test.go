package memory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)

func seeded(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s := New(opts...)
	s.AddUser(domain.User{ID: "u1", Name: "Alice"})
	s.AddUser(domain.User{ID: "u2", Name: "Bob"})
	s.AddProperty(domain.Property{ID: "p1", Name: "River Hut"})
	s.AddProperty(domain.Property{ID: "p2", Name: "Lake Farm"})
	return s
}

func newBooking(id, userID string, shift domain.Shift, at time.Time) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		Code:         domain.BookingCode("Alice", day, shift, id),
		UserID:       userID,
		PropertyID:   "p1",
		BookingDate:  day,
		Shift:        shift,
		BuyerName:    "Alice",
		TotalCost:    decimal.NewFromInt(5000),
		Status:       domain.BookingStatusPending,
		PendingSince: at,
		CreatedAt:    at,
		UpdatedAt:    at,
	}
}

func TestTryCreate_ConcurrentSameSlot(t *testing.T) {
	s := seeded(t)
	repo := s.Bookings()

	const n = 50
	var (
		wg      sync.WaitGroup
		success atomic.Int32
		taken   atomic.Int32
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := newBooking(fmt.Sprintf("b%d", i), "u1", domain.ShiftNight, time.Now())
			err := repo.TryCreate(context.Background(), b)
			switch {
			case err == nil:
				success.Add(1)
			case errors.Is(err, domain.ErrSlotTaken):
				taken.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), success.Load())
	assert.Equal(t, int32(n-1), taken.Load())
}

func TestTryCreate_ExpiredFreesSlot(t *testing.T) {
	s := seeded(t)
	repo := s.Bookings()
	ctx := context.Background()

	require.NoError(t, repo.TryCreate(ctx, newBooking("b1", "u1", domain.ShiftDay, time.Now())))
	assert.ErrorIs(t, repo.TryCreate(ctx, newBooking("b2", "u2", domain.ShiftDay, time.Now())), domain.ErrSlotTaken)

	_, err := repo.Transition(ctx, domain.Transition{
		BookingID: "b1",
		From:      []domain.BookingStatus{domain.BookingStatusPending},
		To:        domain.BookingStatusExpired,
	})
	require.NoError(t, err)

	assert.NoError(t, repo.TryCreate(ctx, newBooking("b2", "u2", domain.ShiftDay, time.Now())))
}

func TestTryCreate_DifferentShiftsCoexist(t *testing.T) {
	s := seeded(t)
	repo := s.Bookings()
	ctx := context.Background()

	require.NoError(t, repo.TryCreate(ctx, newBooking("b1", "u1", domain.ShiftDay, time.Now())))
	require.NoError(t, repo.TryCreate(ctx, newBooking("b2", "u1", domain.ShiftNight, time.Now())))

	taken, err := repo.IsSlotTaken(ctx, domain.Slot{PropertyID: "p1", Date: day, Shift: domain.ShiftFullDay})
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestTryCreate_UnknownRefs(t *testing.T) {
	s := seeded(t)
	repo := s.Bookings()

	b := newBooking("b1", "ghost", domain.ShiftDay, time.Now())
	assert.ErrorIs(t, repo.TryCreate(context.Background(), b), domain.ErrUserNotFound)

	b = newBooking("b1", "u1", domain.ShiftDay, time.Now())
	b.PropertyID = "nowhere"
	assert.ErrorIs(t, repo.TryCreate(context.Background(), b), domain.ErrPropertyNotFound)
}

func TestTransition_CompareAndSwap(t *testing.T) {
	s := seeded(t)
	repo := s.Bookings()
	ctx := context.Background()
	require.NoError(t, repo.TryCreate(ctx, newBooking("b1", "u1", domain.ShiftDay, time.Now())))

	_, err := repo.Transition(ctx, domain.Transition{
		BookingID: "b1",
		From:      []domain.BookingStatus{domain.BookingStatusWaiting},
		To:        domain.BookingStatusConfirmed,
	})

	var se *domain.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, domain.BookingStatusPending, se.Current)
	assert.ErrorIs(t, err, domain.ErrStaleStatus)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = repo.Transition(ctx, domain.Transition{BookingID: "missing", To: domain.BookingStatusExpired})
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestTransition_ConcurrentOnlyOneWins(t *testing.T) {
	s := seeded(t)
	repo := s.Bookings()
	ctx := context.Background()
	require.NoError(t, repo.TryCreate(ctx, newBooking("b1", "u1", domain.ShiftDay, time.Now())))

	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Transition(ctx, domain.Transition{
				BookingID: "b1",
				From:      []domain.BookingStatus{domain.BookingStatusPending, domain.BookingStatusWaiting},
				To:        domain.BookingStatusConfirmed,
			})
			if err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestTransition_WritesClaimAndKeepsTotal(t *testing.T) {
	s := seeded(t)
	repo := s.Bookings()
	ctx := context.Background()
	require.NoError(t, repo.TryCreate(ctx, newBooking("b1", "u1", domain.ShiftDay, time.Now())))

	amount := decimal.NewFromInt(5000)
	got, err := repo.Transition(ctx, domain.Transition{
		BookingID: "b1",
		From:      []domain.BookingStatus{domain.BookingStatusPending},
		To:        domain.BookingStatusWaiting,
		Claim: &domain.PaymentClaim{
			Amount:     &amount,
			SenderName: "Alice",
			Source:     domain.ClaimSourceManual,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, got.Claim)
	assert.Equal(t, "Alice", got.Claim.SenderName)
	assert.True(t, got.TotalCost.Equal(decimal.NewFromInt(5000)))

	// returned copies must not alias the stored booking
	got.Claim.SenderName = "Mallory"
	again, err := repo.Get(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.Claim.SenderName)
}

func TestTransition_BackToPendingResetsClock(t *testing.T) {
	now := day.Add(-48 * time.Hour)
	s := seeded(t, WithClock(func() time.Time { return now }))
	repo := s.Bookings()
	ctx := context.Background()
	require.NoError(t, repo.TryCreate(ctx, newBooking("b1", "u1", domain.ShiftDay, now)))

	_, err := repo.Transition(ctx, domain.Transition{
		BookingID: "b1",
		From:      []domain.BookingStatus{domain.BookingStatusPending},
		To:        domain.BookingStatusWaiting,
	})
	require.NoError(t, err)

	now = now.Add(time.Hour)
	got, err := repo.Transition(ctx, domain.Transition{
		BookingID: "b1",
		From:      []domain.BookingStatus{domain.BookingStatusWaiting},
		To:        domain.BookingStatusPending,
		Reason:    "blurry",
	})
	require.NoError(t, err)
	assert.Equal(t, now, got.PendingSince)
	assert.Equal(t, "blurry", got.Reason)
}

func TestTransition_VersionAdvancesUnderFrozenClock(t *testing.T) {
	frozen := day.Add(-time.Hour)
	s := seeded(t, WithClock(func() time.Time { return frozen }))
	repo := s.Bookings()
	ctx := context.Background()
	require.NoError(t, repo.TryCreate(ctx, newBooking("b1", "u1", domain.ShiftDay, frozen)))

	first, err := repo.Transition(ctx, domain.Transition{
		BookingID: "b1",
		From:      []domain.BookingStatus{domain.BookingStatusPending},
		To:        domain.BookingStatusWaiting,
	})
	require.NoError(t, err)
	second, err := repo.Transition(ctx, domain.Transition{
		BookingID: "b1",
		From:      []domain.BookingStatus{domain.BookingStatusWaiting},
		To:        domain.BookingStatusPending,
	})
	require.NoError(t, err)

	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestFindPending_Boundary(t *testing.T) {
	s := seeded(t)
	repo := s.Bookings()
	ctx := context.Background()
	base := day.Add(-24 * time.Hour)

	require.NoError(t, repo.TryCreate(ctx, newBooking("old", "u1", domain.ShiftDay, base)))
	require.NoError(t, repo.TryCreate(ctx, newBooking("edge", "u1", domain.ShiftNight, base.Add(15*time.Minute))))
	require.NoError(t, repo.TryCreate(ctx, newBooking("new", "u1", domain.ShiftFullDay, base.Add(20*time.Minute))))

	got, err := repo.FindPending(ctx, base.Add(15*time.Minute), nil, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "old", got[0].ID)

	got, err = repo.FindPending(ctx, base.Add(time.Hour), nil, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "old", got[0].ID)
	assert.Equal(t, "edge", got[1].ID)
}

func TestFindPending_KeysetAfterCursor(t *testing.T) {
	s := seeded(t)
	repo := s.Bookings()
	ctx := context.Background()
	base := day.Add(-24 * time.Hour)

	// одинаковый pending_since, порядок решает id
	require.NoError(t, repo.TryCreate(ctx, newBooking("b2", "u1", domain.ShiftDay, base)))
	require.NoError(t, repo.TryCreate(ctx, newBooking("b1", "u1", domain.ShiftNight, base)))
	require.NoError(t, repo.TryCreate(ctx, newBooking("b3", "u1", domain.ShiftFullDay, base.Add(time.Minute))))

	first, err := repo.FindPending(ctx, base.Add(time.Hour), nil, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "b1", first[0].ID)
	assert.Equal(t, "b2", first[1].ID)

	// b1 и b2 остаются Pending, но курсор уводит дальше
	next, err := repo.FindPending(ctx, base.Add(time.Hour), first[1].PendingCursor(), 2)
	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.Equal(t, "b3", next[0].ID)

	rest, err := repo.FindPending(ctx, base.Add(time.Hour), next[0].PendingCursor(), 2)
	require.NoError(t, err)
	assert.Empty(t, rest)
}

func TestGet_ByCodeSameNameOtherProperty(t *testing.T) {
	s := seeded(t)
	repo := s.Bookings()
	ctx := context.Background()
	at := day.Add(-24 * time.Hour)

	first := newBooking("0a1b2c3d-0000-4000-8000-000000000001", "u1", domain.ShiftDay, at)
	second := newBooking("9f8e7d6c-0000-4000-8000-000000000002", "u2", domain.ShiftDay, at.Add(time.Minute))
	second.PropertyID = "p2"
	require.NoError(t, repo.TryCreate(ctx, first))
	require.NoError(t, repo.TryCreate(ctx, second))
	require.NotEqual(t, first.Code, second.Code)

	got, err := repo.Get(ctx, first.Code)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	got, err = repo.Get(ctx, second.Code)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)

	_, err = repo.Get(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestTryCreate_DuplicateCodeRejected(t *testing.T) {
	s := seeded(t)
	repo := s.Bookings()
	ctx := context.Background()
	at := day.Add(-24 * time.Hour)

	first := newBooking("b1", "u1", domain.ShiftDay, at)
	require.NoError(t, repo.TryCreate(ctx, first))

	dup := newBooking("b2", "u2", domain.ShiftDay, at)
	dup.PropertyID = "p2"
	dup.Code = first.Code
	err := repo.TryCreate(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrBookingCodeTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = repo.Get(ctx, "b2")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestSessions_DeleteInactiveKeepsHistory(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	old := day.Add(-72 * time.Hour)

	sessions := s.Sessions()
	require.NoError(t, sessions.Create(ctx, &domain.Session{
		ID: "s1", UserID: "u1", Source: domain.SessionSourceWeb, CreatedAt: old, UpdatedAt: old,
	}))
	sid := "s1"
	require.NoError(t, s.Messages().Claim(ctx, &domain.Message{
		ID: "m1", UserID: "u1", SessionID: &sid, BookingID: "b1", DedupKey: "k1", CreatedAt: old,
	}))

	n, err := sessions.DeleteInactive(ctx, day.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = sessions.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	msgs, err := s.Messages().ListByBooking(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Nil(t, msgs[0].SessionID)
}

func TestMessages_ClaimDedup(t *testing.T) {
	s := seeded(t)
	repo := s.Messages()
	ctx := context.Background()

	require.NoError(t, repo.Claim(ctx, &domain.Message{ID: "m1", BookingID: "b1", DedupKey: "k"}))
	assert.ErrorIs(t, repo.Claim(ctx, &domain.Message{ID: "m2", BookingID: "b1", DedupKey: "k"}), domain.ErrDuplicateMessage)

	require.NoError(t, repo.MarkOutcome(ctx, "m1", true, "42", ""))
	msgs, err := repo.ListByBooking(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].Delivered)
	assert.Equal(t, "42", msgs[0].ExternalID)
}

func TestLoadFixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.json")
	raw := `{
	  "users": [{"id": "u1", "name": "Alice", "chat_id": 42}],
	  "properties": [{"id": "p1", "name": "River Hut",
	    "prices": [{"weekday": 6, "shift": "Night", "amount": "12000"}]}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	s := New()
	require.NoError(t, s.LoadFixtures(path))

	u, err := s.Users().GetByID(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, u.ChatID)
	assert.Equal(t, int64(42), *u.ChatID)

	price, err := s.Properties().GetPrice(context.Background(), "p1", time.Saturday, domain.ShiftNight)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(12000)))

	_, err = s.Properties().GetPrice(context.Background(), "p1", time.Monday, domain.ShiftNight)
	assert.ErrorIs(t, err, domain.ErrPricingNotFound)
}
