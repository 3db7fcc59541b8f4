// Package memory is an in-process Reservation Store with the same invariants
// as the Postgres one: at most one active booking per slot and atomic status
// compare-and-swap, both under a single mutex.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
)

type priceKey struct {
	propertyID string
	weekday    time.Weekday
	shift      domain.Shift
}

type Store struct {
	mu  sync.Mutex
	now func() time.Time

	users      map[string]*domain.User
	properties map[string]*domain.Property
	prices     map[priceKey]decimal.Decimal
	bookings   map[string]*domain.Booking
	sessions   map[string]*domain.Session
	messages   []*domain.Message
	dedup      map[string]struct{}
}

type Option func(*Store)

// WithClock replaces time.Now; tests use it to move across the expiry boundary.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{
		now:        time.Now,
		users:      make(map[string]*domain.User),
		properties: make(map[string]*domain.Property),
		prices:     make(map[priceKey]decimal.Decimal),
		bookings:   make(map[string]*domain.Booking),
		sessions:   make(map[string]*domain.Session),
		dedup:      make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Bookings() *BookingRepository { return &BookingRepository{s: s} }
func (s *Store) Users() *UserRepository       { return &UserRepository{s: s} }
func (s *Store) Properties() *PropertyRepository {
	return &PropertyRepository{s: s}
}
func (s *Store) Sessions() *SessionRepository { return &SessionRepository{s: s} }
func (s *Store) Messages() *MessageRepository { return &MessageRepository{s: s} }

func (s *Store) AddUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now()
	}
	s.users[u.ID] = &u
}

func (s *Store) AddProperty(p domain.Property, prices ...domain.Price) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	s.properties[p.ID] = &p
	for _, pr := range prices {
		s.prices[priceKey{propertyID: p.ID, weekday: pr.Weekday, shift: pr.Shift}] = pr.Amount
	}
}

// tick returns a timestamp strictly after prev, so versions never collide
// under a frozen test clock.
func (s *Store) tick(prev time.Time) time.Time {
	now := s.now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	if b.Claim != nil {
		claim := *b.Claim
		if b.Claim.Amount != nil {
			amount := *b.Claim.Amount
			claim.Amount = &amount
		}
		if b.Claim.Confidence != nil {
			conf := *b.Claim.Confidence
			claim.Confidence = &conf
		}
		c.Claim = &claim
	}
	return &c
}

func cloneSession(sess *domain.Session) *domain.Session {
	c := *sess
	if sess.PropertyID != nil {
		v := *sess.PropertyID
		c.PropertyID = &v
	}
	if sess.BookingID != nil {
		v := *sess.BookingID
		c.BookingID = &v
	}
	return &c
}

func cloneMessage(m *domain.Message) *domain.Message {
	c := *m
	if m.SessionID != nil {
		v := *m.SessionID
		c.SessionID = &v
	}
	return &c
}

func sortByCreatedDesc(bs []*domain.Booking) {
	sort.SliceStable(bs, func(i, j int) bool { return bs[i].CreatedAt.After(bs[j].CreatedAt) })
}
