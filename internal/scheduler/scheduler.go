package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const expiryReason = "payment not received in time"

type pendingStore interface {
	FindPending(ctx context.Context, pendingBefore time.Time, after *domain.PendingCursor, limit int) ([]*domain.Booking, error)
	Transition(ctx context.Context, t domain.Transition) (*domain.Booking, error)
}

type sessionCleaner interface {
	DeleteInactive(ctx context.Context, idleSince time.Time) (int64, error)
}

type expiryNotifier interface {
	Notify(ctx context.Context, n domain.Notification) domain.Delivery
}

type Config struct {
	Interval        time.Duration
	PendingTTL      time.Duration
	BatchSize       int
	SessionInterval time.Duration
	SessionMaxIdle  time.Duration
	// SweepTimeout bounds one scheduled run.
	SweepTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Interval:        15 * time.Minute,
		PendingTTL:      15 * time.Minute,
		BatchSize:       100,
		SessionInterval: time.Hour,
		SessionMaxIdle:  24 * time.Hour,
		SweepTimeout:    5 * time.Minute,
	}
}

type SweepReport struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Cutoff     time.Time `json:"cutoff"`
	Scanned    int       `json:"scanned"`
	Expired    []string  `json:"expired"`
	Skipped    int       `json:"skipped"`
	Failed     int       `json:"failed"`
}

type Status struct {
	Running            bool         `json:"running"`
	NextSweep          time.Time    `json:"next_sweep,omitempty"`
	NextSessionCleanup time.Time    `json:"next_session_cleanup,omitempty"`
	LastSweep          *SweepReport `json:"last_sweep,omitempty"`
	LastSessionCleanup time.Time    `json:"last_session_cleanup,omitempty"`
	SessionsRemoved    int64        `json:"sessions_removed"`
}

// Sweeper expires stale Pending bookings and reclaims idle sessions on its
// own timer. All methods are safe for concurrent use.
type Sweeper struct {
	bookings pendingStore
	sessions sessionCleaner
	notifier expiryNotifier
	cfg      Config
	logger   logger.Logger
	now      func() time.Time

	// sweepMu serializes sweeps, scheduled or manual.
	sweepMu sync.Mutex

	mu              sync.Mutex
	cron            *cron.Cron
	sweepEntry      cron.EntryID
	cleanupEntry    cron.EntryID
	last            *SweepReport
	lastCleanup     time.Time
	sessionsRemoved int64
}

func New(
	bookings pendingStore,
	sessions sessionCleaner,
	notifier expiryNotifier,
	cfg Config,
	logger logger.Logger,
) *Sweeper {
	return &Sweeper{
		bookings: bookings,
		sessions: sessions,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		return
	}

	cl := cronLogger{log: s.logger}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	s.sweepEntry = c.Schedule(cron.Every(s.cfg.Interval), cron.FuncJob(s.scheduledSweep))
	s.cleanupEntry = c.Schedule(cron.Every(s.cfg.SessionInterval), cron.FuncJob(s.scheduledCleanup))
	c.Start()
	s.cron = c

	s.logger.Info("sweeper started",
		logger.Duration("interval", s.cfg.Interval),
		logger.Duration("pending_ttl", s.cfg.PendingTTL),
		logger.Duration("session_interval", s.cfg.SessionInterval),
	)
}

// Stop unschedules both jobs and waits for any running sweep, scheduled or
// started through RunOnce, to finish, or for ctx.
func (s *Sweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()

	if c != nil {
		select {
		case <-c.Stop().Done():
		case <-ctx.Done():
			return fmt.Errorf("wait for running sweep: %w", ctx.Err())
		}
	}

	idle := make(chan struct{})
	go func() {
		s.sweepMu.Lock()
		close(idle)
		s.sweepMu.Unlock()
	}()

	select {
	case <-idle:
	case <-ctx.Done():
		return fmt.Errorf("wait for running sweep: %w", ctx.Err())
	}

	if c != nil {
		s.logger.Info("sweeper stopped")
	}
	return nil
}

func (s *Sweeper) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		Running:            s.cron != nil,
		LastSessionCleanup: s.lastCleanup,
		SessionsRemoved:    s.sessionsRemoved,
	}
	if s.last != nil {
		last := *s.last
		st.LastSweep = &last
	}
	if s.cron != nil {
		st.NextSweep = s.cron.Entry(s.sweepEntry).Next
		st.NextSessionCleanup = s.cron.Entry(s.cleanupEntry).Next
	}

	return st
}

// RunOnce performs one sweep now. It waits for a sweep already in progress.
func (s *Sweeper) RunOnce(ctx context.Context) (*SweepReport, error) {
	s.sweepMu.Lock()
	defer s.sweepMu.Unlock()

	now := s.now()
	report := &SweepReport{
		StartedAt: now,
		Cutoff:    now.Add(-s.cfg.PendingTTL),
		Expired:   []string{},
	}

	// Курсор идёт по (pending_since, id), так что брони, которые не удалось
	// перевести, не загораживают следующие.
	var (
		err   error
		after *domain.PendingCursor
	)
	for {
		var batch []*domain.Booking
		batch, err = s.bookings.FindPending(ctx, report.Cutoff, after, s.cfg.BatchSize)
		if err != nil {
			err = fmt.Errorf("find pending: %w", err)
			break
		}

		for _, b := range batch {
			report.Scanned++
			s.expire(ctx, b, report)
		}

		if len(batch) < s.cfg.BatchSize {
			break
		}
		after = batch[len(batch)-1].PendingCursor()
	}

	report.FinishedAt = s.now()

	s.mu.Lock()
	s.last = report
	s.mu.Unlock()

	s.logger.Info("sweep finished",
		logger.Int("scanned", report.Scanned),
		logger.Int("expired", len(report.Expired)),
		logger.Int("skipped", report.Skipped),
		logger.Int("failed", report.Failed),
		logger.Duration("took", report.FinishedAt.Sub(report.StartedAt)),
	)

	return report, err
}

// expire moves one booking Pending -> Expired. A lost race is not an error.
func (s *Sweeper) expire(ctx context.Context, b *domain.Booking, report *SweepReport) {
	updated, err := s.bookings.Transition(ctx, domain.Transition{
		BookingID: b.ID,
		From:      []domain.BookingStatus{domain.BookingStatusPending},
		To:        domain.BookingStatusExpired,
		Reason:    expiryReason,
	})
	if err != nil {
		var se *domain.StatusError
		if errors.As(err, &se) {
			report.Skipped++
			s.logger.Info("sweep skipped booking",
				logger.String("booking_id", b.ID),
				logger.String("status", string(se.Current)),
			)
			return
		}
		report.Failed++
		s.logger.Error("failed to expire booking",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	report.Expired = append(report.Expired, updated.ID)
	s.logger.Info("booking expired",
		logger.String("booking_id", updated.ID),
		logger.String("from", string(domain.BookingStatusPending)),
		logger.String("to", string(updated.Status)),
		logger.Time("pending_since", b.PendingSince),
	)

	if s.notifier == nil {
		return
	}
	s.notifier.Notify(context.WithoutCancel(ctx), domain.Notification{
		BookingID: updated.ID,
		Event:     domain.EventBookingExpired,
		Audience:  domain.AudienceCustomer,
		Version:   updated.UpdatedAt,
	})
}

// CleanupSessions removes sessions idle for longer than SessionMaxIdle.
func (s *Sweeper) CleanupSessions(ctx context.Context) (int64, error) {
	idleSince := s.now().Add(-s.cfg.SessionMaxIdle)

	n, err := s.sessions.DeleteInactive(ctx, idleSince)
	if err != nil {
		return 0, fmt.Errorf("delete inactive sessions: %w", err)
	}

	s.mu.Lock()
	s.lastCleanup = s.now()
	s.sessionsRemoved += n
	s.mu.Unlock()

	if n > 0 {
		s.logger.Info("inactive sessions removed",
			logger.Int64("count", n),
			logger.Time("idle_since", idleSince),
		)
	}
	return n, nil
}

func (s *Sweeper) scheduledSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.SweepTimeout)
	defer cancel()

	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Error("scheduled sweep failed",
			logger.String("error", err.Error()),
		)
	}
}

func (s *Sweeper) scheduledCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.SweepTimeout)
	defer cancel()

	if _, err := s.CleanupSessions(ctx); err != nil {
		s.logger.Error("session cleanup failed",
			logger.String("error", err.Error()),
		)
	}
}

// cronLogger adapts logger.Logger to cron.Logger.
type cronLogger struct {
	log logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debugw("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Errorw("cron: "+msg, append(keysAndValues, "error", err.Error())...)
}
