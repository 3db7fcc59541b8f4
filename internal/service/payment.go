package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PaymentConfig struct {
	// AmountTolerance is the absolute difference accepted between a claim and the total.
	AmountTolerance     decimal.Decimal
	ConfidenceThreshold float64
}

func DefaultPaymentConfig() PaymentConfig {
	return PaymentConfig{
		AmountTolerance:     decimal.NewFromInt(2),
		ConfidenceThreshold: 0.7,
	}
}

type PaymentService struct {
	bookingRepo ports.BookingRepo
	oracle      ports.ScreenshotOracle
	images      ports.ImageHost
	notifier    ports.BookingNotifier
	cfg         PaymentConfig
	logger      logger.Logger
	now         func() time.Time
}

func NewPaymentService(
	bookingRepo ports.BookingRepo,
	oracle ports.ScreenshotOracle,
	images ports.ImageHost,
	notifier ports.BookingNotifier,
	cfg PaymentConfig,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		bookingRepo: bookingRepo,
		oracle:      oracle,
		images:      images,
		notifier:    notifier,
		cfg:         cfg,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

var submittable = []domain.BookingStatus{domain.BookingStatusPending, domain.BookingStatusWaiting}

func (s *PaymentService) SubmitScreenshot(
	ctx context.Context, bookingRef string, in domain.ScreenshotInput,
) (*domain.SubmissionResult, error) {
	if in.URL == "" && len(in.Data) == 0 {
		return nil, fmt.Errorf("%w: screenshot url or image is required", domain.ErrValidation)
	}

	b, err := s.openBooking(ctx, bookingRef)
	if err != nil {
		return nil, err
	}

	url := in.URL
	if len(in.Data) > 0 {
		if s.images == nil {
			return nil, fmt.Errorf("%w: image upload is not configured", domain.ErrIntegration)
		}
		if url, err = s.images.Upload(ctx, in.Data, in.Filename); err != nil {
			return nil, fmt.Errorf("upload screenshot: %w", err)
		}
	}

	if s.oracle == nil {
		return nil, fmt.Errorf("%w: screenshot analysis is not configured", domain.ErrIntegration)
	}
	analysis, err := s.oracle.Extract(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("analyze screenshot: %w", err)
	}

	if !analysis.IsPaymentScreenshot {
		s.logger.Info("screenshot rejected: not a payment",
			logger.String("booking_id", b.ID),
		)
		return nil, domain.ErrNotPaymentScreenshot
	}
	if analysis.Confidence < s.cfg.ConfidenceThreshold {
		return nil, fmt.Errorf("%w (confidence %.2f)", domain.ErrLowConfidence, analysis.Confidence)
	}
	// без суммы нельзя сверить оплату с итогом, в Waiting не пускаем
	if analysis.Amount == nil {
		return nil, domain.ErrAmountUnreadable
	}
	if !withinTolerance(b.TotalCost, *analysis.Amount, s.cfg.AmountTolerance) {
		return nil, &domain.AmountMismatchError{Expected: b.TotalCost, Provided: *analysis.Amount}
	}

	confidence := analysis.Confidence
	claim := &domain.PaymentClaim{
		Amount:        analysis.Amount,
		SenderName:    analysis.SenderName,
		TransactionID: analysis.TransactionID,
		Source:        domain.ClaimSourceScreenshot,
		Confidence:    &confidence,
		ScreenshotURL: url,
		SubmittedAt:   s.now(),
	}

	return s.submit(ctx, b, claim)
}

func (s *PaymentService) SubmitManualDetails(
	ctx context.Context, bookingRef string, in domain.ManualPaymentInput,
) (*domain.SubmissionResult, error) {
	senderName := strings.TrimSpace(in.SenderName)
	if senderName == "" {
		return nil, fmt.Errorf("%w: sender name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Amount) == "" {
		return nil, fmt.Errorf("%w: amount is required", domain.ErrValidation)
	}

	amount, err := normalizeAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	b, err := s.openBooking(ctx, bookingRef)
	if err != nil {
		return nil, err
	}

	if !withinTolerance(b.TotalCost, amount, s.cfg.AmountTolerance) {
		return nil, &domain.AmountMismatchError{Expected: b.TotalCost, Provided: amount}
	}

	claim := &domain.PaymentClaim{
		Amount:        &amount,
		SenderName:    senderName,
		SenderPhone:   strings.TrimSpace(in.SenderPhone),
		TransactionID: strings.TrimSpace(in.TransactionID),
		Source:        domain.ClaimSourceManual,
		SubmittedAt:   s.now(),
	}

	return s.submit(ctx, b, claim)
}

// submit moves the booking to Waiting and tells admin and customer.
func (s *PaymentService) submit(
	ctx context.Context, b *domain.Booking, claim *domain.PaymentClaim,
) (*domain.SubmissionResult, error) {
	updated, err := s.bookingRepo.Transition(ctx, domain.Transition{
		BookingID: b.ID,
		From:      submittable,
		To:        domain.BookingStatusWaiting,
		Claim:     claim,
	})
	if err != nil {
		return nil, transitionErr(err)
	}

	s.logTransition(b, updated, "payment claim submitted")

	nctx := context.WithoutCancel(ctx)
	res := &domain.SubmissionResult{Booking: updated}
	res.AdminDelivery = s.notify(nctx, domain.Notification{
		BookingID: updated.ID,
		Event:     domain.EventPaymentReceived,
		Audience:  domain.AudienceAdmin,
		Version:   updated.UpdatedAt,
	})
	res.CustomerDelivery = s.notify(nctx, domain.Notification{
		BookingID: updated.ID,
		Event:     domain.EventPaymentReceived,
		Audience:  domain.AudienceCustomer,
		Version:   updated.UpdatedAt,
	})

	return res, nil
}

// Verify confirms the payment. Confirming an already confirmed booking
// succeeds with AlreadyConfirmed and writes nothing.
func (s *PaymentService) Verify(ctx context.Context, bookingRef, verifiedBy, notes string) (*domain.VerifyResult, error) {
	verifiedBy = strings.TrimSpace(verifiedBy)
	if verifiedBy == "" {
		return nil, fmt.Errorf("%w: verifier is required", domain.ErrValidation)
	}

	b, err := s.bookingRepo.Get(ctx, bookingRef)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	switch b.Status {
	case domain.BookingStatusConfirmed:
		return &domain.VerifyResult{Booking: b, AlreadyConfirmed: true}, nil
	case domain.BookingStatusExpired:
		return nil, notActive(b.Status)
	}

	updated, err := s.bookingRepo.Transition(ctx, domain.Transition{
		BookingID:  b.ID,
		From:       submittable,
		To:         domain.BookingStatusConfirmed,
		VerifiedBy: verifiedBy,
		Notes:      strings.TrimSpace(notes),
	})
	if err != nil {
		var se *domain.StatusError
		if errors.As(err, &se) && se.Current == domain.BookingStatusConfirmed {
			// параллельное подтверждение успело раньше
			current, getErr := s.bookingRepo.Get(ctx, b.ID)
			if getErr != nil {
				return nil, fmt.Errorf("get booking: %w", getErr)
			}
			return &domain.VerifyResult{Booking: current, AlreadyConfirmed: true}, nil
		}
		return nil, transitionErr(err)
	}

	s.logTransition(b, updated, "payment verified", logger.String("verified_by", verifiedBy))

	delivery := s.notify(context.WithoutCancel(ctx), domain.Notification{
		BookingID: updated.ID,
		Event:     domain.EventPaymentConfirmed,
		Audience:  domain.AudienceCustomer,
		Actor:     verifiedBy,
		Version:   updated.UpdatedAt,
	})

	return &domain.VerifyResult{Booking: updated, CustomerDelivery: delivery}, nil
}

// Reject sends the booking back to Pending so the buyer can resubmit.
func (s *PaymentService) Reject(ctx context.Context, bookingRef, reason, rejectedBy string) (*domain.RejectResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", domain.ErrValidation)
	}
	rejectedBy = strings.TrimSpace(rejectedBy)
	if rejectedBy == "" {
		return nil, fmt.Errorf("%w: rejecting admin is required", domain.ErrValidation)
	}

	b, err := s.bookingRepo.Get(ctx, bookingRef)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.Status.IsTerminal() {
		return nil, notActive(b.Status)
	}

	updated, err := s.bookingRepo.Transition(ctx, domain.Transition{
		BookingID:  b.ID,
		From:       submittable,
		To:         domain.BookingStatusPending,
		Reason:     reason,
		RejectedBy: rejectedBy,
	})
	if err != nil {
		return nil, transitionErr(err)
	}

	s.logTransition(b, updated, "payment rejected",
		logger.String("rejected_by", rejectedBy),
		logger.String("reason", reason),
	)

	delivery := s.notify(context.WithoutCancel(ctx), domain.Notification{
		BookingID: updated.ID,
		Event:     domain.EventPaymentRejected,
		Audience:  domain.AudienceCustomer,
		Actor:     rejectedBy,
		Reason:    reason,
		Version:   updated.UpdatedAt,
	})

	return &domain.RejectResult{Booking: updated, CustomerDelivery: delivery}, nil
}

func (s *PaymentService) openBooking(ctx context.Context, ref string) (*domain.Booking, error) {
	b, err := s.bookingRepo.Get(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !b.Status.IsActive() || b.Status == domain.BookingStatusConfirmed {
		return nil, notActive(b.Status)
	}
	return b, nil
}

func (s *PaymentService) notify(ctx context.Context, n domain.Notification) domain.Delivery {
	d := s.notifier.Notify(ctx, n)
	if d.Err != nil {
		s.logger.Warn("notification not delivered",
			logger.String("booking_id", n.BookingID),
			logger.String("event", string(n.Event)),
			logger.String("audience", string(n.Audience)),
			logger.String("channel", string(d.Channel)),
			logger.String("error", d.Err.Error()),
		)
	}
	return d
}

func (s *PaymentService) logTransition(from, to *domain.Booking, msg string, extra ...any) {
	args := []any{
		logger.String("booking_id", to.ID),
		logger.String("from", string(from.Status)),
		logger.String("to", string(to.Status)),
	}
	s.logger.Info(msg, append(args, extra...)...)
}

func notActive(current domain.BookingStatus) error {
	return fmt.Errorf("%w (status %s)", domain.ErrBookingNotActive, current)
}

// transitionErr turns a lost compare-and-swap into "booking no longer active".
func transitionErr(err error) error {
	var se *domain.StatusError
	if errors.As(err, &se) {
		return fmt.Errorf("%w (status %s)", domain.ErrBookingNotActive, se.Current)
	}
	return fmt.Errorf("transition booking: %w", err)
}
