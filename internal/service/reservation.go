package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const maxCodeAttempts = 3

type ReservationService struct {
	bookingRepo  ports.BookingRepo
	propertyRepo ports.PropertyRepo
	userRepo     ports.UserRepo
	sessionRepo  ports.SessionRepo
	instructions string
	logger       logger.Logger
	now          func() time.Time
}

func NewReservationService(
	bookingRepo ports.BookingRepo,
	propertyRepo ports.PropertyRepo,
	userRepo ports.UserRepo,
	sessionRepo ports.SessionRepo,
	paymentInstructions string,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		instructions: paymentInstructions,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Reserve creates a Pending booking. A taken slot is a business outcome and is
// never retried.
func (s *ReservationService) Reserve(ctx context.Context, in domain.ReserveInput) (*domain.ReserveResult, error) {
	buyerName, buyerID, err := validateBuyer(in.BuyerName, in.BuyerIDNumber)
	if err != nil {
		return nil, err
	}

	shift, err := domain.ParseShift(string(in.Shift))
	if err != nil {
		return nil, err
	}

	now := s.now()
	date := domain.DateOnly(in.Date)
	if date.Before(domain.DateOnly(now)) {
		return nil, fmt.Errorf("%w: booking date %s is in the past", domain.ErrValidation, date.Format(domain.DateLayout))
	}

	if _, err = s.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	property, err := s.propertyRepo.GetByID(ctx, in.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("check property: %w", err)
	}

	price, err := s.propertyRepo.GetPrice(ctx, property.ID, date.Weekday(), shift)
	if err != nil {
		return nil, fmt.Errorf("get price: %w", err)
	}

	booking := &domain.Booking{
		UserID:        in.UserID,
		PropertyID:    property.ID,
		BookingDate:   date,
		Shift:         shift,
		BuyerName:     buyerName,
		BuyerIDNumber: buyerID,
		TotalCost:     price,
		Status:        domain.BookingStatusPending,
		PendingSince:  now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// Коллизия кода почти невозможна, но при ней берём новый id.
	for attempt := 1; ; attempt++ {
		booking.ID = uuid.New().String()
		booking.Code = domain.BookingCode(buyerName, date, shift, booking.ID)

		err = s.bookingRepo.TryCreate(ctx, booking)
		if !errors.Is(err, domain.ErrBookingCodeTaken) || attempt == maxCodeAttempts {
			break
		}
		s.logger.Warn("booking code collision, regenerating",
			logger.String("code", booking.Code),
			logger.Int("attempt", attempt),
		)
	}
	if err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			return nil, fmt.Errorf("%w: %s %s on %s",
				domain.ErrSlotTaken, property.Name, shift, date.Format(domain.DateLayout))
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("code", booking.Code),
		logger.String("property_id", booking.PropertyID),
		logger.String("user_id", booking.UserID),
		logger.String("to", string(booking.Status)),
	)

	s.linkSession(ctx, booking)

	return &domain.ReserveResult{
		Booking: booking,
		Message: reservationMessage(booking, property, s.instructions),
	}, nil
}

// linkSession threads the new booking into the user's current conversation.
func (s *ReservationService) linkSession(ctx context.Context, b *domain.Booking) {
	session, err := s.sessionRepo.GetLatestByUser(ctx, b.UserID)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			s.logger.Warn("failed to look up session for booking",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
		}
		return
	}

	if err = s.sessionRepo.AttachBooking(ctx, session.ID, b.PropertyID, b.ID); err != nil {
		s.logger.Warn("failed to attach booking to session",
			logger.String("booking_id", b.ID),
			logger.String("session_id", session.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *ReservationService) CheckAvailability(
	ctx context.Context, propertyID string, date time.Time, shift domain.Shift,
) (*domain.Availability, error) {
	shift, err := domain.ParseShift(string(shift))
	if err != nil {
		return nil, err
	}

	if _, err = s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return nil, fmt.Errorf("check property: %w", err)
	}

	slot := domain.Slot{PropertyID: propertyID, Date: domain.DateOnly(date), Shift: shift}
	taken, err := s.bookingRepo.IsSlotTaken(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}

	res := &domain.Availability{Slot: slot, Available: !taken}

	price, err := s.propertyRepo.GetPrice(ctx, propertyID, slot.Date.Weekday(), shift)
	switch {
	case err == nil:
		res.Price = &price
	case errors.Is(err, domain.ErrPricingNotFound):
		// слот без цены не бронируется
		res.Available = false
	default:
		return nil, fmt.Errorf("get price: %w", err)
	}

	return res, nil
}

func (s *ReservationService) Get(ctx context.Context, ref string) (*domain.Booking, error) {
	return s.bookingRepo.Get(ctx, ref)
}

func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	return s.bookingRepo.ListByUser(ctx, userID)
}
