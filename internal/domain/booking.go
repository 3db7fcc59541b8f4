package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusWaiting   BookingStatus = "waiting"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusExpired   BookingStatus = "expired"
)

// ActiveStatuses держат слот: не больше одной такой брони на (property, date, shift).
var ActiveStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusWaiting,
	BookingStatusConfirmed,
}

func (s BookingStatus) IsActive() bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusConfirmed || s == BookingStatusExpired
}

type Shift string

const (
	ShiftDay       Shift = "Day"
	ShiftNight     Shift = "Night"
	ShiftFullDay   Shift = "FullDay"
	ShiftFullNight Shift = "FullNight"
)

var Shifts = []Shift{ShiftDay, ShiftNight, ShiftFullDay, ShiftFullNight}

// ParseShift accepts the canonical names plus the spaced/underscored variants
// customers type ("full day", "Full_Night").
func ParseShift(s string) (Shift, error) {
	norm := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, sh := range Shifts {
		if strings.ToLower(string(sh)) == norm {
			return sh, nil
		}
	}
	return "", fmt.Errorf("%w: unknown shift %q", ErrValidation, s)
}

// Slot is the unit a booking reserves exclusively.
type Slot struct {
	PropertyID string
	Date       time.Time
	Shift      Shift
}

const DateLayout = "2006-01-02"

// DateOnly drops the clock part, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type ClaimSource string

const (
	ClaimSourceScreenshot ClaimSource = "screenshot"
	ClaimSourceManual     ClaimSource = "manual"
)

type PaymentClaim struct {
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	SenderName    string           `json:"sender_name,omitempty"`
	SenderPhone   string           `json:"sender_phone,omitempty"`
	TransactionID string           `json:"transaction_id,omitempty"`
	Source        ClaimSource      `json:"source"`
	Confidence    *float64         `json:"confidence,omitempty"`
	ScreenshotURL string           `json:"screenshot_url,omitempty"`
	SubmittedAt   time.Time        `json:"submitted_at"`
}

type Booking struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	UserID        string          `json:"user_id"`
	PropertyID    string          `json:"property_id"`
	BookingDate   time.Time       `json:"booking_date"`
	Shift         Shift           `json:"shift"`
	BuyerName     string          `json:"buyer_name"`
	BuyerIDNumber string          `json:"buyer_id_number"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Status        BookingStatus   `json:"status"`
	Reason        string          `json:"reason,omitempty"`
	VerifiedBy    string          `json:"verified_by,omitempty"`
	RejectedBy    string          `json:"rejected_by,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Claim         *PaymentClaim   `json:"claim,omitempty"`
	PendingSince  time.Time       `json:"pending_since"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (b *Booking) Slot() Slot {
	return Slot{PropertyID: b.PropertyID, Date: b.BookingDate, Shift: b.Shift}
}

// PendingCursor is a keyset position in the (PendingSince, ID) order of
// pending bookings.
type PendingCursor struct {
	PendingSince time.Time
	ID           string
}

func (b *Booking) PendingCursor() *PendingCursor {
	return &PendingCursor{PendingSince: b.PendingSince, ID: b.ID}
}

// After reports whether b sorts strictly after c.
func (c *PendingCursor) After(b *Booking) bool {
	if c == nil {
		return true
	}
	if !b.PendingSince.Equal(c.PendingSince) {
		return b.PendingSince.After(c.PendingSince)
	}
	return b.ID > c.ID
}

const bookingCodeSuffixLen = 8

// BookingCode builds the human readable reference, e.g.
// "Alice-2025-06-01-Day-3F2A9C1B". The suffix is taken from the booking id.
func BookingCode(buyerName string, date time.Time, shift Shift, bookingID string) string {
	name := strings.Join(strings.Fields(buyerName), "")

	suffix := strings.ToUpper(strings.ReplaceAll(bookingID, "-", ""))
	if len(suffix) > bookingCodeSuffixLen {
		suffix = suffix[:bookingCodeSuffixLen]
	}

	return fmt.Sprintf("%s-%s-%s-%s", name, date.Format(DateLayout), shift, suffix)
}

// Transition is a compare-and-swap status change. The store applies it only
// while the booking is in one of From.
type Transition struct {
	BookingID  string
	From       []BookingStatus
	To         BookingStatus
	Claim      *PaymentClaim
	Reason     string
	VerifiedBy string
	RejectedBy string
	Notes      string
}

func (t Transition) Allows(s BookingStatus) bool {
	for _, f := range t.From {
		if f == s {
			return true
		}
	}
	return false
}
