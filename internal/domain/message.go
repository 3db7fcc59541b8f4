package domain

import (
	"fmt"
	"time"
)

type Sender string

const (
	SenderSystem Sender = "system"
	SenderAdmin  Sender = "admin"
)

type Channel string

const (
	ChannelMessaging Channel = "messaging"
	ChannelWeb       Channel = "web"
	ChannelNone      Channel = "none"
)

type Audience string

const (
	AudienceCustomer Audience = "customer"
	AudienceAdmin    Audience = "admin"
)

type EventKind string

const (
	EventPaymentReceived  EventKind = "payment_received"
	EventPaymentConfirmed EventKind = "payment_confirmed"
	EventPaymentRejected  EventKind = "payment_rejected"
	EventBookingExpired   EventKind = "booking_expired"
)

// Message is both the audit record of a delivery attempt and, for the web
// channel, the delivered message itself.
type Message struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	SessionID  *string   `json:"session_id,omitempty"`
	BookingID  string    `json:"booking_id"`
	Sender     Sender    `json:"sender"`
	Channel    Channel   `json:"channel"`
	Event      EventKind `json:"event"`
	Audience   Audience  `json:"audience"`
	Content    string    `json:"content"`
	DedupKey   string    `json:"-"`
	Delivered  bool      `json:"delivered"`
	ExternalID string    `json:"external_id,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Notification asks the router to tell one audience about one booking event.
type Notification struct {
	BookingID string
	Event     EventKind
	Audience  Audience
	// Actor is who caused the event: an admin id for confirm/reject, empty for the system.
	Actor  string
	Reason string
	// Version is the booking's updated_at right after the transition being
	// announced. Zero means "whatever the booking carries now".
	Version time.Time
}

// DedupKey identifies one event occurrence for one audience, so a
// resubmission after a rejection is a new occurrence.
func (n Notification) DedupKey(version time.Time) string {
	if !n.Version.IsZero() {
		version = n.Version
	}
	return fmt.Sprintf("%s:%s:%s:%d", n.BookingID, n.Event, n.Audience, version.UnixNano())
}

func (n Notification) Sender() Sender {
	if n.Actor != "" {
		return SenderAdmin
	}
	return SenderSystem
}

type Delivery struct {
	Delivered bool
	Duplicate bool
	Channel   Channel
	MessageID string
	Err       error
}
