package domain

import "time"

type SessionSource string

const (
	// SessionSourceMessaging is the persistent messaging channel (Telegram).
	SessionSourceMessaging SessionSource = "messaging"
	// SessionSourceWeb is the ephemeral web chat; messages are polled from history.
	SessionSourceWeb SessionSource = "web"
)

type Session struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	Source     SessionSource `json:"source"`
	PropertyID *string       `json:"property_id,omitempty"`
	BookingID  *string       `json:"booking_id,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
