// Package notification routes booking events to the channel the recipient is
// reachable on and keeps an audit row for every attempt.
package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/integration"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type Router struct {
	bookings  ports.BookingRepo
	users     ports.UserRepo
	sessions  ports.SessionRepo
	messages  ports.MessageRepo
	messenger Messenger
	policy    integration.Policy
	adminID   string
	logger    logger.Logger
	now       func() time.Time
}

// NewRouter builds the router. messenger may be nil when the messaging
// channel is not configured; such recipients fall back to the web channel or none.
func NewRouter(
	bookings ports.BookingRepo,
	users ports.UserRepo,
	sessions ports.SessionRepo,
	messages ports.MessageRepo,
	messenger Messenger,
	policy integration.Policy,
	adminUserID string,
	logger logger.Logger,
) *Router {
	return &Router{
		bookings:  bookings,
		users:     users,
		sessions:  sessions,
		messages:  messages,
		messenger: messenger,
		policy:    policy,
		adminID:   adminUserID,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Notify never returns an error to the caller; problems are reported in Delivery.Err.
func (r *Router) Notify(ctx context.Context, n domain.Notification) domain.Delivery {
	b, err := r.bookings.Get(ctx, n.BookingID)
	if err != nil {
		return r.fail(n, domain.ChannelNone, fmt.Errorf("load booking: %w", err))
	}

	recipientID := b.UserID
	if n.Audience == domain.AudienceAdmin {
		recipientID = r.adminID
	}
	if recipientID == "" {
		return r.fail(n, domain.ChannelNone, fmt.Errorf("%w: admin recipient is not configured", domain.ErrNoChannel))
	}

	user, err := r.users.GetByID(ctx, recipientID)
	if err != nil {
		return r.fail(n, domain.ChannelNone, fmt.Errorf("load recipient: %w", err))
	}

	channel, sessionID := r.resolve(ctx, user)

	msg := &domain.Message{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		SessionID: sessionID,
		BookingID: b.ID,
		Sender:    n.Sender(),
		Channel:   channel,
		Event:     n.Event,
		Audience:  n.Audience,
		Content:   render(n, b),
		DedupKey:  n.DedupKey(b.UpdatedAt),
		CreatedAt: r.now(),
	}
	switch channel {
	case domain.ChannelWeb:
		// для веба запись и есть доставка
		msg.Delivered = true
	case domain.ChannelNone:
		msg.Error = domain.ErrNoChannel.Error()
	}

	if err = r.messages.Claim(ctx, msg); err != nil {
		if errors.Is(err, domain.ErrDuplicateMessage) {
			r.logger.Debug("notification already sent",
				logger.String("booking_id", b.ID),
				logger.String("dedup_key", msg.DedupKey),
			)
			return domain.Delivery{Duplicate: true, Channel: channel}
		}
		return r.fail(n, channel, fmt.Errorf("record message: %w", err))
	}

	switch channel {
	case domain.ChannelWeb:
		r.logDelivered(n, msg)
		return domain.Delivery{Delivered: true, Channel: channel, MessageID: msg.ID}
	case domain.ChannelNone:
		return r.fail(n, channel, domain.ErrNoChannel, msg.ID)
	}

	var externalID string
	sendErr := r.policy.Call(ctx, "telegram send", func(ctx context.Context) error {
		id, err := r.messenger.Send(ctx, *user.ChatID, msg.Content)
		externalID = id
		return err
	})

	errText := ""
	if sendErr != nil {
		errText = sendErr.Error()
	}
	if err = r.messages.MarkOutcome(ctx, msg.ID, sendErr == nil, externalID, errText); err != nil {
		r.logger.Error("failed to record delivery outcome",
			logger.String("message_id", msg.ID),
			logger.String("error", err.Error()),
		)
	}

	if sendErr != nil {
		return r.fail(n, channel, sendErr, msg.ID)
	}

	r.logDelivered(n, msg)
	return domain.Delivery{Delivered: true, Channel: channel, MessageID: msg.ID}
}

// resolve picks the channel: a web session wins, then a messaging chat id, else none.
func (r *Router) resolve(ctx context.Context, user *domain.User) (domain.Channel, *string) {
	var sessionID *string

	session, err := r.sessions.GetLatestByUser(ctx, user.ID)
	switch {
	case err == nil:
		id := session.ID
		sessionID = &id
		if session.Source == domain.SessionSourceWeb {
			return domain.ChannelWeb, sessionID
		}
	case !errors.Is(err, domain.ErrSessionNotFound):
		r.logger.Warn("failed to load session, falling back to messaging",
			logger.String("user_id", user.ID),
			logger.String("error", err.Error()),
		)
	}

	if user.ChatID != nil && r.messenger != nil {
		return domain.ChannelMessaging, sessionID
	}
	return domain.ChannelNone, sessionID
}

func (r *Router) fail(n domain.Notification, channel domain.Channel, err error, messageID ...string) domain.Delivery {
	r.logger.Warn("notification failed",
		logger.String("booking_id", n.BookingID),
		logger.String("event", string(n.Event)),
		logger.String("audience", string(n.Audience)),
		logger.String("channel", string(channel)),
		logger.String("error", err.Error()),
	)

	d := domain.Delivery{Channel: channel, Err: err}
	if len(messageID) > 0 {
		d.MessageID = messageID[0]
	}
	return d
}

func (r *Router) logDelivered(n domain.Notification, msg *domain.Message) {
	r.logger.Info("notification delivered",
		logger.String("booking_id", n.BookingID),
		logger.String("event", string(n.Event)),
		logger.String("audience", string(n.Audience)),
		logger.String("channel", string(msg.Channel)),
		logger.String("message_id", msg.ID),
	)
}
