package notification

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/integration"
	"github.com/wb-go/wbf/logger"
)

// Messenger delivers text over the persistent messaging channel.
type Messenger interface {
	Send(ctx context.Context, chatID int64, text string) (string, error)
}

type TelegramMessenger struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

// NewTelegramMessenger connects to the Bot API. Every request is bounded by timeout.
func NewTelegramMessenger(token string, timeout time.Duration, log logger.Logger) (*TelegramMessenger, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, &http.Client{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	log.Info("telegram bot connected", logger.String("username", bot.Self.UserName))

	return &TelegramMessenger{bot: bot, logger: log}, nil
}

func (m *TelegramMessenger) Send(ctx context.Context, chatID int64, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sent, err := m.bot.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		m.logger.Warn("telegram send failed",
			logger.Int64("chat_id", chatID),
			logger.String("error", err.Error()),
		)
		// 4xx от Bot API (бот заблокирован, чат не найден) повторять бессмысленно
		var apiErr *tgbotapi.Error
		if errors.As(err, &apiErr) && integration.IsClientStatus(apiErr.Code) {
			return "", integration.Permanent(err)
		}
		return "", err
	}

	return strconv.Itoa(sent.MessageID), nil
}
