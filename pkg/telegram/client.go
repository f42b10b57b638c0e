// Package telegram connects the dialogue controller to the Telegram Bot API
// through long polling.
package telegram

import (
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// botAPI is the part of *tgbotapi.BotAPI the runner uses.
type botAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type ClientConfig struct {
	Token       string
	PollTimeout time.Duration
	SendTimeout time.Duration
	Debug       bool
}

// NewBotAPI authenticates with the token. Every HTTP call is bounded by
// SendTimeout, getUpdates additionally by the long-poll window.
func NewBotAPI(cfg ClientConfig) (*tgbotapi.BotAPI, error) {
	client := &http.Client{Timeout: cfg.PollTimeout + cfg.SendTimeout}
	bot, err := tgbotapi.NewBotAPIWithClient(cfg.Token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	bot.Debug = cfg.Debug
	return bot, nil
}
