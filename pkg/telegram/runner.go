package telegram

import (
	"context"
	"time"

	"storefront-bot/internal/pkg/logger"
	"storefront-bot/pkg/dialogue"
	"storefront-bot/pkg/dispatch"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Handler interface {
	Handle(ctx context.Context, ev dialogue.Event) []dialogue.Outbound
}

type Deduper interface {
	FirstSeen(ctx context.Context, updateID int) bool
}

type Submitter interface {
	Submit(ctx context.Context, key int64, task dispatch.Task) error
}

type Runner struct {
	bot         botAPI
	handler     Handler
	dedupe      Deduper
	dispatcher  Submitter
	logger      logger.ILogger
	pollTimeout time.Duration
	now         func() time.Time
}

func NewRunner(bot botAPI, handler Handler, dedupe Deduper, dispatcher Submitter, pollTimeout time.Duration, log logger.ILogger) *Runner {
	return &Runner{
		bot:         bot,
		handler:     handler,
		dedupe:      dedupe,
		dispatcher:  dispatcher,
		logger:      log,
		pollTimeout: pollTimeout,
		now:         time.Now,
	}
}

// Run long-polls until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = int(r.pollTimeout.Seconds())
	cfg.AllowedUpdates = []string{"message", "callback_query"}

	updates := r.bot.GetUpdatesChan(cfg)
	r.logger.Info("Telegram", "Polling for updates", map[string]interface{}{
		"poll_timeout": r.pollTimeout.String(),
	})

	for {
		select {
		case <-ctx.Done():
			r.bot.StopReceivingUpdates()
			r.logger.Info("Telegram", "Stopped polling", nil)
			return
		case u, ok := <-updates:
			if !ok {
				return
			}
			r.accept(ctx, u)
		}
	}
}

// accept queues the update on its chat's shard. The dedupe check runs inside
// the task so an update that could not be queued is not marked as processed.
func (r *Runner) accept(ctx context.Context, u tgbotapi.Update) {
	ev, ok := ToEvent(u, r.now())
	if !ok {
		return
	}

	err := r.dispatcher.Submit(ctx, ev.ChatID, func(ctx context.Context) {
		if r.dedupe != nil && !r.dedupe.FirstSeen(ctx, u.UpdateID) {
			r.logger.Debug("Telegram", "Skipping redelivered update", map[string]interface{}{
				"update_id": u.UpdateID,
			})
			return
		}
		r.process(ctx, ev)
	})
	if err != nil {
		r.logger.Warn("Telegram", "Failed to queue update", map[string]interface{}{
			"update_id": u.UpdateID,
			"chat_id":   ev.ChatID,
			"error":     err.Error(),
		})
	}
}

// process sends the replies in order. A failed send is logged and the rest
// of the sequence still goes out.
func (r *Runner) process(ctx context.Context, ev dialogue.Event) {
	for i, o := range r.handler.Handle(ctx, ev) {
		if _, err := r.bot.Send(Render(o)); err != nil {
			r.logger.Error("Telegram", "Failed to send message", map[string]interface{}{
				"chat_id":  o.ChatID,
				"position": i,
				"error":    err.Error(),
			})
		}
	}

	if ev.CallbackID != "" {
		if _, err := r.bot.Request(tgbotapi.NewCallback(ev.CallbackID, "")); err != nil {
			r.logger.Warn("Telegram", "Failed to answer callback", map[string]interface{}{
				"chat_id": ev.ChatID,
				"error":   err.Error(),
			})
		}
	}
}
