package telegram

import (
	"strings"
	"time"

	"storefront-bot/pkg/dialogue"
	"storefront-bot/pkg/query"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ToEvent maps an update to a dialogue event. ok is false for updates the bot
// does not react to (edits, channel posts, callbacks without a message, ...).
func ToEvent(u tgbotapi.Update, at time.Time) (ev dialogue.Event, ok bool) {
	if cb := u.CallbackQuery; cb != nil {
		if cb.Message == nil || cb.Message.Chat == nil {
			return dialogue.Event{}, false
		}
		return dialogue.Event{
			ChatID:     cb.Message.Chat.ID,
			Kind:       dialogue.EventButton,
			At:         at,
			Button:     cb.Data,
			CallbackID: cb.ID,
		}, true
	}

	msg := u.Message
	if msg == nil || msg.Chat == nil {
		return dialogue.Event{}, false
	}

	ev = dialogue.Event{ChatID: msg.Chat.ID, At: at}
	switch {
	case msg.Location != nil:
		ev.Kind = dialogue.EventLocation
		ev.Location = query.Point{Latitude: msg.Location.Latitude, Longitude: msg.Location.Longitude}
	case msg.IsCommand():
		ev.Kind = dialogue.EventCommand
		ev.Command = strings.ToLower(msg.Command())
		ev.Args = msg.CommandArguments()
	case msg.Text != "":
		ev.Kind = dialogue.EventText
		ev.Text = msg.Text
	default:
		return dialogue.Event{}, false
	}
	return ev, true
}
