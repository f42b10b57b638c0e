package telegram

import (
	"storefront-bot/internal/constant"
	"storefront-bot/pkg/dialogue"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func mainMenu() tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(constant.MainMenu))
	for _, b := range constant.MainMenu {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

// Render converts one outbound message to the API call that sends it.
func Render(o dialogue.Outbound) tgbotapi.Chattable {
	switch o.Kind {
	case dialogue.OutboundLocation:
		loc := tgbotapi.NewLocation(o.ChatID, o.Location.Latitude, o.Location.Longitude)
		if o.LinkURL != "" {
			loc.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonURL(o.LinkLabel, o.LinkURL)),
			)
		}
		return loc

	case dialogue.OutboundLocationRequest:
		msg := tgbotapi.NewMessage(o.ChatID, o.Text)
		keyboard := tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButtonLocation(o.RequestLabel)),
		)
		keyboard.OneTimeKeyboard = true
		keyboard.ResizeKeyboard = true
		msg.ReplyMarkup = keyboard
		return msg

	default:
		msg := tgbotapi.NewMessage(o.ChatID, o.Text)
		if o.HTML {
			msg.ParseMode = tgbotapi.ModeHTML
		}
		if o.WithMenu {
			msg.ReplyMarkup = mainMenu()
		}
		return msg
	}
}
