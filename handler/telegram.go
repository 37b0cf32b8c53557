// Package handler connects the Telegram transport to the dialogue engine.
package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"insurancebot/flow"
)

type BotHandler struct {
	engine *flow.Engine
	log    zerolog.Logger
}

func New(engine *flow.Engine, log zerolog.Logger) *BotHandler {
	return &BotHandler{engine: engine, log: log}
}

// Handle is the bot's default handler: it routes the entry and cancel
// commands and feeds everything else into the engine as a dialogue
// message.
func (h *BotHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID
	firstName := update.Message.From.FirstName
	text := update.Message.Text

	h.log.Debug().Int64("user_id", userID).Str("text", text).Msg("message received")

	var reply flow.Reply
	var err error
	switch text {
	case "/start":
		reply, err = h.engine.Start(ctx, userID, firstName)
	case "/cancel":
		reply, err = h.engine.Cancel(ctx, userID)
	default:
		reply, err = h.engine.Handle(ctx, userID, firstName, text)
	}
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", userID).Msg("error handling message")
		reply = flow.Reply{
			Text:           "Произошла непредвиденная ошибка. Пожалуйста, попробуйте позже.",
			RemoveKeyboard: true,
		}
	}
	if reply.Text == "" {
		return
	}

	params := &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        reply.Text,
		ReplyMarkup: replyMarkup(reply),
	}
	if _, err := b.SendMessage(ctx, params); err != nil {
		h.log.Error().Err(err).Int64("chat_id", chatID).Msg("error sending message")
	}
}

func replyMarkup(reply flow.Reply) models.ReplyMarkup {
	if reply.RemoveKeyboard {
		return &models.ReplyKeyboardRemove{RemoveKeyboard: true}
	}
	if len(reply.Keyboard) == 0 {
		return nil
	}
	rows := make([][]models.KeyboardButton, 0, len(reply.Keyboard))
	for _, row := range reply.Keyboard {
		buttons := make([]models.KeyboardButton, 0, len(row))
		for _, label := range row {
			buttons = append(buttons, models.KeyboardButton{Text: label})
		}
		rows = append(rows, buttons)
	}
	return &models.ReplyKeyboardMarkup{
		Keyboard:       rows,
		ResizeKeyboard: true,
	}
}
