package handler

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// TelegramSender implements dispatch.Sender over the bot API. It is
// bound to the bot instance after bot.New, since the bot itself is
// constructed with the message handler already wired.
type TelegramSender struct {
	bot *bot.Bot
}

func NewTelegramSender() *TelegramSender {
	return &TelegramSender{}
}

// Bind attaches the bot instance; must be called before the bot starts.
func (s *TelegramSender) Bind(b *bot.Bot) {
	s.bot = b
}

// SendText sends a plain text message. Dispatcher texts conclude the
// dialogue, so the reply keyboard is cleared.
func (s *TelegramSender) SendText(ctx context.Context, chatID int64, text string) error {
	_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: &models.ReplyKeyboardRemove{RemoveKeyboard: true},
	})
	if err != nil {
		return fmt.Errorf("error sending message: %w", err)
	}
	return nil
}

// SendDocument uploads the generated document as a named attachment.
func (s *TelegramSender) SendDocument(ctx context.Context, chatID int64, filename, caption string, data []byte) error {
	_, err := s.bot.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID: chatID,
		Document: &models.InputFileUpload{
			Filename: filename,
			Data:     bytes.NewReader(data),
		},
		Caption: caption,
	})
	if err != nil {
		return fmt.Errorf("error sending document: %w", err)
	}
	return nil
}
