// Package dispatch fans the assembled application out to the end user
// and the manager channel.
package dispatch

import (
	"context"

	"github.com/rs/zerolog"
)

// MaxMessageLen is the Telegram text message limit.
const MaxMessageLen = 4096

const (
	successMessage = "✅ Заявка успешно оформлена!\n\n" +
		"В течении 1 часа с Вами свяжется менеджер, для возможного уточнения деталей и дальнейшего оформления!\n\n" +
		"С Уважением, АО 'Альфастрахование'"

	userTranscriptPrefix = "📋 Ваша заявка:\n\n"
	userDocCaption       = "📄 Ваша заявка на страхование"
)

// Sender abstracts the outbound transport. Dispatcher messages are
// terminal for the dialogue, so implementations may clear the reply
// keyboard on every text they send.
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendDocument(ctx context.Context, chatID int64, filename, caption string, data []byte) error
}

// Delivery is one assembled application ready to be sent.
type Delivery struct {
	UserChatID  int64
	InsuredName string
	Transcript  string
	Document    []byte
	Filename    string
}

// Dispatcher sends each payload to each channel independently: one
// failed send is logged and never blocks the remaining sends.
type Dispatcher struct {
	sender        Sender
	managerChatID int64 // 0 means manager delivery is skipped entirely
	log           zerolog.Logger
}

func NewDispatcher(sender Sender, managerChatID int64, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		sender:        sender,
		managerChatID: managerChatID,
		log:           log,
	}
}

// Deliver sends the transcript and document to the manager (when
// configured) and the success message, transcript and document to the
// user, in that order.
func (d *Dispatcher) Deliver(ctx context.Context, del Delivery) {
	if d.managerChatID != 0 {
		d.sendChunked(ctx, d.managerChatID, del.Transcript)
		if err := d.sender.SendDocument(ctx, d.managerChatID, del.Filename, "📄 Заявка от "+del.InsuredName, del.Document); err != nil {
			d.log.Error().Err(err).Int64("chat_id", d.managerChatID).Msg("error sending document to manager")
		}
	}

	if err := d.sender.SendText(ctx, del.UserChatID, successMessage); err != nil {
		d.log.Error().Err(err).Int64("chat_id", del.UserChatID).Msg("error sending confirmation")
	}
	d.sendChunked(ctx, del.UserChatID, userTranscriptPrefix+del.Transcript)
	if err := d.sender.SendDocument(ctx, del.UserChatID, del.Filename, userDocCaption, del.Document); err != nil {
		d.log.Error().Err(err).Int64("chat_id", del.UserChatID).Msg("error sending document to user")
	}
}

func (d *Dispatcher) sendChunked(ctx context.Context, chatID int64, text string) {
	for _, part := range SplitMessage(text, MaxMessageLen) {
		if err := d.sender.SendText(ctx, chatID, part); err != nil {
			d.log.Error().Err(err).Int64("chat_id", chatID).Msg("error sending message part")
		}
	}
}

// SplitMessage splits text into maximum-length chunks, preserving
// character order; concatenating the chunks reconstructs the input.
func SplitMessage(text string, max int) []string {
	runes := []rune(text)
	if len(runes) <= max {
		return []string{text}
	}
	var parts []string
	for start := 0; start < len(runes); start += max {
		end := start + max
		if end > len(runes) {
			end = len(runes)
		}
		parts = append(parts, string(runes[start:end]))
	}
	return parts
}
