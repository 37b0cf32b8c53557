package dispatch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	texts    map[int64][]string
	docs     map[int64][]string
	failChat int64 // sends to this chat fail
}

func newRecordingSender() *recordingSender {
	return &recordingSender{
		texts: make(map[int64][]string),
		docs:  make(map[int64][]string),
	}
}

func (r *recordingSender) SendText(_ context.Context, chatID int64, text string) error {
	if chatID == r.failChat {
		return errors.New("chat unreachable")
	}
	r.texts[chatID] = append(r.texts[chatID], text)
	return nil
}

func (r *recordingSender) SendDocument(_ context.Context, chatID int64, filename, _ string, _ []byte) error {
	if chatID == r.failChat {
		return errors.New("chat unreachable")
	}
	r.docs[chatID] = append(r.docs[chatID], filename)
	return nil
}

func TestSplitMessageShort(t *testing.T) {
	parts := SplitMessage("короткий текст", MaxMessageLen)
	require.Len(t, parts, 1)
	assert.Equal(t, "короткий текст", parts[0])
}

func TestSplitMessageExactLimit(t *testing.T) {
	text := strings.Repeat("ж", MaxMessageLen)
	parts := SplitMessage(text, MaxMessageLen)
	require.Len(t, parts, 1)
	assert.Equal(t, text, parts[0])
}

func TestSplitMessageReconstructs(t *testing.T) {
	text := strings.Repeat("абвгд ", 2000) // 12000 runes
	parts := SplitMessage(text, MaxMessageLen)
	require.Len(t, parts, 3)
	for _, part := range parts[:len(parts)-1] {
		assert.Len(t, []rune(part), MaxMessageLen)
	}
	assert.Equal(t, text, strings.Join(parts, ""))
}

func TestDeliverFansOutToBothChannels(t *testing.T) {
	sender := newRecordingSender()
	d := NewDispatcher(sender, 777, zerolog.Nop())

	d.Deliver(context.Background(), Delivery{
		UserChatID:  42,
		InsuredName: "Иванов",
		Transcript:  "заявка",
		Document:    []byte("PK..."),
		Filename:    "Заявка_Иванов.docx",
	})

	require.NotEmpty(t, sender.texts[777])
	assert.Equal(t, "заявка", sender.texts[777][0])
	assert.Equal(t, []string{"Заявка_Иванов.docx"}, sender.docs[777])

	require.Len(t, sender.texts[42], 2)
	assert.Contains(t, sender.texts[42][0], "Заявка успешно оформлена")
	assert.Equal(t, userTranscriptPrefix+"заявка", sender.texts[42][1])
	assert.Equal(t, []string{"Заявка_Иванов.docx"}, sender.docs[42])
}

func TestDeliverSkipsManagerWhenUnconfigured(t *testing.T) {
	sender := newRecordingSender()
	d := NewDispatcher(sender, 0, zerolog.Nop())

	d.Deliver(context.Background(), Delivery{
		UserChatID: 42,
		Transcript: "заявка",
		Document:   []byte("PK"),
		Filename:   "f.docx",
	})

	assert.Len(t, sender.texts, 1)
	assert.NotEmpty(t, sender.texts[42])
}

func TestDeliverManagerFailureDoesNotBlockUser(t *testing.T) {
	sender := newRecordingSender()
	sender.failChat = 777
	d := NewDispatcher(sender, 777, zerolog.Nop())

	d.Deliver(context.Background(), Delivery{
		UserChatID: 42,
		Transcript: "заявка",
		Document:   []byte("PK"),
		Filename:   "f.docx",
	})

	require.Len(t, sender.texts[42], 2)
	assert.Equal(t, []string{"f.docx"}, sender.docs[42])
}

func TestDeliverChunksLongTranscript(t *testing.T) {
	sender := newRecordingSender()
	d := NewDispatcher(sender, 777, zerolog.Nop())

	long := strings.Repeat("я", MaxMessageLen+100)
	d.Deliver(context.Background(), Delivery{
		UserChatID: 42,
		Transcript: long,
		Document:   []byte("PK"),
		Filename:   "f.docx",
	})

	require.Len(t, sender.texts[777], 2)
	assert.Equal(t, long, strings.Join(sender.texts[777], ""))
}
