package contextx

import (
	"context"
	"strconv"
)

// ChatID identifies the Telegram chat a bot update came from.
type ChatID int64

type contextKeyChatID struct{}

func (c ChatID) String() string {
	return strconv.FormatInt(int64(c), 10)
}

func WithChatID(ctx context.Context, chatID ChatID) context.Context {
	return context.WithValue(ctx, contextKeyChatID{}, chatID)
}

func ChatIDFromContext(ctx context.Context) (ChatID, error) {
	return valueFromContext[ChatID](ctx, contextKeyChatID{}, "chat id")
}
