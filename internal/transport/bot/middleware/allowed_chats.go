package middleware

import (
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"gamedeals/pkg/logx"
)

// AllowedChats drops updates from chats outside allowed. An empty list lets
// every chat through.
func AllowedChats(allowed []int64) th.Handler {
	set := make(map[int64]struct{}, len(allowed))
	for _, id := range allowed {
		set[id] = struct{}{}
	}

	return func(ctx *th.Context, update telego.Update) error {
		if len(set) == 0 {
			return ctx.Next(update)
		}

		chatID, ok := UpdateChatID(update)
		if !ok {
			return nil
		}

		if _, ok := set[chatID]; ok {
			return ctx.Next(update)
		}

		logger(ctx).Debug("update from a chat outside the allow list", slog.Int64(logx.FieldChatID, chatID))

		return nil
	}
}

// UpdateChatID returns the chat a message or callback update came from.
func UpdateChatID(update telego.Update) (int64, bool) {
	switch {
	case update.Message != nil:
		return update.Message.Chat.ID, true
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.GetChat().ID, true
	default:
		return 0, false
	}
}
