package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"gamedeals/pkg/contextx"
	"gamedeals/pkg/logx"
	"gamedeals/pkg/metrics"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Logger puts a logger tagged with the chat id into the update context.
func Logger(ctx *th.Context, update telego.Update) error {
	chatID, ok := UpdateChatID(update)
	if !ok {
		return ctx.Next(update)
	}

	c := contextx.WithChatID(ctx, contextx.ChatID(chatID))
	c = contextx.WithLogger(c, logger(ctx).With(slog.Int64(logx.FieldChatID, chatID)))

	return ctx.WithContext(c).Next(update)
}

// Recovery turns a panic in a handler into a logged error.
func Recovery(ctx *th.Context, update telego.Update) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger(ctx).Error(
				"panic in bot handler",
				slog.Any(logx.FieldError, rec),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)

			err = nil
		}
	}()

	return ctx.Next(update)
}

func CountCommand(command string) {
	metrics.BotUpdates.WithLabelValues(command).Inc()
}
