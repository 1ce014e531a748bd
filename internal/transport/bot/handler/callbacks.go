package handler

import (
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"gamedeals/internal/domain/entity"
	"gamedeals/internal/transport/bot/view"
	"gamedeals/pkg/logx"
)

// OnSortCallback applies the sort chosen on the inline keyboard and redraws
// the list in place.
func (h *Handler) OnSortCallback(ctx *th.Context, query telego.CallbackQuery) error {
	option, err := entity.ParseSortOption(strings.TrimPrefix(query.Data, view.SortCallbackPrefix))
	if err != nil {
		answer := tu.CallbackQuery(query.ID).WithText(view.CallbackFailed).WithShowAlert()

		return ctx.Bot().AnswerCallbackQuery(ctx, answer) //nolint:wrapcheck
	}

	if query.Message == nil {
		return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID)) //nolint:wrapcheck
	}

	chatID := query.Message.GetChat().ID

	h.sessions.Get(chatID).UpdateConfig(func(cfg *entity.FilterSortConfig) {
		cfg.Sort = option
	})

	if h.svc.Loaded() {
		text, keyboard := h.renderDeals(chatID)

		// Telegram rejects an edit that changes nothing, e.g. a second tap on
		// the active option.
		if _, err := ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
			ChatID:      tu.ID(chatID),
			MessageID:   query.Message.GetMessageID(),
			Text:        text,
			ParseMode:   telego.ModeHTML,
			ReplyMarkup: keyboard,
		}); err != nil {
			logger(ctx).Debug("edit message", logx.Error(err))
		}
	}

	return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).WithText(view.SortSet(option))) //nolint:wrapcheck
}
