package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"gamedeals/internal/domain"
	"gamedeals/internal/domain/entity"
	"gamedeals/internal/transport/bot/view"
	"gamedeals/pkg/errcodes"
	"gamedeals/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

// OnDeals shows the deal list filtered by the chat's config. The list is
// loaded on first use.
func (h *Handler) OnDeals(ctx *th.Context, msg telego.Message) error {
	return h.showDeals(ctx, msg.Chat.ID)
}

// OnSearch sets the search text. Without text the search is cleared.
func (h *Handler) OnSearch(ctx *th.Context, msg telego.Message) error {
	query := commandArgs(msg.Text)

	h.sessions.Get(msg.Chat.ID).UpdateConfig(func(cfg *entity.FilterSortConfig) {
		cfg.SearchQuery = query
	})

	if err := h.sendHTML(ctx, msg.Chat.ID, view.SearchSet(query)); err != nil {
		return err
	}

	return h.showDeals(ctx, msg.Chat.ID)
}

func (h *Handler) OnMinRating(ctx *th.Context, msg telego.Message) error {
	rating, err := parseBound(commandArgs(msg.Text), entity.MaxRating)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, view.RatingInvalid)
	}

	h.sessions.Get(msg.Chat.ID).UpdateConfig(func(cfg *entity.FilterSortConfig) {
		cfg.MinRating = rating
	})

	if err := h.sendHTML(ctx, msg.Chat.ID, view.RatingSet(rating)); err != nil {
		return err
	}

	return h.showDeals(ctx, msg.Chat.ID)
}

func (h *Handler) OnMaxPrice(ctx *th.Context, msg telego.Message) error {
	price, err := parseBound(commandArgs(msg.Text), entity.MaxPrice)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, view.PriceInvalid)
	}

	h.sessions.Get(msg.Chat.ID).UpdateConfig(func(cfg *entity.FilterSortConfig) {
		cfg.MaxPrice = price
	})

	if err := h.sendHTML(ctx, msg.Chat.ID, view.PriceSet(price)); err != nil {
		return err
	}

	return h.showDeals(ctx, msg.Chat.ID)
}

// OnSort sets the sort option given as argument, or offers the keyboard.
func (h *Handler) OnSort(ctx *th.Context, msg telego.Message) error {
	sess := h.sessions.Get(msg.Chat.ID)

	arg := commandArgs(msg.Text)
	if arg == "" {
		return h.sendKeyboard(ctx, msg.Chat.ID, view.SortChoose, view.SortKeyboard(sess.Config().Sort))
	}

	option, err := entity.ParseSortOption(arg)
	if err != nil {
		return h.sendKeyboard(ctx, msg.Chat.ID, view.SortInvalid, view.SortKeyboard(sess.Config().Sort))
	}

	sess.UpdateConfig(func(cfg *entity.FilterSortConfig) {
		cfg.Sort = option
	})

	if err := h.sendHTML(ctx, msg.Chat.ID, view.SortSet(option)); err != nil {
		return err
	}

	return h.showDeals(ctx, msg.Chat.ID)
}

func (h *Handler) OnReset(ctx *th.Context, msg telego.Message) error {
	h.sessions.Get(msg.Chat.ID).UpdateConfig(func(cfg *entity.FilterSortConfig) {
		*cfg = entity.DefaultFilterSortConfig()
	})

	if err := h.sendHTML(ctx, msg.Chat.ID, view.FiltersReset); err != nil {
		return err
	}

	return h.showDeals(ctx, msg.Chat.ID)
}

// OnGame opens the n-th deal of the last shown list. Opening another game
// before this one arrived cancels this fetch.
func (h *Handler) OnGame(ctx *th.Context, msg telego.Message) error {
	chatID := msg.Chat.ID
	sess := h.sessions.Get(chatID)

	n, err := parseIndex(commandArgs(msg.Text))
	if err != nil {
		return h.sendHTML(ctx, chatID, view.GameMissingArgument)
	}

	id, ok := sess.Shown(n)
	if !ok {
		return h.sendHTML(ctx, chatID, view.GameNotInList)
	}

	if err := h.sendHTML(ctx, chatID, view.DetailsLoading); err != nil {
		return err
	}

	detailsCtx, done := sess.BeginDetails(ctx)
	defer done()

	deal, err := h.svc.Details(detailsCtx, id)
	switch {
	case err == nil:
		return h.sendHTML(ctx, chatID, view.DealDetails(deal, false))
	case errors.Is(err, context.Canceled):
		logger(ctx).Debug("details superseded", slog.String(logx.FieldDealID, id.String()))
		return nil
	case domain.HasCode(err, errcodes.DealNotFound):
		return h.sendHTML(ctx, chatID, view.GameGone)
	default:
		logger(ctx).Warn("details unavailable", logx.Error(err))
		return h.sendHTML(ctx, chatID, view.DealDetails(deal, true))
	}
}

func (h *Handler) OnPrices(ctx *th.Context, msg telego.Message) error {
	title := commandArgs(msg.Text)
	if title == "" {
		return h.sendHTML(ctx, msg.Chat.ID, view.PricesMissingTitle)
	}

	quotes, err := h.svc.Prices(ctx, title)
	if err != nil {
		logger(ctx).Warn("price lookup failed", logx.Error(err))
		return h.sendHTML(ctx, msg.Chat.ID, view.PricesFailed)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.PriceQuotes(quotes, pricesLimit))
}

func (h *Handler) OnRefresh(ctx *th.Context, msg telego.Message) error {
	deals, err := h.svc.Load(ctx)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, view.RefreshFailed)
	}

	if err := h.sendHTML(ctx, msg.Chat.ID, view.Refreshed(len(deals))); err != nil {
		return err
	}

	return h.showDeals(ctx, msg.Chat.ID)
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.Status(
		len(h.svc.Deals()),
		h.svc.LoadedAt(),
		h.refresher.IsRunning(),
	))
}

// OnAutoRefresh toggles the background refresher.
func (h *Handler) OnAutoRefresh(ctx *th.Context, msg telego.Message) error {
	if h.refresher.IsRunning() {
		h.refresher.Stop()
		return h.sendHTML(ctx, msg.Chat.ID, view.AutoRefreshOff)
	}

	// The refresher outlives this update.
	if err := h.refresher.Start(context.WithoutCancel(ctx)); err != nil {
		logger(ctx).Error("failed to start refresher", logx.Error(err))
		return h.sendHTML(ctx, msg.Chat.ID, view.AutoRefreshFailed)
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.AutoRefreshOn)
}

func (h *Handler) showDeals(ctx *th.Context, chatID int64) error {
	if !h.svc.Loaded() {
		if err := h.sendHTML(ctx, chatID, view.Loading); err != nil {
			return err
		}

		if _, err := h.svc.Load(ctx); err != nil {
			return h.sendHTML(ctx, chatID, view.LoadFailed)
		}
	}

	text, keyboard := h.renderDeals(chatID)

	return h.sendKeyboard(ctx, chatID, text, keyboard)
}

// renderDeals runs the engine with the chat's config and remembers the order
// for /game.
func (h *Handler) renderDeals(chatID int64) (string, *telego.InlineKeyboardMarkup) {
	sess := h.sessions.Get(chatID)
	cfg := sess.Config()

	result := h.svc.Browse(cfg)
	sess.SetShown(result.Items[:min(len(result.Items), listLimit)])

	return view.DealList(result.Items, cfg, listLimit), view.SortKeyboard(cfg.Sort)
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text).
		WithParseMode(telego.ModeHTML))

	return err //nolint:wrapcheck
}

func (h *Handler) sendKeyboard(
	ctx *th.Context,
	chatID int64,
	text string,
	keyboard *telego.InlineKeyboardMarkup,
) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text).
		WithParseMode(telego.ModeHTML).
		WithReplyMarkup(keyboard))

	return err //nolint:wrapcheck
}
