package handler

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"gamedeals/internal/transport/bot/middleware"
	"gamedeals/internal/transport/bot/view"
)

// RegisterRoutes binds the commands. A non-empty allowedChats restricts the
// bot to those chats.
func (h *Handler) RegisterRoutes(bh *th.BotHandler, allowedChats []int64) {
	bh.Use(middleware.Recovery)
	bh.Use(middleware.AllowedChats(allowedChats))
	bh.Use(middleware.Logger)

	commands := map[string]th.MessageHandler{
		"start":       h.OnStart,
		"help":        h.OnStart,
		"deals":       h.OnDeals,
		"search":      h.OnSearch,
		"minrating":   h.OnMinRating,
		"maxprice":    h.OnMaxPrice,
		"sort":        h.OnSort,
		"reset":       h.OnReset,
		"game":        h.OnGame,
		"prices":      h.OnPrices,
		"refresh":     h.OnRefresh,
		"status":      h.OnStatus,
		"autorefresh": h.OnAutoRefresh,
	}

	for command, handler := range commands {
		bh.HandleMessage(counted(command, handler), th.CommandEqual(command))
	}

	bh.HandleCallbackQuery(h.OnSortCallback, th.CallbackDataPrefix(view.SortCallbackPrefix))
}

func counted(command string, next th.MessageHandler) th.MessageHandler {
	return func(ctx *th.Context, msg telego.Message) error {
		middleware.CountCommand(command)
		return next(ctx, msg)
	}
}
