package notifier

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"math"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"gamedeals/internal/domain/entity"
	"gamedeals/pkg/contextx"
	"gamedeals/pkg/logx"
	"gamedeals/pkg/metrics"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// StartNotice goes to the alert chat once the notifier is up.
const StartNotice = "🤖 Бот запущен, слежу за скидками."

type messageSender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

// TelegramBot sends deal alerts to one chat.
type TelegramBot struct {
	sender messageSender
	chatID int64
}

func NewTelegramBot(sender messageSender, chatID int64) *TelegramBot {
	return &TelegramBot{
		sender: sender,
		chatID: chatID,
	}
}

// Run sends every deal from the channel until ctx is done or the channel is
// closed. A failed send is logged and skipped.
func (b *TelegramBot) Run(ctx context.Context, deals <-chan entity.Deal) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case deal, ok := <-deals:
			if !ok {
				return nil
			}

			if err := b.SendDeal(ctx, deal); err != nil {
				logger(ctx).Error("failed to send deal",
					slog.String(logx.FieldTitle, deal.Title),
					logx.Error(err),
				)
			}
		}
	}
}

func (b *TelegramBot) SendDeal(ctx context.Context, deal entity.Deal) error {
	msg := tu.Message(tu.ID(b.chatID), FormatDeal(deal)).
		WithParseMode(telego.ModeHTML)

	if _, err := b.sender.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	metrics.AlertsSent.Inc()

	return nil
}

// SendText sends a plain text message.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	if _, err := b.sender.SendMessage(ctx, tu.Message(tu.ID(b.chatID), text)); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

func FormatDeal(deal entity.Deal) string {
	discount := "—"
	if d, ok := deal.Discount(); ok {
		discount = fmt.Sprintf("%.0f%%", math.Round(d))
	}

	text := fmt.Sprintf(
		"🔥 <b>Новая скидка!</b>\n\n"+
			"🎮 <b>%s</b>\n"+
			"💰 <b>Цена:</b> %s$ → %s$\n"+
			"📉 <b>Скидка:</b> %s\n"+
			"⭐ <b>Рейтинг:</b> %s%%",
		html.EscapeString(deal.Title),
		orZero(deal.NormalPrice),
		orZero(deal.SalePrice),
		discount,
		orZero(deal.SteamRatingPercent),
	)

	if deal.DealID != "" {
		text += fmt.Sprintf("\n\n🔗 <a href=\"https://www.cheapshark.com/redirect?dealID=%s\">Купить</a>",
			html.EscapeString(deal.DealID))
	}

	return text
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}

	return html.EscapeString(s)
}
