package view

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"gamedeals/internal/domain/entity"
)

// SortCallbackPrefix starts the callback data of the sort keyboard buttons.
const SortCallbackPrefix = "sort:"

//nolint:gochecknoglobals
var sortLabels = map[entity.SortOption]string{
	entity.SortRatingAsc:  "Рейтинг (по возрастанию)",
	entity.SortRatingDesc: "Рейтинг (по убыванию)",
	entity.SortPriceAsc:   "Цена (по возрастанию)",
	entity.SortPriceDesc:  "Цена (по убыванию)",
}

func SortLabel(option entity.SortOption) string {
	if label, ok := sortLabels[option]; ok {
		return label
	}

	return option.Label()
}

// Config renders the active filter/sort configuration in one line.
func Config(cfg entity.FilterSortConfig) string {
	search := noSearch
	if cfg.SearchQuery != "" {
		search = "«" + html.EscapeString(cfg.SearchQuery) + "»"
	}

	return fmt.Sprintf(configTemplate,
		search,
		formatNumber(cfg.MinRating),
		formatNumber(cfg.MaxPrice),
		SortLabel(cfg.Sort),
	)
}

// DealList renders at most limit deals, numbered from 1.
func DealList(items []entity.Deal, cfg entity.FilterSortConfig, limit int) string {
	if len(items) == 0 {
		return Config(cfg) + "\n\n" + NoGamesFound
	}

	shown := min(len(items), limit)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(listHeaderTemplate, shown, len(items), Config(cfg)))

	for i, deal := range items[:shown] {
		sb.WriteString(fmt.Sprintf(listItemTemplate,
			i+1,
			html.EscapeString(deal.Title),
			orZero(deal.NormalPrice),
			orZero(deal.SalePrice),
			discount(deal),
			orZero(deal.SteamRatingPercent),
		))
	}

	if len(items) > shown {
		sb.WriteString(fmt.Sprintf(listMoreTemplate, len(items)-shown))
	}

	sb.WriteString(listFooter)

	return sb.String()
}

// DealDetails renders one deal with whatever metadata it carries.
func DealDetails(deal entity.Deal, lookupFailed bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(detailsTemplate,
		html.EscapeString(deal.Title),
		orZero(deal.NormalPrice),
		orZero(deal.SalePrice),
		discount(deal),
		orZero(deal.SteamRatingPercent),
	))

	if len(deal.Genres) > 0 {
		sb.WriteString("🏷 <b>Жанры:</b> " + html.EscapeString(strings.Join(deal.Genres, ", ")) + "\n")
	}

	if len(deal.Platforms) > 0 {
		sb.WriteString("🖥 <b>Платформы:</b> " + html.EscapeString(strings.Join(deal.Platforms, ", ")) + "\n")
	}

	if len(deal.Developers) > 0 {
		sb.WriteString("👷 <b>Разработчики:</b> " + html.EscapeString(strings.Join(deal.Developers, ", ")) + "\n")
	}

	sb.WriteString("\n")

	if deal.Description != "" {
		sb.WriteString(html.EscapeString(truncate(deal.Description, descriptionMaxRunes)))
	} else {
		sb.WriteString("<i>" + DescriptionMissing + "</i>")
	}

	sb.WriteString("\n\n")

	if deal.SteamLink != "" {
		sb.WriteString(fmt.Sprintf("🔗 <a href=\"%s\">Открыть в Steam</a>", html.EscapeString(deal.SteamLink)))
	} else {
		sb.WriteString("<i>" + SteamLinkMissing + "</i>")
	}

	if lookupFailed {
		sb.WriteString("\n\n" + DetailsUnavailable)
	}

	return sb.String()
}

func PriceQuotes(quotes []entity.PriceQuote, limit int) string {
	if len(quotes) == 0 {
		return PricesEmpty
	}

	var sb strings.Builder

	sb.WriteString(pricesHeader)

	for i, quote := range quotes[:min(len(quotes), limit)] {
		sb.WriteString(fmt.Sprintf(priceQuoteTemplate, i+1, html.EscapeString(quote.Title), orZero(quote.Cheapest)))
	}

	return sb.String()
}

func Status(count int, loadedAt time.Time, autoRefresh bool) string {
	loaded := notLoadedYet
	if !loadedAt.IsZero() {
		loaded = loadedAt.Format("02.01.2006 15:04:05")
	}

	return fmt.Sprintf(statusTemplate, count, loaded, onOff(autoRefresh))
}

func Refreshed(count int) string {
	return fmt.Sprintf(refreshedTemplate, count)
}

func RatingSet(rating float64) string {
	return fmt.Sprintf(ratingSetTemplate, formatNumber(rating))
}

func PriceSet(price float64) string {
	return fmt.Sprintf(priceSetTemplate, formatNumber(price))
}

func SortSet(option entity.SortOption) string {
	return fmt.Sprintf(sortSetTemplate, SortLabel(option))
}

func SearchSet(query string) string {
	if query == "" {
		return searchCleared
	}

	return fmt.Sprintf(searchSetTemplate, html.EscapeString(query))
}

// SortKeyboard renders one button per sort option, the active one marked.
func SortKeyboard(current entity.SortOption) *telego.InlineKeyboardMarkup {
	rows := make([][]telego.InlineKeyboardButton, 0, len(entity.SortOptions()))

	for _, option := range entity.SortOptions() {
		label := SortLabel(option)
		if option == current {
			label = "✅ " + label
		}

		rows = append(rows, tu.InlineKeyboardRow(
			tu.InlineKeyboardButton(label).WithCallbackData(SortCallbackPrefix+option.String()),
		))
	}

	return tu.InlineKeyboard(rows...)
}

// discount is rounded to whole percent.
func discount(deal entity.Deal) string {
	d, ok := deal.Discount()
	if !ok {
		return noDiscount
	}

	return strconv.FormatFloat(math.Round(d), 'f', 0, 64) + "%"
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}

	return html.EscapeString(s)
}

func onOff(b bool) string {
	if b {
		return statusOn
	}

	return statusOff
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}

	return string(runes[:maxRunes]) + "…"
}
