package entity

import (
	"github.com/shopspring/decimal"

	"gamedeals/internal/domain/value"
)

const DescriptionUnavailable = "Description unavailable."

// Deal is one catalog entry: commerce fields from the deals API plus
// descriptive fields attached later from the metadata API.
type Deal struct {
	ID    value.DealID `json:"id"`
	Title string       `json:"title"`

	// Numeric-as-string as served upstream, empty when absent.
	NormalPrice        string `json:"normalPrice,omitempty"`
	SalePrice          string `json:"salePrice,omitempty"`
	SteamRatingPercent string `json:"steamRatingPercent,omitempty"`
	Thumb              string `json:"thumb"`

	// Upstream references, kept for lookups and links.
	DealID          string `json:"dealID,omitempty"`
	GameID          string `json:"gameID,omitempty"`
	SteamAppID      string `json:"steamAppID,omitempty"`
	MetacriticScore string `json:"metacriticScore,omitempty"`
	SavingsPercent  string `json:"savings,omitempty"`

	// Filled by the metadata merge only.
	Description string   `json:"description,omitempty"`
	SteamLink   string   `json:"steamLink,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Platforms   []string `json:"platforms,omitempty"`
	Developers  []string `json:"developers,omitempty"`
}

// DescriptionOrFallback returns the description or a placeholder when the
// metadata had none.
func (d Deal) DescriptionOrFallback() string {
	if d.Description == "" {
		return DescriptionUnavailable
	}

	return d.Description
}

func (d Deal) Rating() decimal.Decimal {
	return value.ParseNumberOrZero(d.SteamRatingPercent)
}

func (d Deal) Sale() decimal.Decimal {
	return value.ParseNumberOrZero(d.SalePrice)
}

func (d Deal) Normal() decimal.Decimal {
	return value.ParseNumberOrZero(d.NormalPrice)
}

// Discount returns the saving in percent. It is only defined when both prices
// parse and the normal price is positive.
func (d Deal) Discount() (float64, bool) {
	normal, ok := value.ParseNumber(d.NormalPrice)
	if !ok || !normal.IsPositive() {
		return 0, false
	}

	sale, ok := value.ParseNumber(d.SalePrice)
	if !ok {
		return 0, false
	}

	return normal.Sub(sale).Div(normal).Mul(hundred).InexactFloat64(), true
}

// Clone returns a copy that shares no slices with d.
func (d Deal) Clone() Deal {
	d.Genres = cloneStrings(d.Genres)
	d.Platforms = cloneStrings(d.Platforms)
	d.Developers = cloneStrings(d.Developers)

	return d
}

var hundred = decimal.NewFromInt(100) //nolint:gochecknoglobals,mnd

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}

	return append(make([]string, 0, len(s)), s...)
}
