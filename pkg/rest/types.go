// Package rest holds the wire types of the public JSON API.
package rest

// Deal is one catalog entry as listed.
type Deal struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	NormalPrice        string   `json:"normalPrice,omitempty"`
	SalePrice          string   `json:"salePrice,omitempty"`
	SteamRatingPercent string   `json:"steamRatingPercent,omitempty"`
	Discount           *float64 `json:"discount,omitempty"`
	Thumb              string   `json:"thumb"`
	SteamAppID         string   `json:"steamAppID,omitempty"`
	MetacriticScore    string   `json:"metacriticScore,omitempty"`
}

// DealList is the filtered and sorted view of the catalog.
type DealList struct {
	Items []Deal `json:"items"`

	// Empty is set when no deal matched, so clients can show "no games found".
	Empty bool `json:"empty"`
}

// DealDetails is a deal with its metadata attached. Fallback texts are filled
// in when the metadata lacks a description or a Steam link.
type DealDetails struct {
	Deal

	Description string   `json:"description"`
	SteamLink   string   `json:"steamLink"`
	Genres      []string `json:"genres"`
	Platforms   []string `json:"platforms"`
	Developers  []string `json:"developers"`

	// MetadataError is set when the metadata lookup failed and the deal is
	// shown without it.
	MetadataError string `json:"metadataError,omitempty"`
}

// FilterRequest carries a filter/sort configuration. Omitted fields take the
// defaults.
type FilterRequest struct {
	SearchQuery *string  `json:"searchQuery"`
	MinRating   *float64 `json:"minRating"   validate:"omitempty,gte=0,lte=100"`
	MaxPrice    *float64 `json:"maxPrice"    validate:"omitempty,gte=0,lte=10"`
	Sort        *string  `json:"sort"`
	SkipMissing *bool    `json:"skipMissing"`
}

type PriceQuote struct {
	GameID         string `json:"gameID,omitempty"`
	SteamAppID     string `json:"steamAppID,omitempty"`
	Title          string `json:"title"`
	Cheapest       string `json:"cheapest,omitempty"`
	CheapestDealID string `json:"cheapestDealID,omitempty"`
	Thumb          string `json:"thumb,omitempty"`
	NormalPrice    string `json:"normalPrice,omitempty"`
	SalePrice      string `json:"salePrice,omitempty"`
}

type PriceQuoteList struct {
	Items []PriceQuote `json:"items"`
}

type RefreshResult struct {
	Count    int    `json:"count"`
	LoadedAt string `json:"loadedAt"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	SupportID string `json:"supportId,omitempty"`
}

// ErrorCode Код ошибки
type ErrorCode string
