package entity

// PriceQuote is one hit of the alternate price lookup by title. Prices are
// numeric-as-string and empty when the source omits them.
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
