package cheapshark

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/value"
)

// flexString accepts a JSON string, number or null. CheapShark serves
// numbers as strings but nothing guarantees it stays that way. Scoped to
// this package: extra.RegisterFuzzyDecoders would loosen every jsoniter
// decode in the process, request bodies included.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	v := jsoniter.Get(b)

	switch v.ValueType() {
	case jsoniter.NilValue:
		*f = ""
	case jsoniter.StringValue, jsoniter.NumberValue:
		*f = flexString(v.ToString())
	default:
		return fmt.Errorf("want string or number, got %s", b)
	}

	return v.LastError() //nolint:wrapcheck
}

type dealDTO struct {
	Title              string     `json:"title" validate:"required"`
	Thumb              string     `json:"thumb" validate:"required"`
	NormalPrice        flexString `json:"normalPrice"`
	SalePrice          flexString `json:"salePrice"`
	SteamRatingPercent flexString `json:"steamRatingPercent"`
	DealID             string     `json:"dealID"`
	GameID             flexString `json:"gameID"`
	SteamAppID         flexString `json:"steamAppID"`
	MetacriticScore    flexString `json:"metacriticScore"`
	Savings            flexString `json:"savings"`
}

func newDomainDeal(dto dealDTO) entity.Deal {
	return entity.Deal{
		ID:                 value.NewDealID(),
		Title:              dto.Title,
		NormalPrice:        string(dto.NormalPrice),
		SalePrice:          string(dto.SalePrice),
		SteamRatingPercent: string(dto.SteamRatingPercent),
		Thumb:              dto.Thumb,
		DealID:             dto.DealID,
		GameID:             string(dto.GameID),
		SteamAppID:         string(dto.SteamAppID),
		MetacriticScore:    string(dto.MetacriticScore),
		SavingsPercent:     string(dto.Savings),
	}
}

type gameDTO struct {
	GameID         flexString `json:"gameID"`
	SteamAppID     flexString `json:"steamAppID"`
	External       string     `json:"external"`
	Cheapest       flexString `json:"cheapest"`
	CheapestDealID string     `json:"cheapestDealID"`
	Thumb          string     `json:"thumb"`
	NormalPrice    flexString `json:"normalPrice"`
	SalePrice      flexString `json:"salePrice"`
}

func newDomainPriceQuote(dto gameDTO) entity.PriceQuote {
	return entity.PriceQuote{
		GameID:         string(dto.GameID),
		SteamAppID:     string(dto.SteamAppID),
		Title:          dto.External,
		Cheapest:       string(dto.Cheapest),
		CheapestDealID: dto.CheapestDealID,
		Thumb:          dto.Thumb,
		NormalPrice:    string(dto.NormalPrice),
		SalePrice:      string(dto.SalePrice),
	}
}
