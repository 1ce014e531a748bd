package entity

import (
	"fmt"
	"strings"
)

const (
	MaxRating       = 100
	MaxPrice        = 10
	RatingStep      = 5
	PriceStep       = 1
	DefaultMaxPrice = MaxPrice
)

type SortOption string

const (
	SortRatingAsc  SortOption = "ratingAsc"
	SortRatingDesc SortOption = "ratingDesc"
	SortPriceAsc   SortOption = "priceAsc"
	SortPriceDesc  SortOption = "priceDesc"
)

//nolint:gochecknoglobals
var sortOptions = []SortOption{SortRatingAsc, SortRatingDesc, SortPriceAsc, SortPriceDesc}

//nolint:gochecknoglobals
var sortLabels = map[SortOption]string{
	SortRatingAsc:  "Rating (low to high)",
	SortRatingDesc: "Rating (high to low)",
	SortPriceAsc:   "Price (low to high)",
	SortPriceDesc:  "Price (high to low)",
}

func SortOptions() []SortOption {
	return append([]SortOption(nil), sortOptions...)
}

// ParseSortOption accepts the option name in any letter case.
func ParseSortOption(s string) (SortOption, error) {
	for _, option := range sortOptions {
		if strings.EqualFold(s, string(option)) {
			return option, nil
		}
	}

	return "", fmt.Errorf("unknown sort option %q", s)
}

func (s SortOption) String() string {
	return string(s)
}

func (s SortOption) Label() string {
	if label, ok := sortLabels[s]; ok {
		return label
	}

	return string(s)
}

func (s SortOption) Descending() bool {
	return s == SortRatingDesc || s == SortPriceDesc
}

func (s SortOption) ByPrice() bool {
	return s == SortPriceAsc || s == SortPriceDesc
}

// FilterSortConfig is owned by the presentation layer and handed to the
// filter/sort engine on every recompute.
type FilterSortConfig struct {
	SearchQuery string     `json:"searchQuery"`
	MinRating   float64    `json:"minRating"   validate:"gte=0,lte=100"`
	MaxPrice    float64    `json:"maxPrice"    validate:"gte=0,lte=10"`
	Sort        SortOption `json:"sort"        validate:"required,oneof=ratingAsc ratingDesc priceAsc priceDesc"`

	// SkipMissing lets deals with an absent rating or sale price bypass the
	// corresponding bound instead of being compared as zero.
	SkipMissing bool `json:"skipMissing"`
}

func DefaultFilterSortConfig() FilterSortConfig {
	return FilterSortConfig{
		MinRating: 0,
		MaxPrice:  DefaultMaxPrice,
		Sort:      SortRatingDesc,
	}
}
