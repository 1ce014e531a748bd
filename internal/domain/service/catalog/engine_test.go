package catalog_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/service/catalog"
	"gamedeals/internal/domain/value"
	"gamedeals/pkg/tests"
)

func deal(title, salePrice, rating string) entity.Deal {
	return entity.Deal{
		ID:                 value.NewDealID(),
		Title:              title,
		SalePrice:          salePrice,
		SteamRatingPercent: rating,
		Thumb:              "https://thumbs/" + title + ".jpg",
	}
}

func titles(deals []entity.Deal) []string {
	return lo.Map(deals, func(d entity.Deal, _ int) string { return d.Title })
}

func config(minRating, maxPrice float64, sort entity.SortOption, query string) entity.FilterSortConfig {
	return entity.FilterSortConfig{
		SearchQuery: query,
		MinRating:   minRating,
		MaxPrice:    maxPrice,
		Sort:        sort,
	}
}

func TestApplyFilter(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		deals []entity.Deal
		cfg   entity.FilterSortConfig
		want  []string
	}{
		{
			name:  "Rating and price bounds hold",
			deals: []entity.Deal{deal("A", "5", "85")},
			cfg:   config(80, 10, entity.SortRatingDesc, ""),
			want:  []string{"A"},
		},
		{
			name:  "Rating below minimum",
			deals: []entity.Deal{deal("A", "5", "85")},
			cfg:   config(90, 10, entity.SortRatingDesc, ""),
			want:  []string{},
		},
		{
			name:  "Price above maximum",
			deals: []entity.Deal{deal("A", "10.01", "85")},
			cfg:   config(0, 10, entity.SortRatingDesc, ""),
			want:  []string{},
		},
		{
			name:  "Bounds are inclusive",
			deals: []entity.Deal{deal("A", "10", "80")},
			cfg:   config(80, 10, entity.SortRatingDesc, ""),
			want:  []string{"A"},
		},
		{
			name:  "Missing rating counts as zero",
			deals: []entity.Deal{deal("A", "5", ""), deal("B", "5", "abc")},
			cfg:   config(5, 10, entity.SortRatingDesc, ""),
			want:  []string{},
		},
		{
			name:  "Missing rating passes a zero minimum",
			deals: []entity.Deal{deal("A", "5", "")},
			cfg:   config(0, 10, entity.SortRatingDesc, ""),
			want:  []string{"A"},
		},
		{
			name:  "Missing price counts as zero",
			deals: []entity.Deal{deal("A", "", "50")},
			cfg:   config(0, 0, entity.SortRatingDesc, ""),
			want:  []string{"A"},
		},
		{
			name:  "Search is case-insensitive",
			deals: []entity.Deal{deal("Wolfenstein", "5", "90"), deal("Doom", "5", "90")},
			cfg:   config(0, 10, entity.SortRatingDesc, "wolf"),
			want:  []string{"Wolfenstein"},
		},
		{
			name:  "Search is not trimmed",
			deals: []entity.Deal{deal("Wolfenstein", "5", "90")},
			cfg:   config(0, 10, entity.SortRatingDesc, " wolf"),
			want:  []string{},
		},
		{
			name:  "Inner whitespace matches",
			deals: []entity.Deal{deal("Half-Life 2", "5", "90"), deal("Portal 2", "5", "90")},
			cfg:   config(0, 10, entity.SortRatingDesc, "l 2"),
			want:  []string{"Portal 2"},
		},
		{
			name:  "Search combines with bounds",
			deals: []entity.Deal{deal("Wolfenstein", "15", "90"), deal("Wolfenstein II", "5", "90")},
			cfg:   config(0, 10, entity.SortRatingDesc, "WOLF"),
			want:  []string{"Wolfenstein II"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			result := catalog.Apply(tc.deals, tc.cfg)

			rq.Equal(tc.want, titles(result.Items))
			rq.Equal(len(tc.want) == 0, result.Empty)
		})
	}
}

func TestApplySkipMissing(t *testing.T) {
	rq := require.New(t)

	deals := []entity.Deal{deal("No rating", "5", ""), deal("No price", "", "95"), deal("Low", "5", "20")}

	cfg := config(50, 10, entity.SortPriceAsc, "")
	rq.Equal([]string{"No price"}, titles(catalog.Apply(deals, cfg).Items))

	cfg.SkipMissing = true
	rq.Equal([]string{"No price", "No rating"}, titles(catalog.Apply(deals, cfg).Items))
}

func TestApplySort(t *testing.T) {
	rq := require.New(t)

	deals := []entity.Deal{
		deal("A", "5", "90"),
		deal("B", "3", "70"),
		deal("C", "9.99", "95"),
		deal("D", "", ""),
	}

	testCases := []struct {
		sort entity.SortOption
		want []string
	}{
		{sort: entity.SortPriceAsc, want: []string{"D", "B", "A", "C"}},
		{sort: entity.SortPriceDesc, want: []string{"C", "A", "B", "D"}},
		{sort: entity.SortRatingAsc, want: []string{"D", "B", "A", "C"}},
		{sort: entity.SortRatingDesc, want: []string{"C", "A", "B", "D"}},
	}

	for _, tc := range testCases {
		t.Run(tc.sort.String(), func(*testing.T) {
			result := catalog.Apply(deals, config(0, 10, tc.sort, ""))

			rq.Equal(tc.want, titles(result.Items))
		})
	}
}

func TestApplyScenario(t *testing.T) {
	rq := require.New(t)

	deals := []entity.Deal{
		{Title: "A", SalePrice: "5", SteamRatingPercent: "90"},
		{Title: "B", SalePrice: "3", SteamRatingPercent: "70"},
	}

	result := catalog.Apply(deals, config(0, 10, entity.SortPriceAsc, ""))

	rq.Equal([]string{"B", "A"}, titles(result.Items))
	rq.False(result.Empty)
}

func TestApplyStableTies(t *testing.T) {
	rq := require.New(t)

	deals := []entity.Deal{
		deal("First", "9.99", "50"),
		deal("Cheap", "1", "50"),
		deal("Second", "9.99", "60"),
		deal("Third", "9.990", "40"),
	}

	rq.Equal([]string{"Cheap", "First", "Second", "Third"}, titles(catalog.Apply(deals, config(0, 10, entity.SortPriceAsc, "")).Items))
	rq.Equal([]string{"First", "Second", "Third", "Cheap"}, titles(catalog.Apply(deals, config(0, 10, entity.SortPriceDesc, "")).Items))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	rq := require.New(t)

	deals := []entity.Deal{deal("A", "5", "90"), deal("B", "3", "70")}
	before := append([]entity.Deal(nil), deals...)

	catalog.Apply(deals, config(0, 10, entity.SortPriceAsc, ""))

	rq.Equal(before, deals)
}

func TestApplyEmpty(t *testing.T) {
	rq := require.New(t)

	result := catalog.Apply(nil, entity.DefaultFilterSortConfig())

	rq.True(result.Empty)
	rq.NotNil(result.Items)
	rq.Empty(result.Items)
}

func randomDeals(r tests.Randomizer, n int) []entity.Deal {
	deals := make([]entity.Deal, n)

	for i := range deals {
		deals[i] = deal(
			tests.Pick(r, "Wolfenstein", "Doom", "Portal", "Quake", "wolf among us", "DOOM Eternal")+" "+strconv.Itoa(i),
			tests.Pick(r, "", "0", "1.99", "4.99", "9.99", "10", "14.99", "n/a"),
			tests.Pick(r, "", "0", "45", "70", "85", "90", "100"),
		)
	}

	return deals
}

func randomConfig(r tests.Randomizer) entity.FilterSortConfig {
	return entity.FilterSortConfig{
		SearchQuery: tests.Pick(r, "", "wolf", "DOOM", "o", " "),
		MinRating:   float64(r.Intn(21) * entity.RatingStep),
		MaxPrice:    float64(r.Intn(entity.MaxPrice + 1)),
		Sort:        tests.Pick(r, entity.SortOptions()...),
		SkipMissing: r.Bool(),
	}
}

func TestApplyProperties(t *testing.T) {
	rq := require.New(t)
	r := tests.NewSeededRandomizer(42)

	for i := range 200 {
		deals := randomDeals(r, r.Intn(30))
		cfg := randomConfig(r)
		msg := fmt.Sprintf("iteration %d, config %+v", i, cfg)

		first := catalog.Apply(deals, cfg)
		second := catalog.Apply(first.Items, cfg)

		rq.Equal(first.Items, second.Items, "idempotent: %s", msg)

		members := lo.Map(first.Items, func(d entity.Deal, _ int) value.DealID { return d.ID })

		for _, option := range entity.SortOptions() {
			cfg.Sort = option
			other := catalog.Apply(deals, cfg)

			otherMembers := lo.Map(other.Items, func(d entity.Deal, _ int) value.DealID { return d.ID })
			rq.ElementsMatch(members, otherMembers, "sort only reorders: %s", msg)
		}
	}
}
