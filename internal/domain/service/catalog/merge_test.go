package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gamedeals/internal/domain/entity"
	"gamedeals/internal/domain/service/catalog"
	"gamedeals/internal/domain/value"
)

func TestAttachMetadata(t *testing.T) {
	rq := require.New(t)

	base := entity.Deal{
		ID:                 value.NewDealID(),
		Title:              "Portal 2",
		NormalPrice:        "9.99",
		SalePrice:          "0.99",
		SteamRatingPercent: "98",
		Thumb:              "https://cheapshark/thumb.jpg",
		SteamAppID:         "620",
	}

	meta := entity.GameMetadata{
		RawgID:      4200,
		Name:        "Portal 2 (RAWG)",
		Genres:      []string{"Shooter", "Puzzle"},
		Platforms:   []string{"PC", "Xbox 360"},
		ImageURL:    "https://rawg/cover.jpg",
		Description: "Cooperative puzzles.",
		Developers:  []string{"Valve Software"},
	}

	testCases := []struct {
		name      string
		deal      entity.Deal
		opts      catalog.MergeOptions
		wantThumb string
	}{
		{
			name:      "Existing thumb kept",
			deal:      base,
			wantThumb: "https://cheapshark/thumb.jpg",
		},
		{
			name:      "Existing thumb replaced by high-res art",
			deal:      base,
			opts:      catalog.MergeOptions{PreferHighRes: true},
			wantThumb: "https://rawg/cover.jpg",
		},
		{
			name: "Missing thumb filled",
			deal: func() entity.Deal {
				d := base
				d.Thumb = ""
				return d
			}(),
			wantThumb: "https://rawg/cover.jpg",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			merged := catalog.AttachMetadata(tc.deal, meta, tc.opts)

			rq.Equal(tc.deal.ID, merged.ID)
			rq.Equal(tc.deal.Title, merged.Title)
			rq.Equal(tc.deal.NormalPrice, merged.NormalPrice)
			rq.Equal(tc.deal.SalePrice, merged.SalePrice)
			rq.Equal(tc.deal.SteamRatingPercent, merged.SteamRatingPercent)

			rq.Equal(tc.wantThumb, merged.Thumb)
			rq.Equal(meta.Genres, merged.Genres)
			rq.Equal(meta.Platforms, merged.Platforms)
			rq.Equal(meta.Developers, merged.Developers)
			rq.Equal(meta.Description, merged.Description)
			rq.Equal("https://store.steampowered.com/app/620/", merged.SteamLink)
		})
	}
}

func TestAttachMetadataDoesNotAlias(t *testing.T) {
	rq := require.New(t)

	deal := entity.Deal{Title: "Doom", Thumb: "t"}
	meta := entity.GameMetadata{Genres: []string{"Action"}}

	merged := catalog.AttachMetadata(deal, meta, catalog.MergeOptions{})
	merged.Genres[0] = "Changed"

	rq.Equal("Action", meta.Genres[0])
	rq.Nil(deal.Genres)
}

func TestAttachMetadataEmptySequences(t *testing.T) {
	rq := require.New(t)

	merged := catalog.AttachMetadata(entity.Deal{Title: "Doom", Thumb: "t"}, entity.GameMetadata{}, catalog.MergeOptions{PreferHighRes: true})

	rq.NotNil(merged.Genres)
	rq.Empty(merged.Genres)
	rq.NotNil(merged.Platforms)
	rq.Empty(merged.Platforms)
	rq.Equal("t", merged.Thumb)
	rq.Empty(merged.SteamLink)
}

func TestSteamLink(t *testing.T) {
	rq := require.New(t)

	rq.Equal("https://store.steampowered.com/app/620/", catalog.SteamLink("620"))
	rq.Empty(catalog.SteamLink(""))
	rq.Empty(catalog.SteamLink("0"))
}
