package rawg

import (
	"github.com/samber/lo"

	"gamedeals/internal/domain/entity"
)

type namedDTO struct {
	Name string `json:"name"`
}

type platformDTO struct {
	Platform namedDTO `json:"platform"`
}

// gameDTO covers both the search result item and the by-id detail body.
// Detail-only fields stay empty in search results.
type gameDTO struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	BackgroundImage string        `json:"background_image"`
	Genres          []namedDTO    `json:"genres"`
	Platforms       []platformDTO `json:"platforms"`

	DescriptionRaw string     `json:"description_raw"`
	Developers     []namedDTO `json:"developers"`
	Website        string     `json:"website"`
}

type searchDTO struct {
	Count   int       `json:"count"`
	Results []gameDTO `json:"results"`
}

func newDomainMetadata(dto gameDTO) entity.GameMetadata {
	return entity.GameMetadata{
		RawgID: dto.ID,
		Name:   dto.Name,
		Genres: lo.Map(dto.Genres, func(g namedDTO, _ int) string {
			return g.Name
		}),
		Platforms: lo.Map(dto.Platforms, func(p platformDTO, _ int) string {
			return p.Platform.Name
		}),
		ImageURL:    dto.BackgroundImage,
		Description: dto.DescriptionRaw,
		Developers: lo.Map(dto.Developers, func(d namedDTO, _ int) string {
			return d.Name
		}),
		Website: dto.Website,
	}
}
