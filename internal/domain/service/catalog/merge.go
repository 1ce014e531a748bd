package catalog

import (
	"gamedeals/internal/domain/entity"
)

const steamStoreURL = "https://store.steampowered.com/app/"

type MergeOptions struct {
	// PreferHighRes replaces an existing thumbnail with the metadata cover art.
	PreferHighRes bool
}

// AttachMetadata returns a copy of deal with the descriptive fields taken
// from meta. Commerce fields (title, prices, rating) always come from the
// deals API and are left as they are.
func AttachMetadata(deal entity.Deal, meta entity.GameMetadata, opts MergeOptions) entity.Deal {
	merged := deal.Clone()

	merged.Genres = append([]string{}, meta.Genres...)
	merged.Platforms = append([]string{}, meta.Platforms...)

	if len(meta.Developers) > 0 {
		merged.Developers = append([]string{}, meta.Developers...)
	}

	if meta.Description != "" {
		merged.Description = meta.Description
	}

	if link := SteamLink(deal.SteamAppID); link != "" {
		merged.SteamLink = link
	}

	if meta.ImageURL != "" && (deal.Thumb == "" || opts.PreferHighRes) {
		merged.Thumb = meta.ImageURL
	}

	return merged
}

// SteamLink builds the store page URL for a Steam app id.
func SteamLink(steamAppID string) string {
	if steamAppID == "" || steamAppID == "0" {
		return ""
	}

	return steamStoreURL + steamAppID + "/"
}
