package entity

// GameMetadata is the descriptive side of a game. Both the search and the
// by-id detail responses of the metadata API decode into it.
type GameMetadata struct {
	RawgID    int64
	Name      string
	Genres    []string
	Platforms []string
	ImageURL  string

	// Only the detail response carries these.
	Description string
	Developers  []string
	Website     string
}

// Merge fills the fields of m that are empty from other. Non-empty fields of
// m win.
func (m GameMetadata) Merge(other GameMetadata) GameMetadata {
	if m.RawgID == 0 {
		m.RawgID = other.RawgID
	}

	if m.Name == "" {
		m.Name = other.Name
	}

	if len(m.Genres) == 0 {
		m.Genres = other.Genres
	}

	if len(m.Platforms) == 0 {
		m.Platforms = other.Platforms
	}

	if m.ImageURL == "" {
		m.ImageURL = other.ImageURL
	}

	if m.Description == "" {
		m.Description = other.Description
	}

	if len(m.Developers) == 0 {
		m.Developers = other.Developers
	}

	if m.Website == "" {
		m.Website = other.Website
	}

	return m
}
