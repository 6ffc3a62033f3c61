// Package media defines the records exchanged with Radarr and Sonarr and the
// capabilities the stores rely on.
package media

import "strings"

// Kind names an entity collection. It is used for indexing hints, events and
// diagnostics.
type Kind string

const (
	KindMovie   Kind = "movie"
	KindSeries  Kind = "series"
	KindEpisode Kind = "episode"
	KindFile    Kind = "file"
	KindRelease Kind = "release"
	KindQueue   Kind = "queue"
	KindLookup  Kind = "lookup"
)

// Identifiable is implemented by catalog items. Identity is the source catalog
// id (TMDB for movies, TVDB for series) and stays the same before and after an
// item is added to an instance.
type Identifiable interface {
	Identity() int
	LibraryID() (int, bool)
	Exists() bool
}

// Monitorable is implemented by items that carry the monitored flag.
type Monitorable interface {
	IsMonitored() bool
}

// Searchable exposes the fields matched by a free-text query.
type Searchable interface {
	SearchTitle() string
	SearchNetwork() string
	AlternateTitlesString() string
}

// Item is a movie or a series.
type Item interface {
	Identifiable
	Monitorable
	Searchable
}

// AlternateTitle is an alternative catalog title.
type AlternateTitle struct {
	Title        string `json:"title"`
	SeasonNumber *int   `json:"seasonNumber,omitempty"`
}

func joinTitles(titles []AlternateTitle) string {
	names := make([]string, len(titles))
	for i, t := range titles {
		names[i] = t.Title
	}
	return strings.Join(names, " ")
}

// Image is a poster, fanart or banner reference.
type Image struct {
	CoverType string `json:"coverType"`
	URL       string `json:"url,omitempty"`
	RemoteURL string `json:"remoteUrl,omitempty"`
}

func remoteImage(images []Image, coverType string) string {
	for _, img := range images {
		if img.CoverType == coverType {
			return img.RemoteURL
		}
	}
	return ""
}

// Language is a spoken language reported by the server.
type Language struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Label returns the display name.
func (l Language) Label() string {
	if l.Name == "" {
		return "Unknown"
	}
	return l.Name
}

// CustomFormat is a named scoring rule matched against a release or file.
type CustomFormat struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Label returns the display name.
func (c CustomFormat) Label() string {
	return c.Name
}
