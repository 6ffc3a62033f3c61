package media

import (
	"fmt"
	"time"
)

// Episode belongs to exactly one series.
type Episode struct {
	ID                    int        `json:"id"`
	SeriesID              int        `json:"seriesId"`
	TVDBID                int        `json:"tvdbId"`
	EpisodeFileID         int        `json:"episodeFileId"`
	SeasonNumber          int        `json:"seasonNumber"`
	EpisodeNumber         int        `json:"episodeNumber"`
	AbsoluteEpisodeNumber *int       `json:"absoluteEpisodeNumber,omitempty"`
	Title                 string     `json:"title,omitempty"`
	Overview              string     `json:"overview,omitempty"`
	Runtime               int        `json:"runtime"`
	HasFile               bool       `json:"hasFile"`
	Monitored             bool       `json:"monitored"`
	Grabbed               bool       `json:"grabbed"`
	FinaleType            string     `json:"finaleType,omitempty"`
	AirDateUTC            *time.Time `json:"airDateUtc,omitempty"`
}

// Key returns the server id.
func (e Episode) Key() int { return e.ID }

// ParentID returns the owning series id.
func (e Episode) ParentID() int { return e.SeriesID }

// HasAired reports whether the episode aired before now. Episodes without an
// air date have not aired.
func (e Episode) HasAired(now time.Time) bool {
	return e.AirDateUTC != nil && e.AirDateUTC.Before(now)
}

// IsDownloaded reports whether the episode has a file or a grabbed release.
func (e Episode) IsDownloaded() bool { return e.HasFile || e.Grabbed }

// IsSpecial reports whether the episode belongs to the specials season.
func (e Episode) IsSpecial() bool { return e.SeasonNumber == 0 }

// IsPremiere reports whether the episode opens a season.
func (e Episode) IsPremiere() bool { return e.EpisodeNumber == 1 && e.SeasonNumber > 0 }

// Label formats the episode as season x episode, e.g. "1x02".
func (e Episode) Label() string {
	return fmt.Sprintf("%dx%02d", e.SeasonNumber, e.EpisodeNumber)
}

// StatusLabel summarizes the download state.
func (e Episode) StatusLabel(now time.Time) string {
	switch {
	case e.HasFile:
		return "Downloaded"
	case !e.HasAired(now):
		return "Unaired"
	}
	return "Missing"
}

// MovieFile is a file imported for a movie.
type MovieFile struct {
	ID            int            `json:"id"`
	MovieID       int            `json:"movieId"`
	RelativePath  string         `json:"relativePath"`
	Path          string         `json:"path,omitempty"`
	Size          int64          `json:"size"`
	DateAdded     time.Time      `json:"dateAdded"`
	Quality       QualityModel   `json:"quality"`
	Languages     []Language     `json:"languages,omitempty"`
	CustomFormats []CustomFormat `json:"customFormats,omitempty"`
}

func (f MovieFile) Key() int      { return f.ID }
func (f MovieFile) ParentID() int { return f.MovieID }

// EpisodeFile is a file imported for one or more episodes.
type EpisodeFile struct {
	ID            int            `json:"id"`
	SeriesID      int            `json:"seriesId"`
	SeasonNumber  int            `json:"seasonNumber"`
	RelativePath  string         `json:"relativePath"`
	Path          string         `json:"path,omitempty"`
	Size          int64          `json:"size"`
	DateAdded     time.Time      `json:"dateAdded"`
	Quality       QualityModel   `json:"quality"`
	Languages     []Language     `json:"languages,omitempty"`
	CustomFormats []CustomFormat `json:"customFormats,omitempty"`
}

func (f EpisodeFile) Key() int      { return f.ID }
func (f EpisodeFile) ParentID() int { return f.SeriesID }
