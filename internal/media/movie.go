package media

import "time"

// MovieStatus is Radarr's release state of a movie.
type MovieStatus string

const (
	MovieTBA       MovieStatus = "tba"
	MovieAnnounced MovieStatus = "announced"
	MovieInCinemas MovieStatus = "inCinemas"
	MovieReleased  MovieStatus = "released"
	MovieDeleted   MovieStatus = "deleted"
)

// Label returns the display name.
func (s MovieStatus) Label() string {
	switch s {
	case MovieTBA:
		return "TBA"
	case MovieAnnounced:
		return "Announced"
	case MovieInCinemas:
		return "In Cinemas"
	case MovieReleased:
		return "Released"
	case MovieDeleted:
		return "Deleted"
	}
	return "Unknown"
}

// Movie is a Radarr movie, either in the library or returned by a lookup.
type Movie struct {
	ID     *int   `json:"id,omitempty"`
	TMDBID int    `json:"tmdbId"`
	IMDBID string `json:"imdbId,omitempty"`

	Title            string           `json:"title"`
	SortTitle        string           `json:"sortTitle"`
	Studio           string           `json:"studio,omitempty"`
	Year             int              `json:"year"`
	Runtime          int              `json:"runtime"`
	Overview         string           `json:"overview,omitempty"`
	Certification    string           `json:"certification,omitempty"`
	YouTubeTrailerID string           `json:"youTubeTrailerId,omitempty"`
	AlternateTitles  []AlternateTitle `json:"alternateTitles"`
	Genres           []string         `json:"genres"`
	Popularity       float64          `json:"popularity,omitempty"`

	Status              MovieStatus `json:"status"`
	MinimumAvailability MovieStatus `json:"minimumAvailability"`

	Monitored        bool   `json:"monitored"`
	QualityProfileID int    `json:"qualityProfileId"`
	SizeOnDisk       int64  `json:"sizeOnDisk,omitempty"`
	HasFile          bool   `json:"hasFile"`
	IsAvailable      bool   `json:"isAvailable"`
	Path             string `json:"path,omitempty"`
	FolderName       string `json:"folderName,omitempty"`
	RootFolderPath   string `json:"rootFolderPath,omitempty"`

	Added           time.Time  `json:"added"`
	InCinemas       *time.Time `json:"inCinemas,omitempty"`
	PhysicalRelease *time.Time `json:"physicalRelease,omitempty"`
	DigitalRelease  *time.Time `json:"digitalRelease,omitempty"`

	Images     []Image          `json:"images"`
	MovieFile  *MovieFile       `json:"movieFile,omitempty"`
	AddOptions *MovieAddOptions `json:"addOptions,omitempty"`
}

// MovieAddOptions is sent along with a movie being added.
type MovieAddOptions struct {
	SearchForMovie bool `json:"searchForMovie"`
}

func (m Movie) Identity() int { return m.TMDBID }

func (m Movie) LibraryID() (int, bool) {
	if m.ID == nil {
		return 0, false
	}
	return *m.ID, true
}

func (m Movie) Exists() bool          { return m.ID != nil }
func (m Movie) IsMonitored() bool     { return m.Monitored }
func (m Movie) SearchTitle() string   { return m.Title }
func (m Movie) SearchNetwork() string { return m.Studio }

// AlternateTitlesString joins the alternate titles with spaces.
func (m Movie) AlternateTitlesString() string { return joinTitles(m.AlternateTitles) }

// IsDownloaded reports whether the movie has a file on disk.
func (m Movie) IsDownloaded() bool { return m.HasFile }

// IsWaiting reports whether the movie cannot be grabbed yet.
func (m Movie) IsWaiting() bool {
	switch m.Status {
	case MovieTBA, MovieAnnounced:
		return true
	case MovieInCinemas:
		return m.MinimumAvailability == MovieReleased
	}
	return false
}

// IsMissing reports whether the movie is wanted but not downloaded.
func (m Movie) IsMissing() bool {
	return m.Monitored && m.IsAvailable && !m.HasFile
}

// StateLabel summarizes the download state.
func (m Movie) StateLabel() string {
	switch {
	case m.IsDownloaded():
		return "Downloaded"
	case m.IsWaiting():
		return "Waiting"
	case m.Monitored && m.IsAvailable:
		return "Missing"
	}
	return "Unwanted"
}

// ReleaseDate returns the earliest known release date, if any.
func (m Movie) ReleaseDate() *time.Time {
	var earliest *time.Time
	for _, d := range []*time.Time{m.InCinemas, m.DigitalRelease, m.PhysicalRelease} {
		if d != nil && (earliest == nil || d.Before(*earliest)) {
			earliest = d
		}
	}
	return earliest
}

// RemotePoster returns the remote poster URL.
func (m Movie) RemotePoster() string { return remoteImage(m.Images, "poster") }

// WithTracked returns m with the user-editable fields copied from src.
func (m Movie) WithTracked(src Movie) Movie {
	m.Monitored = src.Monitored
	m.QualityProfileID = src.QualityProfileID
	m.MinimumAvailability = src.MinimumAvailability
	m.RootFolderPath = src.RootFolderPath
	return m
}
