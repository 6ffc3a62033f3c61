package media

import "time"

// SeriesStatus is Sonarr's airing state of a series.
type SeriesStatus string

const (
	SeriesContinuing SeriesStatus = "continuing"
	SeriesEnded      SeriesStatus = "ended"
	SeriesUpcoming   SeriesStatus = "upcoming"
	SeriesDeleted    SeriesStatus = "deleted"
)

// Label returns the display name.
func (s SeriesStatus) Label() string {
	switch s {
	case SeriesContinuing:
		return "Continuing"
	case SeriesEnded:
		return "Ended"
	case SeriesUpcoming:
		return "Upcoming"
	case SeriesDeleted:
		return "Deleted"
	}
	return "Unknown"
}

// SeriesType controls episode numbering.
type SeriesType string

const (
	SeriesStandard SeriesType = "standard"
	SeriesDaily    SeriesType = "daily"
	SeriesAnime    SeriesType = "anime"
)

// MonitorNewItems controls whether new seasons are monitored.
type MonitorNewItems string

const (
	MonitorNewAll  MonitorNewItems = "all"
	MonitorNewNone MonitorNewItems = "none"
)

// Series is a Sonarr series, either in the library or returned by a lookup.
type Series struct {
	ID       *int   `json:"id,omitempty"`
	TVDBID   int    `json:"tvdbId"`
	TVRageID int    `json:"tvRageId,omitempty"`
	TVMazeID int    `json:"tvMazeId,omitempty"`
	IMDBID   string `json:"imdbId,omitempty"`

	Title         string       `json:"title"`
	SortTitle     string       `json:"sortTitle"`
	Status        SeriesStatus `json:"status"`
	SeriesType    SeriesType   `json:"seriesType"`
	Network       string       `json:"network,omitempty"`
	Overview      string       `json:"overview,omitempty"`
	Certification string       `json:"certification,omitempty"`
	Year          int          `json:"year"`
	Runtime       int          `json:"runtime"`
	Ended         bool         `json:"ended"`

	Path             string          `json:"path,omitempty"`
	RootFolderPath   string          `json:"rootFolderPath,omitempty"`
	QualityProfileID int             `json:"qualityProfileId"`
	SeasonFolder     bool            `json:"seasonFolder"`
	Monitored        bool            `json:"monitored"`
	MonitorNewItems  MonitorNewItems `json:"monitorNewItems,omitempty"`
	UseScene         bool            `json:"useSceneNumbering"`

	Added      time.Time  `json:"added"`
	FirstAired *time.Time `json:"firstAired,omitempty"`
	LastAired  *time.Time `json:"lastAired,omitempty"`
	NextAiring *time.Time `json:"nextAiring,omitempty"`

	OriginalLanguage *Language         `json:"originalLanguage,omitempty"`
	AlternateTitles  []AlternateTitle  `json:"alternateTitles,omitempty"`
	Seasons          []Season          `json:"seasons"`
	Genres           []string          `json:"genres"`
	Images           []Image           `json:"images"`
	Statistics       *SeriesStatistics `json:"statistics,omitempty"`
	AddOptions       *SeriesAddOptions `json:"addOptions,omitempty"`
}

// Season is one season of a series.
type Season struct {
	SeasonNumber int               `json:"seasonNumber"`
	Monitored    bool              `json:"monitored"`
	Statistics   *SeasonStatistics `json:"statistics,omitempty"`
}

// SeasonStatistics are the per-season counters reported by Sonarr.
type SeasonStatistics struct {
	EpisodeFileCount  int     `json:"episodeFileCount"`
	EpisodeCount      int     `json:"episodeCount"`
	TotalEpisodeCount int     `json:"totalEpisodeCount"`
	SizeOnDisk        int64   `json:"sizeOnDisk"`
	PercentOfEpisodes float64 `json:"percentOfEpisodes"`
}

// SeriesStatistics are the series-wide counters reported by Sonarr.
type SeriesStatistics struct {
	SeasonCount       int     `json:"seasonCount"`
	EpisodeFileCount  int     `json:"episodeFileCount"`
	EpisodeCount      int     `json:"episodeCount"`
	SizeOnDisk        int64   `json:"sizeOnDisk"`
	PercentOfEpisodes float64 `json:"percentOfEpisodes"`
}

// SeriesAddOptions is sent along with a series being added.
type SeriesAddOptions struct {
	Monitor                      string `json:"monitor"`
	SearchForMissingEpisodes     bool   `json:"searchForMissingEpisodes"`
	SearchForCutoffUnmetEpisodes bool   `json:"searchForCutoffUnmetEpisodes"`
}

func (s Series) Identity() int { return s.TVDBID }

func (s Series) LibraryID() (int, bool) {
	if s.ID == nil {
		return 0, false
	}
	return *s.ID, true
}

func (s Series) Exists() bool          { return s.ID != nil }
func (s Series) IsMonitored() bool     { return s.Monitored }
func (s Series) SearchTitle() string   { return s.Title }
func (s Series) SearchNetwork() string { return s.Network }

// AlternateTitlesString joins the alternate titles with spaces.
func (s Series) AlternateTitlesString() string { return joinTitles(s.AlternateTitles) }

// SortYear places series without a known year last.
func (s Series) SortYear() int {
	if s.Year == 0 {
		return 2100
	}
	return s.Year
}

// EpisodeCount returns the number of episodes known to Sonarr.
func (s Series) EpisodeCount() int {
	if s.Statistics == nil {
		return 0
	}
	return s.Statistics.EpisodeCount
}

// EpisodeFileCount returns the number of downloaded episodes.
func (s Series) EpisodeFileCount() int {
	if s.Statistics == nil {
		return 0
	}
	return s.Statistics.EpisodeFileCount
}

// SizeOnDisk returns the total size of downloaded episodes.
func (s Series) SizeOnDisk() int64 {
	if s.Statistics == nil {
		return 0
	}
	return s.Statistics.SizeOnDisk
}

// IsDownloaded reports whether every aired episode has a file.
func (s Series) IsDownloaded() bool {
	return s.Statistics != nil && s.Statistics.PercentOfEpisodes >= 100
}

// IsWaiting reports whether the series has not premiered yet.
func (s Series) IsWaiting() bool {
	if s.FirstAired != nil {
		return s.FirstAired.After(time.Now())
	}
	return s.Status == SeriesUpcoming
}

// IsMissing reports whether a monitored series lacks episode files.
func (s Series) IsMissing() bool {
	return s.Monitored && !s.IsWaiting() && s.EpisodeFileCount() < s.EpisodeCount()
}

// Season returns the season with the given number.
func (s Series) Season(number int) (Season, bool) {
	for _, season := range s.Seasons {
		if season.SeasonNumber == number {
			return season, true
		}
	}
	return Season{}, false
}

// RemotePoster returns the remote poster URL.
func (s Series) RemotePoster() string { return remoteImage(s.Images, "poster") }

// WithTracked returns s with the user-editable fields copied from src.
func (s Series) WithTracked(src Series) Series {
	s.Monitored = src.Monitored
	s.QualityProfileID = src.QualityProfileID
	s.RootFolderPath = src.RootFolderPath
	s.SeriesType = src.SeriesType
	s.SeasonFolder = src.SeasonFolder
	s.MonitorNewItems = src.MonitorNewItems
	if len(src.Seasons) > 0 {
		seasons := make([]Season, len(s.Seasons))
		copy(seasons, s.Seasons)
		for i := range seasons {
			if updated, ok := src.Season(seasons[i].SeasonNumber); ok {
				seasons[i].Monitored = updated.Monitored
			}
		}
		s.Seasons = seasons
	}
	return s
}
