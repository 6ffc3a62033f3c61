package media

// Command triggers an asynchronous job on the server.
type Command struct {
	Name         string `json:"name"`
	MovieIDs     []int  `json:"movieIds,omitempty"`
	SeriesID     *int   `json:"seriesId,omitempty"`
	SeasonNumber *int   `json:"seasonNumber,omitempty"`
	EpisodeIDs   []int  `json:"episodeIds,omitempty"`
}

// MoviesSearch searches indexers for the given movies.
func MoviesSearch(movieIDs ...int) Command {
	return Command{Name: "MoviesSearch", MovieIDs: movieIDs}
}

// RefreshMovie refreshes metadata and rescans files of the given movies.
func RefreshMovie(movieIDs ...int) Command {
	return Command{Name: "RefreshMovie", MovieIDs: movieIDs}
}

// SeriesSearch searches indexers for every monitored episode of a series.
func SeriesSearch(seriesID int) Command {
	return Command{Name: "SeriesSearch", SeriesID: &seriesID}
}

// SeasonSearch searches indexers for one season.
func SeasonSearch(seriesID, season int) Command {
	return Command{Name: "SeasonSearch", SeriesID: &seriesID, SeasonNumber: &season}
}

// EpisodeSearch searches indexers for the given episodes.
func EpisodeSearch(episodeIDs ...int) Command {
	return Command{Name: "EpisodeSearch", EpisodeIDs: episodeIDs}
}

// RefreshSeries refreshes metadata and rescans files of a series.
func RefreshSeries(seriesID int) Command {
	return Command{Name: "RefreshSeries", SeriesID: &seriesID}
}

// GrabScope narrows a Sonarr grab to a season or a single episode.
type GrabScope struct {
	SeriesID     int
	SeasonNumber *int
	EpisodeID    *int
}

// Grab asks the server to download a release from a search result.
type Grab struct {
	GUID      string
	IndexerID int
	Scope     *GrabScope
}

// RootFolder is a library root on the server.
type RootFolder struct {
	ID         int    `json:"id"`
	Path       string `json:"path"`
	Accessible bool   `json:"accessible"`
	FreeSpace  int64  `json:"freeSpace"`
}

// QualityProfile is a named set of allowed qualities.
type QualityProfile struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SystemStatus identifies a server.
type SystemStatus struct {
	AppName        string `json:"appName"`
	InstanceName   string `json:"instanceName"`
	Version        string `json:"version"`
	URLBase        string `json:"urlBase,omitempty"`
	Authentication string `json:"authentication,omitempty"`
}
