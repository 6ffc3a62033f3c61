package arr

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vmunix/arrsync/internal/media"
)

// Series lists the Sonarr library.
func (c *Client) Series(ctx context.Context, inst Instance) ([]media.Series, error) {
	return get[[]media.Series](ctx, c, inst, "/series", nil)
}

// SeriesByID fetches one series by library id.
func (c *Client) SeriesByID(ctx context.Context, inst Instance, id int) (media.Series, error) {
	return get[media.Series](ctx, c, inst, "/series/"+strconv.Itoa(id), nil)
}

// AddSeries adds a looked-up series and returns the server's record.
func (c *Client) AddSeries(ctx context.Context, inst Instance, s media.Series) (media.Series, error) {
	return send[media.Series](ctx, c, http.MethodPost, inst, "/series", nil, s)
}

// PushSeries saves a series and returns the server's record.
func (c *Client) PushSeries(ctx context.Context, inst Instance, s media.Series) (media.Series, error) {
	id, err := libraryID(s)
	if err != nil {
		return media.Series{}, err
	}
	return send[media.Series](ctx, c, http.MethodPut, inst, "/series/"+strconv.Itoa(id), nil, s)
}

// UpdateSeries saves a series, optionally moving its files to a new root folder.
func (c *Client) UpdateSeries(ctx context.Context, inst Instance, s media.Series, moveFiles bool) error {
	id, err := libraryID(s)
	if err != nil {
		return err
	}
	var query url.Values
	if moveFiles {
		query = url.Values{"moveFiles": {"true"}}
	}
	return exec(ctx, c, http.MethodPut, inst, "/series/"+strconv.Itoa(id), query, s)
}

// DeleteSeries removes a series from the library.
func (c *Client) DeleteSeries(ctx context.Context, inst Instance, s media.Series, addExclusion bool) error {
	id, err := libraryID(s)
	if err != nil {
		return err
	}
	query := url.Values{}
	if addExclusion {
		query.Set("addImportListExclusion", "true")
	}
	return exec(ctx, c, http.MethodDelete, inst, "/series/"+strconv.Itoa(id), query, nil)
}

// LookupSeries searches the catalog.
func (c *Client) LookupSeries(ctx context.Context, inst Instance, term string) ([]media.Series, error) {
	return get[[]media.Series](ctx, c, inst, "/series/lookup", url.Values{"term": {term}})
}

// SeriesReleases searches indexers for releases of a season or an episode.
func (c *Client) SeriesReleases(ctx context.Context, inst Instance, seriesID int, season, episodeID *int) ([]media.SeriesRelease, error) {
	query := url.Values{}
	switch {
	case episodeID != nil:
		query.Set("episodeId", strconv.Itoa(*episodeID))
	case season != nil:
		query.Set("seriesId", strconv.Itoa(seriesID))
		query.Set("seasonNumber", strconv.Itoa(*season))
	default:
		query.Set("seriesId", strconv.Itoa(seriesID))
	}
	return get[[]media.SeriesRelease](ctx, c, inst, "/release", query)
}

// Episodes lists the episodes of a series.
func (c *Client) Episodes(ctx context.Context, inst Instance, seriesID int) ([]media.Episode, error) {
	return get[[]media.Episode](ctx, c, inst, "/episode", url.Values{"seriesId": {strconv.Itoa(seriesID)}})
}

type episodeMonitor struct {
	EpisodeIDs []int `json:"episodeIds"`
	Monitored  bool  `json:"monitored"`
}

// MonitorEpisodes sets the monitored flag of the given episodes.
func (c *Client) MonitorEpisodes(ctx context.Context, inst Instance, episodeIDs []int, monitored bool) error {
	return exec(ctx, c, http.MethodPut, inst, "/episode/monitor", nil, episodeMonitor{EpisodeIDs: episodeIDs, Monitored: monitored})
}

// EpisodeFiles lists the files of a series.
func (c *Client) EpisodeFiles(ctx context.Context, inst Instance, seriesID int) ([]media.EpisodeFile, error) {
	return get[[]media.EpisodeFile](ctx, c, inst, "/episodefile", url.Values{"seriesId": {strconv.Itoa(seriesID)}})
}

// DeleteEpisodeFile deletes an episode file from disk.
func (c *Client) DeleteEpisodeFile(ctx context.Context, inst Instance, fileID int) error {
	return exec(ctx, c, http.MethodDelete, inst, "/episodefile/"+strconv.Itoa(fileID), nil, nil)
}
