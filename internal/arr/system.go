package arr

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vmunix/arrsync/internal/media"
)

const queuePageSize = 100

type grabPayload struct {
	GUID         string `json:"guid"`
	IndexerID    int    `json:"indexerId"`
	SeriesID     *int   `json:"seriesId,omitempty"`
	SeasonNumber *int   `json:"seasonNumber,omitempty"`
	EpisodeID    *int   `json:"episodeId,omitempty"`
}

// GrabRelease asks the server to download a release. Sonarr grabs carry the
// episode when one is given, otherwise the series and season.
func (c *Client) GrabRelease(ctx context.Context, inst Instance, g media.Grab) error {
	payload := grabPayload{GUID: g.GUID, IndexerID: g.IndexerID}
	if inst.Kind == Sonarr && g.Scope != nil {
		if g.Scope.EpisodeID != nil {
			payload.EpisodeID = g.Scope.EpisodeID
		} else {
			seriesID := g.Scope.SeriesID
			payload.SeriesID = &seriesID
			payload.SeasonNumber = g.Scope.SeasonNumber
		}
	}
	return exec(ctx, c, http.MethodPost, inst, "/release", nil, payload)
}

// QueuePage fetches one page of the download queue.
func (c *Client) QueuePage(ctx context.Context, inst Instance, page int) (media.QueuePage, error) {
	query := url.Values{
		"page":     {strconv.Itoa(page)},
		"pageSize": {strconv.Itoa(queuePageSize)},
	}
	if inst.Kind == Sonarr {
		query.Set("includeSeries", "true")
		query.Set("includeEpisode", "true")
	} else {
		query.Set("includeMovie", "true")
	}
	return get[media.QueuePage](ctx, c, inst, "/queue", query)
}

// Queue fetches every page of the download queue.
func (c *Client) Queue(ctx context.Context, inst Instance) ([]media.QueueItem, error) {
	var records []media.QueueItem
	for page := 1; ; page++ {
		p, err := c.QueuePage(ctx, inst, page)
		if err != nil {
			return nil, err
		}
		records = append(records, p.Records...)
		if len(p.Records) == 0 || len(records) >= p.TotalRecords {
			return records, nil
		}
	}
}

// RunCommand queues a server job. Success means the job was accepted.
func (c *Client) RunCommand(ctx context.Context, inst Instance, cmd media.Command) error {
	return exec(ctx, c, http.MethodPost, inst, "/command", nil, cmd)
}

// RootFolders lists the library roots.
func (c *Client) RootFolders(ctx context.Context, inst Instance) ([]media.RootFolder, error) {
	return get[[]media.RootFolder](ctx, c, inst, "/rootfolder", nil)
}

// QualityProfiles lists the quality profiles.
func (c *Client) QualityProfiles(ctx context.Context, inst Instance) ([]media.QualityProfile, error) {
	return get[[]media.QualityProfile](ctx, c, inst, "/qualityprofile", nil)
}

// SystemStatus identifies the server.
func (c *Client) SystemStatus(ctx context.Context, inst Instance) (media.SystemStatus, error) {
	return get[media.SystemStatus](ctx, c, inst, "/system/status", nil)
}
