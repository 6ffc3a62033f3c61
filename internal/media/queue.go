package media

import "time"

// TrackedStatus is the health of a queued download.
type TrackedStatus string

const (
	TrackedOK      TrackedStatus = "ok"
	TrackedWarning TrackedStatus = "warning"
	TrackedError   TrackedStatus = "error"
)

// TrackedState is the import stage of a queued download.
type TrackedState string

const (
	StateDownloading   TrackedState = "downloading"
	StateImportPending TrackedState = "importPending"
	StateImporting     TrackedState = "importing"
	StateImported      TrackedState = "imported"
	StateFailedPending TrackedState = "failedPending"
	StateFailed        TrackedState = "failed"
	StateIgnored       TrackedState = "ignored"
)

// QueuePage is one page of the queue listing.
type QueuePage struct {
	Page         int         `json:"page"`
	PageSize     int         `json:"pageSize"`
	TotalRecords int         `json:"totalRecords"`
	Records      []QueueItem `json:"records"`
}

// StatusMessage groups messages reported for a download.
type StatusMessage struct {
	Title    string   `json:"title,omitempty"`
	Messages []string `json:"messages"`
}

// QueueItem is one download on one instance. Its id is only unique within
// that instance.
type QueueItem struct {
	ID             int    `json:"id"`
	DownloadID     string `json:"downloadId,omitempty"`
	DownloadClient string `json:"downloadClient,omitempty"`

	MovieID      *int     `json:"movieId,omitempty"`
	Movie        *Movie   `json:"movie,omitempty"`
	SeriesID     *int     `json:"seriesId,omitempty"`
	Series       *Series  `json:"series,omitempty"`
	EpisodeID    *int     `json:"episodeId,omitempty"`
	Episode      *Episode `json:"episode,omitempty"`
	SeasonNumber *int     `json:"seasonNumber,omitempty"`

	Title                   string          `json:"title,omitempty"`
	Indexer                 string          `json:"indexer,omitempty"`
	Protocol                Protocol        `json:"protocol"`
	Size                    float64         `json:"size"`
	SizeLeft                float64         `json:"sizeleft"`
	TimeLeft                string          `json:"timeleft,omitempty"`
	Languages               []Language      `json:"languages,omitempty"`
	Quality                 QualityModel    `json:"quality"`
	CustomFormats           []CustomFormat  `json:"customFormats,omitempty"`
	CustomFormatScore       int             `json:"customFormatScore"`
	Added                   *time.Time      `json:"added,omitempty"`
	EstimatedCompletionTime *time.Time      `json:"estimatedCompletionTime,omitempty"`
	Status                  string          `json:"status,omitempty"`
	StatusMessages          []StatusMessage `json:"statusMessages,omitempty"`
	TrackedDownloadStatus   TrackedStatus   `json:"trackedDownloadStatus,omitempty"`
	TrackedDownloadState    TrackedState    `json:"trackedDownloadState,omitempty"`
	OutputPath              string          `json:"outputPath,omitempty"`
}

// NeedsAttention reports whether the download is in warning or error.
func (q QueueItem) NeedsAttention() bool {
	return q.TrackedDownloadStatus == TrackedWarning || q.TrackedDownloadStatus == TrackedError
}

// Progress returns the completed fraction in [0, 1].
func (q QueueItem) Progress() float64 {
	if q.SizeLeft <= 0 || q.Size <= 0 {
		return 1
	}
	return (q.Size - q.SizeLeft) / q.Size
}

// TitleLabel prefers the attached movie or series title.
func (q QueueItem) TitleLabel() string {
	switch {
	case q.Movie != nil:
		return q.Movie.Title
	case q.Series != nil && q.Episode != nil:
		return q.Series.Title + " " + q.Episode.Label()
	case q.Series != nil:
		return q.Series.Title
	case q.Title != "":
		return q.Title
	}
	return "Unknown"
}

// StatusLabel summarizes the download client status and import stage.
func (q QueueItem) StatusLabel() string {
	switch q.Status {
	case "":
		return "Unknown"
	case "completed":
		switch q.TrackedDownloadState {
		case StateImportPending:
			return "Import Pending"
		case StateImporting:
			return "Importing"
		case StateFailedPending:
			return "Waiting"
		}
		return "Downloading"
	case "queued":
		return "Queued"
	case "paused":
		return "Paused"
	case "failed":
		return "Failed"
	case "downloading":
		return "Downloading"
	case "delay", "downloadClientUnavailable":
		return "Pending"
	case "warning":
		return "Error"
	}
	return "Unknown"
}
