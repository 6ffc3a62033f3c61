package media

import (
	"regexp"
	"strconv"
	"strings"
)

// Protocol is the transfer protocol of a release or download.
type Protocol string

const (
	ProtocolUsenet  Protocol = "usenet"
	ProtocolTorrent Protocol = "torrent"
	ProtocolUnknown Protocol = "unknown"
)

// Label returns the display name.
func (p Protocol) Label() string {
	switch p {
	case ProtocolUsenet:
		return "Usenet"
	case ProtocolTorrent:
		return "Torrent"
	}
	return "Unknown"
}

// QualityModel is the quality plus revision attached to releases, files and
// queue records.
type QualityModel struct {
	Quality  Quality  `json:"quality"`
	Revision Revision `json:"revision"`
}

// Quality is a named quality definition.
type Quality struct {
	ID         int     `json:"id"`
	Name       *string `json:"name,omitempty"`
	Source     string  `json:"source,omitempty"`
	Resolution int     `json:"resolution"`
}

// Revision marks repacks and propers.
type Revision struct {
	Version  int  `json:"version"`
	Real     int  `json:"real"`
	IsRepack bool `json:"isRepack"`
}

var resolutionSuffix = regexp.MustCompile(`-(\d+p)$`)

var qualitySynonyms = strings.NewReplacer(
	"BR-DISK", "1080p",
	"DVD-R", "480p",
	"SDTV", "480p",
)

// NormalizedName reduces a quality label to a resolution token. A trailing
// "-<N>p" wins, otherwise historical labels are mapped to their resolution.
// Missing names normalize to "Unknown".
func (q Quality) NormalizedName() string {
	if q.Name == nil || strings.TrimSpace(*q.Name) == "" {
		return "Unknown"
	}
	name := strings.TrimSpace(*q.Name)
	if m := resolutionSuffix.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return qualitySynonyms.Replace(name)
}

// Label returns the raw name, or the resolution when the name is missing.
func (q Quality) Label() string {
	if q.Name != nil && *q.Name != "" {
		return *q.Name
	}
	if q.Resolution > 0 {
		return strconv.Itoa(q.Resolution) + "p"
	}
	return "Unknown"
}

// Release is the part of a release search result shared by Radarr and Sonarr.
type Release struct {
	GUID              string         `json:"guid"`
	Protocol          Protocol       `json:"protocol"`
	Title             string         `json:"title"`
	Size              int64          `json:"size"`
	Age               int            `json:"age"`
	AgeMinutes        float64        `json:"ageMinutes"`
	Rejected          bool           `json:"rejected"`
	Rejections        []string       `json:"rejections,omitempty"`
	IndexerID         int            `json:"indexerId"`
	Indexer           string         `json:"indexer,omitempty"`
	Seeders           *int           `json:"seeders,omitempty"`
	Leechers          *int           `json:"leechers,omitempty"`
	Quality           QualityModel   `json:"quality"`
	Languages         []Language     `json:"languages"`
	CustomFormats     []CustomFormat `json:"customFormats,omitempty"`
	CustomFormatScore int            `json:"customFormatScore"`
	QualityWeight     int            `json:"qualityWeight"`
	ReleaseWeight     int            `json:"releaseWeight"`
	InfoURL           string         `json:"infoUrl,omitempty"`
}

// ReleaseInfo is implemented by MovieRelease and SeriesRelease through the
// embedded Release.
type ReleaseInfo interface {
	Base() Release
	Key() string
	IndexerLabel() string
	QualityName() string
	ProtocolLabel() string
	LanguageLabels() []string
	CustomFormatLabels() []string
	Grab(scope *GrabScope) Grab
}

// Base returns the shared fields.
func (r Release) Base() Release { return r }

// Key returns the guid. It identifies the release within one result set only.
func (r Release) Key() string { return r.GUID }

// IndexerLabel strips the Prowlarr suffix and falls back to the indexer id.
func (r Release) IndexerLabel() string {
	if r.Indexer == "" {
		return strconv.Itoa(r.IndexerID)
	}
	return strings.TrimSuffix(r.Indexer, " (Prowlarr)")
}

// QualityName returns the normalized quality name.
func (r Release) QualityName() string { return r.Quality.Quality.NormalizedName() }

func (r Release) ProtocolLabel() string { return r.Protocol.Label() }

func (r Release) LanguageLabels() []string {
	labels := make([]string, 0, len(r.Languages))
	for _, l := range r.Languages {
		labels = append(labels, l.Label())
	}
	return labels
}

func (r Release) CustomFormatLabels() []string {
	labels := make([]string, 0, len(r.CustomFormats))
	for _, cf := range r.CustomFormats {
		labels = append(labels, cf.Label())
	}
	return labels
}

// Grab returns the request that downloads this release.
func (r Release) Grab(scope *GrabScope) Grab {
	return Grab{GUID: r.GUID, IndexerID: r.IndexerID, Scope: scope}
}

func (r Release) IsTorrent() bool { return r.Protocol == ProtocolTorrent }
func (r Release) IsUsenet() bool  { return r.Protocol == ProtocolUsenet }

// IsProper reports whether the release is a proper or repack.
func (r Release) IsProper() bool {
	return r.Quality.Revision.Version > 1 || r.Quality.Revision.IsRepack
}

// MovieRelease is a Radarr release search result.
type MovieRelease struct {
	Release
	MappedMovieID *int     `json:"mappedMovieId,omitempty"`
	IndexerFlags  []string `json:"indexerFlags,omitempty"`
}

// IsFreeleech reports whether the indexer flagged the release as freeleech.
func (r MovieRelease) IsFreeleech() bool {
	for _, flag := range r.IndexerFlags {
		if strings.Contains(strings.ToLower(flag), "freeleech") {
			return true
		}
	}
	return false
}

// SeriesRelease is a Sonarr release search result.
type SeriesRelease struct {
	Release
	IndexerFlags   int    `json:"indexerFlags"`
	FullSeason     bool   `json:"fullSeason"`
	SeasonNumber   int    `json:"seasonNumber"`
	SeriesTitle    string `json:"seriesTitle,omitempty"`
	EpisodeNumbers []int  `json:"episodeNumbers,omitempty"`
	MappedSeriesID *int   `json:"mappedSeriesId,omitempty"`
}

// IsFreeleech reports whether the freeleech bit is set.
func (r SeriesRelease) IsFreeleech() bool { return r.IndexerFlags&1 != 0 }
