package view

import (
	"cmp"

	"github.com/vmunix/arrsync/internal/media"
)

// Series sort options.
var (
	SeriesByTitle = Option[media.Series]{
		Key: "title", Label: "Title",
		Compare: func(a, b media.Series) int { return compareTitles(seriesSortTitle(a), seriesSortTitle(b)) },
	}
	SeriesByYear = Option[media.Series]{
		Key: "year", Label: "Year",
		Compare: func(a, b media.Series) int { return cmp.Compare(a.SortYear(), b.SortYear()) },
	}
	SeriesByAdded = Option[media.Series]{
		Key: "added", Label: "Added",
		Compare: func(a, b media.Series) int { return a.Added.Compare(b.Added) },
	}
	SeriesBySize = Option[media.Series]{
		Key: "size", Label: "File Size",
		Compare: func(a, b media.Series) int { return cmp.Compare(a.SizeOnDisk(), b.SizeOnDisk()) },
	}
	SeriesByNextAiring = Option[media.Series]{
		Key: "airing", Label: "Next Airing",
		Compare: func(a, b media.Series) int { return compareTimes(a.NextAiring, b.NextAiring) },
		Filter:  func(s media.Series) bool { return s.NextAiring != nil },
	}
	SeriesByEpisodes = Option[media.Series]{
		Key: "episodes", Label: "Episodes",
		Compare: func(a, b media.Series) int { return cmp.Compare(a.EpisodeFileCount(), b.EpisodeFileCount()) },
	}
)

// SeriesOptions lists the series sort options in menu order.
var SeriesOptions = []Option[media.Series]{
	SeriesByTitle, SeriesByYear, SeriesByAdded, SeriesBySize, SeriesByNextAiring, SeriesByEpisodes,
}

// Series filters.
var (
	SeriesAll = Filter[media.Series]{Key: "all", Label: "All Series"}
	SeriesMonitored = Filter[media.Series]{
		Key: "monitored", Label: "Monitored",
		Match: func(s media.Series) bool { return s.Monitored },
	}
	SeriesUnmonitored = Filter[media.Series]{
		Key: "unmonitored", Label: "Unmonitored",
		Match: func(s media.Series) bool { return !s.Monitored },
	}
	SeriesContinuing = Filter[media.Series]{
		Key: "continuing", Label: "Continuing",
		Match: func(s media.Series) bool { return s.Status == media.SeriesContinuing },
	}
	SeriesEnded = Filter[media.Series]{
		Key: "ended", Label: "Ended",
		Match: func(s media.Series) bool { return s.Status == media.SeriesEnded },
	}
	SeriesMissing = Filter[media.Series]{
		Key: "missing", Label: "Missing",
		Match: media.Series.IsMissing,
	}
	SeriesDownloaded = Filter[media.Series]{
		Key: "downloaded", Label: "Downloaded",
		Match: media.Series.IsDownloaded,
	}
)

// SeriesFilters lists the series filters in menu order.
var SeriesFilters = []Filter[media.Series]{
	SeriesAll, SeriesMonitored, SeriesUnmonitored, SeriesContinuing, SeriesEnded, SeriesMissing, SeriesDownloaded,
}

func seriesSortTitle(s media.Series) string {
	if s.SortTitle != "" {
		return s.SortTitle
	}
	return s.Title
}
