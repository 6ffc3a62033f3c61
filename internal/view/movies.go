package view

import (
	"cmp"

	"github.com/vmunix/arrsync/internal/media"
)

// Movie sort options.
var (
	MovieByTitle = Option[media.Movie]{
		Key: "title", Label: "Title",
		Compare: func(a, b media.Movie) int { return compareTitles(movieSortTitle(a), movieSortTitle(b)) },
	}
	MovieByYear = Option[media.Movie]{
		Key: "year", Label: "Year",
		Compare: func(a, b media.Movie) int { return cmp.Compare(a.Year, b.Year) },
	}
	MovieByAdded = Option[media.Movie]{
		Key: "added", Label: "Added",
		Compare: func(a, b media.Movie) int { return a.Added.Compare(b.Added) },
	}
	MovieBySize = Option[media.Movie]{
		Key: "size", Label: "File Size",
		Compare: func(a, b media.Movie) int { return cmp.Compare(a.SizeOnDisk, b.SizeOnDisk) },
	}
	MovieByRelease = Option[media.Movie]{
		Key: "release", Label: "Release Date",
		Compare: func(a, b media.Movie) int { return compareTimes(a.ReleaseDate(), b.ReleaseDate()) },
	}
)

// MovieOptions lists the movie sort options in menu order.
var MovieOptions = []Option[media.Movie]{MovieByTitle, MovieByYear, MovieByAdded, MovieBySize, MovieByRelease}

// Movie filters.
var (
	MoviesAll = Filter[media.Movie]{Key: "all", Label: "All Movies"}
	MoviesMonitored = Filter[media.Movie]{
		Key: "monitored", Label: "Monitored",
		Match: func(m media.Movie) bool { return m.Monitored },
	}
	MoviesUnmonitored = Filter[media.Movie]{
		Key: "unmonitored", Label: "Unmonitored",
		Match: func(m media.Movie) bool { return !m.Monitored },
	}
	MoviesMissing = Filter[media.Movie]{
		Key: "missing", Label: "Missing",
		Match: media.Movie.IsMissing,
	}
	MoviesDownloaded = Filter[media.Movie]{
		Key: "downloaded", Label: "Downloaded",
		Match: media.Movie.IsDownloaded,
	}
	MoviesReleased = Filter[media.Movie]{
		Key: "released", Label: "Released",
		Match: func(m media.Movie) bool { return m.Status == media.MovieReleased },
	}
	MoviesAnnounced = Filter[media.Movie]{
		Key: "announced", Label: "Announced",
		Match: func(m media.Movie) bool { return m.Status == media.MovieAnnounced },
	}
	MoviesWaiting = Filter[media.Movie]{
		Key: "waiting", Label: "Waiting",
		Match: media.Movie.IsWaiting,
	}
)

// MovieFilters lists the movie filters in menu order.
var MovieFilters = []Filter[media.Movie]{
	MoviesAll, MoviesMonitored, MoviesUnmonitored, MoviesMissing, MoviesDownloaded, MoviesReleased, MoviesAnnounced,
	MoviesWaiting,
}

func movieSortTitle(m media.Movie) string {
	if m.SortTitle != "" {
		return m.SortTitle
	}
	return m.Title
}
