package search

import (
	"fmt"

	"github.com/vmunix/arrsync/internal/media"
)

// Scope selects what a release search covers: a movie, a whole series, one
// season or one episode.
type Scope struct {
	MovieID      int
	SeriesID     int
	SeasonNumber *int
	EpisodeID    *int
}

func MovieScope(movieID int) Scope { return Scope{MovieID: movieID} }

func SeriesScope(seriesID int) Scope { return Scope{SeriesID: seriesID} }

func SeasonScope(seriesID, seasonNumber int) Scope {
	return Scope{SeriesID: seriesID, SeasonNumber: &seasonNumber}
}

func EpisodeScope(seriesID, episodeID int) Scope {
	return Scope{SeriesID: seriesID, EpisodeID: &episodeID}
}

// grab returns the narrowing sent with a grab from this scope. Movie grabs
// carry none.
func (s Scope) grab() *media.GrabScope {
	if s.MovieID != 0 {
		return nil
	}
	return &media.GrabScope{SeriesID: s.SeriesID, SeasonNumber: s.SeasonNumber, EpisodeID: s.EpisodeID}
}

func (s Scope) String() string {
	switch {
	case s.MovieID != 0:
		return fmt.Sprintf("movie %d", s.MovieID)
	case s.EpisodeID != nil:
		return fmt.Sprintf("episode %d", *s.EpisodeID)
	case s.SeasonNumber != nil:
		return fmt.Sprintf("series %d season %d", s.SeriesID, *s.SeasonNumber)
	}
	return fmt.Sprintf("series %d", s.SeriesID)
}
