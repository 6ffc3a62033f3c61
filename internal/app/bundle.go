package app

import (
	"github.com/vmunix/arrsync/internal/arr"
	"github.com/vmunix/arrsync/internal/library"
	"github.com/vmunix/arrsync/internal/media"
	"github.com/vmunix/arrsync/internal/search"
	"github.com/vmunix/arrsync/internal/state"
)

// RadarrInstance bundles the stores bound to one Radarr instance.
type RadarrInstance struct {
	Instance arr.Instance
	Movies   *library.Store[media.Movie]
	Lookup   *search.Lookup[media.Movie]
	Releases *search.Releases[media.MovieRelease]
	Files    *library.Files[media.MovieFile]
}

func newRadarrInstance(client *arr.Client, inst arr.Instance, rank bool, opts []state.Option) *RadarrInstance {
	return &RadarrInstance{
		Instance: inst,
		Movies:   library.NewMovieStore(client, inst, opts...),
		Lookup:   search.NewMovieLookup(client, inst, search.WithRanking(rank), search.WithState(opts...)),
		Releases: search.NewMovieReleases(client, inst, opts...),
		Files:    library.NewMovieFiles(client, inst, opts...),
	}
}

func (r *RadarrInstance) close() {
	if r != nil {
		r.Movies.Close()
	}
}

// SonarrInstance bundles the stores bound to one Sonarr instance.
type SonarrInstance struct {
	Instance arr.Instance
	Series   *library.Store[media.Series]
	Lookup   *search.Lookup[media.Series]
	Releases *search.Releases[media.SeriesRelease]
	Episodes *library.Episodes
	Files    *library.Files[media.EpisodeFile]
}

func newSonarrInstance(client *arr.Client, inst arr.Instance, rank bool, opts []state.Option) *SonarrInstance {
	return &SonarrInstance{
		Instance: inst,
		Series:   library.NewSeriesStore(client, inst, opts...),
		Lookup:   search.NewSeriesLookup(client, inst, search.WithRanking(rank), search.WithState(opts...)),
		Releases: search.NewSeriesReleases(client, inst, opts...),
		Episodes: library.NewEpisodes(client, inst, opts...),
		Files:    library.NewEpisodeFiles(client, inst, opts...),
	}
}

func (s *SonarrInstance) close() {
	if s != nil {
		s.Series.Close()
	}
}
