package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrsync/internal/media"
	"github.com/vmunix/arrsync/internal/search"
)

var releasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "Search indexers for releases",
	Long: `Runs an interactive release search on the selected instance.

Exactly one of --movie or --series is required. A series search can be
narrowed with --season or --episode.`,
	Args: cobra.NoArgs,
	RunE: runReleasesCmd,
}

func init() {
	rootCmd.AddCommand(releasesCmd)
	addScopeFlags(releasesCmd)
	releasesCmd.Flags().String("indexer", "", "Only show releases from this indexer")
	releasesCmd.Flags().String("quality", "", "Only show this quality (e.g. 1080p)")
	releasesCmd.Flags().String("protocol", "", "Only show this protocol (usenet, torrent)")
	releasesCmd.Flags().String("language", "", "Only show this language")
	releasesCmd.Flags().String("format", "", "Only show releases with this custom format")
	releasesCmd.Flags().Bool("approved", false, "Hide rejected releases")
	releasesCmd.Flags().StringP("sort", "s", search.SortWeight, "Sort by (weight, age, size, seeders, quality)")
	releasesCmd.Flags().Bool("asc", false, "Sort ascending")
	releasesCmd.Flags().Bool("facets", false, "Print the available filter values")
}

func addScopeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("movie", 0, "Radarr movie id")
	cmd.Flags().Int("series", 0, "Sonarr series id")
	cmd.Flags().Int("season", -1, "Season number (with --series)")
	cmd.Flags().Int("episode", 0, "Episode id (with --series)")
}

var errNoScope = errors.New("one of --movie or --series is required")

func scopeFromFlags(cmd *cobra.Command) (search.Scope, error) {
	movieID, _ := cmd.Flags().GetInt("movie")
	seriesID, _ := cmd.Flags().GetInt("series")
	season, _ := cmd.Flags().GetInt("season")
	episodeID, _ := cmd.Flags().GetInt("episode")

	switch {
	case movieID > 0 && seriesID > 0:
		return search.Scope{}, errors.New("--movie and --series are mutually exclusive")
	case movieID > 0:
		return search.MovieScope(movieID), nil
	case seriesID <= 0:
		return search.Scope{}, errNoScope
	case episodeID > 0:
		return search.EpisodeScope(seriesID, episodeID), nil
	case season >= 0:
		return search.SeasonScope(seriesID, season), nil
	}
	return search.SeriesScope(seriesID), nil
}

func releaseFilter(cmd *cobra.Command) search.Filter {
	var f search.Filter
	f.Indexer, _ = cmd.Flags().GetString("indexer")
	f.Quality, _ = cmd.Flags().GetString("quality")
	f.Protocol, _ = cmd.Flags().GetString("protocol")
	f.Language, _ = cmd.Flags().GetString("language")
	f.CustomFormat, _ = cmd.Flags().GetString("format")
	f.ApprovedOnly, _ = cmd.Flags().GetBool("approved")
	return f
}

// searchReleases runs the search and returns the arranged results.
func searchReleases[R media.ReleaseInfo](ctx context.Context, store *search.Releases[R], scope search.Scope, filter search.Filter, sortKey string, asc bool) ([]R, error) {
	if !store.Search(ctx, scope) {
		return nil, requestError(ctx, "release search", store.Err())
	}
	return search.Arrange(store.Results(), filter, sortKey, asc)
}

func runReleasesCmd(cmd *cobra.Command, args []string) error {
	scope, err := scopeFromFlags(cmd)
	if err != nil {
		return err
	}
	filter := releaseFilter(cmd)
	sortKey, _ := cmd.Flags().GetString("sort")
	asc, _ := cmd.Flags().GetBool("asc")
	showFacets, _ := cmd.Flags().GetBool("facets")

	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var (
		rows   []media.Release
		facets search.Facets
	)
	if scope.MovieID != 0 {
		radarr, err := session.Radarr()
		if err != nil {
			return err
		}
		results, err := searchReleases(ctx, radarr.Releases, scope, filter, sortKey, asc)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(out, results)
		}
		rows, facets = baseReleases(results), radarr.Releases.Facets()
	} else {
		sonarr, err := session.Sonarr()
		if err != nil {
			return err
		}
		results, err := searchReleases(ctx, sonarr.Releases, scope, filter, sortKey, asc)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(out, results)
		}
		rows, facets = baseReleases(results), sonarr.Releases.Facets()
	}

	if showFacets {
		printFacets(out, facets)
	}
	printReleases(out, scope, rows)
	return nil
}

func baseReleases[R media.ReleaseInfo](results []R) []media.Release {
	rows := make([]media.Release, len(results))
	for i, r := range results {
		rows[i] = r.Base()
	}
	return rows
}

func printFacets(w io.Writer, f search.Facets) {
	fmt.Fprintln(w, "Filters:")
	fmt.Fprintf(w, "  Indexers:   %s\n", strings.Join(f.Indexers, ", "))
	fmt.Fprintf(w, "  Qualities:  %s\n", strings.Join(f.Qualities, ", "))
	fmt.Fprintf(w, "  Protocols:  %s\n", strings.Join(f.Protocols, ", "))
	fmt.Fprintf(w, "  Languages:  %s\n", strings.Join(f.Languages, ", "))
	if len(f.CustomFormats) > 0 {
		fmt.Fprintf(w, "  Formats:    %s\n", strings.Join(f.CustomFormats, ", "))
	}
	fmt.Fprintln(w)
}

func printReleases(w io.Writer, scope search.Scope, rows []media.Release) {
	if len(rows) == 0 {
		fmt.Fprintf(w, "No releases for %s\n", scope)
		return
	}

	fmt.Fprintf(w, "Releases for %s (%d):\n\n", scope, len(rows))
	fmt.Fprintf(w, "  %-3s %-52s %-14s %-8s %-10s %-5s %s\n", "", "TITLE", "INDEXER", "QUALITY", "SIZE", "AGE", "PEERS")
	rule(w, 104)
	for _, r := range rows {
		mark := ""
		if r.Rejected {
			mark = "x"
		}
		peers := "-"
		if r.Seeders != nil {
			peers = fmt.Sprint(*r.Seeders)
		}
		fmt.Fprintf(w, "  %-3s %-52s %-14s %-8s %-10s %-5s %s\n",
			mark, truncate(r.Title, 52), truncate(r.IndexerLabel(), 14), r.QualityName(),
			formatSize(r.Size), formatAge(r.AgeMinutes), peers)
	}
	fmt.Fprintln(w, "\nGrab with: arrsync grab <guid> and the same scope flags (guids are listed with --json)")
}
