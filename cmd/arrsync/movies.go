package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrsync/internal/media"
	"github.com/vmunix/arrsync/internal/view"
)

var moviesCmd = &cobra.Command{
	Use:   "movies [query]",
	Short: "List the movie library",
	Long:  "Fetches the movie library of the selected Radarr instance and prints it filtered, searched and sorted.",
	RunE:  runMoviesCmd,
}

func init() {
	rootCmd.AddCommand(moviesCmd)
	moviesCmd.Flags().StringP("sort", "s", view.MovieByTitle.Key, "Sort by (title, year, added, size, release)")
	moviesCmd.Flags().StringP("filter", "f", view.MoviesAll.Key, "Filter (all, monitored, unmonitored, missing, downloaded, released, announced, waiting)")
	moviesCmd.Flags().Bool("desc", false, "Sort descending")
}

func runMoviesCmd(cmd *cobra.Command, args []string) error {
	sortKey, _ := cmd.Flags().GetString("sort")
	filterKey, _ := cmd.Flags().GetString("filter")
	desc, _ := cmd.Flags().GetBool("desc")

	option, err := view.FindOption(view.MovieOptions, sortKey)
	if err != nil {
		return err
	}
	filter, err := view.FindFilter(view.MovieFilters, filterKey)
	if err != nil {
		return err
	}

	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	radarr, err := session.Radarr()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if !radarr.Movies.Fetch(ctx) {
		return requestError(ctx, "fetch movies", radarr.Movies.Err())
	}
	radarr.Movies.Wait()

	movies := radarr.Movies.Derive(view.Sort[media.Movie]{Option: option, Filter: filter, Ascending: !desc}, strings.Join(args, " "))
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), movies)
	}
	printMovies(cmd.OutOrStdout(), movies)
	return nil
}

func printMovies(w io.Writer, movies []media.Movie) {
	if len(movies) == 0 {
		fmt.Fprintln(w, "No movies")
		return
	}

	fmt.Fprintf(w, "Movies (%d):\n\n", len(movies))
	fmt.Fprintf(w, "  %-5s %-40s %-5s %-11s %-9s %s\n", "ID", "TITLE", "YEAR", "STATE", "MONITORED", "SIZE")
	rule(w, 84)
	for _, m := range movies {
		id := "-"
		if libraryID, ok := m.LibraryID(); ok {
			id = fmt.Sprint(libraryID)
		}
		size := "-"
		if m.SizeOnDisk > 0 {
			size = formatSize(m.SizeOnDisk)
		}
		fmt.Fprintf(w, "  %-5s %-40s %-5d %-11s %-9s %s\n",
			id, truncate(m.Title, 40), m.Year, m.StateLabel(), yesNo(m.Monitored), size)
	}
}
