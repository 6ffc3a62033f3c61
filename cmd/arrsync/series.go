package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrsync/internal/media"
	"github.com/vmunix/arrsync/internal/view"
)

var seriesCmd = &cobra.Command{
	Use:   "series [query]",
	Short: "List the series library",
	Long:  "Fetches the series library of the selected Sonarr instance and prints it filtered, searched and sorted.",
	RunE:  runSeriesCmd,
}

func init() {
	rootCmd.AddCommand(seriesCmd)
	seriesCmd.Flags().StringP("sort", "s", view.SeriesByTitle.Key, "Sort by (title, year, added, size, airing, episodes)")
	seriesCmd.Flags().StringP("filter", "f", view.SeriesAll.Key, "Filter (all, monitored, unmonitored, continuing, ended, missing, downloaded)")
	seriesCmd.Flags().Bool("desc", false, "Sort descending")
}

func runSeriesCmd(cmd *cobra.Command, args []string) error {
	sortKey, _ := cmd.Flags().GetString("sort")
	filterKey, _ := cmd.Flags().GetString("filter")
	desc, _ := cmd.Flags().GetBool("desc")

	option, err := view.FindOption(view.SeriesOptions, sortKey)
	if err != nil {
		return err
	}
	filter, err := view.FindFilter(view.SeriesFilters, filterKey)
	if err != nil {
		return err
	}

	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	sonarr, err := session.Sonarr()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if !sonarr.Series.Fetch(ctx) {
		return requestError(ctx, "fetch series", sonarr.Series.Err())
	}
	sonarr.Series.Wait()

	series := sonarr.Series.Derive(view.Sort[media.Series]{Option: option, Filter: filter, Ascending: !desc}, strings.Join(args, " "))
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), series)
	}
	printSeries(cmd.OutOrStdout(), series)
	return nil
}

func printSeries(w io.Writer, series []media.Series) {
	if len(series) == 0 {
		fmt.Fprintln(w, "No series")
		return
	}

	fmt.Fprintf(w, "Series (%d):\n\n", len(series))
	fmt.Fprintf(w, "  %-5s %-36s %-5s %-11s %-9s %-9s %s\n", "ID", "TITLE", "YEAR", "STATUS", "EPISODES", "MONITORED", "SIZE")
	rule(w, 90)
	for _, s := range series {
		id := "-"
		if libraryID, ok := s.LibraryID(); ok {
			id = fmt.Sprint(libraryID)
		}
		size := "-"
		if bytes := s.SizeOnDisk(); bytes > 0 {
			size = formatSize(bytes)
		}
		episodes := fmt.Sprintf("%d/%d", s.EpisodeFileCount(), s.EpisodeCount())
		fmt.Fprintf(w, "  %-5s %-36s %-5d %-11s %-9s %-9s %s\n",
			id, truncate(s.Title, 36), s.Year, s.Status.Label(), episodes, yesNo(s.Monitored), size)
	}
}
