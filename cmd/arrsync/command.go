package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrsync/internal/media"
)

var commandCmd = &cobra.Command{
	Use:   "command <name> <id>...",
	Short: "Run a server job",
	Long: `Queues a job on the selected instance. The job runs in the background;
success means the server accepted it.

Radarr:
  movies-search <movie-id>...    Search indexers for movies
  refresh-movie <movie-id>...    Refresh metadata and rescan files

Sonarr:
  series-search <series-id>      Search every monitored episode
  season-search <series-id>      Search one season (requires --season)
  episode-search <episode-id>... Search episodes
  refresh-series <series-id>     Refresh metadata and rescan files`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCommandCmd,
}

func init() {
	rootCmd.AddCommand(commandCmd)
	commandCmd.Flags().Int("season", -1, "Season number for season-search")
}

var movieCommands = []string{"movies-search", "refresh-movie"}

// buildCommand maps a command name and its arguments to a server job.
func buildCommand(name string, ids []int, season int) (media.Command, error) {
	single := func() (int, error) {
		if len(ids) != 1 {
			return 0, fmt.Errorf("%s takes exactly one id", name)
		}
		return ids[0], nil
	}

	switch strings.ToLower(name) {
	case "movies-search":
		return media.MoviesSearch(ids...), nil
	case "refresh-movie":
		return media.RefreshMovie(ids...), nil
	case "series-search":
		id, err := single()
		if err != nil {
			return media.Command{}, err
		}
		return media.SeriesSearch(id), nil
	case "season-search":
		id, err := single()
		if err != nil {
			return media.Command{}, err
		}
		if season < 0 {
			return media.Command{}, fmt.Errorf("%s requires --season", name)
		}
		return media.SeasonSearch(id, season), nil
	case "episode-search":
		return media.EpisodeSearch(ids...), nil
	case "refresh-series":
		id, err := single()
		if err != nil {
			return media.Command{}, err
		}
		return media.RefreshSeries(id), nil
	}
	return media.Command{}, fmt.Errorf("unknown command %q", name)
}

func runCommandCmd(cmd *cobra.Command, args []string) error {
	name := args[0]
	ids := make([]int, 0, len(args)-1)
	for _, arg := range args[1:] {
		id, err := parseID(arg)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	season, _ := cmd.Flags().GetInt("season")

	job, err := buildCommand(name, ids, season)
	if err != nil {
		return err
	}

	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	var target fmt.Stringer
	if slices.Contains(movieCommands, strings.ToLower(name)) {
		radarr, err := session.Radarr()
		if err != nil {
			return err
		}
		if !radarr.Movies.Command(ctx, job) {
			return requestError(ctx, job.Name, radarr.Movies.Err())
		}
		target = radarr.Instance
	} else {
		sonarr, err := session.Sonarr()
		if err != nil {
			return err
		}
		if !sonarr.Series.Command(ctx, job) {
			return requestError(ctx, job.Name, sonarr.Series.Err())
		}
		target = sonarr.Instance
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Queued %s on %s\n", job.Name, target)
	return nil
}
