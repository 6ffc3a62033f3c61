package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrsync/internal/media"
)

var episodesCmd = &cobra.Command{
	Use:   "episodes <series-id>",
	Short: "List the episodes of a series",
	Args:  cobra.ExactArgs(1),
	RunE:  runEpisodesCmd,
}

var episodesMonitorCmd = &cobra.Command{
	Use:   "monitor <series-id> <episode-id>...",
	Short: "Monitor or unmonitor episodes",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runEpisodesMonitorCmd,
}

func init() {
	rootCmd.AddCommand(episodesCmd)
	episodesCmd.AddCommand(episodesMonitorCmd)
	episodesCmd.Flags().Int("season", -1, "Only show one season")
	episodesMonitorCmd.Flags().Bool("off", false, "Stop monitoring")
}

func runEpisodesCmd(cmd *cobra.Command, args []string) error {
	seriesID, err := parseID(args[0])
	if err != nil {
		return err
	}
	season, _ := cmd.Flags().GetInt("season")

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
	if !sonarr.Episodes.Fetch(ctx, seriesID) {
		return requestError(ctx, "fetch episodes", sonarr.Episodes.Err())
	}

	var episodes []media.Episode
	if season >= 0 {
		episodes = sonarr.Episodes.Season(seriesID, season)
	} else {
		episodes = sonarr.Episodes.ForParent(seriesID)
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), episodes)
	}
	printEpisodes(cmd.OutOrStdout(), episodes, time.Now())
	return nil
}

func printEpisodes(w io.Writer, episodes []media.Episode, now time.Time) {
	if len(episodes) == 0 {
		fmt.Fprintln(w, "No episodes")
		return
	}

	fmt.Fprintf(w, "Episodes (%d):\n\n", len(episodes))
	fmt.Fprintf(w, "  %-7s %-6s %-40s %-11s %-10s %s\n", "ID", "EP", "TITLE", "AIRED", "STATUS", "MONITORED")
	rule(w, 88)
	for _, e := range episodes {
		aired := "-"
		if e.AirDateUTC != nil {
			aired = e.AirDateUTC.Local().Format("2006-01-02")
		}
		fmt.Fprintf(w, "  %-7d %-6s %-40s %-11s %-10s %s\n",
			e.ID, e.Label(), truncate(e.Title, 40), aired, e.StatusLabel(now), yesNo(e.Monitored))
	}
}

func runEpisodesMonitorCmd(cmd *cobra.Command, args []string) error {
	seriesID, err := parseID(args[0])
	if err != nil {
		return err
	}
	ids := make([]int, 0, len(args)-1)
	for _, arg := range args[1:] {
		id, err := parseID(arg)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	off, _ := cmd.Flags().GetBool("off")

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
	if !sonarr.Episodes.MaybeFetch(ctx, seriesID) {
		return requestError(ctx, "fetch episodes", sonarr.Episodes.Err())
	}
	if !sonarr.Episodes.Monitor(ctx, ids, !off) {
		return requestError(ctx, "monitor episodes", sonarr.Episodes.Err())
	}

	out := cmd.OutOrStdout()
	for _, id := range ids {
		if e, ok := sonarr.Episodes.Get(id); ok {
			fmt.Fprintf(out, "  %s %-40s monitored: %s\n", e.Label(), truncate(e.Title, 40), yesNo(e.Monitored))
		}
	}
	return nil
}
