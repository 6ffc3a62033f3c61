package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrsync/internal/arr"
	"github.com/vmunix/arrsync/internal/media"
)

var addCmd = &cobra.Command{
	Use:   "add <tmdb-id|tvdb-id>",
	Short: "Add a movie or series to the library",
	Long:  "Looks the catalog id up on the selected instance and adds it with the given root folder and quality profile (default: the first of each).",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddCmd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().Bool("series", false, "Add a series by TVDB id")
	addCmd.Flags().String("root", "", "Root folder path")
	addCmd.Flags().Int("profile", 0, "Quality profile id")
	addCmd.Flags().Bool("search", false, "Search for the item after adding")
	addCmd.Flags().Bool("unmonitored", false, "Add without monitoring")
}

type addTarget struct {
	root    string
	profile int
}

// resolveTarget fills missing root folder and profile from the server.
func resolveTarget(ctx context.Context, client *arr.Client, inst arr.Instance, root string, profile int) (addTarget, error) {
	t := addTarget{root: root, profile: profile}
	if t.root == "" {
		folders, err := client.RootFolders(ctx, inst)
		if err != nil {
			return t, fmt.Errorf("root folders: %w", err)
		}
		if len(folders) == 0 {
			return t, fmt.Errorf("%s has no root folders", inst)
		}
		t.root = folders[0].Path
	}
	if t.profile == 0 {
		profiles, err := client.QualityProfiles(ctx, inst)
		if err != nil {
			return t, fmt.Errorf("quality profiles: %w", err)
		}
		if len(profiles) == 0 {
			return t, fmt.Errorf("%s has no quality profiles", inst)
		}
		t.profile = profiles[0].ID
	}
	return t, nil
}

func runAddCmd(cmd *cobra.Command, args []string) error {
	catalogID, err := parseID(args[0])
	if err != nil {
		return err
	}
	series, _ := cmd.Flags().GetBool("series")
	root, _ := cmd.Flags().GetString("root")
	profile, _ := cmd.Flags().GetInt("profile")
	searchNow, _ := cmd.Flags().GetBool("search")
	unmonitored, _ := cmd.Flags().GetBool("unmonitored")

	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if series {
		sonarr, err := session.Sonarr()
		if err != nil {
			return err
		}
		if !sonarr.Lookup.Search(ctx, fmt.Sprintf("tvdb:%d", catalogID)) {
			return requestError(ctx, "lookup", sonarr.Lookup.Err())
		}
		s, ok := sonarr.Lookup.ByIdentity(catalogID)
		if !ok {
			return fmt.Errorf("no series with TVDB id %d", catalogID)
		}
		if s.Exists() {
			return fmt.Errorf("%s is already in the library", s.Title)
		}
		target, err := resolveTarget(ctx, session.Client(), sonarr.Instance, root, profile)
		if err != nil {
			return err
		}
		s.RootFolderPath, s.QualityProfileID, s.Monitored = target.root, target.profile, !unmonitored
		s.SeasonFolder = true
		s.AddOptions = &media.SeriesAddOptions{Monitor: "all", SearchForMissingEpisodes: searchNow}
		if !sonarr.Series.Add(ctx, s) {
			return requestError(ctx, "add", sonarr.Series.Err())
		}
		fmt.Fprintf(out, "Added %s to %s\n", s.Title, sonarr.Instance)
		return nil
	}

	radarr, err := session.Radarr()
	if err != nil {
		return err
	}
	if !radarr.Lookup.Search(ctx, fmt.Sprintf("tmdb:%d", catalogID)) {
		return requestError(ctx, "lookup", radarr.Lookup.Err())
	}
	m, ok := radarr.Lookup.ByIdentity(catalogID)
	if !ok {
		return fmt.Errorf("no movie with TMDB id %d", catalogID)
	}
	if m.Exists() {
		return fmt.Errorf("%s is already in the library", m.Title)
	}
	target, err := resolveTarget(ctx, session.Client(), radarr.Instance, root, profile)
	if err != nil {
		return err
	}
	m.RootFolderPath, m.QualityProfileID, m.Monitored = target.root, target.profile, !unmonitored
	if m.MinimumAvailability == "" {
		m.MinimumAvailability = media.MovieReleased
	}
	m.AddOptions = &media.MovieAddOptions{SearchForMovie: searchNow}
	if !radarr.Movies.Add(ctx, m) {
		return requestError(ctx, "add", radarr.Movies.Err())
	}
	fmt.Fprintf(out, "Added %s (%d) to %s\n", m.Title, m.Year, radarr.Instance)
	return nil
}
