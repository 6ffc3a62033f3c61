package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrsync/internal/library"
	"github.com/vmunix/arrsync/internal/media"
	"github.com/vmunix/arrsync/internal/search"
)

var grabCmd = &cobra.Command{
	Use:   "grab <guid>",
	Short: "Download a release from a search",
	Long:  "Repeats the release search for the given scope and sends the release with the given guid to the download client.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGrabCmd,
}

func init() {
	rootCmd.AddCommand(grabCmd)
	addScopeFlags(grabCmd)
}

func grab[R media.ReleaseInfo, T media.Item](ctx context.Context, releases *search.Releases[R], store *library.Store[T], scope search.Scope, guid string) (R, error) {
	var zero R
	if !releases.Search(ctx, scope) {
		return zero, requestError(ctx, "release search", releases.Err())
	}
	rel, ok := releases.Get(guid)
	if !ok {
		return zero, fmt.Errorf("release %q not found in %s results", guid, scope)
	}
	if !store.Download(ctx, releases.Grab(rel)) {
		return zero, requestError(ctx, "grab", store.Err())
	}
	return rel, nil
}

func runGrabCmd(cmd *cobra.Command, args []string) error {
	scope, err := scopeFromFlags(cmd)
	if err != nil {
		return err
	}
	guid := args[0]

	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	var title string
	if scope.MovieID != 0 {
		radarr, err := session.Radarr()
		if err != nil {
			return err
		}
		rel, err := grab(ctx, radarr.Releases, radarr.Movies, scope, guid)
		if err != nil {
			return err
		}
		title = rel.Title
	} else {
		sonarr, err := session.Sonarr()
		if err != nil {
			return err
		}
		rel, err := grab(ctx, sonarr.Releases, sonarr.Series, scope, guid)
		if err != nil {
			return err
		}
		title = rel.Title
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Grabbed %s\n", title)
	return nil
}
