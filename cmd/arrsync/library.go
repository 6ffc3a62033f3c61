package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrsync/internal/library"
	"github.com/vmunix/arrsync/internal/media"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor <id>",
	Short: "Monitor or unmonitor a library item",
	Args:  cobra.ExactArgs(1),
	RunE:  runMonitorCmd,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a library item",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteCmd,
}

func init() {
	rootCmd.AddCommand(monitorCmd, deleteCmd)
	monitorCmd.Flags().Bool("series", false, "Target the Sonarr library")
	monitorCmd.Flags().Bool("off", false, "Stop monitoring")
	deleteCmd.Flags().Bool("series", false, "Target the Sonarr library")
	deleteCmd.Flags().Bool("exclude", false, "Add an import list exclusion")
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// loadItem refreshes one library item and returns the cached copy.
func loadItem[T media.Item](ctx context.Context, store *library.Store[T], id int) (T, error) {
	var zero T
	if !store.Get(ctx, id, false) {
		return zero, requestError(ctx, fmt.Sprintf("get %d", id), store.Err())
	}
	item, ok := store.ByID(id)
	if !ok {
		return zero, fmt.Errorf("item %d not found", id)
	}
	return item, nil
}

func setMonitored[T media.Item](ctx context.Context, store *library.Store[T], id int, on bool, set func(T, bool) T) (T, error) {
	item, err := loadItem(ctx, store, id)
	if err != nil {
		return item, err
	}
	if !store.Update(ctx, set(item, on), false) {
		return item, requestError(ctx, "update", store.Err())
	}
	updated, _ := store.ByID(id)
	return updated, nil
}

func deleteItem[T media.Item](ctx context.Context, store *library.Store[T], id int, exclude bool) (T, error) {
	item, err := loadItem(ctx, store, id)
	if err != nil {
		return item, err
	}
	if !store.Delete(ctx, item, exclude) {
		return item, requestError(ctx, "delete", store.Err())
	}
	return item, nil
}

func runMonitorCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	series, _ := cmd.Flags().GetBool("series")
	off, _ := cmd.Flags().GetBool("off")

	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	var title string
	var monitored bool
	if series {
		sonarr, err := session.Sonarr()
		if err != nil {
			return err
		}
		s, err := setMonitored(ctx, sonarr.Series, id, !off, func(s media.Series, on bool) media.Series {
			s.Monitored = on
			return s
		})
		if err != nil {
			return err
		}
		title, monitored = s.Title, s.Monitored
	} else {
		radarr, err := session.Radarr()
		if err != nil {
			return err
		}
		m, err := setMonitored(ctx, radarr.Movies, id, !off, func(m media.Movie, on bool) media.Movie {
			m.Monitored = on
			return m
		})
		if err != nil {
			return err
		}
		title, monitored = m.Title, m.Monitored
	}

	if monitored {
		fmt.Fprintf(cmd.OutOrStdout(), "Monitoring %s\n", title)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Stopped monitoring %s\n", title)
	}
	return nil
}

func runDeleteCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	series, _ := cmd.Flags().GetBool("series")
	exclude, _ := cmd.Flags().GetBool("exclude")

	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	var title string
	if series {
		sonarr, err := session.Sonarr()
		if err != nil {
			return err
		}
		s, err := deleteItem(ctx, sonarr.Series, id, exclude)
		if err != nil {
			return err
		}
		title = s.Title
	} else {
		radarr, err := session.Radarr()
		if err != nil {
			return err
		}
		m, err := deleteItem(ctx, radarr.Movies, id, exclude)
		if err != nil {
			return err
		}
		title = m.Title
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", title)
	return nil
}
