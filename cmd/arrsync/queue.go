package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrsync/internal/app"
	"github.com/vmunix/arrsync/internal/arr"
	"github.com/vmunix/arrsync/internal/download"
	"github.com/vmunix/arrsync/internal/events"
	"github.com/vmunix/arrsync/internal/media"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show the download queues of every instance",
	Args:  cobra.NoArgs,
	RunE:  runQueueCmd,
}

func init() {
	rootCmd.AddCommand(queueCmd)
	queueCmd.Flags().BoolP("watch", "w", false, "Keep polling and print every update")
}

type queueRow struct {
	Instance string          `json:"instance"`
	Item     media.QueueItem `json:"item"`
}

func queueRows(instances []arr.Instance, poller *download.Poller) []queueRow {
	var rows []queueRow
	for _, inst := range instances {
		for _, item := range poller.ItemsFor(inst.ID) {
			rows = append(rows, queueRow{Instance: inst.String(), Item: item})
		}
	}
	return rows
}

func runQueueCmd(cmd *cobra.Command, args []string) error {
	watch, _ := cmd.Flags().GetBool("watch")

	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if watch {
		return watchQueue(cmd, session)
	}

	poller := session.Poller()
	poller.Refresh(cmd.Context())
	if err := poller.Err(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	rows := queueRows(session.Instances(), poller)
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), rows)
	}
	printQueue(cmd.OutOrStdout(), rows, poller.BadgeCount())
	return nil
}

// watchQueue runs the poller until interrupted, printing each cycle.
func watchQueue(cmd *cobra.Command, session *app.Session) error {
	updates := session.Bus().Subscribe(events.TypeQueueUpdated, 4)
	runner := app.NewRunner(session, session.Logger())

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		return runner.Run(ctx)
	})
	g.Go(func() error {
		defer session.Bus().Unsubscribe(updates)
		for {
			select {
			case <-ctx.Done():
				return nil
			case _, ok := <-updates:
				if !ok {
					return nil
				}
				rows := queueRows(session.Instances(), session.Poller())
				if jsonOutput {
					if err := printJSON(cmd.OutOrStdout(), rows); err != nil {
						return err
					}
					continue
				}
				printQueue(cmd.OutOrStdout(), rows, session.Poller().BadgeCount())
				fmt.Fprintln(cmd.OutOrStdout())
			}
		}
	})
	return g.Wait()
}

func printQueue(w io.Writer, rows []queueRow, badge int) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "Queue is empty")
		return
	}

	fmt.Fprintf(w, "Queue (%d, %d need attention):\n\n", len(rows), badge)
	fmt.Fprintf(w, "  %-12s %-40s %-14s %-9s %s\n", "INSTANCE", "TITLE", "STATUS", "PROGRESS", "TIME LEFT")
	rule(w, 92)
	for _, r := range rows {
		mark := " "
		if r.Item.NeedsAttention() {
			mark = "!"
		}
		left := r.Item.TimeLeft
		if left == "" {
			left = "-"
		}
		fmt.Fprintf(w, "%s %-12s %-40s %-14s %-9s %s\n", mark,
			truncate(r.Instance, 12), truncate(r.Item.TitleLabel(), 40), r.Item.StatusLabel(),
			fmt.Sprintf("%.0f%%", r.Item.Progress()*100), left)
	}
}
