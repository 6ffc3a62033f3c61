package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrsync/internal/app"
	"github.com/vmunix/arrsync/internal/arr"
)

var instancesCmd = &cobra.Command{
	Use:   "instances",
	Short: "List configured instances",
	Long: `List the configured Radarr and Sonarr instances. The instance used by
other commands is marked; pick another with --instance.

Examples:
  arrsync instances             # List instances
  arrsync instances --status    # Also query each server's status`,
	Args: cobra.NoArgs,
	RunE: runInstancesCmd,
}

func init() {
	rootCmd.AddCommand(instancesCmd)
	instancesCmd.Flags().Bool("status", false, "Query each server's status")
}

type instanceRow struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	URL      string `json:"url"`
	Slow     bool   `json:"slow"`
	Selected bool   `json:"selected"`
	Version  string `json:"version,omitempty"`
	Status   string `json:"status,omitempty"`
}

func selectedIDs(session *app.Session) map[string]bool {
	ids := make(map[string]bool, 2)
	if radarr, err := session.Radarr(); err == nil {
		ids[radarr.Instance.ID.String()] = true
	}
	if sonarr, err := session.Sonarr(); err == nil {
		ids[sonarr.Instance.ID.String()] = true
	}
	return ids
}

// probe queries every instance's status concurrently. Failures are recorded
// per row.
func probe(ctx context.Context, client *arr.Client, instances []arr.Instance, rows []instanceRow) {
	g, ctx := errgroup.WithContext(ctx)
	for i, inst := range instances {
		g.Go(func() error {
			status, err := client.SystemStatus(ctx, inst)
			if err != nil {
				rows[i].Status = err.Error()
				return nil
			}
			rows[i].Status = "ok"
			rows[i].Version = status.Version
			return nil
		})
	}
	_ = g.Wait()
}

func runInstancesCmd(cmd *cobra.Command, args []string) error {
	withStatus, _ := cmd.Flags().GetBool("status")

	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	selected := selectedIDs(session)
	instances := session.Instances()
	rows := make([]instanceRow, len(instances))
	for i, inst := range instances {
		rows[i] = instanceRow{
			ID:       inst.ID.String(),
			Label:    inst.Label,
			Kind:     string(inst.Kind),
			URL:      inst.URL,
			Slow:     inst.Slow,
			Selected: selected[inst.ID.String()],
		}
	}
	if withStatus {
		probe(cmd.Context(), session.Client(), instances, rows)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), rows)
	}
	printInstances(cmd.OutOrStdout(), rows, withStatus)
	return nil
}

func printInstances(w io.Writer, rows []instanceRow, withStatus bool) {
	fmt.Fprintf(w, "Instances (%d):\n\n", len(rows))
	fmt.Fprintf(w, "  %-2s %-16s %-7s %-36s %s\n", "", "LABEL", "KIND", "URL", "ID")
	rule(w, 100)
	for _, r := range rows {
		mark := ""
		if r.Selected {
			mark = "*"
		}
		label := r.Label
		if r.Slow {
			label += " (slow)"
		}
		fmt.Fprintf(w, "  %-2s %-16s %-7s %-36s %s\n", mark, truncate(label, 16), r.Kind, truncate(r.URL, 36), r.ID)
		if withStatus {
			if r.Status == "ok" {
				fmt.Fprintf(w, "     v%s\n", r.Version)
			} else {
				fmt.Fprintf(w, "     %s\n", r.Status)
			}
		}
	}
}
