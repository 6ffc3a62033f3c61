package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <term>...",
	Short: "Search the metadata catalog",
	Long:  "Looks a title up in the catalog of the selected instance. Results already in the library are marked.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLookupCmd,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().Bool("series", false, "Search Sonarr's catalog")
}

type lookupRow struct {
	CatalogID int    `json:"catalogId"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
	InLibrary bool   `json:"inLibrary"`
	Detail    string `json:"detail,omitempty"`
}

func runLookupCmd(cmd *cobra.Command, args []string) error {
	term := strings.Join(args, " ")
	series, _ := cmd.Flags().GetBool("series")

	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	var rows []lookupRow
	if series {
		sonarr, err := session.Sonarr()
		if err != nil {
			return err
		}
		if !sonarr.Lookup.Search(ctx, term) {
			return requestError(ctx, "lookup", sonarr.Lookup.Err())
		}
		for _, s := range sonarr.Lookup.Results() {
			rows = append(rows, lookupRow{CatalogID: s.TVDBID, Title: s.Title, Year: s.Year, InLibrary: s.Exists(), Detail: s.Network})
		}
	} else {
		radarr, err := session.Radarr()
		if err != nil {
			return err
		}
		if !radarr.Lookup.Search(ctx, term) {
			return requestError(ctx, "lookup", radarr.Lookup.Err())
		}
		for _, m := range radarr.Lookup.Results() {
			rows = append(rows, lookupRow{CatalogID: m.TMDBID, Title: m.Title, Year: m.Year, InLibrary: m.Exists(), Detail: m.Studio})
		}
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), rows)
	}
	printLookup(cmd.OutOrStdout(), term, rows)
	return nil
}

func printLookup(w io.Writer, term string, rows []lookupRow) {
	if len(rows) == 0 {
		fmt.Fprintf(w, "No results for %q\n", term)
		return
	}

	fmt.Fprintf(w, "Results for %q (%d):\n\n", term, len(rows))
	fmt.Fprintf(w, "  %-3s %-9s %-44s %-5s %s\n", "", "ID", "TITLE", "YEAR", "STUDIO/NETWORK")
	rule(w, 84)
	for _, r := range rows {
		mark := ""
		if r.InLibrary {
			mark = "*"
		}
		fmt.Fprintf(w, "  %-3s %-9d %-44s %-5d %s\n", mark, r.CatalogID, truncate(r.Title, 44), r.Year, r.Detail)
	}
	fmt.Fprintln(w, "\n* already in the library")
}

