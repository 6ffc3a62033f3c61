package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrsync/internal/library"
	"github.com/vmunix/arrsync/internal/media"
)

var filesCmd = &cobra.Command{
	Use:   "files <movie-id|series-id>",
	Short: "List the files of a movie or series",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesCmd,
}

var filesDeleteCmd = &cobra.Command{
	Use:   "delete <movie-id|series-id> <file-id>",
	Short: "Delete a file from disk",
	Args:  cobra.ExactArgs(2),
	RunE:  runFilesDeleteCmd,
}

func init() {
	rootCmd.AddCommand(filesCmd)
	filesCmd.AddCommand(filesDeleteCmd)
	filesCmd.PersistentFlags().Bool("series", false, "Target a Sonarr series")
}

type fileRow struct {
	ID      int    `json:"id"`
	Path    string `json:"path"`
	Size    int64  `json:"size"`
	Quality string `json:"quality"`
}

func movieFileRows(files []media.MovieFile) []fileRow {
	rows := make([]fileRow, len(files))
	for i, f := range files {
		rows[i] = fileRow{ID: f.ID, Path: f.RelativePath, Size: f.Size, Quality: f.Quality.Quality.Label()}
	}
	return rows
}

func episodeFileRows(files []media.EpisodeFile) []fileRow {
	rows := make([]fileRow, len(files))
	for i, f := range files {
		rows[i] = fileRow{ID: f.ID, Path: f.RelativePath, Size: f.Size, Quality: f.Quality.Quality.Label()}
	}
	return rows
}

func runFilesCmd(cmd *cobra.Command, args []string) error {
	parentID, err := parseID(args[0])
	if err != nil {
		return err
	}
	series, _ := cmd.Flags().GetBool("series")

	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	var rows []fileRow
	if series {
		sonarr, err := session.Sonarr()
		if err != nil {
			return err
		}
		if !sonarr.Files.Fetch(ctx, parentID) {
			return requestError(ctx, "fetch files", sonarr.Files.Err())
		}
		rows = episodeFileRows(sonarr.Files.ForParent(parentID))
	} else {
		radarr, err := session.Radarr()
		if err != nil {
			return err
		}
		if !radarr.Files.Fetch(ctx, parentID) {
			return requestError(ctx, "fetch files", radarr.Files.Err())
		}
		rows = movieFileRows(radarr.Files.ForParent(parentID))
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), rows)
	}
	printFiles(cmd.OutOrStdout(), rows)
	return nil
}

func printFiles(w io.Writer, rows []fileRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No files")
		return
	}

	fmt.Fprintf(w, "Files (%d):\n\n", len(rows))
	fmt.Fprintf(w, "  %-7s %-50s %-14s %s\n", "ID", "PATH", "QUALITY", "SIZE")
	rule(w, 84)
	for _, r := range rows {
		fmt.Fprintf(w, "  %-7d %-50s %-14s %s\n", r.ID, truncate(r.Path, 50), r.Quality, formatSize(r.Size))
	}
}

// deleteFile fetches the parent's files and deletes fileID among them.
func deleteFile[F library.Child](cmd *cobra.Command, files *library.Files[F], parentID, fileID int) error {
	ctx := cmd.Context()
	if !files.MaybeFetch(ctx, parentID) {
		return requestError(ctx, "fetch files", files.Err())
	}
	file, ok := files.Get(fileID)
	if !ok || file.ParentID() != parentID {
		return fmt.Errorf("file %d not found", fileID)
	}
	if !files.Delete(ctx, file) {
		return requestError(ctx, "delete file", files.Err())
	}
	return nil
}

func runFilesDeleteCmd(cmd *cobra.Command, args []string) error {
	parentID, err := parseID(args[0])
	if err != nil {
		return err
	}
	fileID, err := parseID(args[1])
	if err != nil {
		return err
	}
	series, _ := cmd.Flags().GetBool("series")

	session, cleanup, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if series {
		sonarr, err := session.Sonarr()
		if err != nil {
			return err
		}
		if err := deleteFile(cmd, sonarr.Files, parentID, fileID); err != nil {
			return err
		}
	} else {
		radarr, err := session.Radarr()
		if err != nil {
			return err
		}
		if err := deleteFile(cmd, radarr.Files, parentID, fileID); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted file %d\n", fileID)
	return nil
}
