package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// formatAge renders a release age given in minutes.
func formatAge(minutes float64) string {
	switch {
	case minutes < 60:
		return fmt.Sprintf("%dm", int(minutes))
	case minutes < 24*60:
		return fmt.Sprintf("%dh", int(minutes/60))
	}
	return fmt.Sprintf("%dd", int(minutes/(24*60)))
}

func rule(w io.Writer, width int) {
	fmt.Fprintln(w, "  "+strings.Repeat("-", width))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
