// Package display renders command results for the terminal with pterm, or
// as JSON when requested.
package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/teranos/swiftpoet/am"
	"github.com/teranos/swiftpoet/check"
)

// Written reports files placed on disk by render.
func Written(w io.Writer, paths []string) {
	for _, p := range paths {
		pterm.Fprintln(w, pterm.Green("✓")+" "+p)
	}
	pterm.Success.WithWriter(w).Printf("Generated %d file(s)\n", len(paths))
}

// CheckReport prints one line per compared file and, when showDiff is set,
// the unified diff of every stale file.
func CheckReport(w io.Writer, res *check.Result, showDiff bool) {
	for _, f := range res.Files {
		label := fmt.Sprintf("%-10s", f.Status)
		switch f.Status {
		case check.StatusUpToDate:
			label = pterm.Green(label)
		case check.StatusDiffers:
			label = pterm.Yellow(label)
		case check.StatusMissing:
			label = pterm.Red(label)
		}
		pterm.Fprintln(w, label+" "+f.Name)

		if showDiff && f.Diff != "" {
			pterm.Fprint(w, ColorDiff(f.Diff))
		}
	}

	if res.UpToDate {
		pterm.Success.WithWriter(w).Printf("%d file(s) up to date\n", len(res.Files))
		return
	}
	pterm.Warning.WithWriter(w).Printf("%d of %d file(s) out of date\n", len(res.Stale()), len(res.Files))
}

// Timing reports how long a pass over n files took.
func Timing(w io.Writer, action string, n int, d time.Duration) {
	pterm.Info.WithWriter(w).Printf("%s %d file(s) in %s\n", action, n, d.Round(time.Microsecond))
}

// ColorDiff colors added lines green, removed lines red and hunk headers cyan.
func ColorDiff(diff string) string {
	lines := strings.SplitAfter(diff, "\n")
	var sb strings.Builder
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			sb.WriteString(pterm.Bold.Sprint(line))
		case strings.HasPrefix(line, "@@"):
			sb.WriteString(pterm.Cyan(line))
		case strings.HasPrefix(line, "+"):
			sb.WriteString(pterm.Green(line))
		case strings.HasPrefix(line, "-"):
			sb.WriteString(pterm.Red(line))
		default:
			sb.WriteString(line)
		}
	}
	return sb.String()
}

// Settings prints effective configuration values and where each came from.
func Settings(w io.Writer, ci *am.ConfigIntrospection) {
	width := 0
	for _, s := range ci.Settings {
		if len(s.Key) > width {
			width = len(s.Key)
		}
	}
	for _, s := range ci.Settings {
		origin := string(s.Source)
		if s.SourcePath != "" && s.Source != am.SourceDefault {
			origin += " " + s.SourcePath
		}
		pterm.Fprintln(w, fmt.Sprintf("%-*s = %-12q %s", width, s.Key, fmt.Sprint(s.Value), pterm.Gray("# "+origin)))
	}
}
