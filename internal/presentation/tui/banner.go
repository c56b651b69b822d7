package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Digit ASCII art banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Teal to blue, one stop per line
	lines := []struct {
		text  string
		color string
	}{
		{"  ____  _       _ _   ", "#2dd4bf"},
		{" |  _ \\(_) __ _(_) |_ ", "#22d3ee"},
		{" | | | | |/ _` | | __|", "#38bdf8"},
		{" | |_| | | (_| | | |_ ", "#60a5fa"},
		{" |____/|_|\\__, |_|\\__|", "#818cf8"},
		{"          |___/       ", "#a78bfa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  v"+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}

// Highlight renders s in bold on w's color profile. Plain writers get s as is.
func Highlight(w io.Writer, s string) string {
	out := termenv.NewOutput(w)
	return out.String(s).Bold().String()
}
