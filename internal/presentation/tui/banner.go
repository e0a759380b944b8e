package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the scriptsync banner with the run mode.
func PrintBanner(w io.Writer, mode string) {
	out := termenv.NewOutput(w)
	title := out.String(" scriptsync ").Bold().Foreground(out.Color("#f8fafc")).Background(out.Color("#6366f1"))
	sub := out.String("source: " + mode).Foreground(out.Color("#a78bfa"))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", title, sub)
	fmt.Fprintln(w)
}
