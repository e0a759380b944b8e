package tui

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/aretw0/scriptsync/pkg/syncer"
	"github.com/muesli/termenv"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PrintSummary renders one row per processed document.
func PrintSummary(w io.Writer, report *syncer.Report) {
	out := termenv.NewOutput(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Document", "Items", "UIDs", "Keys", "Translated", "Sync"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
	})

	var items, stamped, keys, spliced int
	for _, doc := range report.Documents {
		status := out.String("skipped").Faint().String()
		if doc.Synced {
			status = out.String("synced").Foreground(out.Color("#22c55e")).String()
		}
		table.Append([]string{
			doc.Path,
			strconv.Itoa(doc.Items),
			strconv.Itoa(doc.Stamped),
			strconv.Itoa(doc.Keys),
			strconv.Itoa(doc.Spliced),
			status,
		})
		items += doc.Items
		stamped += doc.Stamped
		keys += doc.Keys
		spliced += doc.Spliced
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d documents", len(report.Documents)),
		strconv.Itoa(items),
		strconv.Itoa(stamped),
		strconv.Itoa(keys),
		strconv.Itoa(spliced),
		"",
	})
	table.Render()
}
