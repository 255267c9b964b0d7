package output

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/mj1618/menucli/internal/ax"
)

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func checkMark(b bool) string {
	if b {
		return "✓"
	}
	return ""
}

// writeItemsTable renders flat menu items. Columns honor the --fields
// projection; the header honors --no-header.
func writeItemsTable(items []Item) error {
	w := newTable()

	columns := []struct {
		field  string
		header string
		cell   func(Item) string
	}{
		{"path", "PATH", func(i Item) string { return i.Path }},
		{"enabled", "ENABLED", func(i Item) string { return yesNo(i.Enabled) }},
		{"checked", "CHECKED", func(i Item) string { return checkMark(i.Checked) }},
		{"shortcut", "SHORTCUT", func(i Item) string { return i.Shortcut }},
		{"role", "ROLE", func(i Item) string { return i.Role }},
	}

	if !NoHeader {
		line := ""
		for _, c := range columns {
			if includeField(c.field) {
				line += c.header + "\t"
			}
		}
		fmt.Fprintln(w, line)
	}
	for _, item := range items {
		line := ""
		for _, c := range columns {
			if includeField(c.field) {
				line += c.cell(item) + "\t"
			}
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

func writeSearchTable(results []SearchResult) error {
	w := newTable()
	if !NoHeader {
		fmt.Fprintln(w, "PATH\tENABLED\tSHORTCUT\tSCORE")
	}
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", r.Path, yesNo(r.Enabled), r.Shortcut, r.Score)
	}
	return w.Flush()
}

func writeAppsTable(apps []ax.AppInfo) error {
	w := newTable()
	if !NoHeader {
		fmt.Fprintln(w, "NAME\tPID\tBUNDLE ID\tFRONTMOST")
	}
	for _, app := range apps {
		frontmost := ""
		if app.Frontmost {
			frontmost = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", app.Name, strconv.Itoa(app.PID), app.BundleID, frontmost)
	}
	return w.Flush()
}
