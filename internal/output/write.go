package output

import (
	"fmt"

	"github.com/mj1618/menucli/internal/ax"
)

// WriteItems renders flat menu items in the current format.
func WriteItems(items []Item) error {
	switch OutputFormat {
	case FormatJSON:
		return PrintPrettyJSON(items)
	case FormatCompact:
		return PrintJSON(items)
	case FormatNDJSON:
		return PrintNDJSON(items)
	case FormatYAML:
		return PrintYAML(items)
	case FormatPath:
		for _, item := range items {
			fmt.Println(item.Path)
		}
		return nil
	case FormatID:
		for _, item := range items {
			fmt.Println(item.Title)
		}
		return nil
	}
	return writeItemsTable(items)
}

// WriteTree renders a nested menu tree in the current format.
func WriteTree(nodes []TreeNode) error {
	switch OutputFormat {
	case FormatJSON:
		return PrintPrettyJSON(nodes)
	case FormatCompact:
		return PrintJSON(nodes)
	case FormatNDJSON:
		return PrintNDJSON(nodes)
	case FormatYAML:
		return PrintYAML(nodes)
	case FormatPath:
		for _, node := range nodes {
			printTreePaths(node)
		}
		return nil
	case FormatID:
		for _, node := range nodes {
			printTreeTitles(node)
		}
		return nil
	}
	for i, node := range nodes {
		printTreeVisual(node, "", i+1 == len(nodes))
	}
	return nil
}

// WriteSearchResults renders search hits in the current format.
func WriteSearchResults(results []SearchResult) error {
	switch OutputFormat {
	case FormatJSON:
		return PrintPrettyJSON(results)
	case FormatCompact:
		return PrintJSON(results)
	case FormatNDJSON:
		return PrintNDJSON(results)
	case FormatYAML:
		return PrintYAML(results)
	case FormatPath:
		for _, r := range results {
			fmt.Println(r.Path)
		}
		return nil
	case FormatID:
		for _, r := range results {
			fmt.Println(r.Title)
		}
		return nil
	}
	return writeSearchTable(results)
}

// WriteApps renders the application list in the current format. Path and
// id both print names, since applications have no menu path.
func WriteApps(apps []ax.AppInfo) error {
	switch OutputFormat {
	case FormatJSON:
		return PrintPrettyJSON(apps)
	case FormatCompact:
		return PrintJSON(apps)
	case FormatNDJSON:
		return PrintNDJSON(apps)
	case FormatYAML:
		return PrintYAML(apps)
	case FormatPath, FormatID:
		for _, app := range apps {
			fmt.Println(app.Name)
		}
		return nil
	}
	return writeAppsTable(apps)
}

// WriteToggle renders a toggle result.
func WriteToggle(result ToggleResult) error {
	switch OutputFormat {
	case FormatJSON:
		return PrintPrettyJSON(result)
	case FormatCompact:
		return PrintJSON(result)
	case FormatNDJSON:
		return PrintNDJSON([]ToggleResult{result})
	case FormatYAML:
		return PrintYAML(result)
	}

	state := "off"
	if result.CheckedAfter {
		state = "on (✓)"
	}
	suffix := ""
	if result.DryRun {
		suffix = " [dry-run]"
	} else if !result.Confirmed {
		suffix = " (unconfirmed)"
	}
	fmt.Printf("%s: %s%s\n", result.Path, state, suffix)
	return nil
}

// WriteExtras renders per-application extras groups in flat form.
func WriteExtras(groups []ExtrasGroup) error {
	switch OutputFormat {
	case FormatJSON:
		return PrintPrettyJSON(groups)
	case FormatCompact:
		return PrintJSON(groups)
	case FormatNDJSON:
		return PrintNDJSON(groups)
	case FormatYAML:
		return PrintYAML(groups)
	case FormatPath:
		for _, g := range groups {
			for _, item := range g.Items {
				fmt.Println(item.Path)
			}
		}
		return nil
	case FormatID:
		for _, g := range groups {
			for _, item := range g.Items {
				fmt.Println(item.Title)
			}
		}
		return nil
	}
	for i, g := range groups {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (pid %d)\n", g.App, g.PID)
		if err := writeItemsTable(g.Items); err != nil {
			return err
		}
	}
	return nil
}

// WriteExtrasTree renders per-application extras groups as trees.
func WriteExtrasTree(groups []ExtrasTreeGroup) error {
	switch OutputFormat {
	case FormatJSON:
		return PrintPrettyJSON(groups)
	case FormatCompact:
		return PrintJSON(groups)
	case FormatNDJSON:
		return PrintNDJSON(groups)
	case FormatYAML:
		return PrintYAML(groups)
	case FormatPath:
		for _, g := range groups {
			for _, node := range g.Children {
				printTreePaths(node)
			}
		}
		return nil
	case FormatID:
		for _, g := range groups {
			for _, node := range g.Children {
				printTreeTitles(node)
			}
		}
		return nil
	}
	for i, g := range groups {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (pid %d)\n", g.App, g.PID)
		for j, node := range g.Children {
			printTreeVisual(node, "", j+1 == len(g.Children))
		}
	}
	return nil
}
