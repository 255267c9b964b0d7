package output

import "fmt"

// printTreeVisual renders one node and its descendants with box-drawing
// connectors. Shortcut, disabled state and checkmark are shown as suffixes.
func printTreeVisual(node TreeNode, prefix string, isLast bool) {
	connector := "├── "
	childPrefix := prefix + "│   "
	if isLast {
		connector = "└── "
		childPrefix = prefix + "    "
	}

	suffix := ""
	if node.Shortcut != "" {
		suffix += fmt.Sprintf("  [%s]", node.Shortcut)
	}
	if !node.Enabled {
		suffix += " (disabled)"
	}
	if node.Checked {
		suffix += " ✓"
	}
	fmt.Printf("%s%s%s%s\n", prefix, connector, node.Title, suffix)

	for i, child := range node.Children {
		printTreeVisual(child, childPrefix, i+1 == len(node.Children))
	}
}

// printTreePaths prints the full path of every leaf, one per line.
// Intermediate menus are skipped so the output pipes directly into click.
func printTreePaths(node TreeNode) {
	if len(node.Children) == 0 {
		fmt.Println(node.Path)
	}
	for _, child := range node.Children {
		printTreePaths(child)
	}
}

// printTreeTitles prints every node title in preorder, one per line.
func printTreeTitles(node TreeNode) {
	fmt.Println(node.Title)
	for _, child := range node.Children {
		printTreeTitles(child)
	}
}
