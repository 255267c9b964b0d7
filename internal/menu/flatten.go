package menu

// FlatItem is one menu item with its position flattened into the path.
type FlatItem struct {
	Title         string
	Path          string
	Enabled       bool
	Checked       bool
	Shortcut      string
	Role          string
	Depth         int
	ChildrenCount int
	Alternate     bool
	AlternateOf   string
}

// Flatten walks a tree depth-first, parents before children, and returns
// every node as a FlatItem.
func Flatten(nodes []Node) []FlatItem {
	var items []FlatItem
	for i := range nodes {
		flattenNode(&nodes[i], &items)
	}
	return items
}

func flattenNode(node *Node, out *[]FlatItem) {
	*out = append(*out, FlatItem{
		Title:         node.Title,
		Path:          node.Path,
		Enabled:       node.Enabled,
		Checked:       node.Checked,
		Shortcut:      node.Shortcut,
		Role:          node.Role,
		Depth:         node.Depth,
		ChildrenCount: len(node.Children),
		Alternate:     node.Alternate,
		AlternateOf:   node.AlternateOf,
	})
	for i := range node.Children {
		flattenNode(&node.Children[i], out)
	}
}
