package output

import "github.com/mj1618/menucli/internal/menu"

// Item is a menu item in flat representation. This is what list, state and
// click print, and the row type behind the flat table.
type Item struct {
	Title         string `json:"title" yaml:"title"`
	Path          string `json:"path" yaml:"path"`
	Enabled       bool   `json:"enabled" yaml:"enabled"`
	Checked       bool   `json:"checked" yaml:"checked"`
	Shortcut      string `json:"shortcut,omitempty" yaml:"shortcut,omitempty"`
	Role          string `json:"role" yaml:"role"`
	ChildrenCount int    `json:"children_count" yaml:"children_count"`
	Depth         int    `json:"depth" yaml:"depth"`
}

// TreeNode is a menu item in nested representation.
type TreeNode struct {
	Title    string     `json:"title" yaml:"title"`
	Path     string     `json:"path" yaml:"path"`
	Enabled  bool       `json:"enabled" yaml:"enabled"`
	Checked  bool       `json:"checked" yaml:"checked"`
	Shortcut string     `json:"shortcut,omitempty" yaml:"shortcut,omitempty"`
	Role     string     `json:"role" yaml:"role"`
	Children []TreeNode `json:"children" yaml:"children"`
}

// SearchResult is one search hit with its match score.
type SearchResult struct {
	Title    string `json:"title" yaml:"title"`
	Path     string `json:"path" yaml:"path"`
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Checked  bool   `json:"checked" yaml:"checked"`
	Shortcut string `json:"shortcut,omitempty" yaml:"shortcut,omitempty"`
	Score    int    `json:"score" yaml:"score"`
}

// ToggleResult reports a toggle operation. Confirmed is false when the
// checkmark state could not be re-read after pressing and CheckedAfter is
// the assumed flip of CheckedBefore.
type ToggleResult struct {
	Path          string `json:"path" yaml:"path"`
	CheckedBefore bool   `json:"checked_before" yaml:"checked_before"`
	CheckedAfter  bool   `json:"checked_after" yaml:"checked_after"`
	Confirmed     bool   `json:"confirmed" yaml:"confirmed"`
	DryRun        bool   `json:"dry_run" yaml:"dry_run"`
}

// ExtrasGroup is one application's menu bar extras in flat representation.
type ExtrasGroup struct {
	App   string `json:"app" yaml:"app"`
	PID   int    `json:"pid" yaml:"pid"`
	Items []Item `json:"items" yaml:"items"`
}

// ExtrasTreeGroup is one application's menu bar extras in nested
// representation.
type ExtrasTreeGroup struct {
	App      string     `json:"app" yaml:"app"`
	PID      int        `json:"pid" yaml:"pid"`
	Children []TreeNode `json:"children" yaml:"children"`
}

// NewItem converts one flattened menu item.
func NewItem(f menu.FlatItem) Item {
	return Item{
		Title:         f.Title,
		Path:          f.Path,
		Enabled:       f.Enabled,
		Checked:       f.Checked,
		Shortcut:      f.Shortcut,
		Role:          f.Role,
		ChildrenCount: f.ChildrenCount,
		Depth:         f.Depth,
	}
}

// NewItems converts a flattened menu item slice.
func NewItems(flat []menu.FlatItem) []Item {
	items := make([]Item, len(flat))
	for i, f := range flat {
		items[i] = NewItem(f)
	}
	return items
}

// NodeItem converts one resolved tree node into its flat representation.
func NodeItem(n *menu.Node) Item {
	return Item{
		Title:         n.Title,
		Path:          n.Path,
		Enabled:       n.Enabled,
		Checked:       n.Checked,
		Shortcut:      n.Shortcut,
		Role:          n.Role,
		ChildrenCount: len(n.Children),
		Depth:         n.Depth,
	}
}

// NewTree converts a menu tree.
func NewTree(nodes []menu.Node) []TreeNode {
	out := make([]TreeNode, len(nodes))
	for i := range nodes {
		out[i] = newTreeNode(&nodes[i])
	}
	return out
}

func newTreeNode(n *menu.Node) TreeNode {
	return TreeNode{
		Title:    n.Title,
		Path:     n.Path,
		Enabled:  n.Enabled,
		Checked:  n.Checked,
		Shortcut: n.Shortcut,
		Role:     n.Role,
		Children: NewTree(n.Children),
	}
}

// NewSearchResults converts search hits.
func NewSearchResults(results []menu.SearchResult) []SearchResult {
	out := make([]SearchResult, len(results))
	for i, r := range results {
		out[i] = SearchResult{
			Title:    r.Item.Title,
			Path:     r.Item.Path,
			Enabled:  r.Item.Enabled,
			Checked:  r.Item.Checked,
			Shortcut: r.Item.Shortcut,
			Score:    r.Score,
		}
	}
	return out
}
