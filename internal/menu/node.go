// Package menu builds, resolves, searches, and activates application menu
// trees on top of the ax layer.
package menu

import "github.com/mj1618/menucli/internal/ax"

// Node is one item in a built menu tree.
type Node struct {
	// Title is the item's display title, e.g. "Save As…".
	Title string
	// Path is the full separator-joined path from the menu bar,
	// e.g. "File::Save As…". Segments are escaped.
	Path string
	// Enabled reports whether the item can be activated.
	Enabled bool
	// Checked reports whether the item carries a mark character.
	Checked bool
	// Shortcut is the formatted key equivalent, e.g. "⇧⌘S", or "".
	Shortcut string
	// Role is the accessibility role, e.g. "AXMenuBarItem" or "AXMenuItem".
	Role string
	// Depth counts from the menu bar: top-level items are 1.
	Depth int
	// Children holds submenu items. Empty for leaves.
	Children []Node
	// Element is the live handle used for press and toggle. Nil only in
	// fixtures that never activate anything.
	Element ax.Element
	// Alternate marks an Option-key variant of another item.
	Alternate bool
	// AlternateOf is the title of the primary item this alternate
	// replaces, or "" when no primary precedes it.
	AlternateOf string
}

// ExtrasResult pairs one application's status items with their owner.
type ExtrasResult struct {
	AppName string `json:"app" yaml:"app"`
	AppPID  int    `json:"pid" yaml:"pid"`
	Nodes   []Node `json:"-" yaml:"-"`
}

// TreeOptions controls tree construction.
type TreeOptions struct {
	// MaxDepth bounds recursion; top-level items are depth 1.
	// Zero means unlimited.
	MaxDepth int
	// IncludeAlternates keeps Option-key alternate items in the output.
	// Alternates are always detected; this only controls filtering.
	IncludeAlternates bool
}
