package menu

import (
	"sync"

	"github.com/mj1618/menucli/internal/ax"
)

// BuildTree walks an application's menu bar and returns its top-level
// menus with nested children. Top-level branches are walked in parallel,
// one goroutine each, since every branch costs a separate chain of
// accessibility round trips. Branches that fail to read are dropped;
// order follows the menu bar.
func BuildTree(roots ax.RootSource, pid int, opts TreeOptions) ([]Node, error) {
	bar, err := roots.MenuBar(pid)
	if err != nil {
		return nil, err
	}
	top, err := bar.Children()
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return []Node{}, nil
	}

	slots := make([]*Node, len(top))
	var wg sync.WaitGroup
	for i, el := range top {
		wg.Add(1)
		go func(i int, el ax.Element) {
			defer wg.Done()
			if node, err := walkElement(el, "", 1, opts); err == nil {
				slots[i] = &node
			}
		}(i, el)
	}
	wg.Wait()

	nodes := make([]Node, 0, len(slots))
	for _, node := range slots {
		if node != nil {
			nodes = append(nodes, *node)
		}
	}
	return nodes, nil
}

// BuildExtrasTree walks an application's status items (the right side of
// the menu bar). Visible children are preferred so menu bar managers that
// hide items are respected, falling back to all children when the
// visible set cannot be read. Untitled status items are dropped.
func BuildExtrasTree(roots ax.RootSource, pid int, opts TreeOptions) ([]Node, error) {
	bar, err := roots.ExtrasMenuBar(pid)
	if err != nil {
		return nil, err
	}
	top, err := bar.VisibleChildren()
	if err != nil {
		top, err = bar.Children()
		if err != nil {
			return nil, err
		}
	}
	if len(top) == 0 {
		return []Node{}, nil
	}

	nodes := make([]Node, 0, len(top))
	for _, el := range top {
		node, err := walkElement(el, "", 1, opts)
		if err != nil {
			continue
		}
		if node.Title != "" {
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

// BuildAllExtras collects status items from every running application.
// Applications without extras, or whose extras cannot be read, are
// skipped.
func BuildAllExtras(apps ax.AppSource, roots ax.RootSource, opts TreeOptions) []ExtrasResult {
	running, err := apps.RunningApps()
	if err != nil {
		return nil
	}

	var results []ExtrasResult
	for _, app := range running {
		nodes, err := BuildExtrasTree(roots, app.PID, opts)
		if err != nil || len(nodes) == 0 {
			continue
		}
		results = append(results, ExtrasResult{
			AppName: app.Name,
			AppPID:  app.PID,
			Nodes:   nodes,
		})
	}
	return results
}

// walkElement reads one menu element and recurses into its children
// unless the depth bound has been reached.
func walkElement(el ax.Element, parentPath string, depth int, opts TreeOptions) (Node, error) {
	attrs, err := el.Attributes(ax.MenuItemAttrs())
	if err != nil {
		return Node{}, err
	}

	title := attrText(attrs, ax.IdxTitle)
	enabled := true
	if b, ok := attrBool(attrs, ax.IdxEnabled); ok {
		enabled = b
	}
	markChar := attrText(attrs, ax.IdxMarkChar)
	cmdChar := attrText(attrs, ax.IdxCmdChar)
	cmdMods, _ := attrInt(attrs, ax.IdxCmdModifiers)
	role := attrText(attrs, ax.IdxRole)

	// An item holding a primary-UI-element reference is the Option-key
	// alternate of that primary.
	alternate := len(attrs) > ax.IdxPrimaryUIElement && !attrs[ax.IdxPrimaryUIElement].IsAbsent()

	path := joinPath(parentPath, title)

	var children []Node
	if opts.MaxDepth == 0 || depth < opts.MaxDepth {
		children = collectChildren(el, path, depth, opts)
	}

	return Node{
		Title:     title,
		Path:      path,
		Enabled:   enabled,
		Checked:   markChar != "",
		Shortcut:  FormatShortcut(cmdChar, cmdMods),
		Role:      role,
		Depth:     depth,
		Children:  children,
		Element:   el,
		Alternate: alternate,
	}, nil
}

// collectChildren gathers the child nodes of a menu element. AXMenu
// containers are transparent: the AX hierarchy wraps every submenu in one
// (AXMenuBarItem "File" -> AXMenu -> AXMenuItem "Save"), so their
// children are spliced in at the parent's depth instead of forming a
// node. Separators and untitled items are dropped. Alternate items point
// back at the most recent primary sibling and are filtered unless
// requested.
func collectChildren(el ax.Element, parentPath string, parentDepth int, opts TreeOptions) []Node {
	childElements, err := el.Children()
	if err != nil {
		return nil
	}

	nodes := make([]Node, 0, len(childElements))
	lastPrimary := ""

	for _, child := range childElements {
		role := ""
		if v, err := child.Attribute(ax.AttrRole); err == nil {
			role, _ = v.Text()
		}

		if role == ax.RoleMenu {
			nodes = append(nodes, collectChildren(child, parentPath, parentDepth, opts)...)
			// The splice broke sibling adjacency, so a following
			// alternate has no primary to point at.
			lastPrimary = ""
			continue
		}

		node, err := walkElement(child, parentPath, parentDepth+1, opts)
		if err != nil {
			continue
		}
		if node.Title == "" || node.Role == ax.RoleSeparator {
			continue
		}
		if node.Alternate {
			node.AlternateOf = lastPrimary
			if opts.IncludeAlternates {
				nodes = append(nodes, node)
			}
			continue
		}
		lastPrimary = node.Title
		nodes = append(nodes, node)
	}
	return nodes
}

func attrText(attrs []ax.Value, idx int) string {
	if idx >= len(attrs) {
		return ""
	}
	s, _ := attrs[idx].Text()
	return s
}

func attrBool(attrs []ax.Value, idx int) (bool, bool) {
	if idx >= len(attrs) {
		return false, false
	}
	return attrs[idx].Bool()
}

func attrInt(attrs []ax.Value, idx int) (int64, bool) {
	if idx >= len(attrs) {
		return 0, false
	}
	return attrs[idx].Int()
}
