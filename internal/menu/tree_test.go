package menu

import (
	"errors"
	"testing"

	"github.com/mj1618/menucli/internal/ax"
)

func TestBuildTreeStructure(t *testing.T) {
	roots := &fakeRoots{menuBar: menuBar(
		topLevel("File",
			item("New"),
			item("Save", axMenu(item("Save As…"))),
		),
		topLevel("Edit",
			item("Copy"),
		),
	)}

	nodes, err := BuildTree(roots, 42, TreeOptions{})
	if err != nil {
		t.Fatalf("BuildTree returned error: %v", err)
	}

	if len(nodes) != 2 {
		t.Fatalf("got %d top-level menus, want 2", len(nodes))
	}
	file := nodes[0]
	if file.Title != "File" || file.Path != "File" || file.Depth != 1 {
		t.Errorf("top-level = {%q %q %d}, want {File File 1}", file.Title, file.Path, file.Depth)
	}
	if file.Role != ax.RoleMenuBarItem {
		t.Errorf("top-level role = %q, want %q", file.Role, ax.RoleMenuBarItem)
	}
	if len(file.Children) != 2 {
		t.Fatalf("File has %d children, want 2 (AXMenu wrapper must not appear)", len(file.Children))
	}
	if file.Children[0].Path != "File::New" || file.Children[0].Depth != 2 {
		t.Errorf("child = {%q %d}, want {File::New 2}", file.Children[0].Path, file.Children[0].Depth)
	}

	save := file.Children[1]
	if len(save.Children) != 1 {
		t.Fatalf("Save has %d children, want 1", len(save.Children))
	}
	saveAs := save.Children[0]
	if saveAs.Path != "File::Save::Save As…" || saveAs.Depth != 3 {
		t.Errorf("nested = {%q %d}, want {File::Save::Save As… 3}", saveAs.Path, saveAs.Depth)
	}
}

func TestBuildTreeDropsSeparatorsAndUntitled(t *testing.T) {
	roots := &fakeRoots{menuBar: menuBar(
		topLevel("File",
			item("New"),
			separator(),
			item(""),
			item("Close"),
		),
	)}

	nodes, err := BuildTree(roots, 1, TreeOptions{})
	if err != nil {
		t.Fatalf("BuildTree returned error: %v", err)
	}
	children := nodes[0].Children
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	if children[0].Title != "New" || children[1].Title != "Close" {
		t.Errorf("children = [%q %q], want [New Close]", children[0].Title, children[1].Title)
	}
}

func TestBuildTreeAlternates(t *testing.T) {
	bar := menuBar(
		topLevel("File",
			item("Close"),
			itemSpec{title: "Close All", cmdChar: "W", cmdMods: 0x2, hasMods: true, alternate: true}.build(),
			item("Save"),
		),
	)

	nodes, err := BuildTree(&fakeRoots{menuBar: bar}, 1, TreeOptions{})
	if err != nil {
		t.Fatalf("BuildTree returned error: %v", err)
	}
	children := nodes[0].Children
	if len(children) != 2 {
		t.Fatalf("alternates excluded by default: got %d children, want 2", len(children))
	}

	nodes, err = BuildTree(&fakeRoots{menuBar: bar}, 1, TreeOptions{IncludeAlternates: true})
	if err != nil {
		t.Fatalf("BuildTree returned error: %v", err)
	}
	children = nodes[0].Children
	if len(children) != 3 {
		t.Fatalf("alternates included: got %d children, want 3", len(children))
	}
	closeAll := children[1]
	if !closeAll.Alternate {
		t.Error("Close All should be marked alternate")
	}
	if closeAll.AlternateOf != "Close" {
		t.Errorf("AlternateOf = %q, want Close", closeAll.AlternateOf)
	}
	if closeAll.Shortcut != "⌥⌘W" {
		t.Errorf("alternate shortcut = %q, want ⌥⌘W", closeAll.Shortcut)
	}
	if children[2].Title != "Save" || children[2].Alternate {
		t.Errorf("Save should remain a primary item")
	}
}

func TestBuildTreeAlternateWithoutPrimary(t *testing.T) {
	// A splice resets primary tracking, so an alternate that follows a
	// transparent container has nothing to point at.
	mixed := itemSpec{title: "Mixed", role: ax.RoleMenuBarItem}.build(
		item("A"),
		axMenu(item("B")),
		itemSpec{title: "C", alternate: true}.build(),
	)
	roots := &fakeRoots{menuBar: menuBar(mixed)}

	nodes, err := BuildTree(roots, 1, TreeOptions{IncludeAlternates: true})
	if err != nil {
		t.Fatalf("BuildTree returned error: %v", err)
	}
	children := nodes[0].Children
	if len(children) != 3 {
		t.Fatalf("got %d children, want 3", len(children))
	}
	c := children[2]
	if c.Title != "C" || !c.Alternate {
		t.Fatalf("children[2] = %q alternate=%v, want C alternate", c.Title, c.Alternate)
	}
	if c.AlternateOf != "" {
		t.Errorf("AlternateOf = %q, want empty after container splice", c.AlternateOf)
	}
	// Spliced grandchildren keep the parent's path and depth.
	if children[1].Path != "Mixed::B" || children[1].Depth != 2 {
		t.Errorf("spliced child = {%q %d}, want {Mixed::B 2}", children[1].Path, children[1].Depth)
	}
}

func TestBuildTreeDepthLimit(t *testing.T) {
	roots := &fakeRoots{menuBar: menuBar(
		topLevel("File", item("Save", axMenu(item("Save As…")))),
	)}

	nodes, err := BuildTree(roots, 1, TreeOptions{MaxDepth: 1})
	if err != nil {
		t.Fatalf("BuildTree returned error: %v", err)
	}
	if len(nodes) != 1 || len(nodes[0].Children) != 0 {
		t.Errorf("MaxDepth 1 should stop below top level, got %d children", len(nodes[0].Children))
	}

	nodes, err = BuildTree(roots, 1, TreeOptions{MaxDepth: 2})
	if err != nil {
		t.Fatalf("BuildTree returned error: %v", err)
	}
	save := nodes[0].Children[0]
	if len(save.Children) != 0 {
		t.Errorf("MaxDepth 2 should stop below depth 2, got %d grandchildren", len(save.Children))
	}
}

func TestBuildTreeAttributeDefaults(t *testing.T) {
	// No AXEnabled attribute at all: enabled defaults to true.
	bare := &fakeElement{attrs: map[string]ax.Value{
		ax.AttrTitle: ax.TextValue("Window"),
		ax.AttrRole:  ax.TextValue(ax.RoleMenuBarItem),
	}}
	checked := itemSpec{title: "Show Toolbar", markChar: "✓"}.build()
	disabled := itemSpec{title: "Paste", disabled: true}.build()
	roots := &fakeRoots{menuBar: menuBar(
		itemSpec{title: "Edit", role: ax.RoleMenuBarItem}.build(axMenu(checked, disabled)),
		bare,
	)}

	nodes, err := BuildTree(roots, 1, TreeOptions{})
	if err != nil {
		t.Fatalf("BuildTree returned error: %v", err)
	}
	if !nodes[1].Enabled {
		t.Error("missing AXEnabled should default to enabled")
	}
	edit := nodes[0].Children
	if !edit[0].Checked {
		t.Error("mark character should set checked")
	}
	if edit[0].Shortcut != "" {
		t.Errorf("item without cmd char has shortcut %q, want none", edit[0].Shortcut)
	}
	if edit[1].Enabled {
		t.Error("AXEnabled=false should disable the item")
	}
}

func TestBuildTreeEmptyMenuBar(t *testing.T) {
	roots := &fakeRoots{menuBar: &fakeElement{}}
	nodes, err := BuildTree(roots, 7, TreeOptions{})
	if err != nil {
		t.Fatalf("BuildTree returned error: %v", err)
	}
	if len(nodes) != 0 {
		t.Errorf("got %d nodes from empty menu bar, want 0", len(nodes))
	}
}

func TestBuildTreeRootError(t *testing.T) {
	if _, err := BuildTree(&fakeRoots{}, 7, TreeOptions{}); err == nil {
		t.Fatal("BuildTree with no menu bar should fail")
	}
}

func TestBuildExtrasTreePrefersVisible(t *testing.T) {
	visibleItem := itemSpec{title: "Wi-Fi", role: ax.RoleMenuBarItem}.build()
	hiddenItem := itemSpec{title: "Hidden", role: ax.RoleMenuBarItem}.build()
	roots := &fakeRoots{extrasBar: &fakeElement{
		visible:  []ax.Element{visibleItem},
		children: []ax.Element{visibleItem, hiddenItem},
	}}

	nodes, err := BuildExtrasTree(roots, 9, TreeOptions{})
	if err != nil {
		t.Fatalf("BuildExtrasTree returned error: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Title != "Wi-Fi" {
		t.Errorf("visible children should win, got %d nodes", len(nodes))
	}
}

func TestBuildExtrasTreeFallsBackToChildren(t *testing.T) {
	roots := &fakeRoots{extrasBar: &fakeElement{
		noVisible: true,
		children: []ax.Element{
			itemSpec{title: "Battery", role: ax.RoleMenuBarItem}.build(),
			itemSpec{title: "", role: ax.RoleMenuBarItem}.build(),
		},
	}}

	nodes, err := BuildExtrasTree(roots, 9, TreeOptions{})
	if err != nil {
		t.Fatalf("BuildExtrasTree returned error: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Title != "Battery" {
		t.Errorf("got %d nodes, want just Battery (untitled dropped)", len(nodes))
	}
}

type fakeApps struct {
	apps []ax.AppInfo
}

func (f *fakeApps) RunningApps() ([]ax.AppInfo, error) { return f.apps, nil }
func (f *fakeApps) FrontmostPID() (int, error)         { return 0, errors.New("no frontmost app") }

type multiRoots struct {
	extras map[int]ax.Element
}

func (m *multiRoots) MenuBar(pid int) (ax.Element, error) { return nil, errNoBar }

func (m *multiRoots) ExtrasMenuBar(pid int) (ax.Element, error) {
	if el, ok := m.extras[pid]; ok {
		return el, nil
	}
	return nil, errNoBar
}

func TestBuildAllExtras(t *testing.T) {
	apps := &fakeApps{apps: []ax.AppInfo{
		{Name: "ControlCenter", PID: 1},
		{Name: "NoExtras", PID: 2},
		{Name: "Untitled", PID: 3},
	}}
	roots := &multiRoots{extras: map[int]ax.Element{
		1: &fakeElement{children: []ax.Element{
			itemSpec{title: "Clock", role: ax.RoleMenuBarItem}.build(),
		}, noVisible: true},
		3: &fakeElement{children: []ax.Element{
			itemSpec{title: "", role: ax.RoleMenuBarItem}.build(),
		}, noVisible: true},
	}}

	results := BuildAllExtras(apps, roots, TreeOptions{})
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 (errors and empties skipped)", len(results))
	}
	if results[0].AppName != "ControlCenter" || results[0].AppPID != 1 {
		t.Errorf("result owner = %q/%d, want ControlCenter/1", results[0].AppName, results[0].AppPID)
	}
	if len(results[0].Nodes) != 1 || results[0].Nodes[0].Title != "Clock" {
		t.Errorf("unexpected extras nodes: %+v", results[0].Nodes)
	}
}
