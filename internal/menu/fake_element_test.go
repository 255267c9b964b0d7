package menu

import (
	"errors"

	"github.com/mj1618/menucli/internal/ax"
)

// fakeElement implements ax.Element from static attribute values.
type fakeElement struct {
	attrs     map[string]ax.Value
	children  []ax.Element
	visible   []ax.Element
	noVisible bool
	attrErr   error
	performed []string
	perform   error
}

func (f *fakeElement) Attributes(names []string) ([]ax.Value, error) {
	if f.attrErr != nil {
		return nil, f.attrErr
	}
	values := make([]ax.Value, len(names))
	for i, name := range names {
		if name == ax.AttrChildren && len(f.children) > 0 {
			values[i] = ax.ElementsValue(f.children)
			continue
		}
		if v, ok := f.attrs[name]; ok {
			values[i] = v
		}
	}
	return values, nil
}

func (f *fakeElement) Attribute(name string) (ax.Value, error) {
	values, err := f.Attributes([]string{name})
	if err != nil {
		return ax.Value{}, err
	}
	return values[0], nil
}

func (f *fakeElement) Children() ([]ax.Element, error) {
	if f.attrErr != nil {
		return nil, f.attrErr
	}
	return f.children, nil
}

func (f *fakeElement) VisibleChildren() ([]ax.Element, error) {
	if f.noVisible {
		return nil, &ax.AttributeUnsupportedError{Attr: ax.AttrVisibleChildren}
	}
	return f.visible, nil
}

func (f *fakeElement) Perform(action string) error {
	if f.perform != nil {
		return f.perform
	}
	f.performed = append(f.performed, action)
	return nil
}

// itemSpec describes one fake menu item.
type itemSpec struct {
	title     string
	role      string
	disabled  bool
	markChar  string
	cmdChar   string
	cmdMods   int64
	hasMods   bool
	alternate bool
}

func (s itemSpec) build(children ...ax.Element) *fakeElement {
	role := s.role
	if role == "" {
		role = ax.RoleMenuItem
	}
	attrs := map[string]ax.Value{
		ax.AttrTitle:   ax.TextValue(s.title),
		ax.AttrRole:    ax.TextValue(role),
		ax.AttrEnabled: ax.BoolValue(!s.disabled),
	}
	if s.markChar != "" {
		attrs[ax.AttrMarkChar] = ax.TextValue(s.markChar)
	}
	if s.cmdChar != "" {
		attrs[ax.AttrCmdChar] = ax.TextValue(s.cmdChar)
	}
	if s.hasMods {
		attrs[ax.AttrCmdModifiers] = ax.IntValue(s.cmdMods)
	}
	if s.alternate {
		attrs[ax.AttrPrimaryUIElement] = ax.ElementsValue([]ax.Element{&fakeElement{}})
	}
	return &fakeElement{attrs: attrs, children: children}
}

// item builds a plain enabled menu item.
func item(title string, children ...ax.Element) *fakeElement {
	return itemSpec{title: title}.build(children...)
}

// axMenu builds a transparent AXMenu container.
func axMenu(children ...ax.Element) *fakeElement {
	return &fakeElement{
		attrs:    map[string]ax.Value{ax.AttrRole: ax.TextValue(ax.RoleMenu)},
		children: children,
	}
}

// separator builds an AXSeparator entry.
func separator() *fakeElement {
	return itemSpec{title: "sep", role: ax.RoleSeparator}.build()
}

// topLevel builds an AXMenuBarItem whose submenu is wrapped in an AXMenu.
func topLevel(title string, children ...ax.Element) *fakeElement {
	return itemSpec{title: title, role: ax.RoleMenuBarItem}.build(axMenu(children...))
}

// menuBar builds a fake menu bar root holding top-level items.
func menuBar(items ...ax.Element) *fakeElement {
	return &fakeElement{
		attrs:    map[string]ax.Value{ax.AttrRole: ax.TextValue(ax.RoleMenuBar)},
		children: items,
	}
}

// fakeRoots implements ax.RootSource from fixed root elements.
type fakeRoots struct {
	menuBar   ax.Element
	extrasBar ax.Element
}

var errNoBar = errors.New("no such menu bar")

func (f *fakeRoots) MenuBar(pid int) (ax.Element, error) {
	if f.menuBar == nil {
		return nil, errNoBar
	}
	return f.menuBar, nil
}

func (f *fakeRoots) ExtrasMenuBar(pid int) (ax.Element, error) {
	if f.extrasBar == nil {
		return nil, errNoBar
	}
	return f.extrasBar, nil
}
