// Package ax defines the platform-neutral accessibility surface the menu
// engine is built on: elements, attribute values, running-application
// lookup, and the error taxonomy. The darwin subpackage provides the real
// implementation; tests substitute fakes.
package ax

// Accessibility attribute names used by the menu engine.
const (
	AttrTitle            = "AXTitle"
	AttrEnabled          = "AXEnabled"
	AttrMarkChar         = "AXMenuItemMarkChar"
	AttrCmdChar          = "AXMenuItemCmdChar"
	AttrCmdModifiers     = "AXMenuItemCmdModifiers"
	AttrRole             = "AXRole"
	AttrChildren         = "AXChildren"
	AttrVisibleChildren  = "AXVisibleChildren"
	AttrPrimaryUIElement = "AXMenuItemPrimaryUIElement"
	AttrMenuBar          = "AXMenuBar"
	AttrExtrasMenuBar    = "AXExtrasMenuBar"
)

// Accessibility roles the menu engine distinguishes.
const (
	RoleMenuBar     = "AXMenuBar"
	RoleMenuBarItem = "AXMenuBarItem"
	RoleMenu        = "AXMenu"
	RoleMenuItem    = "AXMenuItem"
	RoleSeparator   = "AXSeparator"
)

// ActionPress activates a menu item.
const ActionPress = "AXPress"

// menuItemAttrs is the fixed batch of attributes read per menu element,
// in slot order. Keep in sync with the Idx constants below.
var menuItemAttrs = []string{
	AttrTitle,
	AttrEnabled,
	AttrMarkChar,
	AttrCmdChar,
	AttrCmdModifiers,
	AttrRole,
	AttrChildren,
	AttrPrimaryUIElement,
}

// Slot indices into the batch returned by MenuItemAttrs.
const (
	IdxTitle = iota
	IdxEnabled
	IdxMarkChar
	IdxCmdChar
	IdxCmdModifiers
	IdxRole
	IdxChildren
	IdxPrimaryUIElement
	numMenuItemAttrs
)

// MenuItemAttrs returns the attribute batch read for every menu element.
func MenuItemAttrs() []string {
	attrs := make([]string, numMenuItemAttrs)
	copy(attrs, menuItemAttrs)
	return attrs
}

// Element is a live handle onto one accessibility object. Handles stay
// valid for the lifetime of the process that vends them; reads against a
// quit application fail with ErrInvalidElement.
type Element interface {
	// Attributes reads the named attributes in one round trip. The result
	// has one Value per name in order; unsupported or unreadable slots
	// come back absent rather than failing the batch.
	Attributes(names []string) ([]Value, error)

	// Attribute reads a single attribute.
	Attribute(name string) (Value, error)

	// Children returns the element's AXChildren, or an empty slice when
	// the attribute is missing.
	Children() ([]Element, error)

	// VisibleChildren returns the element's AXVisibleChildren, or an
	// empty slice when the attribute is missing.
	VisibleChildren() ([]Element, error)

	// Perform runs an accessibility action such as ActionPress.
	Perform(action string) error
}
