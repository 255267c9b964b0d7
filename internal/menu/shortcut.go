package menu

import "strings"

// Modifier bits carried by AXMenuItemCmdModifiers.
const (
	modShift     = 0x1
	modOption    = 0x2
	modControl   = 0x4
	modNoCommand = 0x8
)

// FormatShortcut renders a menu item's key equivalent with macOS modifier
// glyphs, e.g. "⇧⌘S". Command is implied unless the mask carries the
// no-command bit, so a bare "S" with mask 0 comes out as "⌘S". Returns ""
// when the item has no key equivalent.
func FormatShortcut(cmdChar string, modifiers int64) string {
	ch := strings.TrimSpace(cmdChar)
	if ch == "" {
		return ""
	}

	var b strings.Builder
	if modifiers&modControl != 0 {
		b.WriteRune('⌃')
	}
	if modifiers&modOption != 0 {
		b.WriteRune('⌥')
	}
	if modifiers&modShift != 0 {
		b.WriteRune('⇧')
	}
	if modifiers&modNoCommand == 0 {
		b.WriteRune('⌘')
	}
	b.WriteString(ch)
	return b.String()
}
