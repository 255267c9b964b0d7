package menu

import "testing"

func TestFormatShortcut(t *testing.T) {
	tests := []struct {
		name      string
		cmdChar   string
		modifiers int64
		want      string
	}{
		{"plain command", "S", 0, "⌘S"},
		{"shift command", "S", modShift, "⇧⌘S"},
		{"option command", "W", modOption, "⌥⌘W"},
		{"control only", "F", modControl | modNoCommand, "⌃F"},
		{"all modifiers", "A", modControl | modOption | modShift, "⌃⌥⇧⌘A"},
		{"no char", "", modShift, ""},
		{"whitespace char", "  ", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatShortcut(tt.cmdChar, tt.modifiers); got != tt.want {
				t.Errorf("FormatShortcut(%q, %#x) = %q, want %q", tt.cmdChar, tt.modifiers, got, tt.want)
			}
		})
	}
}
