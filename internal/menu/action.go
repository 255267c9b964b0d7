package menu

import (
	"time"

	"github.com/mj1618/menucli/internal/ax"
)

const (
	toggleConfirmAttempts   = 5
	toggleConfirmFirstDelay = 50 * time.Millisecond
)

// sleepFn is swapped out by tests to capture confirmation delays.
var sleepFn = time.Sleep

// Press activates a menu item. Disabled items are rejected before any
// accessibility call is made.
func Press(node *Node) error {
	if !node.Enabled {
		return &DisabledError{Path: node.Path}
	}
	if node.Element == nil {
		return ax.ErrInvalidElement
	}
	return node.Element.Perform(ax.ActionPress)
}

// ToggleConfirmation reports how a toggle's outcome was determined.
type ToggleConfirmation struct {
	// CheckedAfter is the observed state, or the assumed flip when no
	// re-read confirmed it.
	CheckedAfter bool
	// Confirmed is true when a rebuilt tree actually showed the change.
	Confirmed bool
	// Attempts counts the re-reads performed.
	Attempts int
}

// ConfirmToggle watches for a pressed item's checkmark to change. Menu
// state updates asynchronously after a press, so the tree is rebuilt and
// the query re-resolved up to five times, waiting 50ms before the first
// read and doubling the wait each retry. Attempts that fail to rebuild
// or re-resolve are skipped. When every read still shows the old state,
// the result assumes the press landed and reports Confirmed=false.
func ConfirmToggle(rebuild func() ([]Node, error), query string, checkedBefore bool) ToggleConfirmation {
	delay := toggleConfirmFirstDelay
	for attempt := 1; attempt <= toggleConfirmAttempts; attempt++ {
		sleepFn(delay)
		delay *= 2

		nodes, err := rebuild()
		if err != nil {
			continue
		}
		node, err := Resolve(nodes, query)
		if err != nil {
			continue
		}
		if node.Checked != checkedBefore {
			return ToggleConfirmation{
				CheckedAfter: node.Checked,
				Confirmed:    true,
				Attempts:     attempt,
			}
		}
	}
	return ToggleConfirmation{
		CheckedAfter: !checkedBefore,
		Confirmed:    false,
		Attempts:     toggleConfirmAttempts,
	}
}
