package menu

import (
	"fmt"
	"strings"
)

// NotFoundError reports a query or path that matched no menu item.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no menu item matches '%s'", e.Query)
}

// AmbiguousError reports a query that matched several items with similar
// confidence. Candidates holds the full paths of the contenders.
type AmbiguousError struct {
	Query      string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ambiguous match for '%s' (%d candidates):", e.Query, len(e.Candidates))
	for _, candidate := range e.Candidates {
		b.WriteString("\n  ")
		b.WriteString(candidate)
	}
	return b.String()
}

// DisabledError reports an activation attempt on a disabled item.
type DisabledError struct {
	Path string
}

func (e *DisabledError) Error() string {
	return fmt.Sprintf("menu item '%s' is disabled", e.Path)
}

// NotToggleableError reports a toggle attempt on an item that carries no
// checkmark state.
type NotToggleableError struct {
	Path string
}

func (e *NotToggleableError) Error() string {
	return fmt.Sprintf("menu item '%s' is not a toggleable (checkmark) item", e.Path)
}
