package ax

import (
	"errors"
	"fmt"
)

// Sentinel accessibility failures.
var (
	// ErrNotTrusted means the process lacks accessibility permission.
	ErrNotTrusted = errors.New("accessibility permission not granted")

	// ErrInvalidElement means the element handle no longer refers to a
	// live object, typically because the application quit or rebuilt
	// its menus.
	ErrInvalidElement = errors.New("accessibility element is no longer valid")

	// ErrTimeout means the target application did not answer within the
	// messaging timeout.
	ErrTimeout = errors.New("accessibility request timed out")
)

// AttributeUnsupportedError reports an attribute the element does not vend.
type AttributeUnsupportedError struct {
	Attr string
}

func (e *AttributeUnsupportedError) Error() string {
	return fmt.Sprintf("attribute %s not supported by element", e.Attr)
}

// ActionUnsupportedError reports an action the element cannot perform.
type ActionUnsupportedError struct {
	Action string
}

func (e *ActionUnsupportedError) Error() string {
	return fmt.Sprintf("action %s not supported by element", e.Action)
}

// APIError carries a raw accessibility error code that has no more
// specific mapping, plus the operation that produced it.
type APIError struct {
	Code    int
	Context string
}

func (e *APIError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("accessibility call failed with code %d", e.Code)
	}
	return fmt.Sprintf("accessibility call failed with code %d (%s)", e.Code, e.Context)
}

// AppNotFoundError reports a target application that could not be resolved.
type AppNotFoundError struct {
	Identifier string
}

func (e *AppNotFoundError) Error() string {
	return fmt.Sprintf("no running application matches '%s'", e.Identifier)
}
