//go:build darwin

package darwin

import "github.com/mj1618/menucli/internal/ax"

// Raw error codes from ApplicationServices/HIServices/AXError.h.
const (
	axErrorSuccess              = 0
	axErrorFailure              = -25200
	axErrorInvalidUIElement     = -25202
	axErrorCannotComplete       = -25204
	axErrorAttributeUnsupported = -25205
	axErrorActionUnsupported    = -25206
	axErrorAPIDisabled          = -25211
	axErrorNoValue              = -25212
)

// axError maps a raw accessibility error code onto the ax taxonomy.
// kAXErrorCannotComplete usually means the target app is busy or hit the
// messaging timeout. kAXErrorAPIDisabled means assistive access is off
// for this process.
func axError(code int, context string) error {
	switch code {
	case axErrorSuccess:
		return nil
	case axErrorInvalidUIElement:
		return ax.ErrInvalidElement
	case axErrorAttributeUnsupported:
		return &ax.AttributeUnsupportedError{Attr: context}
	case axErrorActionUnsupported:
		return &ax.ActionUnsupportedError{Action: context}
	case axErrorCannotComplete:
		return ax.ErrTimeout
	case axErrorAPIDisabled:
		return ax.ErrNotTrusted
	}
	return &ax.APIError{Code: code, Context: context}
}
