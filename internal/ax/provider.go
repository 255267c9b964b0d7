package ax

import (
	"fmt"
	"runtime"
)

// RootSource fetches the root menu elements of an application.
type RootSource interface {
	// MenuBar returns the application's AXMenuBar element.
	MenuBar(pid int) (Element, error)

	// ExtrasMenuBar returns the application's AXExtrasMenuBar element,
	// which holds its status (menu bar extra) items.
	ExtrasMenuBar(pid int) (Element, error)
}

// TrustChecker reports whether this process holds accessibility permission.
type TrustChecker interface {
	IsTrusted() bool
}

// Provider bundles the platform-specific accessibility implementations.
// Fields are nil when the platform lacks that capability.
type Provider struct {
	Apps  AppSource
	Roots RootSource
	Trust TrustChecker
}

// ErrUnsupported is returned when the current platform has no implementation.
var ErrUnsupported = fmt.Errorf("platform %s/%s is not supported", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
var NewProviderFunc func() (*Provider, error)

// NewProvider returns the accessibility provider for the current platform.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
