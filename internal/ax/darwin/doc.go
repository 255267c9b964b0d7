// Package darwin implements the accessibility provider on macOS using the
// ApplicationServices AXUIElement API and NSWorkspace. All functionality
// requires CGo; without it the provider is never registered and commands
// report the platform as unsupported. On other platforms this package is
// empty.
package darwin
