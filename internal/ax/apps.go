package ax

import (
	"strconv"
	"strings"
)

// AppInfo describes one running application with a regular UI.
type AppInfo struct {
	Name      string `json:"name" yaml:"name"`
	PID       int    `json:"pid" yaml:"pid"`
	BundleID  string `json:"bundle_id,omitempty" yaml:"bundle_id,omitempty"`
	Frontmost bool   `json:"frontmost" yaml:"frontmost"`
}

// AppSource enumerates running applications.
type AppSource interface {
	// RunningApps lists applications sorted by name. Processes without a
	// localized name are omitted.
	RunningApps() ([]AppInfo, error)

	// FrontmostPID returns the PID of the frontmost application.
	FrontmostPID() (int, error)
}

// frontmostIdentifier names the implicit target in AppNotFoundError when
// no application is frontmost.
const frontmostIdentifier = "<frontmost>"

// ResolveTarget turns a user-supplied application identifier into a PID.
// An empty identifier selects the frontmost application. A numeric
// identifier is taken as a PID verbatim. An identifier containing a dot
// must match a bundle identifier exactly; anything else matches
// case-insensitively as a substring of the application name.
func ResolveTarget(apps AppSource, identifier string) (int, error) {
	if identifier == "" {
		pid, err := apps.FrontmostPID()
		if err != nil {
			return 0, &AppNotFoundError{Identifier: frontmostIdentifier}
		}
		return pid, nil
	}

	if pid, err := strconv.Atoi(identifier); err == nil {
		return pid, nil
	}

	running, err := apps.RunningApps()
	if err != nil {
		return 0, err
	}

	if strings.Contains(identifier, ".") {
		for _, app := range running {
			if app.BundleID == identifier {
				return app.PID, nil
			}
		}
		return 0, &AppNotFoundError{Identifier: identifier}
	}

	needle := strings.ToLower(identifier)
	for _, app := range running {
		if strings.Contains(strings.ToLower(app.Name), needle) {
			return app.PID, nil
		}
	}
	return 0, &AppNotFoundError{Identifier: identifier}
}
