package cmd

import (
	"strconv"

	"github.com/mj1618/menucli/internal/ax"
	"github.com/mj1618/menucli/internal/logging"
	"github.com/mj1618/menucli/internal/menu"
)

// requireProvider returns the platform accessibility provider, failing
// with ErrNotTrusted before any menu work when permission is missing.
func requireProvider() (*ax.Provider, error) {
	provider, err := ax.NewProvider()
	if err != nil {
		return nil, err
	}
	if provider.Trust != nil && !provider.Trust.IsTrusted() {
		return nil, ax.ErrNotTrusted
	}
	return provider, nil
}

// buildTreeForApp resolves the target application and walks its menu bar.
func buildTreeForApp(provider *ax.Provider, app string, opts menu.TreeOptions) (int, []menu.Node, error) {
	done := logging.Timed("resolve_target", "app", app)
	pid, err := ax.ResolveTarget(provider.Apps, app)
	done()
	if err != nil {
		return 0, nil, err
	}

	done = logging.Timed("build_tree", "pid", pid)
	nodes, err := menu.BuildTree(provider.Roots, pid, opts)
	done()
	if err != nil {
		return 0, nil, err
	}
	return pid, nodes, nil
}

// appNameForPID looks up the application name owning pid, falling back to
// the number itself when the lookup fails.
func appNameForPID(apps ax.AppSource, pid int) string {
	running, err := apps.RunningApps()
	if err == nil {
		for _, app := range running {
			if app.PID == pid {
				return app.Name
			}
		}
	}
	return strconv.Itoa(pid)
}
