//go:build darwin && cgo

package darwin

import "github.com/mj1618/menucli/internal/ax"

func init() {
	ax.NewProviderFunc = func() (*ax.Provider, error) {
		return &ax.Provider{
			Apps:  appSource{},
			Roots: rootSource{},
			Trust: trustChecker{},
		}, nil
	}
}
