package cmd

import (
	"errors"
	"testing"

	"github.com/mj1618/menucli/internal/ax"
	"github.com/mj1618/menucli/internal/menu"
)

// stubElement is a menu bar root with no children.
type stubElement struct{}

func (stubElement) Attributes(names []string) ([]ax.Value, error) {
	return make([]ax.Value, len(names)), nil
}

func (stubElement) Attribute(name string) (ax.Value, error) { return ax.Value{}, nil }
func (stubElement) Children() ([]ax.Element, error)         { return nil, nil }
func (stubElement) VisibleChildren() ([]ax.Element, error)  { return nil, nil }
func (stubElement) Perform(action string) error             { return nil }

// stubApps serves a fixed application list.
type stubApps struct {
	apps      []ax.AppInfo
	frontmost int
}

func (s *stubApps) RunningApps() ([]ax.AppInfo, error) { return s.apps, nil }

func (s *stubApps) FrontmostPID() (int, error) {
	if s.frontmost == 0 {
		return 0, errors.New("no frontmost application")
	}
	return s.frontmost, nil
}

// stubRoots vends empty menu bars and counts reads.
type stubRoots struct {
	menuBarCalls int
	err          error
}

func (s *stubRoots) MenuBar(pid int) (ax.Element, error) {
	s.menuBarCalls++
	if s.err != nil {
		return nil, s.err
	}
	return stubElement{}, nil
}

func (s *stubRoots) ExtrasMenuBar(pid int) (ax.Element, error) {
	return nil, errors.New("no extras menu bar")
}

func TestBuildTreeForApp(t *testing.T) {
	provider := &ax.Provider{
		Apps:  &stubApps{apps: []ax.AppInfo{{Name: "TextEdit", PID: 42}}, frontmost: 42},
		Roots: &stubRoots{},
	}

	pid, nodes, err := buildTreeForApp(provider, "textedit", menu.TreeOptions{})
	if err != nil {
		t.Fatalf("buildTreeForApp: %v", err)
	}
	if pid != 42 {
		t.Errorf("pid = %d, want 42", pid)
	}
	if len(nodes) != 0 {
		t.Errorf("empty menu bar yielded %d nodes", len(nodes))
	}
}

func TestBuildTreeForAppFrontmost(t *testing.T) {
	provider := &ax.Provider{
		Apps:  &stubApps{apps: []ax.AppInfo{{Name: "Safari", PID: 7}}, frontmost: 7},
		Roots: &stubRoots{},
	}

	pid, _, err := buildTreeForApp(provider, "", menu.TreeOptions{})
	if err != nil {
		t.Fatalf("buildTreeForApp: %v", err)
	}
	if pid != 7 {
		t.Errorf("pid = %d, want frontmost 7", pid)
	}
}

func TestBuildTreeForAppUnknownApp(t *testing.T) {
	roots := &stubRoots{}
	provider := &ax.Provider{
		Apps:  &stubApps{apps: []ax.AppInfo{{Name: "TextEdit", PID: 42}}},
		Roots: roots,
	}

	_, _, err := buildTreeForApp(provider, "no such app", menu.TreeOptions{})
	var notFound *ax.AppNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want AppNotFoundError", err)
	}
	if roots.menuBarCalls != 0 {
		t.Errorf("menu bar read despite unresolved target")
	}
}

func TestBuildTreeForAppRootFailure(t *testing.T) {
	provider := &ax.Provider{
		Apps:  &stubApps{apps: []ax.AppInfo{{Name: "TextEdit", PID: 42}}},
		Roots: &stubRoots{err: ax.ErrInvalidElement},
	}

	_, _, err := buildTreeForApp(provider, "42", menu.TreeOptions{})
	if !errors.Is(err, ax.ErrInvalidElement) {
		t.Fatalf("err = %v, want ErrInvalidElement", err)
	}
}

func TestAppNameForPID(t *testing.T) {
	apps := &stubApps{apps: []ax.AppInfo{
		{Name: "Safari", PID: 7},
		{Name: "TextEdit", PID: 42},
	}}

	if got := appNameForPID(apps, 42); got != "TextEdit" {
		t.Errorf("appNameForPID(42) = %q, want TextEdit", got)
	}
	if got := appNameForPID(apps, 99); got != "99" {
		t.Errorf("appNameForPID(99) = %q, want pid fallback", got)
	}
}
