package ax

import (
	"errors"
	"testing"
)

type fakeAppSource struct {
	apps     []AppInfo
	front    int
	frontErr error
}

func (f *fakeAppSource) RunningApps() ([]AppInfo, error) { return f.apps, nil }

func (f *fakeAppSource) FrontmostPID() (int, error) {
	if f.frontErr != nil {
		return 0, f.frontErr
	}
	return f.front, nil
}

func TestResolveTarget(t *testing.T) {
	source := &fakeAppSource{
		apps: []AppInfo{
			{Name: "Finder", PID: 101, BundleID: "com.apple.finder"},
			{Name: "Safari", PID: 202, BundleID: "com.apple.Safari", Frontmost: true},
			{Name: "TextEdit", PID: 303, BundleID: "com.apple.TextEdit"},
		},
		front: 202,
	}

	tests := []struct {
		name       string
		identifier string
		wantPID    int
	}{
		{"empty picks frontmost", "", 202},
		{"numeric is a pid", "4242", 4242},
		{"bundle id exact", "com.apple.finder", 101},
		{"name substring", "text", 303},
		{"name case insensitive", "SAFARI", 202},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pid, err := ResolveTarget(source, tt.identifier)
			if err != nil {
				t.Fatalf("ResolveTarget(%q) returned error: %v", tt.identifier, err)
			}
			if pid != tt.wantPID {
				t.Errorf("ResolveTarget(%q) = %d, want %d", tt.identifier, pid, tt.wantPID)
			}
		})
	}
}

func TestResolveTargetNotFound(t *testing.T) {
	source := &fakeAppSource{
		apps: []AppInfo{
			{Name: "Finder", PID: 101, BundleID: "com.apple.finder"},
		},
		front: 101,
	}

	for _, identifier := range []string{"com.example.missing", "nosuchapp"} {
		_, err := ResolveTarget(source, identifier)
		var notFound *AppNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("ResolveTarget(%q) error = %v, want AppNotFoundError", identifier, err)
		}
		if notFound.Identifier != identifier {
			t.Errorf("error identifier = %q, want %q", notFound.Identifier, identifier)
		}
	}
}

func TestResolveTargetBundleIDNeedsExactMatch(t *testing.T) {
	source := &fakeAppSource{
		apps: []AppInfo{
			{Name: "Safari", PID: 202, BundleID: "com.apple.Safari"},
		},
	}

	// A dotted identifier never falls back to name matching.
	if _, err := ResolveTarget(source, "com.apple.saf"); err == nil {
		t.Fatal("partial bundle id resolved, want AppNotFoundError")
	}
}

func TestResolveTargetNoFrontmost(t *testing.T) {
	source := &fakeAppSource{frontErr: errors.New("no frontmost application")}

	_, err := ResolveTarget(source, "")
	var notFound *AppNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want AppNotFoundError", err)
	}
	if notFound.Identifier != "<frontmost>" {
		t.Errorf("error identifier = %q, want %q", notFound.Identifier, "<frontmost>")
	}
}
