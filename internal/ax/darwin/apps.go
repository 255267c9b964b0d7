//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
	char *name;
	int pid;
	char *bundleID;
	int frontmost;
} RunningAppInfo;

static char *menucli_nsstring_dup(NSString *s) {
	if (s == nil) {
		return NULL;
	}
	const char *utf8 = [s UTF8String];
	if (utf8 == NULL) {
		return NULL;
	}
	return strdup(utf8);
}

// menucli_running_apps lists the running applications known to NSWorkspace.
// Returns the count, or -1 on allocation failure.
static int menucli_running_apps(RunningAppInfo **out) {
	@autoreleasepool {
		NSArray<NSRunningApplication *> *apps = [[NSWorkspace sharedWorkspace] runningApplications];
		NSRunningApplication *front = [[NSWorkspace sharedWorkspace] frontmostApplication];
		pid_t frontPid = front != nil ? front.processIdentifier : -1;

		NSUInteger count = apps.count;
		RunningAppInfo *infos = calloc(count > 0 ? count : 1, sizeof(RunningAppInfo));
		if (infos == NULL) {
			*out = NULL;
			return -1;
		}
		int n = 0;
		for (NSRunningApplication *app in apps) {
			infos[n].name = menucli_nsstring_dup(app.localizedName);
			infos[n].pid = app.processIdentifier;
			infos[n].bundleID = menucli_nsstring_dup(app.bundleIdentifier);
			infos[n].frontmost = app.processIdentifier == frontPid ? 1 : 0;
			n++;
		}
		*out = infos;
		return n;
	}
}

// menucli_frontmost_pid returns the frontmost application's pid, or -1
// when nothing is frontmost.
static int menucli_frontmost_pid(void) {
	@autoreleasepool {
		NSRunningApplication *front = [[NSWorkspace sharedWorkspace] frontmostApplication];
		return front != nil ? (int)front.processIdentifier : -1;
	}
}

static void menucli_free_apps(RunningAppInfo *infos, int count) {
	if (infos == NULL) {
		return;
	}
	for (int i = 0; i < count; i++) {
		free(infos[i].name);
		free(infos[i].bundleID);
	}
	free(infos);
}
*/
import "C"
import (
	"errors"
	"sort"
	"unsafe"

	"github.com/mj1618/menucli/internal/ax"
)

// appSource lists running applications via NSWorkspace.
type appSource struct{}

// RunningApps returns applications with a non-empty localized name, sorted
// by name. Background helpers without a display name are omitted.
func (appSource) RunningApps() ([]ax.AppInfo, error) {
	var infos *C.RunningAppInfo
	count := int(C.menucli_running_apps(&infos))
	if count < 0 {
		return nil, errors.New("listing running applications failed")
	}
	defer C.menucli_free_apps(infos, C.int(count))

	apps := make([]ax.AppInfo, 0, count)
	if infos != nil && count > 0 {
		for _, info := range unsafe.Slice(infos, count) {
			if info.name == nil {
				continue
			}
			name := C.GoString(info.name)
			if name == "" {
				continue
			}
			app := ax.AppInfo{
				Name:      name,
				PID:       int(info.pid),
				Frontmost: info.frontmost != 0,
			}
			if info.bundleID != nil {
				app.BundleID = C.GoString(info.bundleID)
			}
			apps = append(apps, app)
		}
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].Name < apps[j].Name })
	return apps, nil
}

func (appSource) FrontmostPID() (int, error) {
	pid := int(C.menucli_frontmost_pid())
	if pid < 0 {
		return 0, errors.New("no frontmost application")
	}
	return pid, nil
}
