//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework Foundation
#include <ApplicationServices/ApplicationServices.h>

static int menucli_is_trusted(void) {
    return AXIsProcessTrusted();
}
*/
import "C"

// trustChecker reports the process's accessibility permission state.
type trustChecker struct{}

func (trustChecker) IsTrusted() bool {
	return C.menucli_is_trusted() != 0
}
