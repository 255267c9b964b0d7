//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdlib.h>
#include <string.h>

enum {
	MENUCLI_ABSENT = 0,
	MENUCLI_TEXT = 1,
	MENUCLI_BOOL = 2,
	MENUCLI_INT = 3,
	MENUCLI_ELEMENTS = 4,
};

typedef struct {
	int kind;
	char *text;
	int boolean;
	long long number;
	AXUIElementRef *elements;
	int elementCount;
} MenuAttrValue;

static char *menucli_cfstring_dup(CFStringRef s) {
	if (s == NULL) {
		return NULL;
	}
	const char *fast = CFStringGetCStringPtr(s, kCFStringEncodingUTF8);
	if (fast != NULL) {
		return strdup(fast);
	}
	CFIndex max = CFStringGetMaximumSizeForEncoding(CFStringGetLength(s), kCFStringEncodingUTF8) + 1;
	char *buf = malloc(max);
	if (buf == NULL) {
		return NULL;
	}
	if (!CFStringGetCString(s, buf, max, kCFStringEncodingUTF8)) {
		free(buf);
		return NULL;
	}
	return buf;
}

// menucli_decode converts one attribute value into a MenuAttrValue.
// Element refs are retained; the caller takes ownership of them. Anything
// outside the representable kinds decodes as absent, which covers the
// per-slot error markers AXUIElementCopyMultipleAttributeValues plants
// for unsupported attributes.
static void menucli_decode(CFTypeRef value, MenuAttrValue *out) {
	memset(out, 0, sizeof(*out));
	if (value == NULL) {
		return;
	}
	CFTypeID tid = CFGetTypeID(value);
	if (tid == CFStringGetTypeID()) {
		out->text = menucli_cfstring_dup((CFStringRef)value);
		if (out->text != NULL) {
			out->kind = MENUCLI_TEXT;
		}
	} else if (tid == CFBooleanGetTypeID()) {
		out->kind = MENUCLI_BOOL;
		out->boolean = CFBooleanGetValue((CFBooleanRef)value) ? 1 : 0;
	} else if (tid == CFNumberGetTypeID()) {
		long long n = 0;
		if (CFNumberGetValue((CFNumberRef)value, kCFNumberLongLongType, &n)) {
			out->kind = MENUCLI_INT;
			out->number = n;
		}
	} else if (tid == CFArrayGetTypeID()) {
		CFArrayRef arr = (CFArrayRef)value;
		CFIndex count = CFArrayGetCount(arr);
		out->kind = MENUCLI_ELEMENTS;
		if (count > 0) {
			out->elements = malloc(sizeof(AXUIElementRef) * count);
			if (out->elements == NULL) {
				out->kind = MENUCLI_ABSENT;
				return;
			}
			for (CFIndex i = 0; i < count; i++) {
				CFTypeRef item = CFArrayGetValueAtIndex(arr, i);
				if (item != NULL && CFGetTypeID(item) == AXUIElementGetTypeID()) {
					out->elements[out->elementCount++] = (AXUIElementRef)CFRetain(item);
				}
			}
		}
	} else if (tid == AXUIElementGetTypeID()) {
		out->elements = malloc(sizeof(AXUIElementRef));
		if (out->elements == NULL) {
			return;
		}
		out->kind = MENUCLI_ELEMENTS;
		out->elements[0] = (AXUIElementRef)CFRetain(value);
		out->elementCount = 1;
	}
}

// menucli_copy_attrs fetches the named attributes in one round trip.
// out must hold count entries; every entry is written. On failure the
// entries are all absent and nothing needs freeing.
static int menucli_copy_attrs(AXUIElementRef el, const char **names, int count, MenuAttrValue *out) {
	CFMutableArrayRef attrNames = CFArrayCreateMutable(kCFAllocatorDefault, count, &kCFTypeArrayCallBacks);
	for (int i = 0; i < count; i++) {
		CFStringRef name = CFStringCreateWithCString(kCFAllocatorDefault, names[i], kCFStringEncodingUTF8);
		CFArrayAppendValue(attrNames, name);
		CFRelease(name);
	}
	for (int i = 0; i < count; i++) {
		memset(&out[i], 0, sizeof(out[i]));
	}

	CFArrayRef values = NULL;
	AXError err = AXUIElementCopyMultipleAttributeValues(el, attrNames, 0, &values);
	CFRelease(attrNames);
	if (err != kAXErrorSuccess) {
		if (values != NULL) {
			CFRelease(values);
		}
		return err;
	}
	if (values == NULL) {
		return kAXErrorSuccess;
	}
	CFIndex n = CFArrayGetCount(values);
	for (CFIndex i = 0; i < n && i < count; i++) {
		menucli_decode(CFArrayGetValueAtIndex(values, i), &out[i]);
	}
	CFRelease(values);
	return kAXErrorSuccess;
}

static void menucli_free_values(MenuAttrValue *values, int count) {
	for (int i = 0; i < count; i++) {
		free(values[i].text);
		values[i].text = NULL;
		free(values[i].elements);
		values[i].elements = NULL;
	}
}

// menucli_copy_element_array copies an attribute expected to hold an array
// of elements. A null or non-array value comes back as an empty list with
// success, matching how apps report menus with no children.
static int menucli_copy_element_array(AXUIElementRef el, const char *name, AXUIElementRef **out, int *outCount) {
	*out = NULL;
	*outCount = 0;
	CFStringRef attr = CFStringCreateWithCString(kCFAllocatorDefault, name, kCFStringEncodingUTF8);
	CFTypeRef value = NULL;
	AXError err = AXUIElementCopyAttributeValue(el, attr, &value);
	CFRelease(attr);
	if (err != kAXErrorSuccess) {
		if (value != NULL) {
			CFRelease(value);
		}
		return err;
	}
	if (value == NULL) {
		return kAXErrorSuccess;
	}
	if (CFGetTypeID(value) != CFArrayGetTypeID()) {
		CFRelease(value);
		return kAXErrorSuccess;
	}
	CFArrayRef arr = (CFArrayRef)value;
	CFIndex count = CFArrayGetCount(arr);
	if (count > 0) {
		AXUIElementRef *refs = malloc(sizeof(AXUIElementRef) * count);
		if (refs == NULL) {
			CFRelease(value);
			return kAXErrorFailure;
		}
		int n = 0;
		for (CFIndex i = 0; i < count; i++) {
			CFTypeRef item = CFArrayGetValueAtIndex(arr, i);
			if (item != NULL && CFGetTypeID(item) == AXUIElementGetTypeID()) {
				refs[n++] = (AXUIElementRef)CFRetain(item);
			}
		}
		*out = refs;
		*outCount = n;
	}
	CFRelease(value);
	return kAXErrorSuccess;
}

// menucli_copy_element_attr copies an attribute expected to hold a single
// element. *out stays NULL when the attribute has no value.
static int menucli_copy_element_attr(AXUIElementRef el, const char *name, AXUIElementRef *out) {
	*out = NULL;
	CFStringRef attr = CFStringCreateWithCString(kCFAllocatorDefault, name, kCFStringEncodingUTF8);
	CFTypeRef value = NULL;
	AXError err = AXUIElementCopyAttributeValue(el, attr, &value);
	CFRelease(attr);
	if (err != kAXErrorSuccess) {
		if (value != NULL) {
			CFRelease(value);
		}
		return err;
	}
	if (value == NULL) {
		return kAXErrorSuccess;
	}
	if (CFGetTypeID(value) == AXUIElementGetTypeID()) {
		*out = (AXUIElementRef)value;
	} else {
		CFRelease(value);
	}
	return kAXErrorSuccess;
}

static int menucli_perform(AXUIElementRef el, const char *action) {
	CFStringRef name = CFStringCreateWithCString(kCFAllocatorDefault, action, kCFStringEncodingUTF8);
	AXError err = AXUIElementPerformAction(el, name);
	CFRelease(name);
	return err;
}

static AXUIElementRef menucli_app_element(pid_t pid, float timeout) {
	AXUIElementRef app = AXUIElementCreateApplication(pid);
	if (app != NULL) {
		AXUIElementSetMessagingTimeout(app, timeout);
	}
	return app;
}

static void menucli_set_timeout(AXUIElementRef el, float timeout) {
	AXUIElementSetMessagingTimeout(el, timeout);
}

static void menucli_release(AXUIElementRef el) {
	if (el != NULL) {
		CFRelease(el);
	}
}
*/
import "C"
import (
	"runtime"
	"unsafe"

	"github.com/mj1618/menucli/internal/ax"
)

// messagingTimeoutSecs bounds every accessibility round trip so one hung
// application cannot stall the whole command.
const messagingTimeoutSecs = 1.0

// element wraps an AXUIElementRef. The wrapper owns one retain on the ref
// and releases it from a finalizer.
type element struct {
	ref C.AXUIElementRef
}

// newElement takes ownership of ref and configures its messaging timeout.
func newElement(ref C.AXUIElementRef) *element {
	if ref == nil {
		return nil
	}
	C.menucli_set_timeout(ref, C.float(messagingTimeoutSecs))
	el := &element{ref: ref}
	runtime.SetFinalizer(el, (*element).release)
	return el
}

func (e *element) release() {
	if e.ref != nil {
		C.menucli_release(e.ref)
		e.ref = nil
	}
}

// Attributes reads the named attributes in a single accessibility call.
func (e *element) Attributes(names []string) ([]ax.Value, error) {
	if len(names) == 0 {
		return []ax.Value{}, nil
	}
	cNames := make([]*C.char, len(names))
	for i, name := range names {
		cNames[i] = C.CString(name)
	}
	defer func() {
		for _, cn := range cNames {
			C.free(unsafe.Pointer(cn))
		}
	}()

	out := make([]C.MenuAttrValue, len(names))
	status := C.menucli_copy_attrs(e.ref, &cNames[0], C.int(len(names)), &out[0])
	runtime.KeepAlive(e)
	if code := int(status); code != axErrorSuccess {
		return nil, axError(code, "AXUIElementCopyMultipleAttributeValues")
	}
	defer C.menucli_free_values(&out[0], C.int(len(names)))

	values := make([]ax.Value, len(names))
	for i := range out {
		values[i] = decodeValue(&out[i])
	}
	return values, nil
}

// Attribute reads a single attribute via the batched path.
func (e *element) Attribute(name string) (ax.Value, error) {
	values, err := e.Attributes([]string{name})
	if err != nil {
		return ax.Value{}, err
	}
	return values[0], nil
}

func (e *element) Children() ([]ax.Element, error) {
	return e.elementArray(ax.AttrChildren)
}

func (e *element) VisibleChildren() ([]ax.Element, error) {
	return e.elementArray(ax.AttrVisibleChildren)
}

func (e *element) elementArray(attr string) ([]ax.Element, error) {
	cAttr := C.CString(attr)
	defer C.free(unsafe.Pointer(cAttr))

	var refs *C.AXUIElementRef
	var count C.int
	status := C.menucli_copy_element_array(e.ref, cAttr, &refs, &count)
	runtime.KeepAlive(e)
	if code := int(status); code != axErrorSuccess {
		return nil, axError(code, attr)
	}
	if refs == nil || count == 0 {
		return []ax.Element{}, nil
	}
	defer C.free(unsafe.Pointer(refs))

	out := make([]ax.Element, 0, int(count))
	for _, ref := range unsafe.Slice(refs, int(count)) {
		if el := newElement(ref); el != nil {
			out = append(out, el)
		}
	}
	return out, nil
}

func (e *element) Perform(action string) error {
	cAction := C.CString(action)
	defer C.free(unsafe.Pointer(cAction))
	status := C.menucli_perform(e.ref, cAction)
	runtime.KeepAlive(e)
	if code := int(status); code != axErrorSuccess {
		return axError(code, action)
	}
	return nil
}

// decodeValue converts one C attribute slot into an ax.Value. Element refs
// transfer into Go wrappers here; menucli_free_values only frees the array
// storage afterwards.
func decodeValue(v *C.MenuAttrValue) ax.Value {
	switch v.kind {
	case C.MENUCLI_TEXT:
		if v.text == nil {
			return ax.Value{}
		}
		return ax.TextValue(C.GoString(v.text))
	case C.MENUCLI_BOOL:
		return ax.BoolValue(v.boolean != 0)
	case C.MENUCLI_INT:
		return ax.IntValue(int64(v.number))
	case C.MENUCLI_ELEMENTS:
		count := int(v.elementCount)
		els := make([]ax.Element, 0, count)
		if v.elements != nil && count > 0 {
			for _, ref := range unsafe.Slice(v.elements, count) {
				if el := newElement(ref); el != nil {
					els = append(els, el)
				}
			}
		}
		return ax.ElementsValue(els)
	}
	return ax.Value{}
}

// rootSource vends the menu bar roots of running applications.
type rootSource struct{}

func (rootSource) MenuBar(pid int) (ax.Element, error) {
	return appChildElement(pid, ax.AttrMenuBar)
}

func (rootSource) ExtrasMenuBar(pid int) (ax.Element, error) {
	return appChildElement(pid, ax.AttrExtrasMenuBar)
}

// appChildElement creates the application element for pid and copies one
// element-valued attribute off it. A missing value is reported as
// unsupported so callers can tell "no such bar" from a read failure.
func appChildElement(pid int, attr string) (ax.Element, error) {
	app := C.menucli_app_element(C.pid_t(pid), C.float(messagingTimeoutSecs))
	if app == nil {
		return nil, &ax.APIError{Code: axErrorFailure, Context: attr}
	}
	defer C.menucli_release(app)

	cAttr := C.CString(attr)
	defer C.free(unsafe.Pointer(cAttr))

	var ref C.AXUIElementRef
	status := C.menucli_copy_element_attr(app, cAttr, &ref)
	if code := int(status); code != axErrorSuccess {
		return nil, axError(code, attr)
	}
	if ref == nil {
		return nil, &ax.AttributeUnsupportedError{Attr: attr}
	}
	return newElement(ref), nil
}
