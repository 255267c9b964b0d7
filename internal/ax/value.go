package ax

// Kind discriminates the representable accessibility attribute values.
type Kind int

const (
	// KindAbsent marks an attribute the element did not supply, either
	// because it is unsupported or because the read failed for that slot.
	KindAbsent Kind = iota
	KindText
	KindBool
	KindInt
	KindElements
)

// Value is a single attribute value read from an accessibility element.
// The zero Value is absent. Only the listed kinds are representable;
// anything else an application vends is reported as absent.
type Value struct {
	kind     Kind
	text     string
	boolean  bool
	number   int64
	elements []Element
}

// TextValue wraps a string attribute such as a title or mark character.
func TextValue(s string) Value { return Value{kind: KindText, text: s} }

// BoolValue wraps a boolean attribute such as enabled state.
func BoolValue(b bool) Value { return Value{kind: KindBool, boolean: b} }

// IntValue wraps a numeric attribute such as a modifier bitmask.
func IntValue(n int64) Value { return Value{kind: KindInt, number: n} }

// ElementsValue wraps an element or element-array attribute.
func ElementsValue(els []Element) Value { return Value{kind: KindElements, elements: els} }

func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the attribute was missing or unreadable.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Text returns the string value. ok is false for any other kind.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindText
}

// Bool returns the boolean value. ok is false for any other kind.
func (v Value) Bool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

// Int returns the numeric value. ok is false for any other kind.
func (v Value) Int() (int64, bool) {
	return v.number, v.kind == KindInt
}

// Elements returns the element values. ok is false for any other kind.
func (v Value) Elements() ([]Element, bool) {
	return v.elements, v.kind == KindElements
}
