package validations

import (
	"fmt"
	"reflect"
	"strings"
)

// Violation records one failed check against one resource.
// It is immutable; the message is evaluated once when the violation is built
// and transformer output is produced on every Message call.
type Violation struct {
	resource      any
	rule          Rule
	customMessage string
	hasMessage    bool
	attribute     string
}

// NewViolation builds a violation. At least one of message and rule must be given.
// attribute overrides the rule's attribute name when not empty.
func NewViolation(resource any, message Message, rule Rule, attribute string) (*Violation, error) {
	if !message.IsSet() && isNilRule(rule) {
		return nil, ErrMissingMessageSource
	}

	v := &Violation{
		resource:  resource,
		attribute: attribute,
	}
	if !isNilRule(rule) {
		v.rule = rule
	}
	if message.IsSet() {
		v.customMessage = message.evaluate(resource, v.property())
		v.hasMessage = true
	}
	return v, nil
}

// MustViolation is like NewViolation but panics on a construction error.
// Use it for violations declared in code, never for caller input.
func MustViolation(resource any, message Message, rule Rule, attribute string) *Violation {
	v, err := NewViolation(resource, message, rule, attribute)
	if err != nil {
		panic(err)
	}
	return v
}

// Resource returns the validated resource.
func (v *Violation) Resource() any { return v.resource }

// Rule returns nil for ad hoc violations.
func (v *Violation) Rule() Rule { return v.rule }

// CustomMessage returns the message evaluated at construction, if any.
func (v *Violation) CustomMessage() (string, bool) {
	return v.customMessage, v.hasMessage
}

// AttributeName returns the explicit attribute, else the rule's, else "".
func (v *Violation) AttributeName() string {
	if v.attribute != "" {
		return v.attribute
	}
	if v.rule != nil {
		return v.rule.AttributeName()
	}
	return ""
}

// Message renders the violation. A custom message always wins; otherwise t
// is used, and a nil t resolves to the model's transformer or the default one.
func (v *Violation) Message(t MessageTransformer) string {
	if v.hasMessage {
		return v.customMessage
	}
	if t == nil {
		t = v.transformer()
	}
	return t.Transform(v)
}

// String renders the message with the default transformer chain.
func (v *Violation) String() string { return v.Message(nil) }

// ViolationType delegates to the rule. It is empty without one.
func (v *Violation) ViolationType() string {
	if v.rule == nil {
		return ""
	}
	return v.rule.ViolationType(v.resource)
}

// ViolationData delegates to the rule. It is nil without one.
func (v *Violation) ViolationData() map[string]any {
	if v.rule == nil {
		return nil
	}
	return v.rule.ViolationData(v.resource)
}

// Equal compares against another violation field by field, or against a
// string by rendered message. A nil violation equals no string.
func (v *Violation) Equal(other any) bool {
	switch o := other.(type) {
	case string:
		return v != nil && v.String() == o
	case *Violation:
		if v == nil || o == nil {
			return v == o
		}
		return sameValue(v.resource, o.resource) &&
			sameRule(v.rule, o.rule) &&
			v.hasMessage == o.hasMessage &&
			v.customMessage == o.customMessage &&
			v.AttributeName() == o.AttributeName()
	default:
		return false
	}
}

// GoString lists the fields Equal compares.
func (v *Violation) GoString() string {
	var b strings.Builder
	b.WriteString("#<Violation")
	fmt.Fprintf(&b, " resource=%#v", v.resource)
	fmt.Fprintf(&b, " rule=%v", v.rule)
	if v.hasMessage {
		fmt.Fprintf(&b, " custom_message=%q", v.customMessage)
	} else {
		b.WriteString(" custom_message=<nil>")
	}
	fmt.Fprintf(&b, " attribute_name=%q>", v.AttributeName())
	return b.String()
}

func (v *Violation) model() Model {
	if aware, ok := v.resource.(ModelAware); ok {
		return aware.Model()
	}
	return nil
}

func (v *Violation) property() *Property {
	if m := v.model(); m != nil {
		return m.Property(v.AttributeName())
	}
	return nil
}

func (v *Violation) transformer() MessageTransformer {
	if m := v.model(); m != nil {
		if t := m.Transformer(); t != nil {
			return t
		}
	}
	return DefaultTransformer()
}

func sameRule(a, b Rule) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// sameValue compares resources without panicking on uncomparable dynamic types.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func isNilRule(r Rule) bool {
	if r == nil {
		return true
	}
	rv := reflect.ValueOf(r)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
