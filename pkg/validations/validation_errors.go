package validations

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// FullMessager is implemented by collections that render their own messages,
// which lets one ValidationErrors nest another under an attribute.
type FullMessager interface {
	FullMessages() []string
}

// ValidationErrors collects the violations of one resource keyed by attribute.
// Attributes keep first-insertion order and violations keep insertion order.
// Duplicates are stored as added and collapsed by On.
//
// A ValidationErrors belongs to a single validation pass and is not safe for
// concurrent use.
type ValidationErrors struct {
	resource   any
	attributes []string
	violations map[string][]*Violation
	nested     map[string]FullMessager
}

// NewValidationErrors creates an empty collection for resource.
func NewValidationErrors(resource any) *ValidationErrors {
	return &ValidationErrors{
		resource:   resource,
		violations: make(map[string][]*Violation),
		nested:     make(map[string]FullMessager),
	}
}

// Resource returns the validated resource.
func (e *ValidationErrors) Resource() any { return e.resource }

// Add appends a violation under its attribute name. Violations without an
// attribute land under "".
func (e *ValidationErrors) Add(v *Violation) {
	if v == nil {
		return
	}
	attr := v.AttributeName()
	e.touch(attr)
	e.violations[attr] = append(e.violations[attr], v)
}

// AddMessage records an ad hoc failure for attribute.
func (e *ValidationErrors) AddMessage(attribute string, msg Message) error {
	v, err := NewViolation(e.resource, msg, nil, attribute)
	if err != nil {
		return err
	}
	e.Add(v)
	return nil
}

// AddError implements ErrorAdder so a collection can stand in as a resource's
// error sink.
func (e *ValidationErrors) AddError(v *Violation) {
	e.Add(v)
}

// Nest stores a child collection whose messages render under attribute.
func (e *ValidationErrors) Nest(attribute string, child FullMessager) {
	if child == nil {
		return
	}
	e.touch(attribute)
	e.nested[attribute] = child
}

// On returns the distinct violations for attribute, or nil if there are none.
func (e *ValidationErrors) On(attribute string) []*Violation {
	stored := e.violations[attribute]
	if len(stored) == 0 {
		return nil
	}
	unique := make([]*Violation, 0, len(stored))
	for _, v := range stored {
		if !slices.ContainsFunc(unique, func(u *Violation) bool { return u.Equal(v) }) {
			unique = append(unique, v)
		}
	}
	return unique
}

// Get returns the stored violations for attribute, duplicates included.
// Lookups never create entries, so arbitrary input cannot grow the collection.
func (e *ValidationErrors) Get(attribute string) []*Violation {
	return e.violations[attribute]
}

// FullMessages renders every violation, attribute by attribute in insertion order.
func (e *ValidationErrors) FullMessages() []string {
	var list []string
	for _, attr := range e.attributes {
		if child, ok := e.nested[attr]; ok {
			list = append(list, child.FullMessages()...)
		}
		for _, v := range e.violations[attr] {
			list = append(list, v.String())
		}
	}
	return list
}

// Each calls fn for every attribute that has violations.
func (e *ValidationErrors) Each(fn func(attribute string, violations []*Violation)) {
	for attr, vs := range e.All() {
		fn(attr, vs)
	}
}

// All iterates attributes with violations in insertion order.
func (e *ValidationErrors) All() iter.Seq2[string, []*Violation] {
	return func(yield func(string, []*Violation) bool) {
		for _, attr := range e.attributes {
			vs := e.violations[attr]
			if len(vs) == 0 {
				continue
			}
			if !yield(attr, vs) {
				return
			}
		}
	}
}

// IsEmpty reports whether no attribute holds a violation.
func (e *ValidationErrors) IsEmpty() bool {
	for _, attr := range e.attributes {
		if len(e.violations[attr]) > 0 {
			return false
		}
		if child, ok := e.nested[attr]; ok && !isEmptyChild(child) {
			return false
		}
	}
	return true
}

// Clear drops all entries. The collection stays usable.
func (e *ValidationErrors) Clear() {
	e.attributes = e.attributes[:0]
	clear(e.violations)
	clear(e.nested)
}

// Attributes returns the attributes with violations in insertion order.
func (e *ValidationErrors) Attributes() []string {
	attrs := make([]string, 0, len(e.attributes))
	for attr := range e.All() {
		attrs = append(attrs, attr)
	}
	return attrs
}

// Has reports whether attribute has at least one violation.
func (e *ValidationErrors) Has(attribute string) bool {
	return len(e.violations[attribute]) > 0
}

// Len returns the number of stored violations, duplicates included.
func (e *ValidationErrors) Len() int {
	n := 0
	for _, vs := range e.violations {
		n += len(vs)
	}
	return n
}

// Error makes a failed pass usable as an error value.
func (e *ValidationErrors) Error() string {
	if e.IsEmpty() {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, e.Len())
	for _, attr := range e.attributes {
		if child, ok := e.nested[attr]; ok {
			for _, msg := range child.FullMessages() {
				parts = append(parts, formatPart(attr, msg))
			}
		}
		for _, v := range e.violations[attr] {
			parts = append(parts, formatPart(attr, v.String()))
		}
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is match ErrValidationFailed.
func (e *ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// AsValidationErrors extracts a ValidationErrors from err.
func AsValidationErrors(err error) *ValidationErrors {
	if err == nil {
		return nil
	}
	var verrs *ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func (e *ValidationErrors) touch(attribute string) {
	if _, ok := e.violations[attribute]; ok {
		return
	}
	if _, ok := e.nested[attribute]; ok {
		return
	}
	e.attributes = append(e.attributes, attribute)
	e.violations[attribute] = nil
}

func formatPart(attr, msg string) string {
	if attr == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", attr, msg)
}

func isEmptyChild(child FullMessager) bool {
	if c, ok := child.(interface{ IsEmpty() bool }); ok {
		return c.IsEmpty()
	}
	return len(child.FullMessages()) == 0
}
