package validations

import "fmt"

// Checker is implemented by resources that expose named checks.
// A check reports whether it passed and, on failure, the message to record.
type Checker interface {
	Check(name string) (ok bool, msg Message, err error)
}

// CheckFunc is a single registered check.
type CheckFunc func() (bool, Message)

// Checks maps check names to functions. Resources usually build it once at
// model-definition time and embed or return it.
type Checks map[string]CheckFunc

// Check runs the named check.
func (c Checks) Check(name string) (bool, Message, error) {
	fn, ok := c[name]
	if !ok || fn == nil {
		return false, Message{}, fmt.Errorf("%w: %q", ErrCheckNotFound, name)
	}
	passed, msg := fn()
	return passed, msg, nil
}

// ErrorAdder is implemented by resources that record their own errors.
// Rule.Call reports each failure through it as the same violation Validate
// would return.
type ErrorAdder interface {
	AddError(v *Violation)
}

// Property describes one attribute of a model.
type Property struct {
	Name  string
	Label string
}

// Model exposes per-model metadata used while building and rendering violations.
type Model interface {
	// Property returns nil for unknown attributes.
	Property(name string) *Property
	// Transformer returns nil when the model does not override the default.
	Transformer() MessageTransformer
}

// ModelAware is implemented by resources backed by a model.
type ModelAware interface {
	Model() Model
}

// Schema is a ready-made Model: a set of properties and the model's rules.
type Schema struct {
	Name       string
	Properties map[string]*Property
	Rules      *RuleSet
}

// NewSchema builds a schema from the given properties.
func NewSchema(name string, rules *RuleSet, props ...*Property) *Schema {
	s := &Schema{
		Name:       name,
		Properties: make(map[string]*Property, len(props)),
		Rules:      rules,
	}
	for _, p := range props {
		if p != nil {
			s.Properties[p.Name] = p
		}
	}
	return s
}

// Property returns the named property, or nil.
func (s *Schema) Property(name string) *Property {
	if s == nil {
		return nil
	}
	return s.Properties[name]
}

// Transformer returns the rule set's transformer override, or nil.
func (s *Schema) Transformer() MessageTransformer {
	if s == nil || s.Rules == nil {
		return nil
	}
	return s.Rules.Transformer()
}
