package validations

import "slices"

// DefaultContext is the validation context of rules declared without one.
const DefaultContext = "default"

// Rule is a reusable check bound to one attribute.
// Implementations are immutable once built and safe to share between resources.
type Rule interface {
	Name() string
	AttributeName() string
	// Contexts lists the validation contexts the rule runs in.
	Contexts() []string
	// Validate returns a violation when the resource fails the rule, nil otherwise.
	Validate(resource any) (*Violation, error)
	// Call records a failure on the resource itself and reports whether it passed.
	Call(resource any) (bool, error)
	ViolationType(resource any) string
	ViolationData(resource any) map[string]any
	Equal(other Rule) bool
}

// RuleOption configures a rule at declaration time.
type RuleOption func(*ruleOptions)

type ruleOptions struct {
	name     string
	method   string
	contexts []string
}

// WithName overrides the rule name used in logs and debug output.
func WithName(name string) RuleOption {
	return func(o *ruleOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithMethod sets the resource check invoked by a Method rule.
func WithMethod(method string) RuleOption {
	return func(o *ruleOptions) {
		if method != "" {
			o.method = method
		}
	}
}

// WithContexts restricts the rule to the given validation contexts.
func WithContexts(contexts ...string) RuleOption {
	return func(o *ruleOptions) {
		for _, c := range contexts {
			if c != "" && !slices.Contains(o.contexts, c) {
				o.contexts = append(o.contexts, c)
			}
		}
	}
}

// ruleBase holds the fields every rule shares and takes part in equality.
type ruleBase struct {
	name      string
	attribute string
	contexts  []string
}

func newRuleBase(kind, attribute string, o *ruleOptions) ruleBase {
	name := o.name
	if name == "" {
		name = kind
	}
	contexts := o.contexts
	if len(contexts) == 0 {
		contexts = []string{DefaultContext}
	}
	return ruleBase{name: name, attribute: attribute, contexts: contexts}
}

// Name returns the rule name.
func (b ruleBase) Name() string          { return b.name }
// AttributeName returns the validated attribute.
func (b ruleBase) AttributeName() string { return b.attribute }

// Contexts returns a copy of the rule's contexts.
func (b ruleBase) Contexts() []string { return slices.Clone(b.contexts) }

func (b ruleBase) equal(o ruleBase) bool {
	return b.name == o.name &&
		b.attribute == o.attribute &&
		slices.Equal(b.contexts, o.contexts)
}

// ViolationType is the catalog key suffix used by transformers.
func (b ruleBase) ViolationType(any) string { return "invalid" }

// ViolationData returns the attribute name.
func (b ruleBase) ViolationData(any) map[string]any {
	return map[string]any{"attribute": b.attribute}
}

// addError reports v through the resource's own error sink.
func addError(resource any, v *Violation) error {
	adder, ok := resource.(ErrorAdder)
	if !ok {
		return ErrNoErrorSink
	}
	adder.AddError(v)
	return nil
}
