package validations

import "fmt"

// Method delegates validation to a named check on the resource.
// The resource decides both the outcome and the message, which makes Method
// the escape hatch beneath every more specific rule.
type Method struct {
	ruleBase
	method string
}

// NewMethod declares a rule on attribute. The check name defaults to the attribute name.
//
//	rule := validations.NewMethod("email", validations.WithMethod("valid_email?"))
func NewMethod(attribute string, opts ...RuleOption) *Method {
	o := &ruleOptions{}
	for _, opt := range opts {
		opt(o)
	}
	method := o.method
	if method == "" {
		method = attribute
	}
	return &Method{
		ruleBase: newRuleBase("method", attribute, o),
		method:   method,
	}
}

// Method returns the name of the resource check.
func (r *Method) Method() string { return r.method }

// Validate runs the check and returns a violation when it fails.
func (r *Method) Validate(resource any) (*Violation, error) {
	ok, msg, err := r.check(resource)
	if err != nil || ok {
		return nil, err
	}
	return NewViolation(resource, msg, r, "")
}

// Call runs the check and reports a failure to the resource's ErrorAdder.
func (r *Method) Call(resource any) (bool, error) {
	ok, msg, err := r.check(resource)
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}
	v, err := NewViolation(resource, msg, r, "")
	if err != nil {
		return false, err
	}
	return false, addError(resource, v)
}

// ViolationData adds the check name to the base data.
func (r *Method) ViolationData(resource any) map[string]any {
	data := r.ruleBase.ViolationData(resource)
	data["method"] = r.method
	return data
}

// Equal compares the declared fields, not identity.
func (r *Method) Equal(other Rule) bool {
	o, ok := other.(*Method)
	if !ok || r == nil || o == nil {
		return ok && r == o
	}
	return r.ruleBase.equal(o.ruleBase) && r.method == o.method
}

// String returns "name(attribute -> method)".
func (r *Method) String() string {
	return fmt.Sprintf("%s(%s -> %s)", r.name, r.attribute, r.method)
}

func (r *Method) check(resource any) (bool, Message, error) {
	checker, ok := resource.(Checker)
	if !ok {
		return false, Message{}, fmt.Errorf("%w: %T has no named checks", ErrUnsupportedResource, resource)
	}
	return checker.Check(r.method)
}
