package validations_test

import (
	"github.com/dmitrymomot/validations/pkg/validations"
)

// user is a plain resource: named checks plus its own error sink.
type user struct {
	validations.Checks
	added []*validations.Violation
}

func newUser(checks validations.Checks) *user {
	return &user{Checks: checks}
}

func (u *user) AddError(v *validations.Violation) {
	u.added = append(u.added, v)
}

// account is a model-backed resource.
type account struct {
	validations.Checks
	schema *validations.Schema
}

func (a *account) Model() validations.Model { return a.schema }

// blankRule reports a different violation type than Method.
type blankRule struct {
	*validations.Method
}

func (blankRule) ViolationType(any) string { return "blank" }

func failing(msg validations.Message) validations.CheckFunc {
	return func() (bool, validations.Message) { return false, msg }
}

func passing() validations.CheckFunc {
	return func() (bool, validations.Message) { return true, validations.Message{} }
}

func constant(text string) validations.MessageTransformer {
	return validations.TransformerFunc(func(*validations.Violation) string { return text })
}
