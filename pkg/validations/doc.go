// Package validations runs named rules against a resource and collects the
// failures as violations.
//
// A Rule decides whether a resource passes. The built-in Method rule asks the
// resource to run one of its named checks through the Checker interface, so
// the check logic stays on the resource:
//
//	type signup struct {
//		validations.Checks
//		Email string
//	}
//
//	s := &signup{Email: "bob"}
//	s.Checks = validations.Checks{
//		"valid_email?": func() (bool, validations.Message) {
//			return strings.Contains(s.Email, "@"), validations.Message{}
//		},
//	}
//
//	rules := validations.NewRuleSet().Add(
//		validations.NewMethod("email", validations.WithMethod("valid_email?")),
//	)
//	errs, err := rules.Validate(ctx, s, "")
//
// # Violations and messages
//
// A Violation records one failure: the resource, the rule and an optional
// custom message. Literal messages are stored as is. Deferred messages are
// evaluated once, when the violation is built, with the model property of the
// attribute when the resource is ModelAware.
//
// Without a custom message the text is rendered on demand by a
// MessageTransformer. The lookup order is the transformer passed to
// Violation.Message, then the model's transformer, then the process-wide
// default.
//
// # Default transformer
//
// DefaultTransformer returns the process-wide transformer, creating a
// DefaultMessages on first use. SetDefaultTransformer replaces it and
// SetDefaultTransformer(nil) restores the lazy default. Both are safe for
// concurrent use; the slot lives for the whole process. Setup installs the
// transformer it builds from Config.
//
// # Collections
//
// ValidationErrors groups violations by attribute in insertion order. It is
// owned by one validation pass and is not safe for concurrent writes. Reads
// never create entries. It also implements error, so a failed pass can be
// returned up the stack and recovered with AsValidationErrors.
package validations
