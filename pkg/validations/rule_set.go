package validations

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validations/pkg/logger"
)

// RuleSet is the validator configuration of one model: its rules in
// declaration order and an optional transformer override.
// Build it at model-definition time; after that it is read-only and may be
// shared by concurrent validation passes.
type RuleSet struct {
	rules       []Rule
	transformer MessageTransformer
	logger      *slog.Logger
}

// RuleSetOption configures a RuleSet.
type RuleSetOption func(*RuleSet)

// WithTransformer overrides the process-wide default for this model's violations.
func WithTransformer(t MessageTransformer) RuleSetOption {
	return func(rs *RuleSet) { rs.transformer = t }
}

// WithLogger sets the logger used by Validate. The default discards everything.
func WithLogger(l *slog.Logger) RuleSetOption {
	return func(rs *RuleSet) {
		if l != nil {
			rs.logger = l
		}
	}
}

// NewRuleSet creates an empty rule set.
func NewRuleSet(opts ...RuleSetOption) *RuleSet {
	rs := &RuleSet{logger: logger.Discard()}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// Add appends rules, skipping nil rules and ones equal to a rule already present.
func (rs *RuleSet) Add(rules ...Rule) *RuleSet {
	for _, r := range rules {
		if isNilRule(r) {
			continue
		}
		if slices.ContainsFunc(rs.rules, r.Equal) {
			continue
		}
		rs.rules = append(rs.rules, r)
	}
	return rs
}

// Transformer returns the model's override, or nil.
func (rs *RuleSet) Transformer() MessageTransformer {
	if rs == nil {
		return nil
	}
	return rs.transformer
}

// Rules returns the rules that run in the named context. An empty name means DefaultContext.
func (rs *RuleSet) Rules(contextName string) []Rule {
	if contextName == "" {
		contextName = DefaultContext
	}
	var out []Rule
	for _, r := range rs.rules {
		if slices.Contains(r.Contexts(), contextName) {
			out = append(out, r)
		}
	}
	return out
}

// Contexts lists every context named by the rules, in first-seen order.
func (rs *RuleSet) Contexts() []string {
	var out []string
	for _, r := range rs.rules {
		for _, c := range r.Contexts() {
			if !slices.Contains(out, c) {
				out = append(out, c)
			}
		}
	}
	return out
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int { return len(rs.rules) }

// Validate runs the rules of the named context against resource and collects the
// violations. It stops at the first collaborator error and returns it with
// the violations gathered so far.
func (rs *RuleSet) Validate(ctx context.Context, resource any, contextName string) (*ValidationErrors, error) {
	errs := NewValidationErrors(resource)
	return errs, rs.ValidateInto(ctx, errs, contextName)
}

// ValidateInto clears errs and fills it with the violations of a new pass,
// letting a resource reuse its collection across passes.
func (rs *RuleSet) ValidateInto(ctx context.Context, errs *ValidationErrors, contextName string) error {
	if contextName == "" {
		contextName = DefaultContext
	}
	errs.Clear()

	passID := uuid.New()
	log := rs.logger.With(
		logger.Component("validations"),
		logger.PassID(passID.String()),
		logger.ValidationContext(contextName),
	)
	start := time.Now()

	for _, rule := range rs.Rules(contextName) {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := rule.Validate(errs.Resource())
		if err != nil {
			log.ErrorContext(ctx, "rule failed",
				logger.Rule(rule.Name()),
				logger.Attribute(rule.AttributeName()),
				logger.Error(err),
			)
			return err
		}
		if v == nil {
			continue
		}
		errs.Add(v)
		log.DebugContext(ctx, "violation recorded",
			logger.Rule(rule.Name()),
			logger.Attribute(v.AttributeName()),
		)
	}

	log.DebugContext(ctx, "validation finished",
		logger.ViolationCount(errs.Len()),
		slog.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// Valid runs Validate and reports whether no violation was found.
func (rs *RuleSet) Valid(ctx context.Context, resource any, contextName string) (bool, error) {
	errs, err := rs.Validate(ctx, resource, contextName)
	if err != nil {
		return false, err
	}
	return errs.IsEmpty(), nil
}
