package validations

import (
	"maps"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MessageTransformer turns a violation into display text.
// Implementations must not modify the violation.
type MessageTransformer interface {
	Transform(v *Violation) string
}

// TransformerFunc adapts a function to MessageTransformer.
type TransformerFunc func(v *Violation) string

// Transform calls f(v).
func (f TransformerFunc) Transform(v *Violation) string { return f(v) }

// The process-wide default transformer. It is created lazily on first read,
// replaced with SetDefaultTransformer and never torn down. Writers should set
// it once at startup; reads are safe from any goroutine.
var (
	defaultMu          sync.RWMutex
	defaultTransformer MessageTransformer
)

// DefaultTransformer returns the process-wide transformer, creating a
// DefaultMessages on first use.
func DefaultTransformer() MessageTransformer {
	defaultMu.RLock()
	t := defaultTransformer
	defaultMu.RUnlock()
	if t != nil {
		return t
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultTransformer == nil {
		defaultTransformer = NewDefaultMessages()
	}
	return defaultTransformer
}

// SetDefaultTransformer replaces the process-wide transformer.
// Passing nil restores the lazily created default.
func SetDefaultTransformer(t MessageTransformer) {
	defaultMu.Lock()
	defaultTransformer = t
	defaultMu.Unlock()
}

// Default templates keyed by violation type.
var defaultTemplates = map[string]string{
	"invalid": "is invalid",
}

const fallbackTemplate = "is invalid"

// DefaultMessages renders "<Label> <template>" where the template is chosen by
// violation type and the label comes from the model property or the
// humanised attribute name.
type DefaultMessages struct {
	templates map[string]string
	lang      language.Tag
}

// DefaultMessagesOption configures DefaultMessages.
type DefaultMessagesOption func(*DefaultMessages)

// WithTemplate sets the template used for a violation type.
func WithTemplate(violationType, template string) DefaultMessagesOption {
	return func(d *DefaultMessages) {
		if violationType != "" && template != "" {
			d.templates[violationType] = template
		}
	}
}

// WithLanguage sets the language used to capitalise labels.
func WithLanguage(tag language.Tag) DefaultMessagesOption {
	return func(d *DefaultMessages) {
		d.lang = tag
	}
}

// NewDefaultMessages creates a transformer with the built-in English templates.
func NewDefaultMessages(opts ...DefaultMessagesOption) *DefaultMessages {
	d := &DefaultMessages{
		templates: maps.Clone(defaultTemplates),
		lang:      language.English,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Transform renders "<label> <template>" for the violation type.
func (d *DefaultMessages) Transform(v *Violation) string {
	tmpl, ok := d.templates[v.ViolationType()]
	if !ok {
		tmpl = fallbackTemplate
	}
	label := d.Label(v)
	if label == "" {
		return tmpl
	}
	return label + " " + tmpl
}

// Label returns the display name of the violation's attribute.
func (d *DefaultMessages) Label(v *Violation) string {
	if p := v.property(); p != nil && p.Label != "" {
		return p.Label
	}
	return d.humanize(v.AttributeName())
}

// humanize turns "email_address" into "Email address".
func (d *DefaultMessages) humanize(attribute string) string {
	name := strings.TrimSuffix(attribute, "_id")
	name = strings.TrimSpace(strings.NewReplacer("_", " ", "-", " ").Replace(name))
	if name == "" {
		return ""
	}
	first, rest, _ := strings.Cut(name, " ")
	// A Caser is stateful and cannot be shared between goroutines.
	first = cases.Title(d.lang, cases.NoLower).String(strings.ToLower(first))
	if rest == "" {
		return first
	}
	return first + " " + strings.ToLower(rest)
}
