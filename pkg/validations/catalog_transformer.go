package validations

import (
	"fmt"

	"github.com/dmitrymomot/validations/pkg/messages"
)

// CatalogKeyPrefix prefixes the violation type to form the catalog key.
const CatalogKeyPrefix = "validations."

// CatalogTransformer renders violations from a message catalog. The key is
// CatalogKeyPrefix plus the violation type; %{attribute} holds the label and
// every violation-data entry is available by name. Violations whose key is
// missing are passed to the fallback transformer.
type CatalogTransformer struct {
	catalog  *messages.Catalog
	locale   string
	labels   *DefaultMessages
	fallback MessageTransformer
}

// NewCatalogTransformer renders in locale. A nil fallback uses a DefaultMessages.
// An empty locale uses the catalog default. With a nil catalog every violation
// goes to the fallback.
func NewCatalogTransformer(catalog *messages.Catalog, locale string, fallback MessageTransformer) *CatalogTransformer {
	labels := NewDefaultMessages()
	if fallback == nil {
		fallback = labels
	}
	if locale == "" {
		locale = catalog.DefaultLocale()
	}
	return &CatalogTransformer{
		catalog:  catalog,
		locale:   locale,
		labels:   labels,
		fallback: fallback,
	}
}

// WithLocale returns a copy rendering in another locale.
func (t *CatalogTransformer) WithLocale(locale string) *CatalogTransformer {
	c := *t
	c.locale = locale
	return &c
}

// Locale returns the locale the transformer renders in.
func (t *CatalogTransformer) Locale() string { return t.locale }

// Transform renders v from the catalog, or through the fallback when the key is missing.
func (t *CatalogTransformer) Transform(v *Violation) string {
	kind := v.ViolationType()
	if kind == "" {
		kind = "invalid"
	}
	text, ok := t.catalog.Format(t.locale, CatalogKeyPrefix+kind, t.params(v))
	if !ok {
		return t.fallback.Transform(v)
	}
	return text
}

func (t *CatalogTransformer) params(v *Violation) map[string]string {
	data := v.ViolationData()
	params := make(map[string]string, len(data)+1)
	for k, val := range data {
		params[k] = fmt.Sprint(val)
	}
	params["attribute"] = t.labels.Label(v)
	return params
}
