package messages

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/validations/pkg/cache"
	"github.com/dmitrymomot/validations/pkg/logger"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

const defaultCacheSize = 512

// Catalog holds message templates per locale. Templates live in nested maps
// addressed with dot-separated keys and use %{name} placeholders.
// A Catalog is read-only after NewCatalog and safe for concurrent use.
type Catalog struct {
	messages      map[string]map[string]any
	defaultLocale string
	logMissing    bool
	logger        *slog.Logger
	lookups       *cache.LRU[string, lookupResult]
}

type lookupResult struct {
	template string
	found    bool
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLocale sets the locale used for unknown locales.
func WithDefaultLocale(locale string) Option {
	return func(c *Catalog) {
		if locale != "" {
			c.defaultLocale = normalizeLocale(locale)
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMissingLogging logs lookups of keys that do not exist.
func WithMissingLogging(enabled bool) Option {
	return func(c *Catalog) { c.logMissing = enabled }
}

// WithCacheSize sets how many resolved lookups are memoised.
func WithCacheSize(n int) Option {
	return func(c *Catalog) {
		if n > 0 {
			c.lookups = cache.NewLRU[string, lookupResult](n)
		}
	}
}

// NewCatalog loads messages through adapter.
func NewCatalog(ctx context.Context, adapter Adapter, opts ...Option) (*Catalog, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}
	c := &Catalog{
		defaultLocale: DefaultLocale,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.lookups == nil {
		c.lookups = cache.NewLRU[string, lookupResult](defaultCacheSize)
	}

	raw, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.messages = make(map[string]map[string]any, len(raw))
	for locale, msgs := range raw {
		if locale == "" {
			return nil, ErrEmptyLocale
		}
		if msgs == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilLocaleMessages, locale)
		}
		c.messages[normalizeLocale(locale)] = msgs
	}

	c.logger.InfoContext(ctx, "message catalog loaded",
		logger.Component("messages"),
		slog.Any("locales", c.Locales()),
	)
	return c, nil
}

// Locales returns the loaded locales, sorted.
func (c *Catalog) Locales() []string {
	if c == nil {
		return nil
	}
	locales := make([]string, 0, len(c.messages))
	for l := range c.messages {
		locales = append(locales, l)
	}
	slices.Sort(locales)
	return locales
}

// DefaultLocale returns the fallback locale. A nil catalog reports DefaultLocale.
func (c *Catalog) DefaultLocale() string {
	if c == nil {
		return DefaultLocale
	}
	return c.defaultLocale
}

// Has reports whether key resolves to a template in locale or its fallbacks.
func (c *Catalog) Has(locale, key string) bool {
	_, ok := c.Lookup(locale, key)
	return ok
}

// Lookup returns the raw template for key. The locale falls back to its base
// language ("pt-BR" -> "pt") and then to the default locale.
// A nil catalog resolves nothing.
func (c *Catalog) Lookup(locale, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	res := c.lookups.GetOrLoad(locale+"\x00"+key, func() lookupResult {
		for _, l := range c.candidates(locale) {
			if tmpl, ok := c.resolve(l, key); ok {
				return lookupResult{template: tmpl, found: true}
			}
		}
		return lookupResult{}
	})
	if !res.found && c.logMissing {
		c.logger.Warn("message not found", logger.Locale(locale), slog.String("key", key))
	}
	return res.template, res.found
}

// Format looks up key and substitutes %{name} placeholders from params.
// Unknown placeholders are left as they are.
func (c *Catalog) Format(locale, key string, params map[string]string) (string, bool) {
	tmpl, ok := c.Lookup(locale, key)
	if !ok {
		return "", false
	}
	return Interpolate(tmpl, params), true
}

// FormatContext is Format with the locale taken from ctx.
func (c *Catalog) FormatContext(ctx context.Context, key string, params map[string]string) (string, bool) {
	return c.Format(LocaleFromContext(ctx, c.DefaultLocale()), key, params)
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// Interpolate replaces %{name} placeholders with values from params.
func Interpolate(tmpl string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}

func (c *Catalog) candidates(locale string) []string {
	var out []string
	add := func(l string) {
		if l != "" && !slices.Contains(out, l) {
			out = append(out, l)
		}
	}
	norm := normalizeLocale(locale)
	add(norm)
	if tag, err := language.Parse(norm); err == nil {
		if base, conf := tag.Base(); conf != language.No {
			add(base.String())
		}
	}
	add(c.defaultLocale)
	return out
}

func (c *Catalog) resolve(locale, key string) (string, bool) {
	current, ok := c.messages[locale]
	if !ok {
		return "", false
	}
	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		next, ok := asStringMap(val)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			if ks, ok := k.(string); ok {
				out[ks] = v
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// normalizeLocale canonicalises tags such as "en_us" to "en-US".
// Unparseable input is lowercased and returned as is.
func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if locale == "" {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return strings.ToLower(locale)
	}
	return tag.String()
}
