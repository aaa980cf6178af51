package messages

import "context"

type localeKey struct{}

// WithLocale stores the rendering locale in ctx.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// LocaleFromContext returns the locale stored in ctx, or fallback.
func LocaleFromContext(ctx context.Context, fallback string) string {
	if ctx == nil {
		return fallback
	}
	if l, ok := ctx.Value(localeKey{}).(string); ok && l != "" {
		return l
	}
	return fallback
}
