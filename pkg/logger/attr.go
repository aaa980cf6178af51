package logger

import "log/slog"

// Error records err under "error". A nil err yields an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// PassID records a validation pass identifier under "pass_id".
func PassID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("pass_id", id)
}

// Attribute records the validated attribute under "attribute".
func Attribute(name string) slog.Attr {
	return slog.String("attribute", name)
}

// Rule records the rule name under "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// ValidationContext records the validation context under "context".
func ValidationContext(name string) slog.Attr {
	return slog.String("context", name)
}

// ViolationCount records the number of violations under "violations".
func ViolationCount(n int) slog.Attr {
	return slog.Int("violations", n)
}

// Locale records a locale under "locale".
func Locale(lang string) slog.Attr {
	if lang == "" {
		return slog.Attr{}
	}
	return slog.String("locale", lang)
}
