package forms

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// stripper removes every HTML element including script bodies, leaving only
// text content.
var stripper = bluemonday.StrictPolicy()

// Sanitizer mutates one field of a form in place.
type Sanitizer func(v Values)

// Sanitize applies sanitizers in order. Call only after Validate has passed,
// the values are destroyed for re-rendering purposes.
func Sanitize(v Values, sanitizers []Sanitizer) {
	for _, s := range sanitizers {
		s(v)
	}
}

// StripTags removes HTML markup (and script/style bodies) from the field.
func StripTags(field string) Sanitizer {
	return func(v Values) {
		if val, ok := v[field]; ok && val != "" {
			v[field] = stripper.Sanitize(val)
		}
	}
}

// Trim removes surrounding whitespace from the field.
func Trim(field string) Sanitizer {
	return func(v Values) {
		if val, ok := v[field]; ok {
			v[field] = strings.TrimSpace(val)
		}
	}
}

// Escape HTML-escapes the field for safe embedding in markup.
func Escape(field string) Sanitizer {
	return func(v Values) {
		if val, ok := v[field]; ok {
			v[field] = html.EscapeString(val)
		}
	}
}

// NormalizeEmail trims and lowercases the field.
func NormalizeEmail(field string) Sanitizer {
	return func(v Values) {
		if val, ok := v[field]; ok {
			v[field] = strings.ToLower(strings.TrimSpace(val))
		}
	}
}
