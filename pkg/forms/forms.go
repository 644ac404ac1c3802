// Package forms implements the validation and sanitization pipeline for
// submitted HTML forms. Validation runs first against the raw values so error
// messages reflect exactly what the user typed; sanitization mutates the
// values in place and must only be applied once validation has passed.
package forms

import (
	"context"
	"fmt"
	"net/mail"
	"net/url"
	"unicode/utf8"
)

// Values holds submitted field values by name. Missing fields read as "".
type Values map[string]string

// Get returns the raw value for field, or "" when absent.
func (v Values) Get(field string) string { return v[field] }

// FromForm copies the first value of every field in a parsed form body.
func FromForm(form url.Values) Values {
	v := make(Values, len(form))
	for field := range form {
		v[field] = form.Get(field)
	}
	return v
}

// Error is a single validation failure tied to the offending field.
type Error struct {
	Field   string
	Message string
}

func (e Error) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Message) }

// Rule checks one aspect of a form. It returns a user-facing *Error when the
// check fails, or a non-nil error when the check itself could not run
// (e.g. a storage lookup broke).
type Rule func(ctx context.Context, v Values) (*Error, error)

// Validate runs rules in order and collects every failure. The returned error
// is infrastructure failure only, never a validation result.
func Validate(ctx context.Context, v Values, rules []Rule) ([]Error, error) {
	var errs []Error
	for _, rule := range rules {
		fieldErr, err := rule(ctx, v)
		if err != nil {
			return nil, err
		}
		if fieldErr != nil {
			errs = append(errs, *fieldErr)
		}
	}
	return errs, nil
}

// Required fails when the field is empty.
func Required(field, msg string) Rule {
	return func(_ context.Context, v Values) (*Error, error) {
		if v.Get(field) == "" {
			return &Error{Field: field, Message: msg}, nil
		}
		return nil, nil
	}
}

// Email fails when the field is non-empty but not shaped like an email
// address. Emptiness is left to Required so each failure gets its own
// message, matching how the checks are declared separately.
func Email(field, msg string) Rule {
	return func(_ context.Context, v Values) (*Error, error) {
		val := v.Get(field)
		if val == "" {
			return nil, nil
		}
		addr, err := mail.ParseAddress(val)
		if err != nil || addr.Address != val {
			return &Error{Field: field, Message: msg}, nil
		}
		return nil, nil
	}
}

// MinLength fails when the field holds fewer than min characters.
func MinLength(field string, min int, msg string) Rule {
	return func(_ context.Context, v Values) (*Error, error) {
		if utf8.RuneCountInString(v.Get(field)) < min {
			return &Error{Field: field, Message: msg}, nil
		}
		return nil, nil
	}
}

// Match fails when the two fields hold different values. The failure is
// reported against the first field.
func Match(field, other, msg string) Rule {
	return func(_ context.Context, v Values) (*Error, error) {
		if v.Get(field) != v.Get(other) {
			return &Error{Field: field, Message: msg}, nil
		}
		return nil, nil
	}
}

// Unique fails when taken reports the field's value as already in use. A
// lookup error aborts validation entirely.
func Unique(field, msg string, taken func(ctx context.Context, value string) (bool, error)) Rule {
	return func(ctx context.Context, v Values) (*Error, error) {
		exists, err := taken(ctx, v.Get(field))
		if err != nil {
			return nil, err
		}
		if exists {
			return &Error{Field: field, Message: msg}, nil
		}
		return nil, nil
	}
}
