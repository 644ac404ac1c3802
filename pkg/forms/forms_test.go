package forms

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromForm(t *testing.T) {
	v := FromForm(url.Values{
		"name":  {"Anna"},
		"admin": {"alice", "bob"},
	})

	require.Equal(t, "Anna", v.Get("name"))
	require.Equal(t, "alice", v.Get("admin"), "only the first value is kept")
	require.Equal(t, "", v.Get("missing"), "missing fields read as empty")
}

func TestRequired(t *testing.T) {
	rules := []Rule{Required("name", "name must not be empty")}

	errs, err := Validate(context.Background(), Values{"name": ""}, rules)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	require.Equal(t, "name", errs[0].Field)
	require.Equal(t, "name must not be empty", errs[0].Message)

	errs, err = Validate(context.Background(), Values{"name": "Anna"}, rules)
	require.NoError(t, err)
	require.Empty(t, errs)
}

func TestEmail(t *testing.T) {
	rules := []Rule{Email("email", "email must be an email")}

	for _, ok := range []string{"a@b.is", "anna.jons@example.com"} {
		errs, err := Validate(context.Background(), Values{"email": ok}, rules)
		require.NoError(t, err)
		require.Empty(t, errs, "%q should pass", ok)
	}

	for _, bad := range []string{"not-an-email", "a@", "@b.is", "a b@c.is"} {
		errs, err := Validate(context.Background(), Values{"email": bad}, rules)
		require.NoError(t, err)
		require.Len(t, errs, 1, "%q should fail", bad)
	}

	// emptiness is Required's concern
	errs, err := Validate(context.Background(), Values{}, rules)
	require.NoError(t, err)
	require.Empty(t, errs)
}

func TestMinLengthAndMatch(t *testing.T) {
	rules := []Rule{
		MinLength("password1", 8, "password must be at least 8 characters"),
		MinLength("password2", 8, "password must be at least 8 characters"),
		Match("password1", "password2", "passwords must match"),
	}

	errs, err := Validate(context.Background(), Values{
		"password1": "short",
		"password2": "short",
	}, rules)
	require.NoError(t, err)
	require.Len(t, errs, 2)

	errs, err = Validate(context.Background(), Values{
		"password1": "longenough1",
		"password2": "longenough2",
	}, rules)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	require.Equal(t, "password1", errs[0].Field)
	require.Equal(t, "passwords must match", errs[0].Message)
}

func TestUnique(t *testing.T) {
	taken := func(_ context.Context, value string) (bool, error) {
		return value == "anna", nil
	}
	rules := []Rule{Unique("username", "username already exists", taken)}

	errs, err := Validate(context.Background(), Values{"username": "anna"}, rules)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	require.Equal(t, "username", errs[0].Field)

	errs, err = Validate(context.Background(), Values{"username": "bogi"}, rules)
	require.NoError(t, err)
	require.Empty(t, errs)
}

func TestUnique_LookupFailureAbortsValidation(t *testing.T) {
	lookupErr := errors.New("connection refused")
	rules := []Rule{
		Unique("username", "username already exists", func(context.Context, string) (bool, error) {
			return false, lookupErr
		}),
	}

	_, err := Validate(context.Background(), Values{"username": "anna"}, rules)
	require.ErrorIs(t, err, lookupErr)
}

func TestValidate_CollectsErrorsInRuleOrder(t *testing.T) {
	rules := []Rule{
		Required("name", "name must not be empty"),
		Required("email", "email must not be empty"),
		Required("username", "username must not be empty"),
	}

	errs, err := Validate(context.Background(), Values{"email": "a@b.is"}, rules)
	require.NoError(t, err)
	require.Len(t, errs, 2)
	require.Equal(t, "name", errs[0].Field)
	require.Equal(t, "username", errs[1].Field)
}

func TestSanitize_StripsScripts(t *testing.T) {
	v := Values{"name": `<script>alert(1)</script>Anna`}

	Sanitize(v, []Sanitizer{StripTags("name"), Trim("name"), Escape("name")})

	require.NotContains(t, v.Get("name"), "<script>")
	require.NotContains(t, v.Get("name"), "alert(1)")
	require.Equal(t, "Anna", v.Get("name"))
}

func TestSanitize_TrimEscape(t *testing.T) {
	v := Values{"username": "  anna  "}
	Sanitize(v, []Sanitizer{StripTags("username"), Trim("username"), Escape("username")})
	require.Equal(t, "anna", v.Get("username"))

	v = Values{"username": `a & "b"`}
	Sanitize(v, []Sanitizer{Trim("username"), Escape("username")})
	require.Equal(t, "a &amp; &#34;b&#34;", v.Get("username"))
}

func TestSanitize_NormalizeEmail(t *testing.T) {
	v := Values{"email": "  Anna@Example.COM "}

	Sanitize(v, []Sanitizer{StripTags("email"), NormalizeEmail("email")})

	require.Equal(t, "anna@example.com", v.Get("email"))
}
