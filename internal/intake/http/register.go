package http

import (
	"errors"
	"net/http"

	"github.com/jobdesk/intake/internal/intake/service"
	"github.com/jobdesk/intake/internal/intake/store"
	"github.com/jobdesk/intake/pkg/forms"
)

type RegisterHandler struct {
	*Router
}

// rules builds the registration checks. Uniqueness consults the user store,
// so the rules are built per handler rather than declared package-level.
func (h *RegisterHandler) rules() []forms.Rule {
	return []forms.Rule{
		forms.Required("name", "name must not be empty"),
		forms.Required("email", "email must not be empty"),
		forms.Email("email", "email must be an email"),
		forms.Required("username", "username must not be empty"),
		forms.Unique("username", "username already exists", h.UserService.UsernameTaken),
		forms.MinLength("password1", 8, "password must be at least 8 characters"),
		forms.MinLength("password2", 8, "password must be at least 8 characters"),
		forms.Match("password1", "password2", "passwords must match"),
	}
}

var registerSanitizers = []forms.Sanitizer{
	forms.StripTags("name"),
	forms.Trim("name"),
	forms.Escape("name"),

	forms.StripTags("username"),
	forms.Trim("username"),
	forms.Escape("username"),

	forms.StripTags("email"),
	forms.NormalizeEmail("email"),
}

func (h *RegisterHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "register", map[string]any{
		"Title":  "Register",
		"Values": forms.Values{},
	})
}

func (h *RegisterHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid form submission")
		return
	}
	values := forms.FromForm(r.PostForm)

	// Validation sees the raw input so error messages echo what was typed.
	// No password hash is computed unless every check passes.
	errs, err := forms.Validate(r.Context(), values, h.rules())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if len(errs) > 0 {
		h.render(w, r, http.StatusOK, "register", map[string]any{
			"Title":  "Register - errors",
			"Values": values,
			"Errors": errs,
		})
		return
	}

	forms.Sanitize(values, registerSanitizers)

	_, err = h.UserService.Register(r.Context(), service.Registration{
		Username: values.Get("username"),
		Name:     values.Get("name"),
		Email:    values.Get("email"),
		Password: values.Get("password1"),
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		// Username taken between the pre-check and the insert.
		h.render(w, r, http.StatusOK, "register", map[string]any{
			"Title":  "Register - errors",
			"Values": values,
			"Errors": []forms.Error{{Field: "username", Message: "username already exists"}},
		})
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/register/thanks", http.StatusFound)
}

func (h *RegisterHandler) ShowThanks(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "thanks", map[string]any{
		"Title":      "Thank you",
		"ThanksText": "Registration received. You can now log in.",
	})
}
