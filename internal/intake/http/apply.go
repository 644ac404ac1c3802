package http

import (
	"net/http"

	"github.com/jobdesk/intake/internal/intake/service"
	"github.com/jobdesk/intake/pkg/forms"
)

type ApplyHandler struct {
	*Router
}

var applyRules = []forms.Rule{
	forms.Required("name", "name must not be empty"),
	forms.Required("email", "email must not be empty"),
	forms.Email("email", "email must be an email"),
	forms.Required("username", "username must not be empty"),
	forms.MinLength("password", 8, "password must be at least 8 characters"),
}

var applySanitizers = []forms.Sanitizer{
	forms.StripTags("name"),
	forms.Trim("name"),
	forms.Escape("name"),

	forms.StripTags("username"),
	forms.Trim("username"),
	forms.Escape("username"),

	forms.StripTags("email"),
	forms.NormalizeEmail("email"),
}

func (h *ApplyHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "apply", map[string]any{
		"Title":  "Apply",
		"Values": forms.Values{},
	})
}

func (h *ApplyHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid form submission")
		return
	}
	values := forms.FromForm(r.PostForm)

	// Validation sees the raw input so error messages echo what was typed.
	errs, err := forms.Validate(r.Context(), values, applyRules)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if len(errs) > 0 {
		h.render(w, r, http.StatusOK, "apply", map[string]any{
			"Title":  "Apply - errors",
			"Values": values,
			"Errors": errs,
		})
		return
	}

	forms.Sanitize(values, applySanitizers)

	_, err = h.ApplicationService.Submit(r.Context(), service.Submission{
		Username: values.Get("username"),
		Name:     values.Get("name"),
		Email:    values.Get("email"),
		Password: values.Get("password"),
	})
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/thanks", http.StatusFound)
}

func (h *ApplyHandler) ShowThanks(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "thanks", map[string]any{
		"Title":      "Thank you",
		"ThanksText": "Thank you for your application. We will be in touch soon.",
	})
}
