package http

import (
	"errors"
	"net/http"

	"github.com/jobdesk/intake/internal/intake/store"
)

type AdminHandler struct {
	*Router
}

// Show lists all users and applications with the admin-assignment form.
// Viewing requires login; submitting the form requires admin.
func (h *AdminHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, http.StatusOK, nil)
}

func (h *AdminHandler) show(w http.ResponseWriter, r *http.Request, status int, messages []string) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	apps, err := h.ApplicationService.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, status, "admin", map[string]any{
		"Title":        "User list",
		"Users":        users,
		"Applications": apps,
		"Messages":     messages,
	})
}

// Assign replaces the whole admin set with the checked usernames. The
// service runs revoke-plus-grants in one transaction, so a failed grant
// leaves the previous admin set untouched.
func (h *AdminHandler) Assign(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid form submission")
		return
	}
	usernames := r.PostForm["admin"]

	err := h.UserService.ReplaceAdmins(r.Context(), usernames)
	if errors.Is(err, store.ErrNotFound) {
		h.show(w, r, http.StatusUnprocessableEntity,
			[]string{"unknown username in admin list; no changes applied"})
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.show(w, r, http.StatusOK, nil)
}
