package http

import (
	"errors"
	"net/http"

	"github.com/jobdesk/intake/internal/intake/service"
)

type AuthHandler struct {
	*Router
}

const loginFailedMessage = "username or password incorrect"

func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login", map[string]any{
		"Title":    "Log in",
		"Messages": h.Sessions.Flashes(w, r),
	})
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid form submission")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.AuthService.Authenticate(r.Context(), username, password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		// One generic message for both unknown username and wrong password.
		_ = h.Sessions.AddFlash(w, r, loginFailedMessage)
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	if err := h.Sessions.SetUserID(w, r, user.ID); err != nil {
		h.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/applications", http.StatusFound)
}

func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Clear(w, r); err != nil {
		h.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
