package http

import (
	"errors"
	"net/http"

	"github.com/jobdesk/intake/internal/intake/store"

	"github.com/go-chi/chi/v5"
)

type ApplicationsHandler struct {
	*Router
}

// List shows every submitted application. Process/delete actions are only
// rendered for admins; the POST routes enforce that server-side as well.
func (h *ApplicationsHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.ApplicationService.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "applications", map[string]any{
		"Title":        "Applications",
		"Applications": apps,
	})
}

func (h *ApplicationsHandler) Process(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.ApplicationService.MarkProcessed(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		h.renderError(w, r, http.StatusNotFound, "application not found")
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/applications", http.StatusFound)
}

func (h *ApplicationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.ApplicationService.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		h.renderError(w, r, http.StatusNotFound, "application not found")
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/applications", http.StatusFound)
}
