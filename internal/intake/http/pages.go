package http

import "net/http"

// handleIndex sends authenticated sessions to the application list and
// everyone else to the login form.
func (rt *Router) handleIndex(w http.ResponseWriter, r *http.Request) {
	if _, ok := rt.currentUser(r); ok {
		http.Redirect(w, r, "/applications", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (rt *Router) handleNotFound(w http.ResponseWriter, r *http.Request) {
	rt.renderError(w, r, http.StatusNotFound, "page not found")
}
