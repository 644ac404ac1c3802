package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/jobdesk/intake/pkg/httpx"
	"github.com/jobdesk/intake/pkg/slogx"
)

//go:embed templates/*.html
var templateFS embed.FS

// Each page gets its own template set layered over the base layout.
var templates = func() map[string]*template.Template {
	pages := []string{
		"login", "apply", "register", "thanks",
		"applications", "admin", "error",
	}

	sets := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		sets[page] = template.Must(template.ParseFS(templateFS,
			"templates/base.html", "templates/"+page+".html"))
	}
	return sets
}()

// render writes a page wrapped in the base layout. It injects the login
// state so the navigation can adapt without every handler passing it.
func (rt *Router) render(w http.ResponseWriter, r *http.Request, status int, page string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}

	user, loggedIn := rt.currentUser(r)
	data["LoggedIn"] = loggedIn
	data["IsAdmin"] = loggedIn && user.Admin
	if loggedIn {
		data["User"] = user
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := templates[page].ExecuteTemplate(w, "base", data); err != nil {
		slogx.FromContext(r.Context()).Error("template render failed",
			"page", page, "err", err)
	}
}

// renderError shows the generic error page.
func (rt *Router) renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	rt.render(w, r, status, "error", map[string]any{
		"Title":   "Error",
		"Message": msg,
	})
}

// serverError logs the failure and shows the 500 page. Nothing is retried.
func (rt *Router) serverError(w http.ResponseWriter, r *http.Request, err error) {
	slogx.FromContext(r.Context()).Error("request failed", "err", err)
	rt.renderError(w, r, http.StatusInternalServerError, "something went wrong")
}
