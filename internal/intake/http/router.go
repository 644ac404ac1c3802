package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jobdesk/intake/internal/intake/domain"
	"github.com/jobdesk/intake/internal/intake/service"
	"github.com/jobdesk/intake/internal/intake/sessions"
	"github.com/jobdesk/intake/pkg/httpx"
	"github.com/jobdesk/intake/pkg/slogx"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	mux    chi.Router
	logger *slog.Logger

	Sessions           *sessions.Manager
	AuthService        *service.AuthService
	UserService        *service.UserService
	ApplicationService *service.ApplicationService
}

func NewRouter(sm *sessions.Manager, logger *slog.Logger) *Router {
	r := &Router{
		mux:      chi.NewRouter(),
		logger:   logger,
		Sessions: sm,
	}

	r.mux.Use(middleware.RealIP)
	r.mux.Use(middleware.Recoverer)
	r.mux.Use(middleware.Timeout(30 * time.Second))
	r.mux.Use(middleware.RedirectSlashes)
	r.mux.Use(slogx.HTTPMiddleware(logger))

	return r
}

// ServeHTTP implements http.Handler for Router.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mux.ServeHTTP(w, r)
}

func (rt *Router) ApplyRoutes() {
	auth := &AuthHandler{Router: rt}
	apply := &ApplyHandler{Router: rt}
	register := &RegisterHandler{Router: rt}
	applications := &ApplicationsHandler{Router: rt}
	admin := &AdminHandler{Router: rt}

	rt.mux.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir("web/static"))))

	rt.mux.Get("/", rt.handleIndex)

	rt.mux.Get("/login", auth.ShowLogin)
	rt.mux.Post("/login", auth.HandleLogin)
	rt.mux.Get("/logout", auth.HandleLogout)

	rt.mux.Get("/apply", apply.ShowForm)
	rt.mux.Post("/apply", apply.HandleSubmit)
	rt.mux.Get("/thanks", apply.ShowThanks)

	rt.mux.Get("/register", register.ShowForm)
	rt.mux.Post("/register", register.HandleSubmit)
	rt.mux.Get("/register/thanks", register.ShowThanks)

	rt.mux.Group(func(g chi.Router) {
		g.Use(rt.RequireLogin)

		g.Get("/applications", applications.List)
		g.Get("/admin", admin.Show)
	})

	rt.mux.Group(func(g chi.Router) {
		g.Use(rt.RequireAdmin)

		g.Post("/applications/{id}/process", applications.Process)
		g.Post("/applications/{id}/delete", applications.Delete)
		g.Post("/admin", admin.Assign)
	})

	rt.mux.NotFound(rt.handleNotFound)
}

// currentUser resolves the session to a live user row. A session pointing at
// a deleted user reads as anonymous.
func (rt *Router) currentUser(r *http.Request) (domain.User, bool) {
	userID, ok := rt.Sessions.UserID(r)
	if !ok {
		return domain.User{}, false
	}

	user, err := rt.UserService.GetUserByID(r.Context(), userID)
	if err != nil {
		return domain.User{}, false
	}
	return user, true
}

// requireUser is the one role gate: it resolves the session and applies the
// predicate before letting the request through.
func (rt *Router) requireUser(allowed func(domain.User) bool) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := rt.currentUser(r)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			if !allowed(user) {
				rt.renderError(w, r, http.StatusForbidden, "admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireLogin gates a route behind an authenticated session.
func (rt *Router) RequireLogin(next http.Handler) http.Handler {
	return rt.requireUser(func(domain.User) bool { return true })(next)
}

// RequireAdmin gates a route behind an authenticated admin session.
func (rt *Router) RequireAdmin(next http.Handler) http.Handler {
	return rt.requireUser(func(u domain.User) bool { return u.Admin })(next)
}
