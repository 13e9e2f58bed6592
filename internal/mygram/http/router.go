package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mygramapp/mygram/internal/mygram/service"
	"github.com/mygramapp/mygram/internal/mygram/store"
	"github.com/mygramapp/mygram/pkg/httpx"
	"github.com/mygramapp/mygram/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	cookieSecure bool

	store          store.Store
	Exchanger      *service.GoogleExchanger
	SessionService *service.SessionService
	Guard          *service.AuthGuard
	Registry       *service.RevocationRegistry
	UserService    *service.UserService
	PostService    *service.PostService
	CommentService *service.CommentService
}

func NewRouter(
	buildVersion string,
	cookieSecure bool,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		cookieSecure: cookieSecure,
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerPosts()
	r.registerComments()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /google_login - strict rate limit by IP (authentication attempts)
	loginHandler := &GoogleLoginHandler{
		Exchanger:    r.Exchanger,
		Sessions:     r.SessionService,
		CookieSecure: r.cookieSecure,
	}
	r.Mux.Handle("POST /google_login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	logoutHandler := &LogoutHandler{
		Registry:     r.Registry,
		CookieSecure: r.cookieSecure,
	}
	r.Mux.Handle("POST /logout",
		httpx.Chain(logoutHandler,
			RequireSession(r.Guard),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /protected",
		httpx.Chain(ProtectedHandler(),
			RequireSession(r.Guard),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /me",
		httpx.Chain(&MeHandler{Users: r.UserService},
			RequireSession(r.Guard),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{Users: r.UserService}

	r.Mux.Handle("GET /users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// Registration is open; strict limit keeps enumeration and spam down
	r.Mux.Handle("POST /users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPosts() {
	h := &PostsHandler{Posts: r.PostService, Users: r.UserService}

	r.Mux.Handle("GET /posts",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			RequireSession(r.Guard),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /posts",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			RequireSession(r.Guard),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /posts/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /posts/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			RequireSession(r.Guard),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /posts/{id}/likes",
		httpx.Chain(http.HandlerFunc(h.HandleLike),
			RequireSession(r.Guard),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /posts/{id}/unlike",
		httpx.Chain(http.HandlerFunc(h.HandleUnlike),
			RequireSession(r.Guard),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerComments() {
	h := &CommentsHandler{
		Comments: r.CommentService,
		Posts:    r.PostService,
		Users:    r.UserService,
	}

	r.Mux.Handle("GET /posts/{id}/comments",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /posts/{id}/comments",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			RequireSession(r.Guard),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /comments/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			RequireSession(r.Guard),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
