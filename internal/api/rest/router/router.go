// Package router assembles the HTTP mux: handlers, middleware and the
// operational endpoints.
package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shooping/list-server/internal/api/rest/handler"
	"github.com/shooping/list-server/internal/api/rest/middleware"
	"github.com/shooping/list-server/internal/logger"
	"github.com/shooping/list-server/internal/model"
)

// Router wires handlers and middleware into one http.Handler.
type Router struct {
	auth           *handler.Auth
	lists          *handler.ShoppingList
	tokenService   middleware.TokenService
	contextManager model.ContextManager
	registry       *prometheus.Registry
	logger         *logger.Logger
}

// New creates a Router instance.
func New(
	auth *handler.Auth,
	lists *handler.ShoppingList,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	registry *prometheus.Registry,
	logger *logger.Logger,
) *Router {
	return &Router{
		auth:           auth,
		lists:          lists,
		tokenService:   tokenService,
		contextManager: contextManager,
		registry:       registry,
		logger:         logger,
	}
}

// Register builds the mux. Auth endpoints are public; everything under
// /api/v1 besides them requires a valid access token.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger.With("component", "http"))
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/auth/register", r.auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", r.auth.Login)
	mux.HandleFunc("POST /api/v1/auth/google", r.auth.GoogleLogin)
	mux.HandleFunc("POST /api/v1/auth/refresh", r.auth.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", r.auth.Logout)

	protected := http.NewServeMux()
	protected.HandleFunc("GET /api/v1/users/me", r.auth.Me)
	protected.HandleFunc("GET /api/v1/admin/users", r.auth.ListUsers)

	protected.HandleFunc("POST /api/v1/lists", r.lists.Create)
	protected.HandleFunc("GET /api/v1/lists", r.lists.List)
	protected.HandleFunc("GET /api/v1/lists/{listID}", r.lists.Get)
	protected.HandleFunc("PATCH /api/v1/lists/{listID}", r.lists.Update)
	protected.HandleFunc("DELETE /api/v1/lists/{listID}", r.lists.Delete)
	protected.HandleFunc("POST /api/v1/lists/{listID}/items", r.lists.AddItem)
	protected.HandleFunc("DELETE /api/v1/lists/{listID}/items/purchased", r.lists.ClearPurchased)
	protected.HandleFunc("PATCH /api/v1/lists/{listID}/items/{itemID}", r.lists.UpdateItem)
	protected.HandleFunc("DELETE /api/v1/lists/{listID}/items/{itemID}", r.lists.RemoveItem)
	protected.HandleFunc("POST /api/v1/lists/{listID}/items/{itemID}/purchase", r.lists.Purchase)
	protected.HandleFunc("DELETE /api/v1/lists/{listID}/items/{itemID}/purchase", r.lists.Unpurchase)

	mux.Handle("/api/v1/", authenticate.Handle(protected))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))

	return logging.Handle(mux)
}
