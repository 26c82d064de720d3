package rest

import (
	"net/http"

	"github.com/rwalsh/lattice-backend/internal/transport/middleware"
)

// Handlers bundles all REST handlers for router construction.
type Handlers struct {
	Health *HealthHandler
	Auth   *AuthHandler
	Node   *NodeHandler
	Tag    *TagHandler
	Zone   *ZoneHandler
	Module *ModuleHandler
}

// NewRouter builds the HTTP route table. Routes under /api/v1 other than
// the auth endpoints require an authenticated user; health probes and the
// auth endpoints are public.
func NewRouter(h Handlers) http.Handler {
	mux := http.NewServeMux()

	// Health probes.
	mux.HandleFunc("GET /healthz", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)
	mux.HandleFunc("GET /api/v1/health", h.Health.Health)

	// Auth. Register/login/refresh/logout work with tokens in the body,
	// not the Authorization header.
	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", h.Auth.Logout)

	protected := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireAuth(fn))
	}

	protected("POST /api/v1/auth/logout/all", h.Auth.LogoutAll)
	protected("GET /api/v1/auth/me", h.Auth.Me)

	// Nodes.
	protected("POST /api/v1/nodes", h.Node.Create)
	protected("GET /api/v1/nodes", h.Node.List)
	protected("GET /api/v1/nodes/search", h.Node.Search)
	protected("GET /api/v1/nodes/{id}", h.Node.Get)
	protected("PATCH /api/v1/nodes/{id}", h.Node.Update)
	protected("DELETE /api/v1/nodes/{id}", h.Node.Delete)
	protected("POST /api/v1/nodes/{id}/trash", h.Node.SoftDelete)
	protected("POST /api/v1/nodes/{id}/restore", h.Node.Restore)
	protected("GET /api/v1/nodes/{id}/children", h.Node.Children)
	protected("GET /api/v1/nodes/{id}/descendants", h.Node.Descendants)
	protected("GET /api/v1/nodes/{id}/references", h.Node.References)
	protected("POST /api/v1/nodes/{id}/move", h.Node.Move)
	protected("POST /api/v1/nodes/{id}/reorder", h.Node.Reorder)
	protected("PUT /api/v1/nodes/{id}/tags", h.Node.SetTags)
	protected("PUT /api/v1/nodes/{id}/tags/{tagId}", h.Tag.Attach)
	protected("DELETE /api/v1/nodes/{id}/tags/{tagId}", h.Tag.Detach)

	// Tags.
	protected("POST /api/v1/tags", h.Tag.Create)
	protected("GET /api/v1/tags", h.Tag.List)
	protected("POST /api/v1/tags/ensure", h.Tag.Ensure)
	protected("GET /api/v1/tags/{id}", h.Tag.Get)
	protected("PATCH /api/v1/tags/{id}", h.Tag.Update)
	protected("DELETE /api/v1/tags/{id}", h.Tag.Delete)

	// Zones.
	protected("POST /api/v1/zones", h.Zone.Create)
	protected("GET /api/v1/zones", h.Zone.List)
	protected("POST /api/v1/zones/reorder", h.Zone.Reorder)
	protected("GET /api/v1/zones/{id}", h.Zone.Get)
	protected("PATCH /api/v1/zones/{id}", h.Zone.Update)
	protected("DELETE /api/v1/zones/{id}", h.Zone.Delete)
	protected("POST /api/v1/zones/{id}/default", h.Zone.SetDefault)
	protected("GET /api/v1/zones/{id}/modules", h.Module.ListByZone)

	// Modules.
	protected("POST /api/v1/modules", h.Module.Create)
	protected("POST /api/v1/modules/preview", h.Module.Preview)
	protected("GET /api/v1/modules/{id}", h.Module.Get)
	protected("PATCH /api/v1/modules/{id}", h.Module.Update)
	protected("DELETE /api/v1/modules/{id}", h.Module.Delete)
	protected("GET /api/v1/modules/{id}/nodes", h.Module.Evaluate)

	return mux
}
