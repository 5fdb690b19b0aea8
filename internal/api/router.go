package api

import (
	"net/http"

	"github.com/lakestash/lakestash/internal/auth"
	"github.com/lakestash/lakestash/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(st store.Store, resolver *auth.Resolver) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Resolver: resolver}
	inventoryHandler := &InventoryHandler{Store: st}

	requireUser := RequireIdentity(resolver)

	// Public: authentication state.
	mux.HandleFunc("GET /api/auth/user", authHandler.UserInfo)

	// Authenticated routes, all scoped to the caller's partition.
	mux.Handle("GET /api/inventory", requireUser(http.HandlerFunc(inventoryHandler.List)))
	mux.Handle("POST /api/inventory", requireUser(http.HandlerFunc(inventoryHandler.Create)))
	mux.Handle("PUT /api/inventory/{id}", requireUser(http.HandlerFunc(inventoryHandler.Update)))
	mux.Handle("DELETE /api/inventory/{id}", requireUser(http.HandlerFunc(inventoryHandler.Delete)))

	return mux
}
