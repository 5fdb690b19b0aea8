package api

import (
	"net/http"

	"github.com/lakestash/lakestash/internal/auth"
	"github.com/lakestash/lakestash/internal/model"
)

// AuthHandler reports the caller's authentication state.
type AuthHandler struct {
	Resolver *auth.Resolver
}

// UserInfo handles GET /api/auth/user. It never fails: an unresolvable
// identity is reported, not rejected.
func (h *AuthHandler) UserInfo(w http.ResponseWriter, r *http.Request) {
	user := h.Resolver.Resolve(r)
	if user == nil {
		jsonResponse(w, http.StatusOK, map[string]any{
			"authenticated": false,
			"user":          nil,
		})
		return
	}

	resp := map[string]any{
		"authenticated": true,
		"user":          user,
	}
	if user.Provider == model.DevProvider {
		resp["development"] = true
	}
	jsonResponse(w, http.StatusOK, resp)
}
