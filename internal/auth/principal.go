package auth

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/lakestash/lakestash/internal/model"
)

// PrincipalHeader carries the caller's identity, injected by the hosting
// platform after it has validated the login. The value is a base64-encoded
// JSON blob, or a signed token when the resolver runs in strict mode.
const PrincipalHeader = "X-Ms-Client-Principal"

// Resolver turns inbound requests into identities. It is a pure function of
// the request plus its own configuration; construct one at startup and share
// it across handlers.
type Resolver struct {
	// DevFallback substitutes the fixed development identity when the
	// principal header is absent. Enabled outside production so local
	// testing works without a real identity provider.
	DevFallback bool

	// Secret, when non-empty, switches to strict mode: the principal header
	// must be an HS256-signed token whose claims carry the same fields as
	// the plain blob. Use this when the front door is not the platform that
	// normally strips and rewrites the header.
	Secret string
}

// principal mirrors the JSON object the platform encodes into the header.
type principal struct {
	UserID           string   `json:"userId"`
	UserDetails      string   `json:"userDetails"`
	IdentityProvider string   `json:"identityProvider"`
	UserRoles        []string `json:"userRoles"`
}

// Resolve returns the caller's identity, or nil when the request carries no
// usable principal. A malformed header resolves to nil just like an absent
// one; garbage here is an expected case, not a fault. The development
// fallback applies only when the header is absent entirely.
func (rs *Resolver) Resolve(r *http.Request) *model.Identity {
	blob := r.Header.Get(PrincipalHeader)
	if blob == "" {
		if rs.DevFallback {
			return model.DevIdentity()
		}
		return nil
	}

	var p *principal
	if rs.Secret != "" {
		p = parseSignedPrincipal(rs.Secret, blob)
	} else {
		p = parsePrincipal(blob)
	}
	if p == nil {
		return nil
	}

	roles := p.UserRoles
	if roles == nil {
		roles = []string{}
	}
	return &model.Identity{
		ID:       p.UserID,
		Name:     p.UserDetails,
		Provider: p.IdentityProvider,
		Roles:    roles,
	}
}

// parsePrincipal decodes the plain base64 JSON form of the header. Any decode
// or parse failure yields nil.
func parsePrincipal(blob string) *principal {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil
	}
	var p principal
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	return &p
}
