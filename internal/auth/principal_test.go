package auth

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakestash/lakestash/internal/model"
)

func principalRequest(t *testing.T, header string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
	if header != "" {
		r.Header.Set(PrincipalHeader, header)
	}
	return r
}

func encodePrincipal(t *testing.T, raw string) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

func TestResolveValidPrincipal(t *testing.T) {
	rs := &Resolver{}
	blob := encodePrincipal(t, `{
		"userId": "u1",
		"userDetails": "alice@example.com",
		"identityProvider": "github",
		"userRoles": ["anonymous", "authenticated"]
	}`)

	user := rs.Resolve(principalRequest(t, blob))
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "alice@example.com", user.Name)
	assert.Equal(t, "github", user.Provider)
	assert.Equal(t, []string{"anonymous", "authenticated"}, user.Roles)
}

func TestResolveRolesDefaultEmpty(t *testing.T) {
	rs := &Resolver{}
	blob := encodePrincipal(t, `{"userId": "u1", "userDetails": "alice", "identityProvider": "github"}`)

	user := rs.Resolve(principalRequest(t, blob))
	require.NotNil(t, user)
	require.NotNil(t, user.Roles)
	assert.Empty(t, user.Roles)
}

func TestResolveMalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"not base64", "!!! not base64 !!!"},
		{"base64 but not json", encodePrincipal(t, "this is not json")},
		{"json but wrong shape", encodePrincipal(t, `["array", "not", "object"]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := &Resolver{}
			assert.Nil(t, rs.Resolve(principalRequest(t, tt.header)))
		})
	}
}

// A malformed header degrades to unauthenticated even with the development
// fallback enabled; only a fully absent header substitutes the dev identity.
func TestResolveMalformedHeaderWithDevFallback(t *testing.T) {
	rs := &Resolver{DevFallback: true}
	assert.Nil(t, rs.Resolve(principalRequest(t, "%%%")))
}

func TestResolveAbsentHeader(t *testing.T) {
	prod := &Resolver{}
	assert.Nil(t, prod.Resolve(principalRequest(t, "")))

	dev := &Resolver{DevFallback: true}
	user := dev.Resolve(principalRequest(t, ""))
	require.NotNil(t, user)
	assert.Equal(t, model.DevUserID, user.ID)
	assert.Equal(t, model.DevUserName, user.Name)
	assert.Equal(t, model.DevProvider, user.Provider)
}

func TestResolveSignedPrincipal(t *testing.T) {
	const secret = "test-secret"
	rs := &Resolver{Secret: secret}

	token, err := SignPrincipal(secret, "u2", "bob", "aad", []string{"authenticated"})
	require.NoError(t, err)

	user := rs.Resolve(principalRequest(t, token))
	require.NotNil(t, user)
	assert.Equal(t, "u2", user.ID)
	assert.Equal(t, "bob", user.Name)
	assert.Equal(t, "aad", user.Provider)
	assert.Equal(t, []string{"authenticated"}, user.Roles)
}

func TestResolveSignedPrincipalWrongSecret(t *testing.T) {
	token, err := SignPrincipal("other-secret", "u2", "bob", "aad", nil)
	require.NoError(t, err)

	rs := &Resolver{Secret: "test-secret"}
	assert.Nil(t, rs.Resolve(principalRequest(t, token)))
}

// In strict mode a plain base64 blob is no longer accepted.
func TestStrictModeRejectsPlainBlob(t *testing.T) {
	rs := &Resolver{Secret: "test-secret"}
	blob := encodePrincipal(t, `{"userId": "u1"}`)
	assert.Nil(t, rs.Resolve(principalRequest(t, blob)))
}
