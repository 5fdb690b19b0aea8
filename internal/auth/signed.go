package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the strict-mode principal: the same fields as the plain blob,
// wrapped in a signed token.
type Claims struct {
	UserID           string   `json:"userId"`
	UserDetails      string   `json:"userDetails"`
	IdentityProvider string   `json:"identityProvider"`
	UserRoles        []string `json:"userRoles"`
	jwt.RegisteredClaims
}

// SignedPrincipalExpiry is the lifetime of tokens issued by SignPrincipal.
const SignedPrincipalExpiry = 8 * time.Hour

// SignPrincipal creates a signed principal token. The non-platform front door
// that replaces the platform's header rewriting uses this to assert identity.
func SignPrincipal(secret, userID, details, provider string, roles []string) (string, error) {
	claims := Claims{
		UserID:           userID,
		UserDetails:      details,
		IdentityProvider: provider,
		UserRoles:        roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SignedPrincipalExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// parseSignedPrincipal verifies a strict-mode token and maps its claims onto
// the principal shape. Verification failure yields nil, the same silent
// degradation as a malformed plain blob.
func parseSignedPrincipal(secret, tokenStr string) *principal {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil
	}
	return &principal{
		UserID:           claims.UserID,
		UserDetails:      claims.UserDetails,
		IdentityProvider: claims.IdentityProvider,
		UserRoles:        claims.UserRoles,
	}
}
