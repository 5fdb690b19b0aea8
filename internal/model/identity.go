package model

// Identity is the resolved caller identity. It comes from the platform's
// principal header, or from the fixed development identity when running
// outside production.
type Identity struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Provider string   `json:"provider"`
	Roles    []string `json:"roles"`
}

// The fixed development identity, substituted for real authentication when
// no principal header is present outside production.
const (
	DevUserID   = "dev-user-123"
	DevUserName = "Development User"
	DevProvider = "development"
)

// DevIdentity returns the fixed development identity.
func DevIdentity() *Identity {
	return &Identity{
		ID:       DevUserID,
		Name:     DevUserName,
		Provider: DevProvider,
		Roles:    []string{},
	}
}
