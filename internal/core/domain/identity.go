package domain

import "time"

// Role values understood by the claim derivation. The role string supplied by
// callers is deliberately NOT validated against this set: an unrecognised role
// derives all-false claims and is stored verbatim in the profile.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleOwner  = "owner"
)

// Claims is the closed set of boolean authorization flags attached to an
// Identity. No other claim keys are ever written by this system. A claim
// that was never set is false.
type Claims struct {
	Admin  bool `json:"admin" bson:"admin"`
	Editor bool `json:"editor" bson:"editor"`
	Owner  bool `json:"owner" bson:"owner"`
}

// Has reports whether the named claim is set. Unknown names are false.
func (c Claims) Has(name string) bool {
	switch name {
	case RoleAdmin:
		return c.Admin
	case RoleEditor:
		return c.Editor
	case RoleOwner:
		return c.Owner
	default:
		return false
	}
}

// ClaimsForRole derives the claim set written for a requested role. Owner is
// never derivable from the requested role: neither role assignment nor
// provisioning ever grants it, even when role == "owner".
func ClaimsForRole(role string) Claims {
	return Claims{
		Admin:  role == RoleAdmin,
		Editor: role == RoleEditor,
		Owner:  false,
	}
}

// Identity models an account held by the identity service. The credential
// hash is write-only: it never leaves the process through any API response.
type Identity struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	CredentialHash string    `json:"-"`
	Claims         Claims    `json:"claims"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Caller is the principal invoking an operation. Its claims gate access and
// are never persisted or mutated by the operations themselves. The zero
// Caller carries no claims and fails every permission check.
type Caller struct {
	Subject string
	Email   string
	Claims  Claims
}
