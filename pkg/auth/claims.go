package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AdminSubject is the fixed subject for dashboard tokens. There is a
// single shared admin credential, so the subject carries no identity.
const AdminSubject = "admin"

// AdminTokenPayload captures the data available when minting a JWT.
type AdminTokenPayload struct {
	// JTI is optional; a random one is generated when empty.
	JTI string
}

// AdminTokenClaims represents the typed JWT issued to the dashboard.
type AdminTokenClaims struct {
	jwt.RegisteredClaims
}
