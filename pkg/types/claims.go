package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated identity through the request context.
// OrgID is set for organization roles, VendorID for maintenance-vendor roles.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	OrgID    *uint  `json:"org_id,omitempty"`
	VendorID *uint  `json:"vendor_id,omitempty"`
	jwt.RegisteredClaims
}
