package entities

type Role string

const (
	RoleBuyer  Role = "comprador"
	RoleSeller Role = "vendedor"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// Principal is the authenticated caller as resolved by the auth middleware.
type Principal struct {
	UserID     string `json:"user_id"`
	Role       Role   `json:"role"`
	KycLevel   int    `json:"kyc_level"`
	MfaEnabled bool   `json:"mfa_enabled"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
