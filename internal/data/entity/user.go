package entity

import "github.com/google/uuid"

type UserRole string

const (
	RoleGuest      UserRole = "guest"
	RoleBuyer      UserRole = "buyer"
	RoleSeller     UserRole = "seller"
	RoleAdmin      UserRole = "admin"
	RoleSuperadmin UserRole = "superadmin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleGuest, RoleBuyer, RoleSeller, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// Actor is the already-verified caller identity.
type Actor struct {
	UserID uuid.UUID
	Role   UserRole
}

func Guest() Actor {
	return Actor{Role: RoleGuest}
}

func (a Actor) IsGuest() bool {
	return a.UserID == uuid.Nil || a.Role == RoleGuest
}

func (a Actor) IsStaff() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperadmin
}
