package auth

import "catalog/errs"

// RoleHeader is the request header carrying the client-supplied role
// indicator. The value is unsigned and trusted as-is, so this is a coarse
// gate rather than an authentication system.
const RoleHeader = "role"

// AdminRole is the role required for mutating catalog operations.
const AdminRole = "admin"

var ErrForbidden = errs.Errorf(errs.EFORBIDDEN, "admin role required")

// Policy decides whether a given role indicator may perform mutating
// operations. Keeping this behind an interface lets a deployment swap the
// header check for signed tokens without touching any handler.
type Policy interface {
	Authorize(role string) error
}

// RolePolicy allows exactly one role value. The comparison is exact and
// case-sensitive; an absent header denies.
type RolePolicy struct {
	Role string
}

func NewAdminPolicy() RolePolicy {
	return RolePolicy{Role: AdminRole}
}

func (p RolePolicy) Authorize(role string) error {
	if role != p.Role {
		return ErrForbidden
	}
	return nil
}
