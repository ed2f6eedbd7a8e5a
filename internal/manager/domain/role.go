package domain

import "fmt"

// Role is a closed two-value enumeration. Authorization check sites switch
// exhaustively over it; anything else is rejected at the boundary.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

// ParseRole validates a wire-format role string. An empty string defaults to
// moderator, matching admin provisioning behaviour.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleModerator, "":
		return RoleModerator, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// IsAdmin reports whether the role grants the admin tier.
func (r Role) IsAdmin() bool { return r == RoleAdmin }
