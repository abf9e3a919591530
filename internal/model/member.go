package model

import "time"

// Role is the closed set of permissions a member can hold in a workspace.
// Authorization is a pure check against this value, not a type hierarchy.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// Member binds a user identity to a workspace with a role. At most one
// Member exists per (workspace, user) pair, enforced by a unique index.
type Member struct {
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"workspace_id"`
	UserID      int64     `json:"user_id"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}
