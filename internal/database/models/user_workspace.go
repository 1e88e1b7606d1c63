package models

import (
	"github.com/google/uuid"
)

// WorkspaceRole is the role a user holds inside one workspace
type WorkspaceRole string

const (
	WorkspaceRoleAdmin  WorkspaceRole = "admin"
	WorkspaceRoleMember WorkspaceRole = "member"
)

// IsValid validates the WorkspaceRole
func (r WorkspaceRole) IsValid() bool {
	switch r {
	case WorkspaceRoleAdmin, WorkspaceRoleMember:
		return true
	default:
		return false
	}
}

// UserWorkspace links exactly one user to exactly one workspace and carries the role
type UserWorkspace struct {
	BaseModel
	UserID      uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_workspaces_pair_active,where:deleted_at IS NULL"`
	WorkspaceID uuid.UUID     `json:"workspace_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_user_workspaces_pair_active,where:deleted_at IS NULL"`
	Role        WorkspaceRole `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
}

// TableName returns the table name for UserWorkspace
func (UserWorkspace) TableName() string {
	return "user_workspaces"
}

// IsAdmin reports whether the membership carries the admin role
func (uw *UserWorkspace) IsAdmin() bool {
	return uw.Role == WorkspaceRoleAdmin
}
