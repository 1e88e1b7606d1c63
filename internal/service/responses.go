package service

import (
	"encoding/json"
	"time"

	"crm-workspace-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserResponse represents the response data for a user
type UserResponse struct {
	ID                 uuid.UUID               `json:"id"`
	FirstName          string                  `json:"first_name"`
	LastName           string                  `json:"last_name"`
	Email              string                  `json:"email"`
	IsEmailVerified    bool                    `json:"is_email_verified"`
	DefaultWorkspaceID *uuid.UUID              `json:"default_workspace_id,omitempty"`
	Workspaces         []UserWorkspaceResponse `json:"workspaces,omitempty"`
}

// UserWorkspaceResponse represents one membership of a user
type UserWorkspaceResponse struct {
	ID          uuid.UUID `json:"id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Role        string    `json:"role"`
}

// WorkspaceResponse represents the response data for a workspace
type WorkspaceResponse struct {
	ID               uuid.UUID `json:"id"`
	DisplayName      string    `json:"display_name"`
	Subdomain        string    `json:"subdomain"`
	ActivationStatus string    `json:"activation_status"`
	CreatedAt        time.Time `json:"created_at"`
}

// WorkspaceMemberResponse represents the workspace profile of a user
type WorkspaceMemberResponse struct {
	ID          uuid.UUID  `json:"id"`
	WorkspaceID uuid.UUID  `json:"workspace_id"`
	UserID      uuid.UUID  `json:"user_id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	UserEmail   string     `json:"user_email"`
	Locale      string     `json:"locale"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// WorkspaceMembersResponse is the swagger schema for GET /workspaces/{id}/members
type WorkspaceMembersResponse struct {
	Members []WorkspaceMemberResponse `json:"members"`
	Total   int                       `json:"total"`
}

// EventLogResponse represents one persisted event
type EventLogResponse struct {
	ID         uuid.UUID       `json:"id"`
	ObjectName string          `json:"object_name"`
	Action     string          `json:"action"`
	RecordID   uuid.UUID       `json:"record_id"`
	Payload    json.RawMessage `json:"payload" swaggertype:"object"`
	CreatedAt  time.Time       `json:"created_at"`
}

// EventLogListResponse is the swagger schema for GET /workspaces/{id}/events
type EventLogListResponse struct {
	Events []EventLogResponse `json:"events"`
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// NewUserResponse converts a user model to response
func NewUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:                 user.ID,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		Email:              user.Email,
		IsEmailVerified:    user.IsEmailVerified,
		DefaultWorkspaceID: user.DefaultWorkspaceID,
	}
	for _, uw := range user.Workspaces {
		resp.Workspaces = append(resp.Workspaces, UserWorkspaceResponse{
			ID:          uw.ID,
			WorkspaceID: uw.WorkspaceID,
			Role:        string(uw.Role),
		})
	}
	return resp
}

// NewWorkspaceResponse converts a workspace model to response
func NewWorkspaceResponse(workspace *models.Workspace) *WorkspaceResponse {
	return &WorkspaceResponse{
		ID:               workspace.ID,
		DisplayName:      workspace.DisplayName,
		Subdomain:        workspace.Subdomain,
		ActivationStatus: string(workspace.ActivationStatus),
		CreatedAt:        workspace.CreatedAt,
	}
}

// NewWorkspaceMemberResponse converts a workspace member model to response
func NewWorkspaceMemberResponse(member *models.WorkspaceMember) WorkspaceMemberResponse {
	resp := WorkspaceMemberResponse{
		ID:          member.ID,
		WorkspaceID: member.WorkspaceID,
		UserID:      member.UserID,
		FirstName:   member.FirstName,
		LastName:    member.LastName,
		UserEmail:   member.UserEmail,
		Locale:      member.Locale,
	}
	if member.DeletedAt.Valid {
		deletedAt := member.DeletedAt.Time
		resp.DeletedAt = &deletedAt
	}
	return resp
}

// NewWorkspaceMembersResponse converts a member list to response
func NewWorkspaceMembersResponse(members []models.WorkspaceMember) *WorkspaceMembersResponse {
	resp := &WorkspaceMembersResponse{
		Members: make([]WorkspaceMemberResponse, len(members)),
		Total:   len(members),
	}
	for i := range members {
		resp.Members[i] = NewWorkspaceMemberResponse(&members[i])
	}
	return resp
}
