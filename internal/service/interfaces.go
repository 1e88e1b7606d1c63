package service

import (
	"context"

	"crm-workspace-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	MarkEmailAsVerified(ctx context.Context, id uuid.UUID) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	RemoveUserFromWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) error
	DeactivateWorkspaceMember(ctx context.Context, userID, workspaceID uuid.UUID) error
	HasUserAccessToWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) error
	LoadWorkspaceMember(ctx context.Context, user *models.User, workspace *models.Workspace) (*models.WorkspaceMember, error)
	LoadWorkspaceMembers(ctx context.Context, workspace *models.Workspace, includeDeleted bool) ([]models.WorkspaceMember, error)
	LoadDeletedWorkspaceMembersOnly(ctx context.Context, workspace *models.Workspace) ([]models.WorkspaceMember, error)
}

// UserRoleServiceInterface guards the role rules of workspace memberships
type UserRoleServiceInterface interface {
	ValidateUserWorkspaceIsNotUniqueAdmin(ctx context.Context, workspaceID, userWorkspaceID uuid.UUID) error
}

// UserWorkspaceServiceInterface defines the interface for user workspace service
type UserWorkspaceServiceInterface interface {
	GetUserWorkspaceForUser(ctx context.Context, userID, workspaceID uuid.UUID) (*models.UserWorkspace, error)
	RemoveUserWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) error
}

// WorkspaceServiceInterface defines the interface for workspace service
type WorkspaceServiceInterface interface {
	GetWorkspace(ctx context.Context, id uuid.UUID) (*models.Workspace, error)
	SetActivationStatus(ctx context.Context, id uuid.UUID, status models.ActivationStatus) (*models.Workspace, error)
	DeleteWorkspace(ctx context.Context, id uuid.UUID) error
	GetEventLogs(ctx context.Context, id uuid.UUID, limit, offset int) (*EventLogListResponse, error)
}

// WorkspaceDeletionListener is called before a workspace and its dependents are removed.
// An error aborts the deletion.
type WorkspaceDeletionListener interface {
	OnBeforeWorkspaceDeletion(ctx context.Context, workspaceID uuid.UUID) error
}
