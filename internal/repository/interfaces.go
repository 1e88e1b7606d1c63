package repository

import (
	"context"
	"time"

	"crm-workspace-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByIDWithWorkspaces(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByIDInWorkspace(ctx context.Context, id, workspaceID uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// WorkspaceRepositoryInterface defines the interface for workspace repository operations
type WorkspaceRepositoryInterface interface {
	Create(ctx context.Context, workspace *models.Workspace) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Workspace, error)
	UpdateActivationStatus(ctx context.Context, id uuid.UUID, status models.ActivationStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserWorkspaceRepositoryInterface defines the interface for user-workspace membership operations
type UserWorkspaceRepositoryInterface interface {
	Create(ctx context.Context, userWorkspace *models.UserWorkspace) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserWorkspace, error)
	GetByUserAndWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) (*models.UserWorkspace, error)
	CountAdminsExcluding(ctx context.Context, workspaceID, excludeID uuid.UUID) (int64, error)
	DeleteByUserAndWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) error
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// WorkspaceMemberRepositoryInterface defines the interface for workspace member operations.
// includeDeleted selects soft-deleted rows as well as live ones.
type WorkspaceMemberRepositoryInterface interface {
	Create(ctx context.Context, member *models.WorkspaceMember) error
	Find(ctx context.Context, workspaceID uuid.UUID, includeDeleted bool) ([]models.WorkspaceMember, error)
	FindDeletedOnly(ctx context.Context, workspaceID uuid.UUID) ([]models.WorkspaceMember, error)
	FindByUserID(ctx context.Context, workspaceID, userID uuid.UUID, includeDeleted bool) (*models.WorkspaceMember, error)
	DeleteByUserID(ctx context.Context, workspaceID, userID uuid.UUID) error
	SoftDeleteByUserID(ctx context.Context, workspaceID, userID uuid.UUID) error
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// EventLogRepositoryInterface defines the interface for event log operations
type EventLogRepositoryInterface interface {
	Create(ctx context.Context, entry *models.EventLog) error
	GetByWorkspaceID(ctx context.Context, workspaceID uuid.UUID, limit, offset int) ([]models.EventLog, int64, error)
}
