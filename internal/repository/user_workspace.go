package repository

import (
	"context"
	"time"

	"crm-workspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserWorkspaceRepository handles database operations for user-workspace memberships
type UserWorkspaceRepository struct {
	db *gorm.DB
}

// NewUserWorkspaceRepository creates a new user workspace repository
func NewUserWorkspaceRepository(db *gorm.DB) *UserWorkspaceRepository {
	return &UserWorkspaceRepository{db: db}
}

// Create creates a new membership
func (r *UserWorkspaceRepository) Create(ctx context.Context, userWorkspace *models.UserWorkspace) error {
	return r.db.WithContext(ctx).Create(userWorkspace).Error
}

// GetByID retrieves a membership by ID
func (r *UserWorkspaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserWorkspace, error) {
	var userWorkspace models.UserWorkspace
	err := r.db.WithContext(ctx).First(&userWorkspace, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &userWorkspace, nil
}

// GetByUserAndWorkspace retrieves the live membership of a user in a workspace
func (r *UserWorkspaceRepository) GetByUserAndWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) (*models.UserWorkspace, error) {
	var userWorkspace models.UserWorkspace
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND workspace_id = ?", userID, workspaceID).
		First(&userWorkspace).Error
	if err != nil {
		return nil, err
	}
	return &userWorkspace, nil
}

// CountAdminsExcluding counts live admin memberships of a workspace other than excludeID
func (r *UserWorkspaceRepository) CountAdminsExcluding(ctx context.Context, workspaceID, excludeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserWorkspace{}).
		Where("workspace_id = ? AND role = ? AND id <> ?", workspaceID, models.WorkspaceRoleAdmin, excludeID).
		Count(&count).Error
	return count, err
}

// DeleteByUserAndWorkspace soft-deletes the membership of a user in a workspace.
// A missing membership is not an error.
func (r *UserWorkspaceRepository) DeleteByUserAndWorkspace(ctx context.Context, userID, workspaceID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND workspace_id = ?", userID, workspaceID).
		Delete(&models.UserWorkspace{}).Error
}

// PurgeDeletedBefore hard-deletes memberships soft-deleted before cutoff
func (r *UserWorkspaceRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.UserWorkspace{})
	return result.RowsAffected, result.Error
}
