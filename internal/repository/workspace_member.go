package repository

import (
	"context"
	"time"

	"crm-workspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkspaceMemberRepository handles database operations for workspace members
type WorkspaceMemberRepository struct {
	db *gorm.DB
}

// NewWorkspaceMemberRepository creates a new workspace member repository
func NewWorkspaceMemberRepository(db *gorm.DB) *WorkspaceMemberRepository {
	return &WorkspaceMemberRepository{db: db}
}

func (r *WorkspaceMemberRepository) scope(ctx context.Context, includeDeleted bool) *gorm.DB {
	q := r.db.WithContext(ctx)
	if includeDeleted {
		q = q.Unscoped()
	}
	return q
}

// Create creates a new workspace member
func (r *WorkspaceMemberRepository) Create(ctx context.Context, member *models.WorkspaceMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// Find retrieves the members of a workspace, oldest first
func (r *WorkspaceMemberRepository) Find(ctx context.Context, workspaceID uuid.UUID, includeDeleted bool) ([]models.WorkspaceMember, error) {
	var members []models.WorkspaceMember
	err := r.scope(ctx, includeDeleted).
		Where("workspace_id = ?", workspaceID).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// FindDeletedOnly retrieves only the soft-deleted members of a workspace
func (r *WorkspaceMemberRepository) FindDeletedOnly(ctx context.Context, workspaceID uuid.UUID) ([]models.WorkspaceMember, error) {
	var members []models.WorkspaceMember
	err := r.db.WithContext(ctx).Unscoped().
		Where("workspace_id = ? AND deleted_at IS NOT NULL", workspaceID).
		Order("deleted_at DESC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// FindByUserID retrieves the member record of a user in a workspace
func (r *WorkspaceMemberRepository) FindByUserID(ctx context.Context, workspaceID, userID uuid.UUID, includeDeleted bool) (*models.WorkspaceMember, error) {
	var member models.WorkspaceMember
	err := r.scope(ctx, includeDeleted).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// DeleteByUserID hard-deletes the member record of a user in a workspace
func (r *WorkspaceMemberRepository) DeleteByUserID(ctx context.Context, workspaceID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		Delete(&models.WorkspaceMember{}).Error
}

// SoftDeleteByUserID marks the member record of a user in a workspace as deleted
func (r *WorkspaceMemberRepository) SoftDeleteByUserID(ctx context.Context, workspaceID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		Delete(&models.WorkspaceMember{}).Error
}

// PurgeDeletedBefore hard-deletes members soft-deleted before cutoff and returns how many went
func (r *WorkspaceMemberRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.WorkspaceMember{})
	return result.RowsAffected, result.Error
}
