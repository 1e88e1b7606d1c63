package repository

import (
	"context"

	"crm-workspace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventLogRepository handles database operations for persisted events
type EventLogRepository struct {
	db *gorm.DB
}

// NewEventLogRepository creates a new event log repository
func NewEventLogRepository(db *gorm.DB) *EventLogRepository {
	return &EventLogRepository{db: db}
}

// Create stores one event
func (r *EventLogRepository) Create(ctx context.Context, entry *models.EventLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByWorkspaceID retrieves the events of a workspace, newest first, with pagination
func (r *EventLogRepository) GetByWorkspaceID(ctx context.Context, workspaceID uuid.UUID, limit, offset int) ([]models.EventLog, int64, error) {
	var entries []models.EventLog
	var total int64

	query := r.db.WithContext(ctx).Model(&models.EventLog{}).Where("workspace_id = ?", workspaceID)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
