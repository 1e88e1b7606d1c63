package events

import (
	"context"
	"encoding/json"

	"crm-workspace-backend/internal/database/models"
	"crm-workspace-backend/internal/logger"
	"crm-workspace-backend/internal/repository"
)

// EventLogNotifier persists every record event of a batch to the event log
type EventLogNotifier struct {
	repo repository.EventLogRepositoryInterface
}

// NewEventLogNotifier creates a new event log notifier
func NewEventLogNotifier(repo repository.EventLogRepositoryInterface) *EventLogNotifier {
	return &EventLogNotifier{repo: repo}
}

// Emit stores one row per record event. A failing row is logged and the rest are still written.
func (n *EventLogNotifier) Emit(ctx context.Context, event DatabaseBatchEvent) {
	log := logger.WithContext(ctx).WithField("event", event.Name())

	for _, record := range event.Events {
		payload, err := json.Marshal(record.Properties)
		if err != nil {
			log.WithError(err).WithField("record_id", record.RecordID).Error("Failed to encode event properties")
			continue
		}

		entry := &models.EventLog{
			WorkspaceID: event.WorkspaceID,
			ObjectName:  event.ObjectName,
			Action:      string(event.Action),
			RecordID:    record.RecordID,
			Payload:     payload,
		}
		if err := n.repo.Create(ctx, entry); err != nil {
			log.WithError(err).WithField("record_id", record.RecordID).Error("Failed to persist event")
		}
	}
}
