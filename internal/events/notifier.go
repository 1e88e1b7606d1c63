package events

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/events_mocks.go -package=mocks

// Action is what happened to the records of a batch
type Action string

const (
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"
	ActionDeleted   Action = "deleted"
	ActionDestroyed Action = "destroyed"
)

// Object names carried by emitted batches
const (
	ObjectWorkspaceMember = "workspaceMember"
	ObjectWorkspace       = "workspace"
)

// Properties holds the record state around the change. Before is nil on create,
// After is nil on delete.
type Properties struct {
	Before interface{} `json:"before,omitempty"`
	After  interface{} `json:"after,omitempty"`
}

// RecordEvent is the change of a single record
type RecordEvent struct {
	RecordID   uuid.UUID  `json:"recordId"`
	Properties Properties `json:"properties"`
}

// DatabaseBatchEvent groups record changes of one object type inside one workspace
type DatabaseBatchEvent struct {
	ObjectName  string        `json:"objectName"`
	Action      Action        `json:"action"`
	WorkspaceID uuid.UUID     `json:"workspaceId"`
	Events      []RecordEvent `json:"events"`
}

// Name is the routing key of the batch, e.g. "workspaceMember.deleted"
func (e DatabaseBatchEvent) Name() string {
	return e.ObjectName + "." + string(e.Action)
}

// Notifier publishes batches for downstream consumers. Emit never fails from the
// caller's point of view: implementations log and drop what they cannot deliver.
type Notifier interface {
	Emit(ctx context.Context, event DatabaseBatchEvent)
}

// NopNotifier drops every event
type NopNotifier struct{}

// Emit does nothing
func (NopNotifier) Emit(context.Context, DatabaseBatchEvent) {}

// MultiNotifier fans a batch out to several notifiers in order
type MultiNotifier struct {
	notifiers []Notifier
}

// NewMultiNotifier creates a notifier that forwards to every non-nil notifier given
func NewMultiNotifier(notifiers ...Notifier) *MultiNotifier {
	m := &MultiNotifier{}
	for _, n := range notifiers {
		if n != nil {
			m.notifiers = append(m.notifiers, n)
		}
	}
	return m
}

// Emit forwards the batch to each notifier
func (m *MultiNotifier) Emit(ctx context.Context, event DatabaseBatchEvent) {
	for _, n := range m.notifiers {
		n.Emit(ctx, event)
	}
}

// Len returns how many notifiers receive the batches
func (m *MultiNotifier) Len() int {
	return len(m.notifiers)
}
