package events

import (
	"context"
	"encoding/json"

	"crm-workspace-backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// RedisStreamNotifier appends each batch to a Redis stream
type RedisStreamNotifier struct {
	client *redis.Client
	stream string
}

// NewRedisStreamNotifier creates a notifier writing to stream
func NewRedisStreamNotifier(client *redis.Client, stream string) *RedisStreamNotifier {
	return &RedisStreamNotifier{
		client: client,
		stream: stream,
	}
}

// Emit XADDs the batch. The entry carries the routing name, the workspace and the JSON batch.
func (n *RedisStreamNotifier) Emit(ctx context.Context, event DatabaseBatchEvent) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event":  event.Name(),
		"stream": n.stream,
	})

	payload, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Error("Failed to encode event")
		return
	}

	fields := map[string]any{
		"event":        event.Name(),
		"workspace_id": event.WorkspaceID.String(),
		"payload":      string(payload),
	}

	id, err := n.client.XAdd(ctx, &redis.XAddArgs{
		Stream: n.stream,
		Values: fields,
	}).Result()
	if err != nil {
		log.WithError(err).Error("Failed to publish event")
		return
	}

	log.WithField("entry_id", id).Debug("Published event")
}

// Close closes the underlying client
func (n *RedisStreamNotifier) Close() error {
	return n.client.Close()
}
