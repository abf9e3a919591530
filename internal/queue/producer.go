package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Workspace lifecycle event types published to the stream. Consumers (the
// real-time fan-out layer) live outside this repo.
const (
	EventWorkspaceCreated = "workspace.created"
	EventMemberJoined     = "member.joined"
	EventWorkspaceDeleted = "workspace.deleted"
)

type Event struct {
	Type        string
	WorkspaceID int64
	ActorUserID int64
}

type Producer interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Publish(ctx context.Context, event Event) error {
	fields := map[string]any{
		"event_type":    event.Type,
		"workspace_id":  event.WorkspaceID,
		"actor_user_id": event.ActorUserID,
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("publishing event: %w", err)
	}

	p.logger.InfoContext(ctx, "published event", "event_type", event.Type, "workspace_id", event.WorkspaceID)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
