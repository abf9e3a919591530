package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"huddle.app/server/common"
	"huddle.app/server/common/id"
	"huddle.app/server/internal/model"
	"huddle.app/server/internal/store"
)

var ErrInvalidChannelName = errors.New("channel name must contain at least one letter or digit")

type ChannelService interface {
	Create(ctx context.Context, userID, workspaceID int64, name string) (*model.Channel, error)
	Rename(ctx context.Context, userID, channelID int64, name string) (*model.Channel, error)
	Remove(ctx context.Context, userID, channelID int64) error
	List(ctx context.Context, userID, workspaceID int64) ([]model.Channel, error)
	Get(ctx context.Context, userID, channelID int64) (*model.Channel, error)
}

type channelService struct {
	channelStore store.ChannelStore
	membership   MembershipService
}

func NewChannelService(channelStore store.ChannelStore, membership MembershipService) ChannelService {
	return &channelService{
		channelStore: channelStore,
		membership:   membership,
	}
}

func (s *channelService) Create(ctx context.Context, userID, workspaceID int64, name string) (*model.Channel, error) {
	if _, err := s.membership.RequireAdmin(ctx, workspaceID, userID); err != nil {
		return nil, err
	}

	slug, err := common.Slugify(name, "")
	if err != nil {
		return nil, ErrInvalidChannelName
	}

	channel := &model.Channel{
		ID:          id.New(),
		WorkspaceID: workspaceID,
		Name:        slug,
	}
	if err := s.channelStore.Create(ctx, channel); err != nil {
		slog.ErrorContext(ctx, "failed to create channel",
			"error", err,
			"workspace_id", workspaceID,
		)
		return nil, fmt.Errorf("creating channel: %w", err)
	}

	slog.InfoContext(ctx, "channel created",
		"channel_id", channel.ID,
		"workspace_id", workspaceID,
	)
	return channel, nil
}

func (s *channelService) Rename(ctx context.Context, userID, channelID int64, name string) (*model.Channel, error) {
	channel, err := s.channelStore.GetByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("getting channel: %w", err)
	}

	if _, err := s.membership.RequireAdmin(ctx, channel.WorkspaceID, userID); err != nil {
		return nil, err
	}

	slug, err := common.Slugify(name, "")
	if err != nil {
		return nil, ErrInvalidChannelName
	}

	updated, err := s.channelStore.UpdateName(ctx, channelID, slug)
	if err != nil {
		return nil, fmt.Errorf("updating channel name: %w", err)
	}
	return updated, nil
}

func (s *channelService) Remove(ctx context.Context, userID, channelID int64) error {
	channel, err := s.channelStore.GetByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnauthorized
		}
		return fmt.Errorf("getting channel: %w", err)
	}

	if _, err := s.membership.RequireAdmin(ctx, channel.WorkspaceID, userID); err != nil {
		return err
	}

	if err := s.channelStore.Delete(ctx, channelID); err != nil {
		return fmt.Errorf("deleting channel: %w", err)
	}

	slog.InfoContext(ctx, "channel deleted",
		"channel_id", channelID,
		"workspace_id", channel.WorkspaceID,
	)
	return nil
}

// List returns the workspace's channels for members and an empty slice for
// everyone else.
func (s *channelService) List(ctx context.Context, userID, workspaceID int64) ([]model.Channel, error) {
	_, isMember, err := s.membership.RoleOf(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return []model.Channel{}, nil
	}

	channels, err := s.channelStore.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing channels: %w", err)
	}
	return channels, nil
}

// Get returns nil for missing channels and for callers outside the channel's
// workspace.
func (s *channelService) Get(ctx context.Context, userID, channelID int64) (*model.Channel, error) {
	channel, err := s.channelStore.GetByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting channel: %w", err)
	}

	_, isMember, err := s.membership.RoleOf(ctx, channel.WorkspaceID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, nil
	}
	return channel, nil
}
