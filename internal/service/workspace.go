package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"huddle.app/server/common/id"
	"huddle.app/server/internal/model"
	"huddle.app/server/internal/queue"
	"huddle.app/server/internal/store"
)

const (
	minWorkspaceNameLength = 3
	defaultChannelName     = "general"
)

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrInvalidJoinCode   = errors.New("invalid join code")
	ErrAlreadyMember     = errors.New("already a member of this workspace")
	ErrInvalidName       = errors.New("name must be at least 3 characters")
)

// WorkspacePreview is the discovery-safe read for non-members: the name (nil
// when the workspace does not exist) and whether the caller already belongs.
type WorkspacePreview struct {
	Name     *string `json:"name"`
	IsMember bool    `json:"is_member"`
}

type WorkspaceService interface {
	Create(ctx context.Context, userID int64, name string) (*model.Workspace, error)
	Join(ctx context.Context, userID, workspaceID int64, joinCode string) (*model.Member, error)
	RotateJoinCode(ctx context.Context, userID, workspaceID int64) (*model.Workspace, error)
	Rename(ctx context.Context, userID, workspaceID int64, name string) (*model.Workspace, error)
	ListForUser(ctx context.Context, userID int64) ([]model.Workspace, error)
	Preview(ctx context.Context, userID, workspaceID int64) (*WorkspacePreview, error)
	Get(ctx context.Context, userID, workspaceID int64) (*model.Workspace, error)
	Delete(ctx context.Context, userID, workspaceID int64) error
}

type workspaceService struct {
	workspaceStore store.WorkspaceStore
	memberStore    store.MemberStore
	membership     MembershipService
	txRunner       TxRunner
	producer       queue.Producer
}

func NewWorkspaceService(
	workspaceStore store.WorkspaceStore,
	memberStore store.MemberStore,
	membership MembershipService,
	txRunner TxRunner,
	producer queue.Producer,
) WorkspaceService {
	return &workspaceService{
		workspaceStore: workspaceStore,
		memberStore:    memberStore,
		membership:     membership,
		txRunner:       txRunner,
		producer:       producer,
	}
}

func (s *workspaceService) Create(ctx context.Context, userID int64, name string) (*model.Workspace, error) {
	name = strings.TrimSpace(name)
	if len(name) < minWorkspaceNameLength {
		return nil, ErrInvalidName
	}

	joinCode, err := newJoinCode()
	if err != nil {
		return nil, err
	}

	workspace := &model.Workspace{
		ID:          id.New(),
		Name:        name,
		OwnerUserID: userID,
		JoinCode:    joinCode,
	}

	// The workspace, its admin membership, and the default channel land
	// together or not at all.
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Workspaces().Create(ctx, workspace); err != nil {
			return fmt.Errorf("creating workspace: %w", err)
		}

		member := &model.Member{
			ID:          id.New(),
			WorkspaceID: workspace.ID,
			UserID:      userID,
			Role:        model.RoleAdmin,
		}
		if err := stores.Members().Create(ctx, member); err != nil {
			return fmt.Errorf("creating admin member: %w", err)
		}

		channel := &model.Channel{
			ID:          id.New(),
			WorkspaceID: workspace.ID,
			Name:        defaultChannelName,
		}
		if err := stores.Channels().Create(ctx, channel); err != nil {
			return fmt.Errorf("creating default channel: %w", err)
		}

		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create workspace",
			"error", err,
			"user_id", userID,
		)
		return nil, err
	}

	slog.InfoContext(ctx, "workspace created",
		"workspace_id", workspace.ID,
		"user_id", userID,
	)
	s.publish(ctx, queue.Event{
		Type:        queue.EventWorkspaceCreated,
		WorkspaceID: workspace.ID,
		ActorUserID: userID,
	})

	return workspace, nil
}

func (s *workspaceService) Join(ctx context.Context, userID, workspaceID int64, joinCode string) (*model.Member, error) {
	workspace, err := s.workspaceStore.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}

	if workspace.JoinCode != normalizeJoinCode(joinCode) {
		return nil, ErrInvalidJoinCode
	}

	if _, err := s.memberStore.GetByWorkspaceAndUser(ctx, workspaceID, userID); err == nil {
		return nil, ErrAlreadyMember
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("getting member: %w", err)
	}

	member := &model.Member{
		ID:          id.New(),
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        model.RoleMember,
	}
	if err := s.memberStore.Create(ctx, member); err != nil {
		// A concurrent join between the check and the insert trips the
		// unique index instead of producing a second membership.
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, ErrAlreadyMember
		}
		slog.ErrorContext(ctx, "failed to create member",
			"error", err,
			"workspace_id", workspaceID,
			"user_id", userID,
		)
		return nil, fmt.Errorf("creating member: %w", err)
	}

	slog.InfoContext(ctx, "member joined workspace",
		"workspace_id", workspaceID,
		"user_id", userID,
	)
	s.publish(ctx, queue.Event{
		Type:        queue.EventMemberJoined,
		WorkspaceID: workspaceID,
		ActorUserID: userID,
	})

	return member, nil
}

func (s *workspaceService) RotateJoinCode(ctx context.Context, userID, workspaceID int64) (*model.Workspace, error) {
	if _, err := s.membership.RequireAdmin(ctx, workspaceID, userID); err != nil {
		return nil, err
	}

	joinCode, err := newJoinCode()
	if err != nil {
		return nil, err
	}

	workspace, err := s.workspaceStore.UpdateJoinCode(ctx, workspaceID, joinCode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("updating join code: %w", err)
	}

	slog.InfoContext(ctx, "join code rotated", "workspace_id", workspaceID, "user_id", userID)
	return workspace, nil
}

func (s *workspaceService) Rename(ctx context.Context, userID, workspaceID int64, name string) (*model.Workspace, error) {
	if _, err := s.membership.RequireAdmin(ctx, workspaceID, userID); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if len(name) < minWorkspaceNameLength {
		return nil, ErrInvalidName
	}

	workspace, err := s.workspaceStore.UpdateName(ctx, workspaceID, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("updating workspace name: %w", err)
	}

	slog.InfoContext(ctx, "workspace renamed", "workspace_id", workspaceID, "user_id", userID)
	return workspace, nil
}

func (s *workspaceService) ListForUser(ctx context.Context, userID int64) ([]model.Workspace, error) {
	members, err := s.memberStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing memberships: %w", err)
	}

	workspaces := make([]model.Workspace, 0, len(members))
	for _, member := range members {
		workspace, err := s.workspaceStore.GetByID(ctx, member.WorkspaceID)
		if err != nil {
			// A membership whose workspace is gone is skipped, not an error.
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("getting workspace: %w", err)
		}
		workspaces = append(workspaces, *workspace)
	}
	return workspaces, nil
}

func (s *workspaceService) Preview(ctx context.Context, userID, workspaceID int64) (*WorkspacePreview, error) {
	workspace, err := s.workspaceStore.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &WorkspacePreview{}, nil
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}

	_, isMember, err := s.membership.RoleOf(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}

	return &WorkspacePreview{Name: &workspace.Name, IsMember: isMember}, nil
}

// Get returns the full workspace for members. Non-members get nil, not an
// error: the full read degrades to absence rather than confirming existence.
func (s *workspaceService) Get(ctx context.Context, userID, workspaceID int64) (*model.Workspace, error) {
	_, isMember, err := s.membership.RoleOf(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, nil
	}

	workspace, err := s.workspaceStore.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}
	return workspace, nil
}

func (s *workspaceService) Delete(ctx context.Context, userID, workspaceID int64) error {
	if _, err := s.membership.RequireAdmin(ctx, workspaceID, userID); err != nil {
		return err
	}

	var members, channels, reactions, conversations, messages int64
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		if members, err = stores.Members().DeleteByWorkspace(ctx, workspaceID); err != nil {
			return fmt.Errorf("deleting members: %w", err)
		}
		if channels, err = stores.Channels().DeleteByWorkspace(ctx, workspaceID); err != nil {
			return fmt.Errorf("deleting channels: %w", err)
		}
		if reactions, err = stores.Reactions().DeleteByWorkspace(ctx, workspaceID); err != nil {
			return fmt.Errorf("deleting reactions: %w", err)
		}
		if conversations, err = stores.Conversations().DeleteByWorkspace(ctx, workspaceID); err != nil {
			return fmt.Errorf("deleting conversations: %w", err)
		}
		if messages, err = stores.Messages().DeleteByWorkspace(ctx, workspaceID); err != nil {
			return fmt.Errorf("deleting messages: %w", err)
		}
		// The workspace row goes last so it never outlives its collections
		// outside the transaction.
		if err := stores.Workspaces().Delete(ctx, workspaceID); err != nil {
			return fmt.Errorf("deleting workspace: %w", err)
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete workspace",
			"error", err,
			"workspace_id", workspaceID,
			"user_id", userID,
		)
		return err
	}

	slog.InfoContext(ctx, "workspace deleted",
		"workspace_id", workspaceID,
		"user_id", userID,
		"members", members,
		"channels", channels,
		"reactions", reactions,
		"conversations", conversations,
		"messages", messages,
	)
	s.publish(ctx, queue.Event{
		Type:        queue.EventWorkspaceDeleted,
		WorkspaceID: workspaceID,
		ActorUserID: userID,
	})

	return nil
}

// publish is best-effort: a stream outage must not fail the mutation that
// already committed.
func (s *workspaceService) publish(ctx context.Context, event queue.Event) {
	if s.producer == nil {
		return
	}
	if err := s.producer.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			"error", err,
			"event_type", event.Type,
			"workspace_id", event.WorkspaceID,
		)
	}
}
