package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"huddle.app/server/common/id"
	"huddle.app/server/internal/model"
	"huddle.app/server/internal/store"
)

var ErrMemberNotFound = errors.New("member not found")

type ConversationService interface {
	GetOrCreate(ctx context.Context, userID, workspaceID, otherMemberID int64) (*model.Conversation, error)
}

type conversationService struct {
	conversationStore store.ConversationStore
	memberStore       store.MemberStore
	membership        MembershipService
}

func NewConversationService(
	conversationStore store.ConversationStore,
	memberStore store.MemberStore,
	membership MembershipService,
) ConversationService {
	return &conversationService{
		conversationStore: conversationStore,
		memberStore:       memberStore,
		membership:        membership,
	}
}

// GetOrCreate returns the direct conversation between the caller and the
// given member, creating it on first use. Member order is not significant:
// both lookups hit the same row.
func (s *conversationService) GetOrCreate(ctx context.Context, userID, workspaceID, otherMemberID int64) (*model.Conversation, error) {
	self, err := s.membership.RequireMember(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}

	other, err := s.memberStore.GetByID(ctx, otherMemberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("getting member: %w", err)
	}
	if other.WorkspaceID != workspaceID {
		return nil, ErrMemberNotFound
	}

	conversation, err := s.conversationStore.GetByMembers(ctx, workspaceID, self.ID, other.ID)
	if err == nil {
		return conversation, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("getting conversation: %w", err)
	}

	conversation = &model.Conversation{
		ID:          id.New(),
		WorkspaceID: workspaceID,
		MemberOneID: self.ID,
		MemberTwoID: other.ID,
	}
	if err := s.conversationStore.Create(ctx, conversation); err != nil {
		slog.ErrorContext(ctx, "failed to create conversation",
			"error", err,
			"workspace_id", workspaceID,
		)
		return nil, fmt.Errorf("creating conversation: %w", err)
	}

	slog.InfoContext(ctx, "conversation created",
		"conversation_id", conversation.ID,
		"workspace_id", workspaceID,
	)
	return conversation, nil
}
