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

var ErrMessageNotFound = errors.New("message not found")

type ReactionService interface {
	Toggle(ctx context.Context, userID, messageID int64, value string) (bool, error)
}

type reactionService struct {
	reactionStore store.ReactionStore
	messageStore  store.MessageStore
	membership    MembershipService
}

func NewReactionService(
	reactionStore store.ReactionStore,
	messageStore store.MessageStore,
	membership MembershipService,
) ReactionService {
	return &reactionService{
		reactionStore: reactionStore,
		messageStore:  messageStore,
		membership:    membership,
	}
}

// Toggle adds the caller's reaction to a message, or removes it if the same
// reaction already exists. Returns true when the reaction was added.
func (s *reactionService) Toggle(ctx context.Context, userID, messageID int64, value string) (bool, error) {
	message, err := s.messageStore.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, ErrMessageNotFound
		}
		return false, fmt.Errorf("getting message: %w", err)
	}

	member, err := s.membership.RequireMember(ctx, message.WorkspaceID, userID)
	if err != nil {
		return false, err
	}

	existing, err := s.reactionStore.GetByMessageMemberValue(ctx, messageID, member.ID, value)
	if err == nil {
		if err := s.reactionStore.Delete(ctx, existing.ID); err != nil {
			return false, fmt.Errorf("deleting reaction: %w", err)
		}
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, fmt.Errorf("getting reaction: %w", err)
	}

	reaction := &model.Reaction{
		ID:          id.New(),
		WorkspaceID: message.WorkspaceID,
		MessageID:   messageID,
		MemberID:    member.ID,
		Value:       value,
	}
	if err := s.reactionStore.Create(ctx, reaction); err != nil {
		slog.ErrorContext(ctx, "failed to create reaction",
			"error", err,
			"message_id", messageID,
		)
		return false, fmt.Errorf("creating reaction: %w", err)
	}
	return true, nil
}
