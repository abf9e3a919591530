package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"huddle.app/server/common/id"
	"huddle.app/server/internal/model"
	"huddle.app/server/internal/store"
)

var (
	ErrEmptyMessageBody = errors.New("message body cannot be empty")
	ErrInvalidTarget    = errors.New("message must target exactly one channel or conversation")
	ErrChannelNotFound  = errors.New("channel not found")
	ErrParentNotFound   = errors.New("parent message not found")
)

const defaultMessagePageSize = 50

// PostMessageParams names the destination of a new message. Exactly one of
// ChannelID and ConversationID must be set; threaded replies inherit the
// conversation of their parent.
type PostMessageParams struct {
	WorkspaceID     int64
	ChannelID       *int64
	ConversationID  *int64
	ParentMessageID *int64
	Body            string
}

type MessageService interface {
	Post(ctx context.Context, userID int64, params PostMessageParams) (*model.Message, error)
	ListChannel(ctx context.Context, userID, channelID int64, limit int32) ([]model.Message, error)
	ListConversation(ctx context.Context, userID, conversationID int64, limit int32) ([]model.Message, error)
}

type messageService struct {
	messageStore      store.MessageStore
	channelStore      store.ChannelStore
	conversationStore store.ConversationStore
	membership        MembershipService
}

func NewMessageService(
	messageStore store.MessageStore,
	channelStore store.ChannelStore,
	conversationStore store.ConversationStore,
	membership MembershipService,
) MessageService {
	return &messageService{
		messageStore:      messageStore,
		channelStore:      channelStore,
		conversationStore: conversationStore,
		membership:        membership,
	}
}

func (s *messageService) Post(ctx context.Context, userID int64, params PostMessageParams) (*model.Message, error) {
	if strings.TrimSpace(params.Body) == "" {
		return nil, ErrEmptyMessageBody
	}
	if (params.ChannelID == nil) == (params.ConversationID == nil) {
		return nil, ErrInvalidTarget
	}

	member, err := s.membership.RequireMember(ctx, params.WorkspaceID, userID)
	if err != nil {
		return nil, err
	}

	if params.ChannelID != nil {
		channel, err := s.channelStore.GetByID(ctx, *params.ChannelID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrChannelNotFound
			}
			return nil, fmt.Errorf("getting channel: %w", err)
		}
		if channel.WorkspaceID != params.WorkspaceID {
			return nil, ErrChannelNotFound
		}
	}

	if params.ParentMessageID != nil {
		parent, err := s.messageStore.GetByID(ctx, *params.ParentMessageID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, fmt.Errorf("getting parent message: %w", err)
		}
		if parent.WorkspaceID != params.WorkspaceID {
			return nil, ErrParentNotFound
		}
	}

	message := &model.Message{
		ID:              id.New(),
		WorkspaceID:     params.WorkspaceID,
		ChannelID:       params.ChannelID,
		ConversationID:  params.ConversationID,
		MemberID:        member.ID,
		ParentMessageID: params.ParentMessageID,
		Body:            params.Body,
	}
	if err := s.messageStore.Create(ctx, message); err != nil {
		slog.ErrorContext(ctx, "failed to create message",
			"error", err,
			"workspace_id", params.WorkspaceID,
		)
		return nil, fmt.Errorf("creating message: %w", err)
	}

	return message, nil
}

func (s *messageService) ListChannel(ctx context.Context, userID, channelID int64, limit int32) ([]model.Message, error) {
	channel, err := s.channelStore.GetByID(ctx, channelID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []model.Message{}, nil
		}
		return nil, fmt.Errorf("getting channel: %w", err)
	}

	_, isMember, err := s.membership.RoleOf(ctx, channel.WorkspaceID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return []model.Message{}, nil
	}

	if limit <= 0 {
		limit = defaultMessagePageSize
	}
	messages, err := s.messageStore.ListByChannel(ctx, channelID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	return messages, nil
}

func (s *messageService) ListConversation(ctx context.Context, userID, conversationID int64, limit int32) ([]model.Message, error) {
	conversation, err := s.conversationStore.GetByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []model.Message{}, nil
		}
		return nil, fmt.Errorf("getting conversation: %w", err)
	}

	_, isMember, err := s.membership.RoleOf(ctx, conversation.WorkspaceID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return []model.Message{}, nil
	}

	if limit <= 0 {
		limit = defaultMessagePageSize
	}
	messages, err := s.messageStore.ListByConversation(ctx, conversationID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	return messages, nil
}
