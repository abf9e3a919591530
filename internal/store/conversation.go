package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"huddle.app/server/core/db/sqlc"
	"huddle.app/server/internal/model"
)

type conversationStore struct {
	queries *sqlc.Queries
}

func newConversationStore(queries *sqlc.Queries) ConversationStore {
	return &conversationStore{queries: queries}
}

func (s *conversationStore) GetByID(ctx context.Context, id int64) (*model.Conversation, error) {
	row, err := s.queries.GetConversation(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toConversationModel(row), nil
}

func (s *conversationStore) GetByMembers(ctx context.Context, workspaceID, memberOneID, memberTwoID int64) (*model.Conversation, error) {
	row, err := s.queries.GetConversationByMembers(ctx, sqlc.GetConversationByMembersParams{
		WorkspaceID: workspaceID,
		MemberOneID: memberOneID,
		MemberTwoID: memberTwoID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toConversationModel(row), nil
}

func (s *conversationStore) Create(ctx context.Context, conv *model.Conversation) error {
	row, err := s.queries.CreateConversation(ctx, sqlc.CreateConversationParams{
		ID:          conv.ID,
		WorkspaceID: conv.WorkspaceID,
		MemberOneID: conv.MemberOneID,
		MemberTwoID: conv.MemberTwoID,
	})
	if err != nil {
		return err
	}
	*conv = *toConversationModel(row)
	return nil
}

func (s *conversationStore) DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error) {
	return s.queries.DeleteConversationsByWorkspace(ctx, workspaceID)
}

func toConversationModel(row sqlc.Conversation) *model.Conversation {
	return &model.Conversation{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		MemberOneID: row.MemberOneID,
		MemberTwoID: row.MemberTwoID,
		CreatedAt:   row.CreatedAt.Time,
	}
}
