package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"huddle.app/server/core/db/sqlc"
	"huddle.app/server/internal/model"
)

type reactionStore struct {
	queries *sqlc.Queries
}

func newReactionStore(queries *sqlc.Queries) ReactionStore {
	return &reactionStore{queries: queries}
}

func (s *reactionStore) GetByMessageMemberValue(ctx context.Context, messageID, memberID int64, value string) (*model.Reaction, error) {
	row, err := s.queries.GetReactionByMessageMemberValue(ctx, sqlc.GetReactionByMessageMemberValueParams{
		MessageID: messageID,
		MemberID:  memberID,
		Value:     value,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toReactionModel(row), nil
}

func (s *reactionStore) Create(ctx context.Context, reaction *model.Reaction) error {
	row, err := s.queries.CreateReaction(ctx, sqlc.CreateReactionParams{
		ID:          reaction.ID,
		WorkspaceID: reaction.WorkspaceID,
		MessageID:   reaction.MessageID,
		MemberID:    reaction.MemberID,
		Value:       reaction.Value,
	})
	if err != nil {
		return err
	}
	*reaction = *toReactionModel(row)
	return nil
}

func (s *reactionStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteReaction(ctx, id)
}

func (s *reactionStore) ListByMessage(ctx context.Context, messageID int64) ([]model.Reaction, error) {
	rows, err := s.queries.ListReactionsByMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}
	return toReactionModels(rows), nil
}

func (s *reactionStore) DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error) {
	return s.queries.DeleteReactionsByWorkspace(ctx, workspaceID)
}

func toReactionModel(row sqlc.Reaction) *model.Reaction {
	return &model.Reaction{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		MessageID:   row.MessageID,
		MemberID:    row.MemberID,
		Value:       row.Value,
		CreatedAt:   row.CreatedAt.Time,
	}
}

func toReactionModels(rows []sqlc.Reaction) []model.Reaction {
	result := make([]model.Reaction, len(rows))
	for i, row := range rows {
		result[i] = *toReactionModel(row)
	}
	return result
}
