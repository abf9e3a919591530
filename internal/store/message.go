package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"huddle.app/server/core/db/sqlc"
	"huddle.app/server/internal/model"
)

type messageStore struct {
	queries *sqlc.Queries
}

func newMessageStore(queries *sqlc.Queries) MessageStore {
	return &messageStore{queries: queries}
}

func (s *messageStore) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	row, err := s.queries.GetMessage(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMessageModel(row), nil
}

func (s *messageStore) Create(ctx context.Context, msg *model.Message) error {
	row, err := s.queries.CreateMessage(ctx, sqlc.CreateMessageParams{
		ID:              msg.ID,
		WorkspaceID:     msg.WorkspaceID,
		ChannelID:       msg.ChannelID,
		ConversationID:  msg.ConversationID,
		MemberID:        msg.MemberID,
		ParentMessageID: msg.ParentMessageID,
		Body:            msg.Body,
	})
	if err != nil {
		return err
	}
	*msg = *toMessageModel(row)
	return nil
}

func (s *messageStore) ListByChannel(ctx context.Context, channelID int64, limit int32) ([]model.Message, error) {
	rows, err := s.queries.ListMessagesByChannel(ctx, sqlc.ListMessagesByChannelParams{
		ChannelID: &channelID,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}
	return toMessageModels(rows), nil
}

func (s *messageStore) ListByConversation(ctx context.Context, conversationID int64, limit int32) ([]model.Message, error) {
	rows, err := s.queries.ListMessagesByConversation(ctx, sqlc.ListMessagesByConversationParams{
		ConversationID: &conversationID,
		Limit:          limit,
	})
	if err != nil {
		return nil, err
	}
	return toMessageModels(rows), nil
}

func (s *messageStore) DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error) {
	return s.queries.DeleteMessagesByWorkspace(ctx, workspaceID)
}

func toMessageModel(row sqlc.Message) *model.Message {
	return &model.Message{
		ID:              row.ID,
		WorkspaceID:     row.WorkspaceID,
		ChannelID:       row.ChannelID,
		ConversationID:  row.ConversationID,
		MemberID:        row.MemberID,
		ParentMessageID: row.ParentMessageID,
		Body:            row.Body,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}

func toMessageModels(rows []sqlc.Message) []model.Message {
	result := make([]model.Message, len(rows))
	for i, row := range rows {
		result[i] = *toMessageModel(row)
	}
	return result
}
