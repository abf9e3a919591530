package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"huddle.app/server/core/db/sqlc"
	"huddle.app/server/internal/model"
)

type channelStore struct {
	queries *sqlc.Queries
}

func newChannelStore(queries *sqlc.Queries) ChannelStore {
	return &channelStore{queries: queries}
}

func (s *channelStore) GetByID(ctx context.Context, id int64) (*model.Channel, error) {
	row, err := s.queries.GetChannel(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toChannelModel(row), nil
}

func (s *channelStore) Create(ctx context.Context, channel *model.Channel) error {
	row, err := s.queries.CreateChannel(ctx, sqlc.CreateChannelParams{
		ID:          channel.ID,
		WorkspaceID: channel.WorkspaceID,
		Name:        channel.Name,
	})
	if err != nil {
		return err
	}
	*channel = *toChannelModel(row)
	return nil
}

func (s *channelStore) UpdateName(ctx context.Context, id int64, name string) (*model.Channel, error) {
	row, err := s.queries.UpdateChannelName(ctx, sqlc.UpdateChannelNameParams{
		ID:   id,
		Name: name,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toChannelModel(row), nil
}

func (s *channelStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteChannel(ctx, id)
}

func (s *channelStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Channel, error) {
	rows, err := s.queries.ListChannelsByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return toChannelModels(rows), nil
}

func (s *channelStore) DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error) {
	return s.queries.DeleteChannelsByWorkspace(ctx, workspaceID)
}

func toChannelModel(row sqlc.Channel) *model.Channel {
	return &model.Channel{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		Name:        row.Name,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func toChannelModels(rows []sqlc.Channel) []model.Channel {
	result := make([]model.Channel, len(rows))
	for i, row := range rows {
		result[i] = *toChannelModel(row)
	}
	return result
}
