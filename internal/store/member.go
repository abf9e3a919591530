package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"huddle.app/server/core/db/sqlc"
	"huddle.app/server/internal/model"
)

// Postgres error code for unique_violation.
const uniqueViolationCode = "23505"

type memberStore struct {
	queries *sqlc.Queries
}

func newMemberStore(queries *sqlc.Queries) MemberStore {
	return &memberStore{queries: queries}
}

func (s *memberStore) GetByID(ctx context.Context, id int64) (*model.Member, error) {
	row, err := s.queries.GetMember(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMemberModel(row), nil
}

func (s *memberStore) GetByWorkspaceAndUser(ctx context.Context, workspaceID, userID int64) (*model.Member, error) {
	row, err := s.queries.GetMemberByWorkspaceAndUser(ctx, sqlc.GetMemberByWorkspaceAndUserParams{
		WorkspaceID: workspaceID,
		UserID:      userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMemberModel(row), nil
}

// Create inserts a membership row. The unique index on
// (workspace_id, user_id) turns a lost check-then-insert race into
// ErrAlreadyExists instead of a duplicate membership.
func (s *memberStore) Create(ctx context.Context, member *model.Member) error {
	if !member.Role.Valid() {
		return fmt.Errorf("invalid member role %q", member.Role)
	}
	row, err := s.queries.CreateMember(ctx, sqlc.CreateMemberParams{
		ID:          member.ID,
		WorkspaceID: member.WorkspaceID,
		UserID:      member.UserID,
		Role:        string(member.Role),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrAlreadyExists
		}
		return err
	}
	*member = *toMemberModel(row)
	return nil
}

func (s *memberStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteMember(ctx, id)
}

func (s *memberStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Member, error) {
	rows, err := s.queries.ListMembersByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return toMemberModels(rows), nil
}

func (s *memberStore) ListByUser(ctx context.Context, userID int64) ([]model.Member, error) {
	rows, err := s.queries.ListMembersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toMemberModels(rows), nil
}

func (s *memberStore) DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error) {
	return s.queries.DeleteMembersByWorkspace(ctx, workspaceID)
}

func toMemberModel(row sqlc.Member) *model.Member {
	return &model.Member{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		UserID:      row.UserID,
		Role:        model.Role(row.Role),
		CreatedAt:   row.CreatedAt.Time,
	}
}

func toMemberModels(rows []sqlc.Member) []model.Member {
	result := make([]model.Member, len(rows))
	for i, row := range rows {
		result[i] = *toMemberModel(row)
	}
	return result
}
