package service

import (
	"context"
	"errors"
	"fmt"

	"huddle.app/server/internal/model"
	"huddle.app/server/internal/store"
)

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrUnauthorized    = errors.New("not authorized")
)

// MembershipService answers the single authorization question every
// workspace operation asks: what role, if any, does this user hold here.
type MembershipService interface {
	RoleOf(ctx context.Context, workspaceID, userID int64) (model.Role, bool, error)
	RequireMember(ctx context.Context, workspaceID, userID int64) (*model.Member, error)
	RequireAdmin(ctx context.Context, workspaceID, userID int64) (*model.Member, error)
}

type membershipService struct {
	memberStore store.MemberStore
}

func NewMembershipService(memberStore store.MemberStore) MembershipService {
	return &membershipService{memberStore: memberStore}
}

func (s *membershipService) RoleOf(ctx context.Context, workspaceID, userID int64) (model.Role, bool, error) {
	member, err := s.memberStore.GetByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("getting member: %w", err)
	}
	return member.Role, true, nil
}

func (s *membershipService) RequireMember(ctx context.Context, workspaceID, userID int64) (*model.Member, error) {
	member, err := s.memberStore.GetByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("getting member: %w", err)
	}
	return member, nil
}

func (s *membershipService) RequireAdmin(ctx context.Context, workspaceID, userID int64) (*model.Member, error) {
	member, err := s.RequireMember(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	if member.Role != model.RoleAdmin {
		return nil, ErrUnauthorized
	}
	return member, nil
}
