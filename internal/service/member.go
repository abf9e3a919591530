package service

import (
	"context"
	"errors"
	"fmt"

	"huddle.app/server/internal/model"
	"huddle.app/server/internal/store"
)

// MemberWithUser pairs a membership row with its resolved user identity.
type MemberWithUser struct {
	Member model.Member `json:"member"`
	User   model.User   `json:"user"`
}

type MemberService interface {
	Current(ctx context.Context, userID, workspaceID int64) (*model.Member, error)
	List(ctx context.Context, userID, workspaceID int64) ([]MemberWithUser, error)
}

type memberService struct {
	memberStore store.MemberStore
	userStore   store.UserStore
	membership  MembershipService
}

func NewMemberService(memberStore store.MemberStore, userStore store.UserStore, membership MembershipService) MemberService {
	return &memberService{
		memberStore: memberStore,
		userStore:   userStore,
		membership:  membership,
	}
}

// Current returns the caller's own membership in the workspace, or nil when
// the caller does not belong.
func (s *memberService) Current(ctx context.Context, userID, workspaceID int64) (*model.Member, error) {
	member, err := s.memberStore.GetByWorkspaceAndUser(ctx, workspaceID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting member: %w", err)
	}
	return member, nil
}

// List returns all members of the workspace with their users resolved.
// Non-members get an empty slice; members whose user row is gone are skipped.
func (s *memberService) List(ctx context.Context, userID, workspaceID int64) ([]MemberWithUser, error) {
	_, isMember, err := s.membership.RoleOf(ctx, workspaceID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return []MemberWithUser{}, nil
	}

	members, err := s.memberStore.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}

	result := make([]MemberWithUser, 0, len(members))
	for _, member := range members {
		user, err := s.userStore.GetByID(ctx, member.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("getting user: %w", err)
		}
		result = append(result, MemberWithUser{Member: member, User: *user})
	}
	return result, nil
}
