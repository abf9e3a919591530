package service_test

import (
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"huddle.app/server/common/id"
	"huddle.app/server/internal/model"
	"huddle.app/server/internal/queue"
	"huddle.app/server/internal/service"
	"huddle.app/server/internal/store"
)

var _ = Describe("WorkspaceService", func() {
	var (
		svc       service.WorkspaceService
		workspace *mockWorkspaceStore
		members   *mockMemberStore
		provider  *mockStoreProvider
		producer  *mockProducer
		ctx       context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		workspace = &mockWorkspaceStore{}
		members = &mockMemberStore{}
		provider = newMockStoreProvider()
		producer = &mockProducer{}
		svc = service.NewWorkspaceService(
			workspace,
			members,
			service.NewMembershipService(members),
			&mockTxRunner{provider: provider},
			producer,
		)
		Expect(id.Init(1)).To(Succeed())
	})

	Describe("Create", func() {
		It("creates the workspace, admin membership, and default channel together", func() {
			var created *model.Workspace
			provider.workspaces.createFn = func(_ context.Context, ws *model.Workspace) error {
				created = ws
				Expect(ws.Name).To(Equal("Acme"))
				Expect(ws.OwnerUserID).To(Equal(int64(10)))
				return nil
			}
			provider.members.createFn = func(_ context.Context, member *model.Member) error {
				Expect(member.WorkspaceID).To(Equal(created.ID))
				Expect(member.UserID).To(Equal(int64(10)))
				Expect(member.Role).To(Equal(model.RoleAdmin))
				return nil
			}
			provider.channels.createFn = func(_ context.Context, channel *model.Channel) error {
				Expect(channel.WorkspaceID).To(Equal(created.ID))
				Expect(channel.Name).To(Equal("general"))
				return nil
			}

			ws, err := svc.Create(ctx, 10, "Acme")
			Expect(err).NotTo(HaveOccurred())
			Expect(ws.ID).NotTo(BeZero())
			Expect(provider.workspaces.createCalls).To(Equal(1))
			Expect(provider.members.createCalls).To(Equal(1))
			Expect(provider.channels.createCalls).To(Equal(1))
		})

		It("generates a six character lowercase join code", func() {
			ws, err := svc.Create(ctx, 10, "Acme")
			Expect(err).NotTo(HaveOccurred())
			Expect(ws.JoinCode).To(HaveLen(6))
			Expect(ws.JoinCode).To(Equal(strings.ToLower(ws.JoinCode)))
		})

		It("rejects names shorter than three characters", func() {
			_, err := svc.Create(ctx, 10, "ab")
			Expect(err).To(MatchError(service.ErrInvalidName))
			Expect(provider.workspaces.createCalls).To(BeZero())
		})

		It("rejects names that are only whitespace padding", func() {
			_, err := svc.Create(ctx, 10, "  a  ")
			Expect(err).To(MatchError(service.ErrInvalidName))
		})

		It("publishes a created event", func() {
			ws, err := svc.Create(ctx, 10, "Acme")
			Expect(err).NotTo(HaveOccurred())
			Expect(producer.events).To(HaveLen(1))
			Expect(producer.events[0].Type).To(Equal(queue.EventWorkspaceCreated))
			Expect(producer.events[0].WorkspaceID).To(Equal(ws.ID))
		})

		It("does not create the membership when the workspace insert fails", func() {
			provider.workspaces.createFn = func(_ context.Context, _ *model.Workspace) error {
				return errors.New("insert failed")
			}

			_, err := svc.Create(ctx, 10, "Acme")
			Expect(err).To(HaveOccurred())
			Expect(provider.members.createCalls).To(BeZero())
			Expect(producer.events).To(BeEmpty())
		})
	})

	Describe("Join", func() {
		BeforeEach(func() {
			workspace.getByIDFn = func(_ context.Context, wsID int64) (*model.Workspace, error) {
				if wsID != 1 {
					return nil, store.ErrNotFound
				}
				return &model.Workspace{ID: 1, Name: "Acme", JoinCode: "abc123"}, nil
			}
		})

		It("adds the caller as a regular member", func() {
			member, err := svc.Join(ctx, 20, 1, "abc123")
			Expect(err).NotTo(HaveOccurred())
			Expect(member.WorkspaceID).To(Equal(int64(1)))
			Expect(member.UserID).To(Equal(int64(20)))
			Expect(member.Role).To(Equal(model.RoleMember))
			Expect(members.createCalls).To(Equal(1))
		})

		It("accepts a mixed-case join code", func() {
			_, err := svc.Join(ctx, 20, 1, "ABC123")
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects a wrong join code", func() {
			_, err := svc.Join(ctx, 20, 1, "zzzzzz")
			Expect(err).To(MatchError(service.ErrInvalidJoinCode))
			Expect(members.createCalls).To(BeZero())
		})

		It("reports a missing workspace before validating the code", func() {
			_, err := svc.Join(ctx, 20, 99, "abc123")
			Expect(err).To(MatchError(service.ErrWorkspaceNotFound))
		})

		It("rejects a caller who is already a member", func() {
			members.getByWorkspaceAndUserFn = func(_ context.Context, wsID, userID int64) (*model.Member, error) {
				return &model.Member{ID: 5, WorkspaceID: wsID, UserID: userID, Role: model.RoleMember}, nil
			}

			_, err := svc.Join(ctx, 20, 1, "abc123")
			Expect(err).To(MatchError(service.ErrAlreadyMember))
			Expect(members.createCalls).To(BeZero())
		})

		It("maps a lost insert race to already-member", func() {
			members.createFn = func(_ context.Context, _ *model.Member) error {
				return store.ErrAlreadyExists
			}

			_, err := svc.Join(ctx, 20, 1, "abc123")
			Expect(err).To(MatchError(service.ErrAlreadyMember))
		})

		It("publishes a joined event", func() {
			_, err := svc.Join(ctx, 20, 1, "abc123")
			Expect(err).NotTo(HaveOccurred())
			Expect(producer.events).To(HaveLen(1))
			Expect(producer.events[0].Type).To(Equal(queue.EventMemberJoined))
		})
	})

	Describe("RotateJoinCode", func() {
		It("overwrites the code for admins", func() {
			members.getByWorkspaceAndUserFn = adminOf(1, 10)
			var newCode string
			workspace.updateJoinCodeFn = func(_ context.Context, wsID int64, joinCode string) (*model.Workspace, error) {
				newCode = joinCode
				return &model.Workspace{ID: wsID, JoinCode: joinCode}, nil
			}

			ws, err := svc.RotateJoinCode(ctx, 10, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(ws.JoinCode).To(Equal(newCode))
			Expect(newCode).To(HaveLen(6))
		})

		It("rejects non-admin members", func() {
			members.getByWorkspaceAndUserFn = memberOf(1, 20)

			_, err := svc.RotateJoinCode(ctx, 20, 1)
			Expect(err).To(MatchError(service.ErrUnauthorized))
		})

		It("rejects non-members", func() {
			_, err := svc.RotateJoinCode(ctx, 30, 1)
			Expect(err).To(MatchError(service.ErrUnauthorized))
		})
	})

	Describe("Rename", func() {
		It("updates the name for admins", func() {
			members.getByWorkspaceAndUserFn = adminOf(1, 10)

			ws, err := svc.Rename(ctx, 10, 1, "New Name")
			Expect(err).NotTo(HaveOccurred())
			Expect(ws.Name).To(Equal("New Name"))
		})

		It("enforces the minimum name length", func() {
			members.getByWorkspaceAndUserFn = adminOf(1, 10)

			_, err := svc.Rename(ctx, 10, 1, "ab")
			Expect(err).To(MatchError(service.ErrInvalidName))
		})

		It("rejects non-admin members", func() {
			members.getByWorkspaceAndUserFn = memberOf(1, 20)

			_, err := svc.Rename(ctx, 20, 1, "New Name")
			Expect(err).To(MatchError(service.ErrUnauthorized))
		})
	})

	Describe("ListForUser", func() {
		It("resolves each membership to its workspace", func() {
			members.listByUserFn = func(_ context.Context, userID int64) ([]model.Member, error) {
				return []model.Member{
					{ID: 1, WorkspaceID: 1, UserID: userID},
					{ID: 2, WorkspaceID: 2, UserID: userID},
				}, nil
			}
			workspace.getByIDFn = func(_ context.Context, wsID int64) (*model.Workspace, error) {
				return &model.Workspace{ID: wsID, Name: "ws"}, nil
			}

			workspaces, err := svc.ListForUser(ctx, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(workspaces).To(HaveLen(2))
		})

		It("skips memberships whose workspace is gone", func() {
			members.listByUserFn = func(_ context.Context, userID int64) ([]model.Member, error) {
				return []model.Member{
					{ID: 1, WorkspaceID: 1, UserID: userID},
					{ID: 2, WorkspaceID: 2, UserID: userID},
				}, nil
			}
			workspace.getByIDFn = func(_ context.Context, wsID int64) (*model.Workspace, error) {
				if wsID == 2 {
					return nil, store.ErrNotFound
				}
				return &model.Workspace{ID: wsID, Name: "ws"}, nil
			}

			workspaces, err := svc.ListForUser(ctx, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(workspaces).To(HaveLen(1))
			Expect(workspaces[0].ID).To(Equal(int64(1)))
		})

		It("returns an empty slice for a user with no memberships", func() {
			workspaces, err := svc.ListForUser(ctx, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(workspaces).To(BeEmpty())
		})
	})

	Describe("Preview", func() {
		It("returns the name and membership flag for members", func() {
			workspace.getByIDFn = func(_ context.Context, wsID int64) (*model.Workspace, error) {
				return &model.Workspace{ID: wsID, Name: "Acme"}, nil
			}
			members.getByWorkspaceAndUserFn = memberOf(1, 10)

			preview, err := svc.Preview(ctx, 10, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(*preview.Name).To(Equal("Acme"))
			Expect(preview.IsMember).To(BeTrue())
		})

		It("reports non-membership without hiding the name", func() {
			workspace.getByIDFn = func(_ context.Context, wsID int64) (*model.Workspace, error) {
				return &model.Workspace{ID: wsID, Name: "Acme"}, nil
			}

			preview, err := svc.Preview(ctx, 10, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(*preview.Name).To(Equal("Acme"))
			Expect(preview.IsMember).To(BeFalse())
		})

		It("returns an empty preview for a missing workspace", func() {
			preview, err := svc.Preview(ctx, 10, 99)
			Expect(err).NotTo(HaveOccurred())
			Expect(preview.Name).To(BeNil())
			Expect(preview.IsMember).To(BeFalse())
		})
	})

	Describe("Get", func() {
		It("returns the full workspace, join code included, for members", func() {
			workspace.getByIDFn = func(_ context.Context, wsID int64) (*model.Workspace, error) {
				return &model.Workspace{ID: wsID, Name: "Acme", JoinCode: "abc123"}, nil
			}
			members.getByWorkspaceAndUserFn = memberOf(1, 10)

			ws, err := svc.Get(ctx, 10, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(ws.JoinCode).To(Equal("abc123"))
		})

		It("returns nil without an error for non-members", func() {
			workspace.getByIDFn = func(_ context.Context, wsID int64) (*model.Workspace, error) {
				return &model.Workspace{ID: wsID, Name: "Acme"}, nil
			}

			ws, err := svc.Get(ctx, 10, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(ws).To(BeNil())
		})
	})

	Describe("Delete", func() {
		BeforeEach(func() {
			members.getByWorkspaceAndUserFn = adminOf(1, 10)
		})

		It("removes every owned collection before the workspace row", func() {
			var order []string
			provider.members.deleteByWorkspaceFn = func(_ context.Context, wsID int64) (int64, error) {
				Expect(wsID).To(Equal(int64(1)))
				order = append(order, "members")
				return 3, nil
			}
			provider.channels.deleteByWorkspaceFn = func(_ context.Context, _ int64) (int64, error) {
				order = append(order, "channels")
				return 2, nil
			}
			provider.reactions.deleteByWorkspaceFn = func(_ context.Context, _ int64) (int64, error) {
				order = append(order, "reactions")
				return 4, nil
			}
			provider.conversations.deleteByWorkspaceFn = func(_ context.Context, _ int64) (int64, error) {
				order = append(order, "conversations")
				return 1, nil
			}
			provider.messages.deleteByWorkspaceFn = func(_ context.Context, _ int64) (int64, error) {
				order = append(order, "messages")
				return 9, nil
			}
			provider.workspaces.deleteFn = func(_ context.Context, wsID int64) error {
				Expect(wsID).To(Equal(int64(1)))
				order = append(order, "workspace")
				return nil
			}

			Expect(svc.Delete(ctx, 10, 1)).To(Succeed())
			Expect(order).To(Equal([]string{"members", "channels", "reactions", "conversations", "messages", "workspace"}))
		})

		It("rejects non-admin members", func() {
			members.getByWorkspaceAndUserFn = memberOf(1, 20)

			err := svc.Delete(ctx, 20, 1)
			Expect(err).To(MatchError(service.ErrUnauthorized))
			Expect(provider.workspaces.deleteCalls).To(BeZero())
		})

		It("keeps the workspace when a collection delete fails", func() {
			provider.reactions.deleteByWorkspaceFn = func(_ context.Context, _ int64) (int64, error) {
				return 0, errors.New("delete failed")
			}

			err := svc.Delete(ctx, 10, 1)
			Expect(err).To(HaveOccurred())
			Expect(provider.workspaces.deleteCalls).To(BeZero())
			Expect(producer.events).To(BeEmpty())
		})

		It("publishes a deleted event", func() {
			Expect(svc.Delete(ctx, 10, 1)).To(Succeed())
			Expect(producer.events).To(HaveLen(1))
			Expect(producer.events[0].Type).To(Equal(queue.EventWorkspaceDeleted))
		})
	})
})

func adminOf(workspaceID, userID int64) func(ctx context.Context, wsID, uID int64) (*model.Member, error) {
	return func(_ context.Context, wsID, uID int64) (*model.Member, error) {
		if wsID == workspaceID && uID == userID {
			return &model.Member{ID: 100, WorkspaceID: wsID, UserID: uID, Role: model.RoleAdmin}, nil
		}
		return nil, store.ErrNotFound
	}
}

func memberOf(workspaceID, userID int64) func(ctx context.Context, wsID, uID int64) (*model.Member, error) {
	return func(_ context.Context, wsID, uID int64) (*model.Member, error) {
		if wsID == workspaceID && uID == userID {
			return &model.Member{ID: 200, WorkspaceID: wsID, UserID: uID, Role: model.RoleMember}, nil
		}
		return nil, store.ErrNotFound
	}
}
