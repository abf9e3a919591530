package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"huddle.app/server/common/id"
	"huddle.app/server/internal/model"
	"huddle.app/server/internal/service"
	"huddle.app/server/internal/store"
)

var _ = Describe("ReactionService", func() {
	var (
		svc       service.ReactionService
		reactions *mockReactionStore
		messages  *mockMessageStore
		members   *mockMemberStore
		ctx       context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		reactions = &mockReactionStore{}
		messages = &mockMessageStore{}
		members = &mockMemberStore{}
		svc = service.NewReactionService(reactions, messages, service.NewMembershipService(members))
		Expect(id.Init(1)).To(Succeed())

		messages.getByIDFn = func(_ context.Context, msgID int64) (*model.Message, error) {
			return &model.Message{ID: msgID, WorkspaceID: 1}, nil
		}
		members.getByWorkspaceAndUserFn = memberOf(1, 20)
	})

	It("adds a reaction the first time", func() {
		reactions.createFn = func(_ context.Context, reaction *model.Reaction) error {
			Expect(reaction.MessageID).To(Equal(int64(7)))
			Expect(reaction.MemberID).To(Equal(int64(200)))
			Expect(reaction.Value).To(Equal("thumbsup"))
			return nil
		}

		added, err := svc.Toggle(ctx, 20, 7, "thumbsup")
		Expect(err).NotTo(HaveOccurred())
		Expect(added).To(BeTrue())
	})

	It("removes the same reaction on the second toggle", func() {
		reactions.getByMessageMemberValueFn = func(_ context.Context, msgID, memberID int64, value string) (*model.Reaction, error) {
			return &model.Reaction{ID: 50, MessageID: msgID, MemberID: memberID, Value: value}, nil
		}
		deleted := false
		reactions.deleteFn = func(_ context.Context, reactionID int64) error {
			Expect(reactionID).To(Equal(int64(50)))
			deleted = true
			return nil
		}

		added, err := svc.Toggle(ctx, 20, 7, "thumbsup")
		Expect(err).NotTo(HaveOccurred())
		Expect(added).To(BeFalse())
		Expect(deleted).To(BeTrue())
	})

	It("rejects reactions from outside the workspace", func() {
		_, err := svc.Toggle(ctx, 99, 7, "thumbsup")
		Expect(err).To(MatchError(service.ErrUnauthorized))
	})

	It("reports a missing message", func() {
		messages.getByIDFn = func(_ context.Context, _ int64) (*model.Message, error) {
			return nil, store.ErrNotFound
		}

		_, err := svc.Toggle(ctx, 20, 7, "thumbsup")
		Expect(err).To(MatchError(service.ErrMessageNotFound))
	})
})
