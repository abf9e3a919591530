package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"huddle.app/server/internal/model"
	"huddle.app/server/internal/service"
	"huddle.app/server/internal/store"
)

var _ = Describe("MembershipService", func() {
	var (
		svc     service.MembershipService
		members *mockMemberStore
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		members = &mockMemberStore{}
		svc = service.NewMembershipService(members)
	})

	Describe("RoleOf", func() {
		It("returns the role for members", func() {
			members.getByWorkspaceAndUserFn = adminOf(1, 10)

			role, ok, err := svc.RoleOf(ctx, 1, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(role).To(Equal(model.RoleAdmin))
		})

		It("reports absence without an error", func() {
			role, ok, err := svc.RoleOf(ctx, 1, 99)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
			Expect(role).To(BeEmpty())
		})

		It("propagates store failures", func() {
			members.getByWorkspaceAndUserFn = func(_ context.Context, _, _ int64) (*model.Member, error) {
				return nil, errors.New("connection lost")
			}

			_, _, err := svc.RoleOf(ctx, 1, 10)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("RequireMember", func() {
		It("returns the member row", func() {
			members.getByWorkspaceAndUserFn = memberOf(1, 20)

			member, err := svc.RequireMember(ctx, 1, 20)
			Expect(err).NotTo(HaveOccurred())
			Expect(member.Role).To(Equal(model.RoleMember))
		})

		It("rejects non-members", func() {
			_, err := svc.RequireMember(ctx, 1, 99)
			Expect(err).To(MatchError(service.ErrUnauthorized))
		})

		It("does not leak ErrNotFound", func() {
			_, err := svc.RequireMember(ctx, 1, 99)
			Expect(errors.Is(err, store.ErrNotFound)).To(BeFalse())
		})
	})

	Describe("RequireAdmin", func() {
		It("accepts admins", func() {
			members.getByWorkspaceAndUserFn = adminOf(1, 10)

			member, err := svc.RequireAdmin(ctx, 1, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(member.Role).To(Equal(model.RoleAdmin))
		})

		It("rejects regular members", func() {
			members.getByWorkspaceAndUserFn = memberOf(1, 20)

			_, err := svc.RequireAdmin(ctx, 1, 20)
			Expect(err).To(MatchError(service.ErrUnauthorized))
		})
	})
})
