package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tekimax.app/docs/internal/model"
	"tekimax.app/docs/internal/service"
	"tekimax.app/docs/internal/store"
)

var _ = Describe("WorkspaceTypeService", func() {
	const (
		ownerID  int64 = 1
		memberID int64 = 3
		wsID     int64 = 100
	)

	var (
		ctx    context.Context
		stores *mockStoreProvider
		svc    service.WorkspaceTypeService
	)

	BeforeEach(func() {
		ctx = context.Background()
		stores = newMockStoreProvider()
		stores.workspaces.getByIDFn = func(_ context.Context, id int64) (*model.Workspace, error) {
			return workspaceWith(id, model.WorkspaceTypeTeam, ownerID, map[int64]model.MemberRole{
				ownerID:  model.MemberRoleOwner,
				memberID: model.MemberRoleMember,
			}), nil
		}
		svc = service.NewWorkspaceTypeService(stores, &mockTxRunner{stores: stores})
	})

	Describe("List", func() {
		It("should return only the defaults without a workspace", func() {
			list, err := svc.List(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(list.DefaultTypes).To(HaveLen(3))
			Expect(list.DefaultTypes[0].ID).To(Equal("personal"))
			Expect(list.CustomTypes).To(BeEmpty())
		})

		It("should prefix custom types", func() {
			stores.types.listByWorkspaceFn = func(_ context.Context, _ int64) ([]model.WorkspaceTypeDef, error) {
				return []model.WorkspaceTypeDef{{ID: 1, Name: "Research", WorkspaceID: wsID}}, nil
			}
			id := wsID
			list, err := svc.List(ctx, &id)
			Expect(err).NotTo(HaveOccurred())
			Expect(list.CustomTypes).To(ConsistOf(model.WorkspaceTypeOption{ID: "custom:Research", Name: "Research"}))
		})
	})

	Describe("Create", func() {
		It("should trim and store the type", func() {
			desc := "  for research  "
			def, err := svc.Create(ctx, ownerID, wsID, "  Research ", &desc)
			Expect(err).NotTo(HaveOccurred())
			Expect(def.Name).To(Equal("Research"))
			Expect(*def.Description).To(Equal("for research"))
			Expect(*def.CreatedBy).To(Equal(ownerID))
		})

		It("should reject duplicate names", func() {
			stores.types.getByNameFn = func(_ context.Context, name string) (*model.WorkspaceTypeDef, error) {
				return &model.WorkspaceTypeDef{ID: 1, Name: name}, nil
			}
			_, err := svc.Create(ctx, ownerID, wsID, "Research", nil)
			Expect(err).To(MatchError(service.ErrWorkspaceTypeExists))
		})

		It("should reject plain members", func() {
			_, err := svc.Create(ctx, memberID, wsID, "Research", nil)
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("should reject blank names", func() {
			_, err := svc.Create(ctx, ownerID, wsID, "   ", nil)
			Expect(err).To(MatchError(service.ErrInvalidWorkspaceTypeName))
		})
	})

	Describe("Remove", func() {
		BeforeEach(func() {
			stores.types.getByIDFn = func(_ context.Context, id int64) (*model.WorkspaceTypeDef, error) {
				return &model.WorkspaceTypeDef{ID: id, Name: "Research", WorkspaceID: wsID}, nil
			}
		})

		It("should delete an unused type", func() {
			Expect(svc.Remove(ctx, ownerID, 1)).To(Succeed())
			Expect(stores.types.deleteCalls).To(Equal(1))
		})

		It("should refuse while a workspace uses it", func() {
			stores.workspaces.countByCustomTypeFn = func(_ context.Context, name string) (int64, error) {
				Expect(name).To(Equal("Research"))
				return 1, nil
			}
			Expect(svc.Remove(ctx, ownerID, 1)).To(MatchError(service.ErrWorkspaceTypeInUse))
			Expect(stores.types.deleteCalls).To(BeZero())
		})

		It("should return ErrWorkspaceTypeNotFound", func() {
			stores.types.getByIDFn = func(_ context.Context, _ int64) (*model.WorkspaceTypeDef, error) {
				return nil, store.ErrNotFound
			}
			Expect(svc.Remove(ctx, ownerID, 1)).To(MatchError(service.ErrWorkspaceTypeNotFound))
		})
	})
})
