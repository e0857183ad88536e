package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tekimax.app/docs/internal/model"
	"tekimax.app/docs/internal/service"
	"tekimax.app/docs/internal/store"
)

var _ = Describe("WorkspaceService", func() {
	const (
		ownerID  int64 = 1
		adminID  int64 = 2
		memberID int64 = 3
	)

	var (
		ctx     context.Context
		stores  *mockStoreProvider
		tx      *mockTxRunner
		storage *mockStorage
		svc     service.WorkspaceService
		now     time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		stores = newMockStoreProvider()
		tx = &mockTxRunner{stores: stores}
		storage = &mockStorage{}
		now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		svc = service.NewWorkspaceService(stores, tx, storage, func() time.Time { return now })
	})

	Describe("Create", func() {
		identity := model.Identity{UserID: ownerID, Email: "alice@example.com", Name: "Alice"}

		BeforeEach(func() {
			stores.users.getByIDFn = func(_ context.Context, id int64) (*model.User, error) {
				return &model.User{ID: id, Email: "alice@example.com"}, nil
			}
		})

		It("should create the workspace with the caller as sole owner", func() {
			var created *model.Workspace
			stores.workspaces.createFn = func(_ context.Context, ws *model.Workspace) error {
				created = ws
				return nil
			}

			ws, err := svc.Create(ctx, identity, service.CreateWorkspaceInput{
				Name: "  Acme  ",
				Type: model.WorkspaceTypeTeam,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(ws).To(BeIdenticalTo(created))
			Expect(ws.Name).To(Equal("Acme"))
			Expect(ws.OwnerID).To(Equal(ownerID))
			Expect(ws.Members).To(ConsistOf(model.Membership{
				UserID:   ownerID,
				Role:     model.MemberRoleOwner,
				JoinedAt: now,
			}))
			Expect(ws.CustomType).To(BeNil())
		})

		It("should provision the user when the session user is missing", func() {
			stores.users.getByIDFn = nil
			var provisioned *model.User
			stores.users.createFn = func(_ context.Context, u *model.User) error {
				provisioned = u
				return nil
			}

			ws, err := svc.Create(ctx, model.Identity{Email: "dana.lee@example.com"}, service.CreateWorkspaceInput{
				Name: "Dana", Type: model.WorkspaceTypeTeam,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(provisioned.Name).To(Equal("dana.lee"))
			Expect(*provisioned.Username).To(Equal("danalee"))
			Expect(ws.OwnerID).To(Equal(provisioned.ID))
			Expect(provisioned.AvatarURL).To(BeNil())
		})

		It("should carry the identity's name and picture onto the provisioned user", func() {
			stores.users.getByIDFn = nil
			var provisioned *model.User
			stores.users.createFn = func(_ context.Context, u *model.User) error {
				provisioned = u
				return nil
			}
			picture := "https://provider.test/dana.png"

			_, err := svc.Create(ctx, model.Identity{
				Email:      "dana@example.com",
				Name:       "Dana Lee",
				PictureURL: &picture,
			}, service.CreateWorkspaceInput{Name: "Dana", Type: model.WorkspaceTypeTeam})

			Expect(err).NotTo(HaveOccurred())
			Expect(provisioned.Name).To(Equal("Dana Lee"))
			Expect(provisioned.AvatarURL).To(HaveValue(Equal(picture)))
		})

		It("should drop a derived username that is taken", func() {
			stores.users.getByIDFn = nil
			stores.users.getByUsernameFn = func(_ context.Context, username string) (*model.User, error) {
				return &model.User{ID: 9, Username: &username}, nil
			}
			var provisioned *model.User
			stores.users.createFn = func(_ context.Context, u *model.User) error {
				provisioned = u
				return nil
			}

			_, err := svc.Create(ctx, model.Identity{Email: "dana@example.com"}, service.CreateWorkspaceInput{
				Name: "Dana", Type: model.WorkspaceTypeTeam,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(provisioned.Username).To(BeNil())
		})

		It("should require a custom type name for custom workspaces", func() {
			_, err := svc.Create(ctx, identity, service.CreateWorkspaceInput{Name: "X", Type: model.WorkspaceTypeCustom})
			Expect(err).To(MatchError(service.ErrInvalidWorkspaceType))

			blank := "  "
			_, err = svc.Create(ctx, identity, service.CreateWorkspaceInput{Name: "X", Type: model.WorkspaceTypeCustom, CustomType: &blank})
			Expect(err).To(MatchError(service.ErrInvalidWorkspaceType))
		})

		It("should reject an empty name and unknown types", func() {
			_, err := svc.Create(ctx, identity, service.CreateWorkspaceInput{Name: " ", Type: model.WorkspaceTypeTeam})
			Expect(err).To(MatchError(service.ErrInvalidWorkspaceName))

			_, err = svc.Create(ctx, identity, service.CreateWorkspaceInput{Name: "X", Type: "enterprise"})
			Expect(err).To(MatchError(service.ErrInvalidWorkspaceType))
		})

		It("should allow only one personal workspace per owner", func() {
			stores.workspaces.getPersonalFn = func(_ context.Context, id int64) (*model.Workspace, error) {
				return workspaceWith(10, model.WorkspaceTypePersonal, id, nil), nil
			}

			_, err := svc.Create(ctx, identity, service.CreateWorkspaceInput{Name: "Me", Type: model.WorkspaceTypePersonal})
			Expect(err).To(MatchError(service.ErrPersonalWorkspaceExists))
			Expect(stores.workspaces.createCalls).To(BeZero())
		})

		It("should resolve a logo key into a URL", func() {
			key := "workspaces/1/logo/2"
			ws, err := svc.Create(ctx, identity, service.CreateWorkspaceInput{
				Name:     "Acme",
				Type:     model.WorkspaceTypeTeam,
				Settings: &model.WorkspaceSettings{LogoKey: &key},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(*ws.Settings.LogoURL).To(ContainSubstring(key))
		})

		It("should persist the logo key but not the presigned URL", func() {
			key := "workspaces/1/logo/2"
			var persisted model.WorkspaceSettings
			stores.workspaces.createFn = func(_ context.Context, ws *model.Workspace) error {
				persisted = ws.Settings
				return nil
			}

			ws, err := svc.Create(ctx, identity, service.CreateWorkspaceInput{
				Name:     "Acme",
				Type:     model.WorkspaceTypeTeam,
				Settings: &model.WorkspaceSettings{LogoKey: &key},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(persisted.LogoKey).To(HaveValue(Equal(key)))
			Expect(persisted.LogoURL).To(BeNil())
			Expect(ws.Settings.LogoURL).NotTo(BeNil())
		})
	})

	Describe("Update", func() {
		var ws *model.Workspace

		BeforeEach(func() {
			ws = workspaceWith(100, model.WorkspaceTypeTeam, ownerID, map[int64]model.MemberRole{
				ownerID:  model.MemberRoleOwner,
				adminID:  model.MemberRoleAdmin,
				memberID: model.MemberRoleMember,
			})
			stores.workspaces.getByIDFn = func(_ context.Context, _ int64) (*model.Workspace, error) {
				return ws, nil
			}
		})

		It("should let admins rename", func() {
			name := "Renamed"
			updated, err := svc.Update(ctx, adminID, ws.ID, service.UpdateWorkspaceInput{Name: &name})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Renamed"))
		})

		It("should reject plain members", func() {
			name := "Renamed"
			_, err := svc.Update(ctx, memberID, ws.ID, service.UpdateWorkspaceInput{Name: &name})
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("should switch to a custom type", func() {
			custom := model.WorkspaceTypeCustom
			label := "Research"
			updated, err := svc.Update(ctx, ownerID, ws.ID, service.UpdateWorkspaceInput{Type: &custom, CustomType: &label})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Type).To(Equal(model.WorkspaceTypeCustom))
			Expect(*updated.CustomType).To(Equal("Research"))
		})

		It("should store a new logo key without its presigned URL", func() {
			key := "workspaces/100/logo/3"
			var persisted model.WorkspaceSettings
			stores.workspaces.updateFn = func(_ context.Context, w *model.Workspace) error {
				persisted = w.Settings
				return nil
			}

			updated, err := svc.Update(ctx, adminID, ws.ID, service.UpdateWorkspaceInput{
				Settings: &model.WorkspaceSettings{LogoKey: &key},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(persisted.LogoKey).To(HaveValue(Equal(key)))
			Expect(persisted.LogoURL).To(BeNil())
			Expect(*updated.Settings.LogoURL).To(ContainSubstring(key))
		})

		It("should not turn a shared workspace into a personal one", func() {
			personal := model.WorkspaceTypePersonal
			_, err := svc.Update(ctx, ownerID, ws.ID, service.UpdateWorkspaceInput{Type: &personal})
			Expect(err).To(MatchError(service.ErrInvalidWorkspaceType))
		})
	})

	Describe("Remove", func() {
		var ws *model.Workspace

		BeforeEach(func() {
			ws = workspaceWith(100, model.WorkspaceTypeTeam, ownerID, map[int64]model.MemberRole{
				ownerID: model.MemberRoleOwner,
				adminID: model.MemberRoleAdmin,
			})
			stores.workspaces.getByIDFn = func(_ context.Context, _ int64) (*model.Workspace, error) {
				return ws, nil
			}
		})

		It("should delete the workspace and its invites for the owner", func() {
			var invitesFor int64
			stores.invites.deleteByWorkspaceFn = func(_ context.Context, workspaceID int64) (int64, error) {
				invitesFor = workspaceID
				return 2, nil
			}
			key := "workspaces/100/logo/1"
			ws.Settings.LogoKey = &key

			Expect(svc.Remove(ctx, ownerID, ws.ID)).To(Succeed())
			Expect(invitesFor).To(Equal(ws.ID))
			Expect(stores.workspaces.deleteCalls).To(Equal(1))
			Expect(storage.removed).To(ConsistOf(key))
		})

		It("should reject admins", func() {
			err := svc.Remove(ctx, adminID, ws.ID)
			Expect(err).To(MatchError(service.ErrOwnerOnly))
			Expect(errors.Is(err, service.ErrForbidden)).To(BeTrue())
			Expect(stores.workspaces.deleteCalls).To(BeZero())
		})

		It("should never delete a personal workspace, even for its owner", func() {
			ws.Type = model.WorkspaceTypePersonal
			err := svc.Remove(ctx, ownerID, ws.ID)
			Expect(err).To(MatchError(service.ErrPersonalWorkspace))
			Expect(stores.workspaces.deleteCalls).To(BeZero())
		})

		It("should report a personal workspace before checking the role", func() {
			ws.Type = model.WorkspaceTypePersonal
			err := svc.Remove(ctx, 999, ws.ID)
			Expect(err).To(MatchError(service.ErrPersonalWorkspace))
		})

		It("should return ErrWorkspaceNotFound", func() {
			stores.workspaces.getByIDFn = nil
			Expect(svc.Remove(ctx, ownerID, 1)).To(MatchError(service.ErrWorkspaceNotFound))
		})
	})

	Describe("ResolveActive", func() {
		var (
			personal = workspaceWith(1, model.WorkspaceTypePersonal, ownerID, map[int64]model.MemberRole{ownerID: model.MemberRoleOwner})
			team     = workspaceWith(2, model.WorkspaceTypeTeam, 50, map[int64]model.MemberRole{ownerID: model.MemberRoleMember})
		)

		It("should prefer the requested workspace when visible", func() {
			stores.workspaces.listForUserFn = func(_ context.Context, _ int64) ([]model.Workspace, error) {
				return []model.Workspace{*personal, *team}, nil
			}
			preferred := int64(2)
			ws, err := svc.ResolveActive(ctx, ownerID, &preferred)
			Expect(err).NotTo(HaveOccurred())
			Expect(ws.ID).To(Equal(int64(2)))
		})

		It("should fall back to the personal workspace", func() {
			stores.workspaces.listForUserFn = func(_ context.Context, _ int64) ([]model.Workspace, error) {
				return []model.Workspace{*team, *personal}, nil
			}
			hidden := int64(99)
			ws, err := svc.ResolveActive(ctx, ownerID, &hidden)
			Expect(err).NotTo(HaveOccurred())
			Expect(ws.ID).To(Equal(int64(1)))
		})

		It("should fall back to the first workspace", func() {
			stores.workspaces.listForUserFn = func(_ context.Context, _ int64) ([]model.Workspace, error) {
				return []model.Workspace{*team}, nil
			}
			ws, err := svc.ResolveActive(ctx, ownerID, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(ws.ID).To(Equal(int64(2)))
		})

		It("should return ErrNoWorkspace when there is nothing", func() {
			_, err := svc.ResolveActive(ctx, ownerID, nil)
			Expect(err).To(MatchError(service.ErrNoWorkspace))
		})
	})

	Describe("GenerateUploadURL", func() {
		BeforeEach(func() {
			stores.workspaces.getByIDFn = func(_ context.Context, id int64) (*model.Workspace, error) {
				return workspaceWith(id, model.WorkspaceTypeTeam, ownerID, map[int64]model.MemberRole{
					ownerID:  model.MemberRoleOwner,
					memberID: model.MemberRoleMember,
				}), nil
			}
		})

		It("should presign a logo upload for admins", func() {
			wsID := int64(100)
			upload, err := svc.GenerateUploadURL(ctx, ownerID, &wsID)
			Expect(err).NotTo(HaveOccurred())
			Expect(upload.Key).To(HavePrefix("workspaces/100/logo/"))
			Expect(upload.URL).To(ContainSubstring("sig=put"))
		})

		It("should reject plain members", func() {
			wsID := int64(100)
			_, err := svc.GenerateUploadURL(ctx, memberID, &wsID)
			Expect(err).To(MatchError(service.ErrForbidden))
		})

		It("should report missing storage", func() {
			svc = service.NewWorkspaceService(stores, tx, nil, nil)
			_, err := svc.GenerateUploadURL(ctx, ownerID, nil)
			Expect(err).To(MatchError(service.ErrStorageDisabled))
		})
	})

	Describe("Get", func() {
		It("should not require membership", func() {
			stores.workspaces.getByIDFn = func(_ context.Context, id int64) (*model.Workspace, error) {
				return workspaceWith(id, model.WorkspaceTypeTeam, ownerID, nil), nil
			}
			ws, err := svc.Get(ctx, 999, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(ws.ID).To(Equal(int64(100)))
		})

		It("should map a missing workspace", func() {
			_, err := svc.Get(ctx, ownerID, 100)
			Expect(err).To(MatchError(service.ErrWorkspaceNotFound))
			Expect(errors.Is(err, store.ErrNotFound)).To(BeFalse())
		})
	})
})
