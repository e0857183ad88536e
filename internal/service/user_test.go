package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tekimax.app/docs/common"
	"tekimax.app/docs/internal/model"
	"tekimax.app/docs/internal/service"
	"tekimax.app/docs/internal/store"
)

var _ = Describe("UserService", func() {
	const userID int64 = 1

	var (
		ctx     context.Context
		stores  *mockStoreProvider
		tx      *mockTxRunner
		storage *mockStorage
		svc     service.UserService
		user    *model.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		stores = newMockStoreProvider()
		tx = &mockTxRunner{stores: stores}
		storage = &mockStorage{}
		user = &model.User{ID: userID, Name: "Alice", Email: "alice@example.com"}
		stores.users.getByIDFn = func(_ context.Context, id int64) (*model.User, error) {
			if id == userID {
				return user, nil
			}
			return nil, store.ErrNotFound
		}
		svc = service.NewUserService(stores, tx, storage)
	})

	Describe("Me", func() {
		It("should prefer the username as display name and resolve the image", func() {
			username := "alice_w"
			key := "users/1/avatar/9"
			user.Username = &username
			user.ImageKey = &key
			stores.subscriptions.getByUserFn = func(_ context.Context, _ int64) (*model.Subscription, error) {
				return &model.Subscription{ID: 7, PlanKey: "pro"}, nil
			}

			profile, err := svc.Me(ctx, userID)

			Expect(err).NotTo(HaveOccurred())
			Expect(profile.DisplayName).To(Equal("alice_w"))
			Expect(*profile.User.AvatarURL).To(ContainSubstring(key))
			Expect(profile.Subscription.PlanKey).To(Equal("pro"))
		})

		It("should work without a subscription", func() {
			profile, err := svc.Me(ctx, userID)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.DisplayName).To(Equal("Alice"))
			Expect(profile.Subscription).To(BeNil())
		})

		It("should return ErrUserNotFound", func() {
			_, err := svc.Me(ctx, 2)
			Expect(err).To(MatchError(service.ErrUserNotFound))
		})
	})

	Describe("Update", func() {
		It("should set a valid username", func() {
			username := "alice-w"
			updated, err := svc.Update(ctx, userID, service.UpdateUserInput{Username: &username})
			Expect(err).NotTo(HaveOccurred())
			Expect(*updated.Username).To(Equal("alice-w"))
		})

		DescribeTable("should validate usernames",
			func(username string, want error) {
				_, err := svc.Update(ctx, userID, service.UpdateUserInput{Username: &username})
				Expect(err).To(MatchError(want))
			},
			Entry("too short", "ab", common.ErrUsernameTooShort),
			Entry("bad characters", "alice w", common.ErrUsernameInvalidChar),
		)

		It("should reject a username held by someone else", func() {
			stores.users.getByUsernameFn = func(_ context.Context, username string) (*model.User, error) {
				return &model.User{ID: 2, Username: &username}, nil
			}
			username := "taken"
			_, err := svc.Update(ctx, userID, service.UpdateUserInput{Username: &username})
			Expect(err).To(MatchError(service.ErrUsernameTaken))
		})

		It("should accept re-saving the caller's own username", func() {
			stores.users.getByUsernameFn = func(_ context.Context, username string) (*model.User, error) {
				return &model.User{ID: userID, Username: &username}, nil
			}
			username := "mine"
			_, err := svc.Update(ctx, userID, service.UpdateUserInput{Username: &username})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should map a unique violation to ErrUsernameTaken", func() {
			stores.users.updateFn = func(_ context.Context, _ *model.User) error {
				return errors.Join(store.ErrConflict, errors.New("duplicate"))
			}
			username := "racer"
			_, err := svc.Update(ctx, userID, service.UpdateUserInput{Username: &username})
			Expect(err).To(MatchError(service.ErrUsernameTaken))
		})
	})

	Describe("images", func() {
		It("should store the image key", func() {
			updated, err := svc.SetImage(ctx, userID, "users/1/avatar/5")
			Expect(err).NotTo(HaveOccurred())
			Expect(*updated.ImageKey).To(Equal("users/1/avatar/5"))
		})

		It("should clear the image and delete the object", func() {
			key := "users/1/avatar/5"
			avatar := "https://provider.test/a.png"
			user.ImageKey = &key
			user.AvatarURL = &avatar

			updated, err := svc.RemoveImage(ctx, userID)

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.ImageKey).To(BeNil())
			Expect(updated.AvatarURL).To(BeNil())
			Expect(storage.removed).To(ConsistOf(key))
		})

		It("should presign avatar uploads", func() {
			upload, err := svc.GenerateUploadURL(ctx, userID)
			Expect(err).NotTo(HaveOccurred())
			Expect(upload.Key).To(HavePrefix("users/1/avatar/"))
		})
	})

	Describe("DeleteAccount", func() {
		It("should delete subscription, sessions, personal workspace and user", func() {
			stores.subscriptions.getByUserFn = func(_ context.Context, _ int64) (*model.Subscription, error) {
				return &model.Subscription{ID: 7}, nil
			}
			var sessionsFor, deletedUser int64
			stores.sessions.deleteByUserFn = func(_ context.Context, id int64) error {
				sessionsFor = id
				return nil
			}
			stores.workspaces.listOwnedByFn = func(_ context.Context, ownerID int64) ([]model.Workspace, error) {
				return []model.Workspace{*workspaceWith(10, model.WorkspaceTypePersonal, ownerID, nil)}, nil
			}
			stores.users.deleteFn = func(_ context.Context, id int64) error {
				deletedUser = id
				return nil
			}

			Expect(svc.DeleteAccount(ctx, userID)).To(Succeed())
			Expect(stores.subscriptions.deleteCalls).To(Equal(1))
			Expect(sessionsFor).To(Equal(userID))
			Expect(stores.workspaces.deleteCalls).To(Equal(1))
			Expect(deletedUser).To(Equal(userID))
		})

		It("should proceed when there is no subscription", func() {
			Expect(svc.DeleteAccount(ctx, userID)).To(Succeed())
			Expect(stores.subscriptions.deleteCalls).To(BeZero())
		})

		It("should refuse while shared workspaces are still owned", func() {
			stores.workspaces.listOwnedByFn = func(_ context.Context, ownerID int64) ([]model.Workspace, error) {
				return []model.Workspace{*workspaceWith(11, model.WorkspaceTypeTeam, ownerID, nil)}, nil
			}
			Expect(svc.DeleteAccount(ctx, userID)).To(MatchError(service.ErrOwnsSharedWorkspace))
			Expect(tx.rollbacks).To(Equal(1))
		})
	})

	Describe("ListByWorkspace", func() {
		It("should return only the owner of a personal workspace", func() {
			stores.workspaces.getByIDFn = func(_ context.Context, id int64) (*model.Workspace, error) {
				return workspaceWith(id, model.WorkspaceTypePersonal, userID, map[int64]model.MemberRole{
					userID: model.MemberRoleOwner,
					5:      model.MemberRoleMember,
				}), nil
			}

			users, err := svc.ListByWorkspace(ctx, userID, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(1))
			Expect(users[0].ID).To(Equal(userID))
		})

		It("should sort members by display name", func() {
			zed := "zed"
			stores.workspaces.getByIDFn = func(_ context.Context, id int64) (*model.Workspace, error) {
				return workspaceWith(id, model.WorkspaceTypeTeam, userID, map[int64]model.MemberRole{
					userID: model.MemberRoleOwner,
				}), nil
			}
			stores.users.listByWorkspaceFn = func(_ context.Context, _ int64) ([]model.User, error) {
				return []model.User{
					{ID: 1, Name: "Alice", Username: &zed},
					{ID: 2, Name: "Bob"},
					{ID: 3, Name: "Carol"},
				}, nil
			}

			users, err := svc.ListByWorkspace(ctx, userID, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect([]int64{users[0].ID, users[1].ID, users[2].ID}).To(Equal([]int64{2, 3, 1}))
		})

		It("should reject non-members", func() {
			stores.workspaces.getByIDFn = func(_ context.Context, id int64) (*model.Workspace, error) {
				return workspaceWith(id, model.WorkspaceTypeTeam, 9, map[int64]model.MemberRole{9: model.MemberRoleOwner}), nil
			}
			_, err := svc.ListByWorkspace(ctx, userID, 10)
			Expect(err).To(MatchError(service.ErrNotMember))
		})
	})
})
