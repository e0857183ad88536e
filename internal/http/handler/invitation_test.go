package handler_test

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tekimax.app/docs/internal/http/handler"
	"tekimax.app/docs/internal/model"
	"tekimax.app/docs/internal/service"
)

var _ = Describe("InvitationHandler", func() {
	var (
		router *gin.Engine
		svc    *mockInvitationService
	)

	BeforeEach(func() {
		router = gin.New()
		svc = &mockInvitationService{}
		h := handler.NewInvitationHandler(svc)

		router.POST("/invites/:id/verify", h.Verify)
		authed := router.Group("", handler.RequireSession(&mockAuthService{}))
		authed.POST("/invites", h.Create)
		authed.POST("/invites/:id/resend", h.Resend)
		authed.DELETE("/invites/:id", h.Delete)
		authed.GET("/workspaces/:id/invites", h.ListPending)
	})

	Describe("Create", func() {
		validBody := map[string]string{
			"email":        "bob@example.com",
			"name":         "Bob",
			"role":         "write",
			"workspace_id": "100",
		}

		It("creates the invite for the session user", func() {
			var got service.CreateInviteInput
			var caller int64
			svc.createFn = func(_ context.Context, callerID int64, in service.CreateInviteInput) (*model.Invitation, error) {
				caller, got = callerID, in
				return &model.Invitation{
					ID:          555,
					Email:       in.Email,
					Role:        in.Role,
					WorkspaceID: in.WorkspaceID,
					Status:      model.InvitationStatusPending,
					ExpiresAt:   time.Now().Add(15 * time.Minute),
				}, nil
			}

			w := do(router, http.MethodPost, "/invites", validBody, testSessionID)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(caller).To(Equal(testUserID))
			Expect(got.WorkspaceID).To(Equal(int64(100)))
			Expect(got.Role).To(Equal(model.InviteRoleWrite))
			resp := decode(w)
			Expect(resp["id"]).To(Equal("555"))
			Expect(resp["status"]).To(Equal("pending"))
			Expect(resp).NotTo(HaveKey("token"))
		})

		It("rejects roles outside read, write and owner", func() {
			body := map[string]string{"email": "bob@example.com", "role": "admin", "workspace_id": "100"}
			w := do(router, http.MethodPost, "/invites", body, testSessionID)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["error"]).To(ContainSubstring("role must be one of"))
		})

		It("requires a session", func() {
			w := do(router, http.MethodPost, "/invites", validBody, "")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(w)["error"]).To(Equal("Unauthorized"))
		})

		DescribeTable("maps service errors",
			func(err error, status int, message string) {
				svc.createFn = func(context.Context, int64, service.CreateInviteInput) (*model.Invitation, error) {
					return nil, err
				}
				w := do(router, http.MethodPost, "/invites", validBody, testSessionID)
				Expect(w.Code).To(Equal(status))
				Expect(decode(w)["error"]).To(Equal(message))
			},
			Entry("no permission", service.ErrInvitePermission, http.StatusForbidden, "You don't have permission to invite users"),
			Entry("already member", service.ErrAlreadyMember, http.StatusConflict, "User is already a member of this workspace"),
			Entry("pending duplicate", service.ErrInvitePendingExists, http.StatusConflict, "User already invited"),
			Entry("missing workspace", service.ErrWorkspaceNotFound, http.StatusNotFound, "Workspace not found"),
		)
	})

	Describe("Verify", func() {
		It("accepts without a session", func() {
			svc.verifyFn = func(_ context.Context, id int64, token string) (*model.Invitation, error) {
				Expect(id).To(Equal(int64(555)))
				Expect(token).To(Equal("tok"))
				return &model.Invitation{ID: id, Status: model.InvitationStatusAccepted}, nil
			}

			w := do(router, http.MethodPost, "/invites/555/verify", map[string]string{"token": "tok"}, "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["status"]).To(Equal("accepted"))
		})

		DescribeTable("maps verification failures",
			func(err error, status int, message string) {
				svc.verifyFn = func(context.Context, int64, string) (*model.Invitation, error) {
					return nil, err
				}
				w := do(router, http.MethodPost, "/invites/555/verify", map[string]string{"token": "tok"}, "")
				Expect(w.Code).To(Equal(status))
				Expect(decode(w)["error"]).To(Equal(message))
			},
			Entry("not found", service.ErrInviteNotFound, http.StatusNotFound, "Invite not found"),
			Entry("not pending", service.ErrInviteNoLongerValid, http.StatusGone, "Invite is no longer valid"),
			Entry("expired", service.ErrInviteExpired, http.StatusGone, "Invite has expired"),
			Entry("wrong token", service.ErrInvalidToken, http.StatusBadRequest, "Invalid verification token"),
		)

		It("rejects a malformed id", func() {
			w := do(router, http.MethodPost, "/invites/abc/verify", map[string]string{"token": "tok"}, "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("requires a token", func() {
			w := do(router, http.MethodPost, "/invites/555/verify", map[string]string{}, "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["error"]).To(Equal("token is required"))
		})
	})

	It("lists pending invites of a workspace", func() {
		svc.listPendingFn = func(_ context.Context, callerID, workspaceID int64) ([]model.Invitation, error) {
			Expect(workspaceID).To(Equal(int64(100)))
			return []model.Invitation{{ID: 1}, {ID: 2}}, nil
		}

		w := do(router, http.MethodGet, "/workspaces/100/invites", nil, testSessionID)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode(w)["invites"]).To(HaveLen(2))
	})

	It("reports non-members on delete", func() {
		svc.removeFn = func(context.Context, int64, int64) (*model.Invitation, error) {
			return nil, service.ErrNotMember
		}
		w := do(router, http.MethodDelete, "/invites/1", nil, testSessionID)
		Expect(w.Code).To(Equal(http.StatusForbidden))
		Expect(decode(w)["error"]).To(Equal("Not a member of workspace"))
	})
})
