package handler_test

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tekimax.app/docs/internal/http/handler"
	"tekimax.app/docs/internal/model"
	"tekimax.app/docs/internal/service"
)

var _ = Describe("WorkspaceHandler", func() {
	var (
		router *gin.Engine
		svc    *mockWorkspaceService
		types  *mockWorkspaceTypeService
	)

	BeforeEach(func() {
		router = gin.New()
		svc = &mockWorkspaceService{}
		types = &mockWorkspaceTypeService{}
		h := handler.NewWorkspaceHandler(svc)
		th := handler.NewWorkspaceTypeHandler(types)

		authed := router.Group("", handler.RequireSession(&mockAuthService{}))
		authed.POST("/workspaces", h.Create)
		authed.GET("/workspaces", h.List)
		authed.GET("/workspaces/active", h.Active)
		authed.POST("/workspaces/upload-url", h.GenerateUploadURL)
		authed.GET("/workspaces/:id", h.Get)
		authed.PATCH("/workspaces/:id", h.Update)
		authed.DELETE("/workspaces/:id", h.Delete)
		authed.GET("/workspace-types", th.List)
		authed.POST("/workspace-types", th.Create)
		authed.DELETE("/workspace-types/:id", th.Delete)
	})

	It("creates a workspace for the session identity", func() {
		svc.createFn = func(_ context.Context, identity model.Identity, in service.CreateWorkspaceInput) (*model.Workspace, error) {
			Expect(identity.Email).To(Equal("alice@example.com"))
			Expect(*in.Settings.LogoKey).To(Equal("workspaces/1/logo/2"))
			return &model.Workspace{
				ID:      900,
				Name:    in.Name,
				Type:    in.Type,
				OwnerID: identity.UserID,
				Members: []model.Membership{{UserID: identity.UserID, Role: model.MemberRoleOwner}},
			}, nil
		}

		w := do(router, http.MethodPost, "/workspaces", map[string]any{
			"name":     "Acme",
			"type":     "team",
			"settings": map[string]string{"logo_key": "workspaces/1/logo/2"},
		}, testSessionID)

		Expect(w.Code).To(Equal(http.StatusCreated))
		resp := decode(w)
		Expect(resp["id"]).To(Equal("900"))
		Expect(resp["owner_id"]).To(Equal("7"))
		Expect(resp["members"]).To(HaveLen(1))
	})

	It("rejects unknown workspace types", func() {
		w := do(router, http.MethodPost, "/workspaces", map[string]string{"name": "Acme", "type": "garage"}, testSessionID)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	DescribeTable("maps delete failures",
		func(err error, status int, message string) {
			svc.removeFn = func(context.Context, int64, int64) error { return err }
			w := do(router, http.MethodDelete, "/workspaces/900", nil, testSessionID)
			Expect(w.Code).To(Equal(status))
			Expect(decode(w)["error"]).To(Equal(message))
		},
		Entry("admin caller", service.ErrOwnerOnly, http.StatusForbidden, "Only workspace owners can delete workspaces"),
		Entry("personal workspace", service.ErrPersonalWorkspace, http.StatusBadRequest, "Cannot delete personal workspace"),
		Entry("missing", service.ErrWorkspaceNotFound, http.StatusNotFound, "Workspace not found"),
	)

	It("returns 204 after deleting", func() {
		w := do(router, http.MethodDelete, "/workspaces/900", nil, testSessionID)
		Expect(w.Code).To(Equal(http.StatusNoContent))
	})

	It("passes the preferred workspace to ResolveActive", func() {
		var got *int64
		svc.resolveActiveFn = func(_ context.Context, _ int64, preferred *int64) (*model.Workspace, error) {
			got = preferred
			return &model.Workspace{ID: 900}, nil
		}

		w := do(router, http.MethodGet, "/workspaces/active?preferred=900", nil, testSessionID)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(got).NotTo(BeNil())
		Expect(*got).To(Equal(int64(900)))
	})

	It("reports when no workspace exists", func() {
		w := do(router, http.MethodGet, "/workspaces/active", nil, testSessionID)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	Describe("upload URLs", func() {
		It("accepts an empty body", func() {
			var got *int64
			svc.uploadURLFn = func(_ context.Context, _ int64, workspaceID *int64) (*service.UploadURL, error) {
				got = workspaceID
				return &service.UploadURL{URL: "https://s3.test/put", Key: "users/7/uploads/1"}, nil
			}

			w := do(router, http.MethodPost, "/workspaces/upload-url", nil, testSessionID)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(got).To(BeNil())
			Expect(decode(w)["upload_url"]).To(Equal("https://s3.test/put"))
		})

		It("reports disabled storage", func() {
			w := do(router, http.MethodPost, "/workspaces/upload-url", map[string]string{"workspace_id": "900"}, testSessionID)
			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
		})
	})

	Describe("workspace types", func() {
		It("lists default types without a workspace", func() {
			w := do(router, http.MethodGet, "/workspace-types", nil, testSessionID)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["default_types"]).To(HaveLen(3))
		})

		It("maps a duplicate name to 409", func() {
			types.createFn = func(context.Context, int64, int64, string, *string) (*model.WorkspaceTypeDef, error) {
				return nil, service.ErrWorkspaceTypeExists
			}
			w := do(router, http.MethodPost, "/workspace-types", map[string]string{"workspace_id": "900", "name": "Research"}, testSessionID)
			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(decode(w)["error"]).To(Equal("A workspace type with this name already exists"))
		})

		It("maps a type in use to 409", func() {
			types.removeFn = func(context.Context, int64, int64) error { return service.ErrWorkspaceTypeInUse }
			w := do(router, http.MethodDelete, "/workspace-types/3", nil, testSessionID)
			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(decode(w)["error"]).To(Equal("Cannot delete a workspace type that is currently in use"))
		})
	})
})
