package model_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tekimax.app/docs/internal/model"
)

var _ = Describe("Workspace", func() {
	ws := model.Workspace{
		Type: model.WorkspaceTypeTeam,
		Members: []model.Membership{
			{UserID: 1, Role: model.MemberRoleOwner},
			{UserID: 2, Role: model.MemberRoleAdmin},
			{UserID: 3, Role: model.MemberRoleMember},
		},
	}

	It("checks roles by scanning members", func() {
		Expect(ws.HasRole(1, model.MemberRoleOwner)).To(BeTrue())
		Expect(ws.HasRole(2, model.AdminRoles...)).To(BeTrue())
		Expect(ws.HasRole(2, model.MemberRoleOwner)).To(BeFalse())
		Expect(ws.HasRole(3, model.AdminRoles...)).To(BeFalse())
	})

	It("treats non-members as holding no role", func() {
		Expect(ws.IsMember(99)).To(BeFalse())
		Expect(ws.HasRole(99, model.MemberRoleOwner, model.MemberRoleAdmin, model.MemberRoleMember)).To(BeFalse())
	})

	It("knows personal workspaces", func() {
		personal := model.Workspace{Type: model.WorkspaceTypePersonal}
		Expect(personal.IsPersonal()).To(BeTrue())
		Expect(ws.IsPersonal()).To(BeFalse())
	})
})

var _ = Describe("User.DisplayName", func() {
	It("prefers the username", func() {
		name := "ada_l"
		Expect((&model.User{Name: "Ada", Username: &name}).DisplayName()).To(Equal("ada_l"))
	})

	It("falls back to the name", func() {
		empty := ""
		Expect((&model.User{Name: "Ada"}).DisplayName()).To(Equal("Ada"))
		Expect((&model.User{Name: "Ada", Username: &empty}).DisplayName()).To(Equal("Ada"))
	})
})
