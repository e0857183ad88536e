package invites

import "model"

func accept(inv *model.Invitation) model.Membership {
	inv.Status = ("accepted") // want "enum field Status assigned string literal"

	inv.Email, inv.Status = "bob@example.com", "expired" // want "enum field Status assigned string literal"

	return model.Membership{UserID: 7, Role: "member"} // want "enum field Role assigned string literal"
}

func expire(inv *model.Invitation) {
	if inv.Status == "pending" {
		inv.Status = model.InvitationStatusExpired
	}
	inv.Email = "carol@example.com"
}

func owner() model.Membership {
	return model.Membership{Role: model.MemberRoleOwner}
}
