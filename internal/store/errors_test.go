package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"tekimax.app/docs/core/db/sqlc"
	"tekimax.app/docs/internal/model"
)

var _ = Describe("mapErr", func() {
	It("passes nil through", func() {
		Expect(mapErr(nil)).To(BeNil())
	})

	It("maps no rows to ErrNotFound", func() {
		Expect(mapErr(fmt.Errorf("query: %w", pgx.ErrNoRows))).To(MatchError(ErrNotFound))
	})

	It("maps unique violations to ErrConflict and keeps the cause", func() {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
		err := mapErr(pgErr)
		Expect(err).To(MatchError(ErrConflict))

		var cause *pgconn.PgError
		Expect(errors.As(err, &cause)).To(BeTrue())
		Expect(cause.ConstraintName).To(Equal("users_username_key"))
	})

	It("leaves other errors alone", func() {
		boom := errors.New("boom")
		Expect(mapErr(boom)).To(Equal(boom))
	})
})

var _ = Describe("row conversion", func() {
	It("converts an accepted invite", func() {
		accepted := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		by := int64(9)
		inv := toInvitationModel(sqlc.Invite{
			ID:          1,
			Email:       "a@x.com",
			Role:        "write",
			Status:      "accepted",
			WorkspaceID: 2,
			AcceptedBy:  &by,
			AcceptedAt:  pgtype.Timestamptz{Time: accepted, Valid: true},
		})
		Expect(inv.Role).To(Equal(model.InviteRoleWrite))
		Expect(inv.Status).To(Equal(model.InvitationStatusAccepted))
		Expect(*inv.AcceptedAt).To(Equal(accepted))
		Expect(*inv.AcceptedBy).To(Equal(by))
	})

	It("leaves accepted_at nil on pending invites", func() {
		inv := toInvitationModel(sqlc.Invite{Status: "pending"})
		Expect(inv.AcceptedAt).To(BeNil())
	})

	It("groups members under their workspace", func() {
		ws := toWorkspaceModel(sqlc.Workspace{ID: 3, Type: "team", OwnerID: 4})
		ws.Members = toMemberships([]sqlc.WorkspaceMember{{WorkspaceID: 3, UserID: 4, Role: "owner"}})
		Expect(ws.HasRole(4, model.MemberRoleOwner)).To(BeTrue())
		Expect(ws.HasRole(5, model.AdminRoles...)).To(BeFalse())
	})
})
