package backend

import (
	"github.com/teamwallet/teamwallet/pkg/currency"
	"github.com/teamwallet/teamwallet/pkg/db/models"
	"github.com/teamwallet/teamwallet/pkg/proto"
)

func teamFromModel(m models.Team) proto.Team {
	t := proto.Team{
		ID:        m.ID,
		Name:      m.Name,
		Premium:   m.Premium,
		CreatedAt: m.CreatedAt,
	}
	if m.PaymentHandle.Valid {
		t.PaymentHandle = m.PaymentHandle.String
	}
	return t
}

func membershipFromModel(m models.Membership) proto.Membership {
	return proto.Membership{
		ID:              m.ID,
		TeamID:          m.TeamID,
		UserID:          m.UserID,
		Role:            m.Role,
		DashboardSeenAt: m.DashboardSeenAt,
		FinesSeenAt:     m.FinesSeenAt,
		ExpensesSeenAt:  m.ExpensesSeenAt,
		CreatedAt:       m.CreatedAt,
	}
}

func definitionFromModel(m models.FineDefinition) proto.FineDefinition {
	d := proto.FineDefinition{
		ID:        m.ID,
		TeamID:    m.TeamID,
		Name:      m.Name,
		Amount:    currency.FromCents(m.AmountCents),
		CreatedAt: m.CreatedAt,
	}
	if m.Description.Valid {
		d.Description = m.Description.String
	}
	return d
}

func fineFromModel(m models.Fine) proto.Fine {
	f := proto.Fine{
		ID:       m.ID,
		UUID:     m.UUID,
		TeamID:   m.TeamID,
		Amount:   currency.FromCents(m.AmountCents),
		Reason:   m.Reason,
		IssuedBy: m.IssuedBy,
		IssuedAt: m.CreatedAt,
	}
	if m.MembershipID.Valid {
		f.MembershipID = m.MembershipID.Int64
	}
	if m.DefinitionID.Valid {
		f.DefinitionID = m.DefinitionID.Int64
	}
	if m.PaidAt.Valid {
		f.PaidAt = m.PaidAt.Time
	}
	if m.PaidBy.Valid {
		f.PaidBy = m.PaidBy.Int64
	}
	return f
}

func finesFromModels(ms []models.Fine) []proto.Fine {
	fines := make([]proto.Fine, 0, len(ms))
	for _, m := range ms {
		fines = append(fines, fineFromModel(m))
	}
	return fines
}

func payoutFromModel(m models.Payout) proto.Payout {
	return proto.Payout{
		ID:       m.ID,
		UUID:     m.UUID,
		TeamID:   m.TeamID,
		Amount:   currency.FromCents(m.AmountCents),
		Purpose:  m.Purpose,
		IssuedBy: m.IssuedBy,
		IssuedAt: m.CreatedAt,
	}
}

func payoutsFromModels(ms []models.Payout) []proto.Payout {
	payouts := make([]proto.Payout, 0, len(ms))
	for _, m := range ms {
		payouts = append(payouts, payoutFromModel(m))
	}
	return payouts
}

func inviteFromModel(m models.Invite) proto.Invite {
	i := proto.Invite{
		ID:        m.ID,
		TeamID:    m.TeamID,
		Role:      m.Role,
		CreatedBy: m.CreatedBy,
		ExpiresAt: m.ExpiresAt,
		Consumed:  m.ConsumedAt.Valid,
		CreatedAt: m.CreatedAt,
	}
	if m.Email.Valid {
		i.Email = m.Email.String
	}
	return i
}
