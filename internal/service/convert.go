package service

import (
	"github.com/Abusha-Ansari/Split-Karo/internal/calculator"
	"github.com/Abusha-Ansari/Split-Karo/internal/models"
	"github.com/Abusha-Ansari/Split-Karo/internal/storage"
	"github.com/Abusha-Ansari/Split-Karo/pkg/api"
)

func profileToAPI(p *models.Profile) *api.Profile {
	return &api.Profile{
		ID:          p.ID,
		Email:       p.Email,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
		CreatedAt:   p.CreatedAt,
	}
}

func tripToAPI(t *models.Trip, myStatus models.MemberStatus) *api.Trip {
	return &api.Trip{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Currency:    t.Currency,
		LeaderID:    t.LeaderID,
		InviteCode:  t.InviteCode,
		StartsAt:    t.StartsAt,
		EndsAt:      t.EndsAt,
		CreatedAt:   t.CreatedAt,
		MyStatus:    string(myStatus),
	}
}

func memberToAPI(m *storage.MemberWithProfile) *api.Member {
	out := &api.Member{
		UserID:      m.UserID,
		DisplayName: m.Profile.DisplayLabel(),
		Role:        string(m.Role),
		Status:      string(m.Status),
		InvitedBy:   m.InvitedBy,
		JoinedAt:    m.JoinedAt,
	}
	if m.Profile != nil {
		out.AvatarURL = m.Profile.AvatarURL
	}
	return out
}

func expenseToAPI(e *models.Expense, profiles map[string]*models.Profile) *api.Expense {
	splits := make([]*api.Split, len(e.Splits))
	for i, s := range e.Splits {
		splits[i] = &api.Split{
			UserID:      s.UserID,
			DisplayName: models.LabelFor(profiles, s.UserID),
			ShareAmount: s.ShareAmount,
		}
	}
	return &api.Expense{
		ID:          e.ID,
		TripID:      e.TripID,
		CreatedBy:   e.CreatedBy,
		PayerID:     e.PayerID,
		PayerName:   models.LabelFor(profiles, e.PayerID),
		Amount:      e.Amount,
		Currency:    e.Currency,
		Description: e.Description,
		Date:        e.Date,
		ReceiptURL:  e.ReceiptURL,
		SplitType:   string(e.SplitType),
		CreatedAt:   e.CreatedAt,
		Splits:      splits,
	}
}

func settlementToAPI(s *models.Settlement, profiles map[string]*models.Profile) *api.Settlement {
	return &api.Settlement{
		ID:         s.ID,
		TripID:     s.TripID,
		FromUserID: s.FromUserID,
		FromName:   models.LabelFor(profiles, s.FromUserID),
		ToUserID:   s.ToUserID,
		ToName:     models.LabelFor(profiles, s.ToUserID),
		Amount:     s.Amount,
		Date:       s.Date,
		Method:     s.Method,
		Status:     s.Status,
		CreatedAt:  s.CreatedAt,
	}
}

func balanceToAPI(b calculator.MemberBalance, profiles map[string]*models.Profile) *api.Balance {
	return &api.Balance{
		UserID:      b.UserID,
		DisplayName: models.LabelFor(profiles, b.UserID),
		Credited:    b.Credited,
		Debited:     b.Debited,
		NetBalance:  b.Net,
	}
}

func transferToAPI(t calculator.Transfer, profiles map[string]*models.Profile) *api.SuggestedTransfer {
	return &api.SuggestedTransfer{
		FromUserID: t.FromUserID,
		FromName:   models.LabelFor(profiles, t.FromUserID),
		ToUserID:   t.ToUserID,
		ToName:     models.LabelFor(profiles, t.ToUserID),
		Amount:     t.Amount,
	}
}
