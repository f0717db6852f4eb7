package calculator

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SplitShare is one row of an expense split with the payer of that expense.
type SplitShare struct {
	PayerID string
	UserID  string
	Amount  decimal.Decimal
}

// Transfer is money moving from one member to another: a recorded settlement
// on the way in, a suggested payment on the way out.
type Transfer struct {
	FromUserID string
	ToUserID   string
	Amount     decimal.Decimal
}

// MemberBalance represents the balance information for one trip member.
type MemberBalance struct {
	UserID   string
	Credited decimal.Decimal // What others owe this member, plus settlements they paid
	Debited  decimal.Decimal // This member's shares of others' expenses, plus settlements received
	Net      decimal.Decimal // Positive = the group owes them, negative = they owe the group
}

// CalculateNetBalances folds expense splits and settlements into one net
// balance per member that appears in at least one of them.
//
// Algorithm:
// - For each split (payer, user, share) with payer != user: debit user, credit payer
// - For each settlement (from, to, amount): credit from, debit to
// - net = credited - debited
//
// The fold is order independent and the nets always sum to zero. The result is
// sorted by user ID.
func CalculateNetBalances(shares []SplitShare, settlements []Transfer) []MemberBalance {
	balances := make(map[string]*MemberBalance)
	get := func(id string) *MemberBalance {
		b, ok := balances[id]
		if !ok {
			b = &MemberBalance{UserID: id}
			balances[id] = b
		}
		return b
	}

	for _, s := range shares {
		payer, user := get(s.PayerID), get(s.UserID)
		if s.PayerID == s.UserID {
			continue
		}
		user.Debited = user.Debited.Add(s.Amount)
		payer.Credited = payer.Credited.Add(s.Amount)
	}

	for _, s := range settlements {
		from, to := get(s.FromUserID), get(s.ToUserID)
		from.Credited = from.Credited.Add(s.Amount)
		to.Debited = to.Debited.Add(s.Amount)
	}

	out := make([]MemberBalance, 0, len(balances))
	for _, b := range balances {
		b.Net = b.Credited.Sub(b.Debited)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}

// SimplifyDebts suggests a short list of payments that would bring every net
// balance to zero.
//
// Greedy: repeatedly match the largest debtor with the largest creditor and
// settle the smaller of the two amounts.
func SimplifyDebts(balances []MemberBalance) []Transfer {
	var creditors, debtors []MemberBalance
	for _, b := range balances {
		switch {
		case b.Net.IsPositive():
			creditors = append(creditors, b)
		case b.Net.IsNegative():
			debtors = append(debtors, b)
		}
	}
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].Net.GreaterThan(creditors[j].Net) })
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].Net.LessThan(debtors[j].Net) })

	owes := make([]decimal.Decimal, len(debtors))
	for i, d := range debtors {
		owes[i] = d.Net.Neg()
	}
	owed := make([]decimal.Decimal, len(creditors))
	for i, c := range creditors {
		owed[i] = c.Net
	}

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := decimal.Min(owes[i], owed[j])
		if amount.IsPositive() {
			transfers = append(transfers, Transfer{
				FromUserID: debtors[i].UserID,
				ToUserID:   creditors[j].UserID,
				Amount:     amount,
			})
		}

		owes[i] = owes[i].Sub(amount)
		owed[j] = owed[j].Sub(amount)

		if !owes[i].IsPositive() {
			i++
		}
		if !owed[j].IsPositive() {
			j++
		}
	}
	return transfers
}
