// Package ledger derives the financial state of a team from its fines and
// payouts. All functions are pure computations over record snapshots; the
// balance is never stored, so it can not drift from the records it is
// derived from.
package ledger

import (
	"sort"

	"github.com/teamwallet/teamwallet/pkg/currency"
	"github.com/teamwallet/teamwallet/pkg/proto"
)

// Totals is the derived treasury state of one team.
type Totals struct {
	// Balance is the cash in the box: paid fines minus payouts.
	Balance currency.Amount
	// OpenTotal is the sum of all open fine amounts.
	OpenTotal currency.Amount
	// PaidTotal is the sum of all paid fine amounts.
	PaidTotal currency.Amount
}

// ComputeBalance computes the treasury totals from a snapshot of fines and
// payouts. Empty inputs yield zero totals.
func ComputeBalance(fines []proto.Fine, payouts []proto.Payout) Totals {
	var t Totals
	for _, f := range fines {
		if f.Status() == proto.FinePaid {
			t.PaidTotal = t.PaidTotal.Add(f.Amount)
		} else {
			t.OpenTotal = t.OpenTotal.Add(f.Amount)
		}
	}
	t.Balance = t.PaidTotal
	for _, p := range payouts {
		t.Balance = t.Balance.Sub(p.Amount)
	}
	return t
}

// MemberOpenTotal returns the sum of open fines for one membership.
func MemberOpenTotal(fines []proto.Fine, membershipID int64) currency.Amount {
	var total currency.Amount
	for _, f := range fines {
		if f.MembershipID == membershipID && f.Status() == proto.FineOpen {
			total = total.Add(f.Amount)
		}
	}
	return total
}

// EntryKind discriminates timeline entries.
type EntryKind string

const (
	// EntryPayment is cash entering the box from a paid fine.
	EntryPayment EntryKind = "payment"
	// EntryPayout is cash leaving the box.
	EntryPayout EntryKind = "payout"
)

// Entry is one event in the transaction timeline. Amount is signed: positive
// for payments into the box, negative for payouts.
type Entry struct {
	Kind        EntryKind
	RecordID    int64
	Amount      currency.Amount
	Description string
	OccurredAt  int64 // unix nanoseconds, for deterministic ordering
}

// Timeline merges paid-fine payment events and payout events into one
// reverse-chronological sequence. Open fines carry no payment event and are
// excluded. Ties on the timestamp are broken by kind and then record ID so
// the output is deterministic for identical inputs.
func Timeline(fines []proto.Fine, payouts []proto.Payout) []Entry {
	entries := make([]Entry, 0, len(fines)+len(payouts))
	for _, f := range fines {
		if f.Status() != proto.FinePaid {
			continue
		}
		entries = append(entries, Entry{
			Kind:        EntryPayment,
			RecordID:    f.ID,
			Amount:      f.Amount,
			Description: f.Reason,
			OccurredAt:  f.PaidAt.UnixNano(),
		})
	}
	for _, p := range payouts {
		entries = append(entries, Entry{
			Kind:        EntryPayout,
			RecordID:    p.ID,
			Amount:      p.Amount.Neg(),
			Description: p.Purpose,
			OccurredAt:  p.IssuedAt.UnixNano(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.OccurredAt != b.OccurredAt {
			return a.OccurredAt > b.OccurredAt
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.RecordID > b.RecordID
	})

	return entries
}

// MemberTotal is an open-fine aggregate for one membership.
type MemberTotal struct {
	MembershipID int64
	Total        currency.Amount
	Count        int
}

// TopOffenders groups open fines by member and returns up to n members
// ranked by open amount descending. Ties are broken by membership ID
// ascending for deterministic output. Fines whose member has left the team
// (zero membership ID) still count in the totals but not in the ranking.
func TopOffenders(fines []proto.Fine, n int) []MemberTotal {
	byMember := map[int64]*MemberTotal{}
	for _, f := range fines {
		if f.Status() != proto.FineOpen || f.MembershipID == 0 {
			continue
		}
		mt, ok := byMember[f.MembershipID]
		if !ok {
			mt = &MemberTotal{MembershipID: f.MembershipID}
			byMember[f.MembershipID] = mt
		}
		mt.Total = mt.Total.Add(f.Amount)
		mt.Count++
	}

	ranked := make([]MemberTotal, 0, len(byMember))
	for _, mt := range byMember {
		ranked = append(ranked, *mt)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].MembershipID < ranked[j].MembershipID
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// ReasonCount is an occurrence aggregate for one fine reason.
type ReasonCount struct {
	Reason string
	Count  int
}

// FrequentReasons groups all fines, open and paid, by reason and returns up
// to n reasons ranked by occurrence count descending. Ties are broken by
// reason ascending.
func FrequentReasons(fines []proto.Fine, n int) []ReasonCount {
	byReason := map[string]int{}
	for _, f := range fines {
		byReason[f.Reason]++
	}

	ranked := make([]ReasonCount, 0, len(byReason))
	for reason, count := range byReason {
		ranked = append(ranked, ReasonCount{Reason: reason, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Reason < ranked[j].Reason
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
