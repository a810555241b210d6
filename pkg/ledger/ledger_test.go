package ledger

import (
	"reflect"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/teamwallet/teamwallet/pkg/currency"
	"github.com/teamwallet/teamwallet/pkg/proto"
)

func paid(id, member int64, amount string, paidAt time.Time) proto.Fine {
	return proto.Fine{
		ID:           id,
		MembershipID: member,
		Amount:       currency.MustParse(amount),
		Reason:       "fine",
		PaidAt:       paidAt,
	}
}

func open(id, member int64, amount, reason string) proto.Fine {
	return proto.Fine{
		ID:           id,
		MembershipID: member,
		Amount:       currency.MustParse(amount),
		Reason:       reason,
	}
}

func TestComputeBalanceEmpty(t *testing.T) {
	is := is.New(t)
	totals := ComputeBalance(nil, nil)
	is.Equal(totals.Balance, currency.Zero)
	is.Equal(totals.OpenTotal, currency.Zero)
	is.Equal(totals.PaidTotal, currency.Zero)
}

func TestComputeBalance(t *testing.T) {
	is := is.New(t)
	now := time.Now()
	fines := []proto.Fine{
		paid(1, 1, "2.50", now),
		open(2, 1, "10.00", "late"),
	}
	payouts := []proto.Payout{
		{ID: 1, Amount: currency.MustParse("45.00"), IssuedAt: now},
	}

	totals := ComputeBalance(fines, payouts)
	is.Equal(totals.Balance, currency.MustParse("-42.50"))
	is.Equal(totals.OpenTotal, currency.MustParse("10.00"))
	is.Equal(totals.PaidTotal, currency.MustParse("2.50"))
}

func TestComputeBalanceNoDrift(t *testing.T) {
	// 0.10 added a thousand times is exactly 100.00 in cents arithmetic.
	now := time.Now()
	fines := make([]proto.Fine, 0, 1000)
	for i := 0; i < 1000; i++ {
		fines = append(fines, paid(int64(i), 1, "0.10", now))
	}
	totals := ComputeBalance(fines, nil)
	if totals.Balance != currency.MustParse("100.00") {
		t.Errorf("Balance => %s, want 100.00", totals.Balance)
	}
}

func TestMemberOpenTotal(t *testing.T) {
	is := is.New(t)
	now := time.Now()
	fines := []proto.Fine{
		open(1, 7, "2.50", "late"),
		open(2, 7, "5.00", "phone"),
		open(3, 9, "1.00", "late"),
		paid(4, 7, "99.00", now),
	}
	is.Equal(MemberOpenTotal(fines, 7), currency.MustParse("7.50"))
	is.Equal(MemberOpenTotal(fines, 9), currency.MustParse("1.00"))
	is.Equal(MemberOpenTotal(fines, 42), currency.Zero)
}

func TestTimelineOrder(t *testing.T) {
	is := is.New(t)
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)
	t2 := t0.Add(2 * time.Hour)

	fines := []proto.Fine{
		paid(1, 1, "2.50", t0),
		paid(2, 1, "3.00", t2),
		open(3, 1, "4.00", "never shows up"),
	}
	payouts := []proto.Payout{
		{ID: 1, Amount: currency.MustParse("45.00"), Purpose: "drinks", IssuedAt: t1},
	}

	entries := Timeline(fines, payouts)
	is.Equal(len(entries), 3) // open fine excluded

	is.Equal(entries[0].Kind, EntryPayment)
	is.Equal(entries[0].RecordID, int64(2))
	is.Equal(entries[1].Kind, EntryPayout)
	is.Equal(entries[1].Amount, currency.MustParse("-45.00"))
	is.Equal(entries[2].RecordID, int64(1))
}

func TestTimelineDeterministicTies(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	fines := []proto.Fine{
		paid(1, 1, "1.00", now),
		paid(2, 1, "2.00", now),
	}
	payouts := []proto.Payout{
		{ID: 3, Amount: currency.MustParse("3.00"), IssuedAt: now},
	}

	first := Timeline(fines, payouts)
	for i := 0; i < 10; i++ {
		// Shuffled input order must not change the output.
		again := Timeline([]proto.Fine{fines[1], fines[0]}, payouts)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Timeline not deterministic on run %d: %v != %v", i, first, again)
		}
	}
}

func TestTopOffenders(t *testing.T) {
	is := is.New(t)
	now := time.Now()
	fines := []proto.Fine{
		open(1, 1, "5.00", "late"),
		open(2, 2, "10.00", "late"),
		open(3, 1, "2.50", "phone"),
		open(4, 3, "7.50", "late"),
		paid(5, 4, "100.00", now),   // paid fines don't count
		open(6, 0, "99.00", "late"), // departed members don't rank
	}

	ranked := TopOffenders(fines, 5)
	is.Equal(len(ranked), 3)
	is.Equal(ranked[0].MembershipID, int64(2))
	is.Equal(ranked[0].Total, currency.MustParse("10.00"))
	is.Equal(ranked[1].MembershipID, int64(1))
	is.Equal(ranked[1].Count, 2)
	is.Equal(ranked[2].MembershipID, int64(3))
}

func TestTopOffendersTieBreak(t *testing.T) {
	is := is.New(t)
	fines := []proto.Fine{
		open(1, 9, "5.00", "late"),
		open(2, 3, "5.00", "late"),
		open(3, 6, "5.00", "late"),
	}

	ranked := TopOffenders(fines, 2)
	is.Equal(len(ranked), 2)
	// Equal totals rank by membership ID ascending.
	is.Equal(ranked[0].MembershipID, int64(3))
	is.Equal(ranked[1].MembershipID, int64(6))
}

func TestFrequentReasons(t *testing.T) {
	is := is.New(t)
	now := time.Now()
	fines := []proto.Fine{
		open(1, 1, "1.00", "late"),
		open(2, 2, "1.00", "late"),
		paid(3, 1, "1.00", now), // reason "fine", counts too
		open(4, 3, "1.00", "phone"),
		open(5, 1, "1.00", "late"),
	}

	ranked := FrequentReasons(fines, 5)
	is.Equal(ranked[0], ReasonCount{Reason: "late", Count: 3})
	// "fine" and "phone" tie at 1; alphabetical order breaks it.
	is.Equal(ranked[1], ReasonCount{Reason: "fine", Count: 1})
	is.Equal(ranked[2], ReasonCount{Reason: "phone", Count: 1})
}

func TestFrequentReasonsTruncates(t *testing.T) {
	fines := []proto.Fine{
		open(1, 1, "1.00", "a"),
		open(2, 1, "1.00", "b"),
		open(3, 1, "1.00", "c"),
	}
	if got := FrequentReasons(fines, 2); len(got) != 2 {
		t.Errorf("FrequentReasons(n=2) => %d entries, want 2", len(got))
	}
}
