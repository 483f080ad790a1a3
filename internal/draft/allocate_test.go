package draft_test

import (
	"testing"

	"uniformes/internal/draft"
)

func TestAllocateAdvance_WorkedExample(t *testing.T) {
	// Subtotals 25000 + 20000 = 45000, advance 10000:
	// round(25000/45000*10000) = 5556, round(20000/45000*10000) = 4444.
	shares := draft.AllocateAdvance([]int64{25000, 20000}, 10000)
	if shares[0] != 5556 {
		t.Fatalf("want 5556, got %d", shares[0])
	}
	if shares[1] != 4444 {
		t.Fatalf("want 4444, got %d", shares[1])
	}
}

func TestAllocateAdvance_SingleSchoolExact(t *testing.T) {
	// S == T must return the advance exactly, for any advance.
	for _, adv := range []int64{1, 999, 10000, 123457} {
		shares := draft.AllocateAdvance([]int64{45000}, adv)
		if shares[0] != adv {
			t.Fatalf("single partition should keep the full advance %d, got %d", adv, shares[0])
		}
	}
}

func TestAllocateAdvance_NeverExceedsAdvance(t *testing.T) {
	cases := [][]int64{
		{1, 1},
		{3, 3, 3},
		{25000, 20000},
		{1, 2, 3, 4, 5},
		{99999, 1},
	}
	for _, subtotals := range cases {
		for _, adv := range []int64{1, 3, 10, 9999, 10000} {
			shares := draft.AllocateAdvance(subtotals, adv)
			var sum int64
			for _, s := range shares {
				sum += s
			}
			if sum > adv {
				t.Fatalf("shares %v of %v sum to %d > advance %d", shares, subtotals, sum, adv)
			}
		}
	}
}

func TestAllocateAdvance_ZeroTotalOrAdvance(t *testing.T) {
	if s := draft.AllocateAdvance([]int64{0, 0}, 10000); s[0] != 0 || s[1] != 0 {
		t.Fatalf("zero total should allocate nothing, got %v", s)
	}
	if s := draft.AllocateAdvance([]int64{100, 200}, 0); s[0] != 0 || s[1] != 0 {
		t.Fatalf("zero advance should allocate nothing, got %v", s)
	}
}
