package dbscan

import "testing"

func TestAdjustedRandIndex_IdenticalPartitions(t *testing.T) {
	a := []int32{0, 0, 1, 1, -1}
	if got := AdjustedRandIndex(a, a); got != 1.0 {
		t.Errorf("ARI(a, a) = %v, want 1.0", got)
	}
}

func TestAdjustedRandIndex_InvariantUnderRelabeling(t *testing.T) {
	a := []int32{0, 0, 1, 1, 2}
	b := []int32{5, 5, 3, 3, 9}
	if got := AdjustedRandIndex(a, b); got != 1.0 {
		t.Errorf("ARI = %v, want 1.0 for a relabeling of the same partition", got)
	}
}

func TestAdjustedRandIndex_SingleGroupBothSides(t *testing.T) {
	a := []int32{0, 0, 0, 0}
	b := []int32{7, 7, 7, 7}
	if got := AdjustedRandIndex(a, b); got != 1.0 {
		t.Errorf("ARI = %v, want 1.0 by convention when denominator is zero", got)
	}
}

func TestAdjustedRandIndex_CompletelyDisagreeingPartitions(t *testing.T) {
	// Every point in its own singleton vs. everything in one group: this is
	// the classic ARI ~ 0 case for random-like partitions.
	a := []int32{0, 1, 2, 3, 4, 5}
	b := []int32{0, 0, 0, 0, 0, 0}
	got := AdjustedRandIndex(a, b)
	if got != 0 {
		t.Errorf("ARI = %v, want 0 (singleton partition carries no pairwise information)", got)
	}
}

func TestAdjustedRandIndex_PartialAgreement(t *testing.T) {
	a := []int32{0, 0, 0, 1, 1, 1}
	b := []int32{0, 0, 1, 1, 1, 1}
	got := AdjustedRandIndex(a, b)
	if got <= 0 || got >= 1 {
		t.Errorf("ARI = %v, want a value strictly between 0 and 1", got)
	}
}

func TestAdjustedRandIndex_EmptyInput(t *testing.T) {
	if got := AdjustedRandIndex(nil, nil); got != 1.0 {
		t.Errorf("ARI(nil, nil) = %v, want 1.0", got)
	}
}

func TestAdjustedRandIndex_PanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on mismatched lengths")
		}
	}()
	AdjustedRandIndex([]int32{0, 1}, []int32{0})
}

func TestCombination2(t *testing.T) {
	cases := []struct {
		n    int64
		want float64
	}{{0, 0}, {1, 0}, {2, 1}, {3, 3}, {5, 10}}
	for _, c := range cases {
		if got := combination2(c.n); got != c.want {
			t.Errorf("combination2(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}
