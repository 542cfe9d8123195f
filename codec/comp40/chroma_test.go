package comp40

import (
	"math"
	"testing"
)

func TestChromaRoundTrip(t *testing.T) {
	const maxErr = 1.0 / 30.0
	for x := -0.5; x <= 0.5; x += 0.01 {
		idx := indexOfChroma(x)
		if idx > 15 {
			t.Fatalf("indexOfChroma(%v) = %d, out of range", x, idx)
		}
		got := chromaOfIndex(idx)
		if d := math.Abs(got - x); d > maxErr {
			t.Errorf("chromaOfIndex(indexOfChroma(%v)) = %v, error %v exceeds %v", x, got, d, maxErr)
		}
	}
}

func TestChromaOfZeroIsIndexEight(t *testing.T) {
	idx := indexOfChroma(0)
	if idx != 8 {
		t.Errorf("indexOfChroma(0) = %d, want 8", idx)
	}
	if got := chromaOfIndex(8); math.Abs(got) > 1.0/30.0 {
		t.Errorf("chromaOfIndex(8) = %v, want close to 0", got)
	}
}

func TestChromaOfIndexPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range index")
		}
	}()
	chromaOfIndex(16)
}
