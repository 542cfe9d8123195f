package comp40

import "testing"

func TestQuantizeRanges(t *testing.T) {
	cases := []block{
		{a: 0, b: 0, c: 0, d: 0, pbAvg: 0, prAvg: 0},
		{a: 1, b: 0.3, c: -0.3, d: 0.3, pbAvg: 0.5, prAvg: -0.5},
		{a: 0.5, b: 0.5, c: -0.9, d: -0.3, pbAvg: 0.1, prAvg: -0.1},
	}
	for _, bl := range cases {
		q := quantize(bl)
		if q.a > 511 {
			t.Errorf("a = %d, out of [0,511]", q.a)
		}
		for name, v := range map[string]int64{"b": q.b, "c": q.c, "d": q.d} {
			if v < -15 || v > 15 {
				t.Errorf("%s = %d, out of [-15,15]", name, v)
			}
		}
		if q.pb > 15 || q.pr > 15 {
			t.Errorf("pb=%d pr=%d, out of [0,15]", q.pb, q.pr)
		}
	}
}

func TestQuantizeClampsBeforeRounding(t *testing.T) {
	// 0.9 clamps to 0.3 before scaling by 50, giving 15, not round(0.9*50)=45.
	q := quantize(block{b: 0.9, c: -0.9})
	if q.b != 15 {
		t.Errorf("b = %d, want 15 (clamped)", q.b)
	}
	if q.c != -15 {
		t.Errorf("c = %d, want -15 (clamped)", q.c)
	}
}

func TestQuantizeDequantizeRoundTrip(t *testing.T) {
	q := quantizedBlock{a: 511, b: -15, c: 15, d: 0, pb: 8, pr: 8}
	bl := dequantize(q)
	got := quantize(bl)
	if got != q {
		t.Errorf("round trip = %+v, want %+v", got, q)
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0.5, 1},
		{-0.5, -1},
		{1.5, 2},
		{-1.5, -2},
		{0.49, 0},
		{2.5, 3},
	}
	for _, c := range cases {
		if got := roundHalfAwayFromZero(c.in); got != c.want {
			t.Errorf("roundHalfAwayFromZero(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestScenarioBQuantization(t *testing.T) {
	// All-black 2x2 block in component video: Y=Pb=Pr=0 for all four pixels.
	bl := toBlock(CVPixel{}, CVPixel{}, CVPixel{}, CVPixel{})
	q := quantize(bl)
	if q.a != 0 || q.b != 0 || q.c != 0 || q.d != 0 {
		t.Errorf("black block coefficients = %+v, want all zero", q)
	}
	if q.pb != 8 || q.pr != 8 {
		t.Errorf("black block chroma = (%d,%d), want (8,8)", q.pb, q.pr)
	}
}

func TestScenarioCQuantization(t *testing.T) {
	// All-white block: Y=1, Pb=Pr=0 for all four pixels.
	white := CVPixel{Y: 1}
	bl := toBlock(white, white, white, white)
	q := quantize(bl)
	if q.a != 511 {
		t.Errorf("white block a = %d, want 511", q.a)
	}
	if q.b != 0 || q.c != 0 || q.d != 0 {
		t.Errorf("white block b/c/d = (%d,%d,%d), want (0,0,0)", q.b, q.c, q.d)
	}
}
