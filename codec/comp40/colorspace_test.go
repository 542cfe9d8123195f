package comp40

import "testing"

// TestColorRoundTrip covers testable property 5: for any RGB pixel with
// channels in [0,D], converting to component video and back yields the
// original pixel within +-1 per channel.
func TestColorRoundTrip(t *testing.T) {
	const d = 255
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				p := RGBPixel{Red: uint16(r), Green: uint16(g), Blue: uint16(b)}
				cv := rgbPixelToCV(p, d)
				got := cvPixelToRGB(cv, d)

				if absDiff(int(got.Red), r) > 1 {
					t.Errorf("R: got %d, want %d +-1", got.Red, r)
				}
				if absDiff(int(got.Green), g) > 1 {
					t.Errorf("G: got %d, want %d +-1", got.Green, g)
				}
				if absDiff(int(got.Blue), b) > 1 {
					t.Errorf("B: got %d, want %d +-1", got.Blue, b)
				}
			}
		}
	}
}

func TestClamp01(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 1},
	}
	for _, c := range cases {
		if got := clamp01(c.in); got != c.want {
			t.Errorf("clamp01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func absDiff(a, b int) int {
	if a < b {
		return b - a
	}
	return a - b
}
