package comp40

import (
	"bytes"
	"math"
	"testing"
)

func solidImage(w, h int, r, g, b uint16) *RGBImage {
	img := &RGBImage{Width: w, Height: h, Denominator: 255, Pixels: make([][]RGBPixel, h)}
	for row := 0; row < h; row++ {
		img.Pixels[row] = make([]RGBPixel, w)
		for col := 0; col < w; col++ {
			img.Pixels[row][col] = RGBPixel{Red: r, Green: g, Blue: b}
		}
	}
	return img
}

// TestScenarioBBlackBlock covers the literal single-block black scenario.
func TestScenarioBBlackBlock(t *testing.T) {
	img := solidImage(2, 2, 0, 0, 0)
	var buf bytes.Buffer
	if err := Compress(img, &buf); err != nil {
		t.Fatal(err)
	}

	out, err := Decompress(&buf)
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			p := out.Pixels[row][col]
			if absDiff(int(p.Red), 0) > 1 || absDiff(int(p.Green), 0) > 1 || absDiff(int(p.Blue), 0) > 1 {
				t.Errorf("pixel (%d,%d) = %+v, want near black", col, row, p)
			}
		}
	}
}

// TestScenarioCWhiteBlock covers the literal single-block white scenario.
func TestScenarioCWhiteBlock(t *testing.T) {
	img := solidImage(2, 2, 255, 255, 255)
	var buf bytes.Buffer
	if err := Compress(img, &buf); err != nil {
		t.Fatal(err)
	}

	out, err := Decompress(&buf)
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			p := out.Pixels[row][col]
			if absDiff(int(p.Red), 255) > 1 || absDiff(int(p.Green), 255) > 1 || absDiff(int(p.Blue), 255) > 1 {
				t.Errorf("pixel (%d,%d) = %+v, want near white", col, row, p)
			}
		}
	}
}

// TestScenarioATrimEndToEnd: a 3x3 PPM-equivalent image compresses and
// decompresses to 2x2.
func TestScenarioATrimEndToEnd(t *testing.T) {
	img := solidImage(3, 3, 100, 150, 200)
	var buf bytes.Buffer
	if err := Compress(img, &buf); err != nil {
		t.Fatal(err)
	}
	out, err := Decompress(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if out.Width != 2 || out.Height != 2 {
		t.Errorf("decompressed dims = %dx%d, want 2x2", out.Width, out.Height)
	}
}

// TestCodecRoundTripRMS covers testable property 7: decompression
// reproduces the original image within an image-dependent RMS bound.
func TestCodecRoundTripRMS(t *testing.T) {
	const w, h = 8, 8
	img := &RGBImage{Width: w, Height: h, Denominator: 255, Pixels: make([][]RGBPixel, h)}
	for row := 0; row < h; row++ {
		img.Pixels[row] = make([]RGBPixel, w)
		for col := 0; col < w; col++ {
			img.Pixels[row][col] = RGBPixel{
				Red:   uint16((col * 33) % 256),
				Green: uint16((row * 47) % 256),
				Blue:  uint16((col*row*19 + 7) % 256),
			}
		}
	}

	var buf bytes.Buffer
	if err := Compress(img, &buf); err != nil {
		t.Fatal(err)
	}
	out, err := Decompress(&buf)
	if err != nil {
		t.Fatal(err)
	}

	var sumSq float64
	n := 0
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			a, b := img.Pixels[row][col], out.Pixels[row][col]
			for _, d := range []int{
				int(a.Red) - int(b.Red),
				int(a.Green) - int(b.Green),
				int(a.Blue) - int(b.Blue),
			} {
				sumSq += float64(d * d)
				n++
			}
		}
	}
	rms := math.Sqrt(sumSq / float64(n))
	if rms > 10 {
		t.Errorf("RMS difference = %v, want <= 10", rms)
	}
}

func TestDecompressMalformedHeader(t *testing.T) {
	_, err := Decompress(bytes.NewReader([]byte("garbage")))
	if err == nil {
		t.Error("expected error for malformed header")
	}
}
