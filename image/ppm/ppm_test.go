package ppm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/comp40/codec/comp40"
)

func sampleImage() *comp40.RGBImage {
	return &comp40.RGBImage{
		Width:       2,
		Height:      2,
		Denominator: 255,
		Pixels: [][]comp40.RGBPixel{
			{{Red: 1, Green: 2, Blue: 3}, {Red: 4, Green: 5, Blue: 6}},
			{{Red: 7, Green: 8, Blue: 9}, {Red: 10, Green: 11, Blue: 12}},
		},
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	img := sampleImage()
	var buf bytes.Buffer
	if err := Write(&buf, img); err != nil {
		t.Fatal(err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(img, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	_, err := Read(strings.NewReader("P5\n2 2\n255\n"))
	if err == nil {
		t.Error("expected error for unsupported magic")
	}
}

func TestReadRejectsTruncatedRaster(t *testing.T) {
	_, err := Read(strings.NewReader("P6\n2 2\n255\n\x01\x02"))
	if err == nil {
		t.Error("expected error for truncated raster")
	}
}

func TestReadHandlesComments(t *testing.T) {
	src := "P6\n# a comment\n2 1\n# another\n255\n\x01\x02\x03\x04\x05\x06"
	img, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 2 || img.Height != 1 {
		t.Errorf("dims = %dx%d, want 2x1", img.Width, img.Height)
	}
}
