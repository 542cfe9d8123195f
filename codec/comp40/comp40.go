/*
DESCRIPTION
  comp40.go contains the comp40 lossy still-image codec: a five-stage
  numeric pipeline (colorspace conversion, 2x2 block DCT, quantization,
  bitpacking and big-endian framing) that compresses an RGB pixmap to
  roughly a sixth of its size and decompresses the result back to an
  approximation of the original image.

  Package comp40 is deliberately I/O-free beyond the io.Reader/io.Writer
  boundary of Compress/Decompress: it knows nothing of PPM, file paths, or
  the command line. See package ppm (image/ppm) for the PPM collaborator,
  and cmd/compress40, cmd/decompress40 for the CLI drivers.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package comp40 implements a lossy 6:1 still-image codec built from a
// colorspace transform, a 2x2 block DCT, scalar quantization and
// bitpacking into 32-bit codewords, framed with a textual header.
package comp40

import (
	"io"

	"github.com/pkg/errors"
)

// outputDenominator is the fixed channel denominator used for all
// decompressed output, regardless of the input image's denominator.
const outputDenominator = 255

// RGBPixel is one non-negative (red, green, blue) triple, each channel in
// [0, Denominator] of the owning RGBImage.
type RGBPixel struct {
	Red, Green, Blue uint16
}

// RGBImage is a row-major width x height grid of RGBPixel sharing a single
// denominator (the PPM "maxval"). Pixels is indexed Pixels[row][col].
type RGBImage struct {
	Width, Height int
	Denominator   uint16
	Pixels        [][]RGBPixel
}

// at returns the pixel at (col, row).
func (img *RGBImage) at(col, row int) RGBPixel { return img.Pixels[row][col] }

// CVPixel is one component-video pixel: luminance Y in [0,1] nominally, and
// color-difference signals Pb, Pr in [-0.5, 0.5] nominally. Values can
// stray outside these ranges after a round trip through the DCT and
// quantization stages; only the inverse colorspace transform clamps.
type CVPixel struct {
	Y, Pb, Pr float64
}

// Compress trims image to even dimensions, applies the five-stage codec
// pipeline, and writes the resulting comp40 stream to dst. image is
// already fully decoded by the caller (see image/ppm); Compress itself
// performs no file or stream parsing of the source pixels.
//
// Compress buffers the entire codeword payload before writing anything to
// dst, so a late error (for example a quantization bug overflowing a bit
// field) never leaves a partial, invalid stream on the wire.
func Compress(image *RGBImage, dst io.Writer) error {
	trimmed := trim(image)

	cv := rgbToCV(trimmed)
	words, err := blocksToWords(cv)
	if err != nil {
		return errors.Wrap(err, "comp40: compress")
	}

	if err := writeCompressed(dst, words); err != nil {
		return errors.Wrap(err, "comp40: compress")
	}
	return nil
}

// Decompress reads a comp40 stream from src and writes the decompressed
// image, as a fresh *RGBImage with Denominator 255, to the returned value.
func Decompress(src io.Reader) (*RGBImage, error) {
	words, err := readCompressed(src)
	if err != nil {
		return nil, errors.Wrap(err, "comp40: decompress")
	}

	cv := wordsToBlocks(words)
	rgb := cvToRGB(cv, outputDenominator)
	return rgb, nil
}
