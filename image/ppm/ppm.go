/*
DESCRIPTION
  ppm.go implements reading and writing of binary (P6) portable pixmap
  images: the external collaborator the comp40 codec relies on for pixel
  I/O, kept entirely independent of the codec package. Grounded on
  original_source/readOrWrite.c's header-token handling and
  codec/jpeg/lex.go's buffered-reader, magic-byte-checking style.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ppm reads and writes binary (P6) portable pixmap images.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/ausocean/comp40/codec/comp40"
)

// magic is the only PPM variant this package supports: binary ("raw") P6.
const magic = "P6"

// Read parses a binary PPM image from r: magic, whitespace-separated
// width, height and maxval tokens, one whitespace byte, then
// width*height*3 raw sample bytes.
//
// Read returns *comp40.RGBImage directly so that callers need not learn
// an intermediate pixmap type; ppm is the only producer of RGBImage
// values from an encoded byte stream.
func Read(r io.Reader) (*comp40.RGBImage, error) {
	br := bufio.NewReader(r)

	tok, err := readToken(br)
	if err != nil {
		return nil, errors.Wrap(err, "ppm: read magic")
	}
	if tok != magic {
		return nil, errors.Errorf("ppm: unsupported magic %q, want %q", tok, magic)
	}

	width, err := readIntToken(br, "width")
	if err != nil {
		return nil, err
	}
	height, err := readIntToken(br, "height")
	if err != nil {
		return nil, err
	}
	maxval, err := readIntToken(br, "maxval")
	if err != nil {
		return nil, err
	}
	if maxval <= 0 || maxval > 0xFFFF {
		return nil, errors.Errorf("ppm: maxval %d out of range", maxval)
	}

	// Exactly one whitespace byte separates the header from the raster;
	// readToken has already consumed it as the maxval token's terminator.

	img := &comp40.RGBImage{
		Width:       width,
		Height:      height,
		Denominator: uint16(maxval),
		Pixels:      make([][]comp40.RGBPixel, height),
	}

	row := make([]byte, width*3)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, errors.Wrapf(err, "ppm: read raster row %d", y)
		}
		pixels := make([]comp40.RGBPixel, width)
		for x := 0; x < width; x++ {
			pixels[x] = comp40.RGBPixel{
				Red:   uint16(row[x*3]),
				Green: uint16(row[x*3+1]),
				Blue:  uint16(row[x*3+2]),
			}
		}
		img.Pixels[y] = pixels
	}

	return img, nil
}

// Write serialises img as a binary PPM image to w.
func Write(w io.Writer, img *comp40.RGBImage) error {
	header := fmt.Sprintf("%s\n%d %d\n%d\n", magic, img.Width, img.Height, img.Denominator)
	if _, err := io.WriteString(w, header); err != nil {
		return errors.Wrap(err, "ppm: write header")
	}

	row := make([]byte, img.Width*3)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.Pixels[y][x]
			row[x*3] = byte(p.Red)
			row[x*3+1] = byte(p.Green)
			row[x*3+2] = byte(p.Blue)
		}
		if _, err := w.Write(row); err != nil {
			return errors.Wrapf(err, "ppm: write raster row %d", y)
		}
	}
	return nil
}

// readToken reads one whitespace-delimited token, skipping any leading
// whitespace, including '#'-prefixed comment lines as PPM permits between
// header tokens.
func readToken(r *bufio.Reader) (string, error) {
	var buf []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			if len(buf) == 0 {
				continue
			}
			break
		}
		if b == '#' && len(buf) == 0 {
			if err := skipComment(r); err != nil {
				return "", err
			}
			continue
		}
		buf = append(buf, b)
	}
	return string(buf), nil
}

// readIntToken reads a token and parses it as a decimal integer with
// fmt.Sscanf's %d verb, rejecting negative values. A leading '+' sign and
// leading zeroes are accepted.
func readIntToken(r *bufio.Reader, name string) (int, error) {
	tok, err := readToken(r)
	if err != nil {
		return 0, errors.Wrapf(err, "ppm: read %s", name)
	}
	var n int
	if _, err := fmt.Sscanf(tok, "%d", &n); err != nil {
		return 0, errors.Wrapf(err, "ppm: parse %s %q", name, tok)
	}
	if n < 0 {
		return 0, errors.Errorf("ppm: %s %q is negative", name, tok)
	}
	return n, nil
}

func skipComment(r *bufio.Reader) error {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		if b == '\n' {
			return nil
		}
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
