/*
DESCRIPTION
  codeword.go assembles a quantized block's six integer fields into a
  32-bit codeword, and disassembles a codeword back into those fields.
  Field widths and bit positions are grounded on
  original_source/packOrUnpack.c's bitpack/unpackUnsigned/unpackSigned.

  This file also drives the per-block mapping between a CVImage and a
  CodewordImage: blocksToWords for compression, wordsToBlocks for
  decompression.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package comp40

import (
	"github.com/pkg/errors"

	"github.com/ausocean/comp40/codec/comp40/bits"
)

// Codeword is the 32-bit packed representation of one 2x2 block: fields
// a, b, c, d, Pb-avg and Pr-avg packed at the fixed bit positions below.
type Codeword uint32

// Field layout: (lsb, width) for each of the six fields, in the order
// they are packed into the codeword.
const (
	aLSB, aWidth   = 23, 9
	bLSB, bWidth   = 18, 5
	cLSB, cWidth   = 13, 5
	dLSB, dWidth   = 8, 5
	pbLSB, pbWidth = 4, 4
	prLSB, prWidth = 0, 4
)

// CodewordImage is a row-major width x height grid of codewords, one per
// 2x2 source block. Its dimensions are half those of the CVImage it was
// derived from.
type CodewordImage struct {
	Width, Height int
	Words         [][]Codeword
}

// packCodeword assembles a quantized block's six fields into one 32-bit
// codeword in the order a, b, c, d, Pb-avg, Pr-avg, using a freshly
// zeroed 64-bit accumulator and truncating to 32 bits at the end.
func packCodeword(q quantizedBlock) (Codeword, error) {
	var word uint64

	word, err := bits.Put(word, aWidth, aLSB, q.a)
	if err != nil {
		return 0, errors.Wrap(err, "pack field a")
	}
	word, err = bits.PutSigned(word, bWidth, bLSB, q.b)
	if err != nil {
		return 0, errors.Wrap(err, "pack field b")
	}
	word, err = bits.PutSigned(word, cWidth, cLSB, q.c)
	if err != nil {
		return 0, errors.Wrap(err, "pack field c")
	}
	word, err = bits.PutSigned(word, dWidth, dLSB, q.d)
	if err != nil {
		return 0, errors.Wrap(err, "pack field d")
	}
	word, err = bits.Put(word, pbWidth, pbLSB, q.pb)
	if err != nil {
		return 0, errors.Wrap(err, "pack field pb")
	}
	word, err = bits.Put(word, prWidth, prLSB, q.pr)
	if err != nil {
		return 0, errors.Wrap(err, "pack field pr")
	}

	return Codeword(uint32(word)), nil
}

// unpackCodeword disassembles a codeword into its six quantized fields.
func unpackCodeword(w Codeword) quantizedBlock {
	word := uint64(w)
	return quantizedBlock{
		a:  bits.Get(word, aWidth, aLSB),
		b:  bits.GetSigned(word, bWidth, bLSB),
		c:  bits.GetSigned(word, cWidth, cLSB),
		d:  bits.GetSigned(word, dWidth, dLSB),
		pb: bits.Get(word, pbWidth, pbLSB),
		pr: bits.Get(word, prWidth, prLSB),
	}
}

// blocksToWords converts a (trimmed, even-dimensioned) component-video
// image into a grid of codewords, one per 2x2 block, in row-major order.
func blocksToWords(cv *CVImage) (*CodewordImage, error) {
	width := cv.Width / blockSize
	height := cv.Height / blockSize

	out := &CodewordImage{
		Width:  width,
		Height: height,
		Words:  make([][]Codeword, height),
	}

	for row := 0; row < height; row++ {
		out.Words[row] = make([]Codeword, width)
		for col := 0; col < width; col++ {
			p1, p2, p3, p4 := blockAt(cv, col*blockSize, row*blockSize)
			q := quantize(toBlock(p1, p2, p3, p4))
			word, err := packCodeword(q)
			if err != nil {
				return nil, errors.Wrapf(err, "block (%d,%d)", col, row)
			}
			out.Words[row][col] = word
		}
	}
	return out, nil
}

// wordsToBlocks converts a grid of codewords back into a component-video
// image twice the width and height of the codeword grid.
func wordsToBlocks(words *CodewordImage) *CVImage {
	width := words.Width * blockSize
	height := words.Height * blockSize

	out := &CVImage{
		Width:  width,
		Height: height,
		Pixels: make([][]CVPixel, height),
	}
	for row := range out.Pixels {
		out.Pixels[row] = make([]CVPixel, width)
	}

	for row := 0; row < words.Height; row++ {
		for col := 0; col < words.Width; col++ {
			q := unpackCodeword(words.Words[row][col])
			b := dequantize(q)
			p1, p2, p3, p4 := fromBlock(b)

			baseCol, baseRow := col*blockSize, row*blockSize
			out.Pixels[baseRow][baseCol] = p1
			out.Pixels[baseRow][baseCol+1] = p2
			out.Pixels[baseRow+1][baseCol] = p3
			out.Pixels[baseRow+1][baseCol+1] = p4
		}
	}
	return out
}
