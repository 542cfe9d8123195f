/*
DESCRIPTION
  dct.go implements the 2x2 block discrete cosine transform and its
  inverse, plus the chroma-averaging that reduces a block's four Pb/Pr
  pairs to one pair per block. Grounded on
  original_source/wordConversions.c's discreteCosineTransform and
  convertAverages.

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

// blockSize is the fixed tile dimension the codec operates on; arbitrary
// block sizes are not supported.
const blockSize = 2

// block holds the real-valued DCT-space coefficients and chroma averages
// for one 2x2 tile, before quantization.
type block struct {
	a, b, c, d float64 // luma coefficients: average, vertical, horizontal, diagonal gradient.
	pbAvg      float64 // block-mean Pb.
	prAvg      float64 // block-mean Pr.
}

// dct computes the forward 2x2 DCT-space coefficients from the four luma
// samples of a block, in (top-left, top-right, bottom-left, bottom-right)
// order.
//
// d's sign follows the reference convention: (top-left + bottom-right) -
// (top-right + bottom-left). Any other pairing visually mirrors the
// decoded block.
func dct(y1, y2, y3, y4 float64) (a, b, c, d float64) {
	a = (y4 + y3 + y2 + y1) / 4
	b = (y4 + y3 - y2 - y1) / 4
	c = (y4 - y3 + y2 - y1) / 4
	d = (y4 - y3 - y2 + y1) / 4
	return a, b, c, d
}

// inverseDCT computes the four luma samples from DCT-space coefficients,
// in (top-left, top-right, bottom-left, bottom-right) order.
func inverseDCT(a, b, c, d float64) (y1, y2, y3, y4 float64) {
	y1 = a - b - c + d
	y2 = a - b + c - d
	y3 = a + b - c - d
	y4 = a + b + c + d
	return y1, y2, y3, y4
}

// blockAt extracts the block of four component-video pixels whose
// top-left corner is (col, row), which must be even and within bounds.
func blockAt(img *CVImage, col, row int) (p1, p2, p3, p4 CVPixel) {
	return img.Pixels[row][col], img.Pixels[row][col+1],
		img.Pixels[row+1][col], img.Pixels[row+1][col+1]
}

// toBlock converts the four component-video pixels of a 2x2 tile into
// DCT-space coefficients and chroma averages.
func toBlock(p1, p2, p3, p4 CVPixel) block {
	a, b, c, d := dct(p1.Y, p2.Y, p3.Y, p4.Y)
	return block{
		a: a, b: b, c: c, d: d,
		pbAvg: (p1.Pb + p2.Pb + p3.Pb + p4.Pb) / 4,
		prAvg: (p1.Pr + p2.Pr + p3.Pr + p4.Pr) / 4,
	}
}

// fromBlock converts DCT-space coefficients and chroma averages back into
// the four component-video pixels of a 2x2 tile, broadcasting the block's
// single chroma average to all four pixels.
func fromBlock(b block) (p1, p2, p3, p4 CVPixel) {
	y1, y2, y3, y4 := inverseDCT(b.a, b.b, b.c, b.d)
	cv := func(y float64) CVPixel { return CVPixel{Y: y, Pb: b.pbAvg, Pr: b.prAvg} }
	return cv(y1), cv(y2), cv(y3), cv(y4)
}
