/*
DESCRIPTION
  quantize.go maps the real-valued (a,b,c,d,Pb-avg,Pr-avg) six-tuple of a
  block to fixed-width integer fields, and back. Grounded on
  original_source/wordConversions.c's capOrNoCapDCT and the quantizing
  assignments in discreteCosineTransform/convertAverages.

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

import "math"

// Quantization scales: 511 = 2^9-1 fills the 9-bit a field; 50 maps the
// +-0.3 clamped dynamic range of b/c/d onto +-15, the extent of 5 signed
// bits.
const (
	aScale  = 511
	bcdScale = 50

	// dctClamp is the range b, c and d are clamped to before quantizing.
	dctClamp = 0.3
)

// quantizedBlock holds the integer fields packed into one codeword.
type quantizedBlock struct {
	a      uint64 // [0, 511]
	b, c, d int64 // [-15, 15]
	pb, pr uint64 // [0, 15], chroma indices.
}

// quantize maps a block's real-valued coefficients to their fixed-width
// integer fields. a is not clamped before quantizing (it is already in
// [0,1] by construction from in-range RGB input); b, c and d are clamped
// to [-0.3, 0.3] first.
func quantize(b block) quantizedBlock {
	return quantizedBlock{
		a: uint64(roundHalfAwayFromZero(b.a * aScale)),
		b: int64(roundHalfAwayFromZero(clamp(b.b, -dctClamp, dctClamp) * bcdScale)),
		c: int64(roundHalfAwayFromZero(clamp(b.c, -dctClamp, dctClamp) * bcdScale)),
		d: int64(roundHalfAwayFromZero(clamp(b.d, -dctClamp, dctClamp) * bcdScale)),
		pb: indexOfChroma(b.pbAvg),
		pr: indexOfChroma(b.prAvg),
	}
}

// dequantize maps a quantized block's integer fields back to real-valued
// coefficients.
func dequantize(q quantizedBlock) block {
	return block{
		a: float64(q.a) / aScale,
		b: float64(q.b) / bcdScale,
		c: float64(q.c) / bcdScale,
		d: float64(q.d) / bcdScale,
		pbAvg: chromaOfIndex(q.pb),
		prAvg: chromaOfIndex(q.pr),
	}
}

// roundHalfAwayFromZero rounds x to the nearest integer, rounding exact
// halves away from zero. math.Round already implements this mode; the
// wrapper exists so that the codec's dependence on a specific rounding
// mode (rather than e.g. round-to-even) is a named, searchable decision,
// per the reference's documented reliance on host round() semantics.
func roundHalfAwayFromZero(x float64) float64 {
	return math.Round(x)
}

// clamp restricts x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}
