/*
DESCRIPTION
  chroma.go provides the 4-bit chroma index bijection used to quantize a
  block's average Pb or Pr value. The original arith40 library this codec
  is modelled on (see original_source/wordConversions.c's
  Arith40_index_of_chroma / Arith40_chroma_of_index call sites) was not
  retrievable alongside the rest of the reference source, so the table
  here is defined fresh against the bijection's documented error bound:
  |chroma_of_index(index_of_chroma(x)) - x| <= 1/30.

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

// chromaLevels is the bijection's 16 representative chroma values, index
// 0 through 15. Level i is (i-8)/15, so the levels run from -8/15 to 7/15
// in steps of 1/15, every x in [-0.5, 0.5] lies within 1/30 of a level,
// and index 8 represents exactly zero chroma, matching the worked
// black/white-block examples in the codec's test scenarios.
var chromaLevels = func() [16]float64 {
	var levels [16]float64
	for i := range levels {
		levels[i] = (float64(i) - 8) / 15
	}
	return levels
}()

// chromaOfIndex returns the representative chroma value for a 4-bit
// chroma index. index must be in [0, 15]; any other value is a
// programmer error and panics, matching the codec's policy of treating
// out-of-contract inputs to internal primitives as preconditions rather
// than data errors.
func chromaOfIndex(index uint64) float64 {
	if index > 15 {
		panic("comp40: chroma index out of range")
	}
	return chromaLevels[index]
}

// indexOfChroma returns the 4-bit chroma index whose representative value
// is nearest to x. x is expected in [-0.5, 0.5] but is not clamped here;
// out-of-range x simply maps to the nearest end of the table, which is
// the correct behaviour for block chroma averages that stray slightly
// outside the nominal range.
func indexOfChroma(x float64) uint64 {
	best := 0
	bestDist := math.Abs(x - chromaLevels[0])
	for i := 1; i < len(chromaLevels); i++ {
		d := math.Abs(x - chromaLevels[i])
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint64(best)
}
