/*
DESCRIPTION
  bits.go provides width-checked access to signed and unsigned bitfields
  packed into a 64-bit machine word. It underlies the comp40 codeword
  layout, which packs six fields of varying width and signedness into a
  single 32-bit value.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bits implements fits/get/put primitives over fixed-width signed
// and unsigned bitfields within a 64-bit word.
package bits

import (
	"fmt"

	"github.com/pkg/errors"
)

// wordSize is the width, in bits, of the machine word that fields are
// packed into. All field operations guard shifts explicitly (see leftShift
// and rightShift) rather than rely on the language's shift-by->=width rule,
// which differs between Go, C and the underlying ISAs.
const wordSize = 64

// ErrOverflow is returned by Put/PutSigned when value does not fit in the
// requested field width. It is a sentinel so callers can detect overflow
// with errors.Is without string matching.
var ErrOverflow = errors.New("bits: value does not fit in field")

// FitsUnsigned reports whether n can be represented in width unsigned bits.
// It is false for width == 0, and true for any width > 64.
func FitsUnsigned(n uint64, width uint) bool {
	if width == 0 {
		return false
	}
	if width > wordSize {
		return true
	}
	max := leftShift(1, width) - 1
	return n <= max
}

// FitsSigned reports whether n can be represented in width signed bits.
// It is false for width == 0, and true for any width > 64.
func FitsSigned(n int64, width uint) bool {
	if width == 0 {
		return false
	}
	if width > wordSize {
		return true
	}
	min := -int64(leftShift(1, width-1))
	max := int64(leftShift(1, width-1)) - 1
	return n >= min && n <= max
}

// Get returns the width bits of word starting at bit lsb (LSB-0 indexing),
// zero-extended into the low bits of the result.
//
// Get panics if width > 64 or lsb+width > 64: these are programmer errors,
// not data errors, per the codec's error handling policy.
func Get(word uint64, width, lsb uint) uint64 {
	checkFieldBounds(width, lsb)

	mask := leftShift(^uint64(0), wordSize-width)
	mask = rightShift(mask, wordSize-(lsb+width))
	return rightShift(word&mask, lsb)
}

// GetSigned is as Get, but the result is sign-extended from bit lsb+width-1.
func GetSigned(word uint64, width, lsb uint) int64 {
	checkFieldBounds(width, lsb)

	v := int64(Get(word, width, lsb))
	v = int64(leftShift(uint64(v), wordSize-width))
	return signedRightShift(v, wordSize-width)
}

// Put returns word with its width-bit field at lsb replaced by value. It
// returns ErrOverflow if value does not fit in width unsigned bits.
//
// Put panics if width > 64 or lsb+width > 64.
func Put(word uint64, width, lsb uint, value uint64) (uint64, error) {
	checkFieldBounds(width, lsb)

	if !FitsUnsigned(value, width) {
		return 0, errors.Wrapf(ErrOverflow, "%d does not fit in %d unsigned bits", value, width)
	}

	high := leftShift(^uint64(0), lsb+width)
	low := rightShift(^uint64(0), wordSize-lsb)
	mask := high | low

	return (word & mask) | leftShift(value, lsb), nil
}

// PutSigned is as Put, but value is a signed field, and ErrOverflow is
// returned if value does not fit in width signed bits.
func PutSigned(word uint64, width, lsb uint, value int64) (uint64, error) {
	checkFieldBounds(width, lsb)

	if !FitsSigned(value, width) {
		return 0, errors.Wrapf(ErrOverflow, "%d does not fit in %d signed bits", value, width)
	}

	u := leftShift(uint64(value), wordSize-width)
	u = rightShift(u, wordSize-width)
	return Put(word, width, lsb, u)
}

// checkFieldBounds enforces the preconditions common to every field
// operation. Violating them is a programmer error (an out-of-range field
// descriptor baked into the codec layout), so it aborts rather than
// returning an error.
func checkFieldBounds(width, lsb uint) {
	if width > wordSize {
		panic(fmt.Sprintf("bits: width %d exceeds word size %d", width, wordSize))
	}
	if lsb+width > wordSize {
		panic(fmt.Sprintf("bits: lsb %d + width %d exceeds word size %d", lsb, width, wordSize))
	}
}

// leftShift and rightShift guard shift amounts >= wordSize, which would
// otherwise be undefined (C) or merely unspecified-but-legal-to-rely-on
// (Go's spec defines shifts by >=64 as yielding 0 for unsigned operands,
// but the named helpers make that guarantee an explicit, visible part of
// this package rather than an implicit language fact the reader has to
// know).
func leftShift(v uint64, shift uint) uint64 {
	if shift >= wordSize {
		return 0
	}
	return v << shift
}

func rightShift(v uint64, shift uint) uint64 {
	if shift >= wordSize {
		return 0
	}
	return v >> shift
}

// signedRightShift performs an arithmetic right shift, propagating the
// sign bit rather than zero-filling, and pins the result for shift
// amounts >= wordSize rather than leaving it to be re-derived at each call
// site.
func signedRightShift(v int64, shift uint) int64 {
	if shift >= wordSize {
		if v < 0 {
			return -1
		}
		return 0
	}
	return v >> shift
}
