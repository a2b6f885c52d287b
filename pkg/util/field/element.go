// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package field

import (
	"fmt"
	"math/big"
)

// An Element of a prime-order field.  Implementations hold a canonical
// residue in the range [0,M) where M is the field modulus.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x+y
	Add(y Operand) Operand
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y Operand) int
	// IsGreater returns true iff x > y, comparing the canonical residues
	// as unsigned integers.  This is the ordering operation missing from
	// most field arithmetic libraries, and is required by circuit logic
	// which must detect modular wraparound (e.g. borrow flags).
	IsGreater(y Operand) bool
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Return the modulus for the field in question.
	Modulus() *big.Int
	// Compute x * y
	Mul(y Operand) Operand
	// Compute x⁻¹, or 0 if x = 0.
	Inverse() Operand
	// Compute x - y
	Sub(y Operand) Operand
	// Bytes returns the big-endian encoding of x.
	Bytes() []byte
	// SetBytes constructs an element from big-endian bytes, reducing as
	// necessary.
	SetBytes(bytes []byte) Operand
	// SetUint64 constructs an element from a given uint64.
	SetUint64(val uint64) Operand
	// Uint64 returns the numerical value of x, assuming it fits.
	Uint64() uint64
	// Text returns the numerical value of x in the given base.
	Text(base int) string
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// BigInt construct a field element from a given big.Int
func BigInt[F Element[F]](val big.Int) F {
	var element F
	// Handle negative values
	if val.Sign() < 0 {
		panic("negative value encountered")
	}
	//
	return element.SetBytes(val.Bytes())
}

// FromBigEndianBytes constructs a field element from an array of bytes given
// in big endian order.
func FromBigEndianBytes[F Element[F]](bytes []byte) F {
	var element F
	//
	return element.SetBytes(bytes)
}

// TwoPowN constructs a field element representing 2^n
func TwoPowN[F Element[F]](n uint) F {
	var two F
	//
	return Pow(two.SetUint64(2), uint64(n))
}
