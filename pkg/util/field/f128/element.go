// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

// Package f128 implements the 128-bit STARK-friendly prime field with
// modulus M = 2^128 - 45*2^40 + 1.  This is the base field over which
// execution traces for the homomorphic addition circuit are built.
//
// Elements are immutable values holding a canonical residue in [0,M).
// All operations are pure and safe for unsynchronized concurrent use.
package f128

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/bits"
)

// epsilon is 45*2^40, so that 2^128 ≡ epsilon - 1 (mod M).  All reduction
// in this package folds overflow back using this identity.
const epsilon uint64 = 45 << 40

// Modulus is the field modulus M = 2^128 - 45*2^40 + 1.
var Modulus = Uint128{0xFFFFFFFFFFFFFFFF, 0xFFFFD30000000001}

// Element represents a residue class modulo M.  The zero value is the field
// element 0.
type Element struct {
	n Uint128
}

// New constructs an element from a raw 128-bit value using single-step
// reduction: values below M are stored as-is, anything else has M
// subtracted exactly once.  Since M > 2^127, every representable input is
// below 2*M and the result is always canonical.  A full modulo is
// deliberately not performed, to stay bit-compatible with the arithmetic
// library used on the proving side.
func New(val Uint128) Element {
	return Element{reduce1(val)}
}

// Add computes x + y.
func (x Element) Add(y Element) Element {
	sum, carry := add128(x.n, y.n)
	// On overflow fold 2^128 back as epsilon - 1.
	if carry != 0 {
		sum, _ = add128(sum, Uint128{0, epsilon - 1})
		//
		return Element{sum}
	}
	//
	return Element{reduce1(sum)}
}

// Sub computes x - y.
func (x Element) Sub(y Element) Element {
	diff, borrow := sub128(x.n, y.n)
	// On underflow fold 2^128 back as epsilon - 1.
	if borrow != 0 {
		diff, _ = sub128(diff, Uint128{0, epsilon - 1})
	}
	//
	return Element{diff}
}

// Neg computes -x.
func (x Element) Neg() Element {
	return Element{}.Sub(x)
}

// Mul computes x * y.
func (x Element) Mul(y Element) Element {
	return Element{reduce256(mul128(x.n, y.n))}
}

// Inverse computes x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	// Fermat: x⁻¹ = x^(M-2).  The zero element maps to zero since the
	// exponent is non-zero.
	return x.Exp(Uint128{Modulus.Hi, Modulus.Lo - 2})
}

// Exp computes x^e by square-and-multiply.
func (x Element) Exp(e Uint128) Element {
	result := Element{Uint128{0, 1}}
	//
	for i := 127; i >= 0; i-- {
		result = result.Mul(result)
		//
		if e.Bit(uint(i)) {
			result = result.Mul(x)
		}
	}
	//
	return result
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.n.Cmp(y.n)
}

// IsGreater returns true iff x > y, comparing canonical residues as
// unsigned integers.  Circuit logic relies on this to detect modular
// wraparound when reconstructing borrow flags.
func (x Element) IsGreater(y Element) bool {
	return x.n.Cmp(y.n) > 0
}

// IsZero checks whether this value is zero (or not).
func (x Element) IsZero() bool {
	return x.n.IsZero()
}

// IsOne checks whether this value is one (or not).
func (x Element) IsOne() bool {
	return x.n.Hi == 0 && x.n.Lo == 1
}

// Modulus returns the modulus for this field.
func (x Element) Modulus() *big.Int {
	return Modulus.Big()
}

// Uint128 returns the canonical residue as a raw 128-bit value.
func (x Element) Uint128() Uint128 {
	return x.n
}

// Uint64 returns the numerical value of x, which must fit in 64 bits.
func (x Element) Uint64() uint64 {
	if x.n.Hi != 0 {
		panic(fmt.Errorf("cannot convert to uint64: %s", x.String()))
	}
	//
	return x.n.Lo
}

// SetUint64 implementation for the field.Element interface.
func (x Element) SetUint64(val uint64) Element {
	return Element{Uint128{0, val}}
}

// Bytes returns the big-endian 16-byte encoding of x.
func (x Element) Bytes() []byte {
	return x.n.Bytes()
}

// SetBytes constructs an element from big-endian bytes.  Inputs of up to 16
// bytes are reduced with a single subtraction (which is always sufficient);
// longer inputs are fully reduced via big.Int.
func (x Element) SetBytes(bytes []byte) Element {
	if len(bytes) > 16 {
		val := new(big.Int).SetBytes(bytes)
		val.Mod(val, Modulus.Big())
		//
		bytes = val.Bytes()
	}
	//
	var buf [16]byte
	//
	copy(buf[16-len(bytes):], bytes)
	//
	return New(Uint128{
		Hi: binary.BigEndian.Uint64(buf[:8]),
		Lo: binary.BigEndian.Uint64(buf[8:]),
	})
}

func (x Element) String() string {
	return x.Text(10)
}

// Text returns the numerical value of x in the given base.
func (x Element) Text(base int) string {
	return x.n.Big().Text(base)
}

// reduce1 brings any 128-bit value into canonical range with at most one
// subtraction of M.
func reduce1(val Uint128) Uint128 {
	if val.Cmp(Modulus) >= 0 {
		val, _ = sub128(val, Modulus)
	}
	//
	return val
}

// reduce256 reduces a 256-bit product (given as high and low halves) into
// canonical range, folding the high half twice via 2^128 ≡ epsilon - 1.
func reduce256(hi Uint128, lo Uint128) Uint128 {
	// hi*epsilon as a 192-bit quantity h2*2^128 + l2
	c1h, c1l := bits.Mul64(hi.Lo, epsilon)
	c2h, c2l := bits.Mul64(hi.Hi, epsilon)
	mid, carry := bits.Add64(c1h, c2l, 0)
	//
	l2 := Uint128{mid, c1l}
	h2 := c2h + carry
	// h2 < 2^46, so h2*epsilon fits in 128 bits
	e1, e0 := bits.Mul64(h2, epsilon)
	// hi*2^128 + lo ≡ lo + l2 + h2*epsilon - hi - h2  (mod M)
	acc := addCanonical(reduce1(lo), reduce1(l2))
	acc = addCanonical(acc, Uint128{e1, e0})
	acc = subCanonical(acc, reduce1(hi))
	acc = subCanonical(acc, Uint128{0, h2})
	//
	return acc
}

// addCanonical adds two canonical residues, producing a canonical residue.
func addCanonical(x Uint128, y Uint128) Uint128 {
	sum, carry := add128(x, y)
	if carry != 0 {
		sum, _ = add128(sum, Uint128{0, epsilon - 1})
		//
		return sum
	}
	//
	return reduce1(sum)
}

// subCanonical subtracts two canonical residues, producing a canonical
// residue.
func subCanonical(x Uint128, y Uint128) Uint128 {
	diff, borrow := sub128(x, y)
	if borrow != 0 {
		diff, _ = sub128(diff, Uint128{0, epsilon - 1})
	}
	//
	return diff
}
