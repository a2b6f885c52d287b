// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package f128

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// Uint128 is a raw unsigned 128-bit integer stored as two 64-bit limbs.  It
// is an integer, not a residue: arithmetic on it wraps modulo 2^128.  All
// modular interpretation happens in Element.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// NewUint128 constructs a Uint128 from its high and low limbs.
func NewUint128(hi uint64, lo uint64) Uint128 {
	return Uint128{hi, lo}
}

// Uint128FromUint64 constructs a Uint128 from a single 64-bit value.
func Uint128FromUint64(val uint64) Uint128 {
	return Uint128{0, val}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Uint128) Cmp(y Uint128) int {
	switch {
	case x.Hi > y.Hi:
		return 1
	case x.Hi < y.Hi:
		return -1
	case x.Lo > y.Lo:
		return 1
	case x.Lo < y.Lo:
		return -1
	default:
		return 0
	}
}

// IsZero checks whether this value is zero.
func (x Uint128) IsZero() bool {
	return x.Hi == 0 && x.Lo == 0
}

// Bit returns the bit at the given offset, where offset 0 is the
// least-significant bit.
func (x Uint128) Bit(i uint) bool {
	if i >= 64 {
		return (x.Hi>>(i-64))&1 == 1
	}
	//
	return (x.Lo>>i)&1 == 1
}

// Bytes returns the big-endian 16-byte encoding of this value.
func (x Uint128) Bytes() []byte {
	var buf [16]byte
	//
	binary.BigEndian.PutUint64(buf[:8], x.Hi)
	binary.BigEndian.PutUint64(buf[8:], x.Lo)
	//
	return buf[:]
}

// Big returns the value as a big.Int.
func (x Uint128) Big() *big.Int {
	return new(big.Int).SetBytes(x.Bytes())
}

// add128 computes x + y, returning the sum modulo 2^128 along with the
// outgoing carry bit.
func add128(x Uint128, y Uint128) (Uint128, uint64) {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, carry := bits.Add64(x.Hi, y.Hi, carry)
	//
	return Uint128{hi, lo}, carry
}

// sub128 computes x - y, returning the difference modulo 2^128 along with
// the outgoing borrow bit.
func sub128(x Uint128, y Uint128) (Uint128, uint64) {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	hi, borrow := bits.Sub64(x.Hi, y.Hi, borrow)
	//
	return Uint128{hi, lo}, borrow
}

// mul128 computes the full 256-bit product x * y, returned as a high and a
// low 128-bit half.
func mul128(x Uint128, y Uint128) (Uint128, Uint128) {
	h00, l00 := bits.Mul64(x.Lo, y.Lo)
	h01, l01 := bits.Mul64(x.Lo, y.Hi)
	h10, l10 := bits.Mul64(x.Hi, y.Lo)
	h11, l11 := bits.Mul64(x.Hi, y.Hi)
	// Second limb
	p1, ca := bits.Add64(h00, l01, 0)
	p1, cb := bits.Add64(p1, l10, 0)
	// Third limb
	p2, cc := bits.Add64(l11, h01, ca)
	p2, cd := bits.Add64(p2, h10, cb)
	// Fourth limb cannot overflow
	p3 := h11 + cc + cd
	//
	return Uint128{p3, p2}, Uint128{p1, l00}
}
