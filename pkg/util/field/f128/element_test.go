// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package f128

import (
	"math/big"
	"testing"

	"github.com/Vesnica/STARK-HE/pkg/util/assert"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNew_Canonical(t *testing.T) {
	// Values below M are stored as-is
	assert.Equal(t, Uint128{0, 0}, New(Uint128{0, 0}).Uint128())
	assert.Equal(t, Uint128{0, 10}, New(Uint128{0, 10}).Uint128())
	assert.Equal(t, Uint128{1 << 62, 42}, New(Uint128{1 << 62, 42}).Uint128())
}

func TestNew_SingleReduction(t *testing.T) {
	five := Uint128{0, 5}
	one := Uint128{0, 1}
	// M - 1 stays put
	mSub1, _ := sub128(Modulus, one)
	assert.Equal(t, mSub1, New(mSub1).Uint128())
	// M reduces to 0
	assert.Equal(t, Uint128{0, 0}, New(Modulus).Uint128())
	// M + 5 reduces to 5
	mAdd5, carry := add128(Modulus, five)
	assert.Equal(t, uint64(0), carry)
	assert.Equal(t, five, New(mAdd5).Uint128())
	// The largest representable value reduces to 2^128 - 1 - M
	max := Uint128{^uint64(0), ^uint64(0)}
	expected, _ := sub128(max, Modulus)
	assert.Equal(t, expected, New(max).Uint128())
}

func TestIsGreater(t *testing.T) {
	three := New(Uint128{0, 3})
	seven := New(Uint128{0, 7})
	ten := New(Uint128{0, 10})
	//
	assert.True(t, ten.IsGreater(three))
	assert.False(t, three.IsGreater(ten))
	assert.False(t, seven.IsGreater(seven))
	// Comparison acts on the whole 128-bit magnitude
	big := New(Uint128{1, 0})
	assert.True(t, big.IsGreater(ten))
	assert.False(t, ten.IsGreater(big))
}

func TestElement_SmallValues(t *testing.T) {
	var e Element
	//
	assert.True(t, e.IsZero())
	assert.False(t, e.IsOne())
	assert.True(t, e.SetUint64(1).IsOne())
	assert.Equal(t, uint64(1234), e.SetUint64(1234).Uint64())
}

func TestElement_Bytes(t *testing.T) {
	x := New(Uint128{0xDEADBEEF, 0xCAFEBABE})
	//
	assert.Equal(t, x, x.SetBytes(x.Bytes()))
	// Leading zeros are tolerated
	assert.Equal(t, New(Uint128{0, 0x1234}), x.SetBytes([]byte{0x12, 0x34}))
}

func TestElement_Modulus(t *testing.T) {
	var e Element
	// M = 2^128 - 45*2^40 + 1
	expected, ok := new(big.Int).SetString("340282366920938463463374557953744961537", 10)
	assert.True(t, ok)
	assert.Equal(t, 0, expected.Cmp(e.Modulus()))
}

// genUint128 generates arbitrary raw 128-bit values.
func genUint128() gopter.Gen {
	return gopter.CombineGens(gen.UInt64(), gen.UInt64()).Map(
		func(vals []interface{}) Uint128 {
			return Uint128{vals[0].(uint64), vals[1].(uint64)}
		})
}

// genElement generates canonical field elements.
func genElement() gopter.Gen {
	return genUint128().Map(New)
}

func TestProperties_New(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)

	properties.Property("new(v) is canonical", prop.ForAll(
		func(v Uint128) bool {
			return New(v).Uint128().Cmp(Modulus) < 0
		},
		genUint128(),
	))

	properties.Property("new(v) subtracts M at most once", prop.ForAll(
		func(v Uint128) bool {
			e := New(v).Uint128()
			//
			if v.Cmp(Modulus) < 0 {
				return e == v
			}
			//
			expected, _ := sub128(v, Modulus)
			//
			return e == expected
		},
		genUint128(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperties_IsGreater(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)

	properties.Property("irreflexive", prop.ForAll(
		func(x Element) bool {
			return !x.IsGreater(x)
		},
		genElement(),
	))

	properties.Property("antisymmetric", prop.ForAll(
		func(x Element, y Element) bool {
			if x.Cmp(y) == 0 {
				return !x.IsGreater(y) && !y.IsGreater(x)
			}
			// Exactly one direction holds
			return x.IsGreater(y) != y.IsGreater(x)
		},
		genElement(), genElement(),
	))

	properties.Property("matches unsigned comparison", prop.ForAll(
		func(x Element, y Element) bool {
			expected := x.Uint128().Big().Cmp(y.Uint128().Big()) > 0
			//
			return x.IsGreater(y) == expected
		},
		genElement(), genElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperties_Arithmetic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)
	modulus := new(Element).Modulus()

	properties.Property("add matches big.Int", prop.ForAll(
		func(x Element, y Element) bool {
			expected := new(big.Int).Add(x.Uint128().Big(), y.Uint128().Big())
			expected.Mod(expected, modulus)
			//
			return expected.Cmp(x.Add(y).Uint128().Big()) == 0
		},
		genElement(), genElement(),
	))

	properties.Property("sub matches big.Int", prop.ForAll(
		func(x Element, y Element) bool {
			expected := new(big.Int).Sub(x.Uint128().Big(), y.Uint128().Big())
			expected.Mod(expected, modulus)
			//
			return expected.Cmp(x.Sub(y).Uint128().Big()) == 0
		},
		genElement(), genElement(),
	))

	properties.Property("mul matches big.Int", prop.ForAll(
		func(x Element, y Element) bool {
			expected := new(big.Int).Mul(x.Uint128().Big(), y.Uint128().Big())
			expected.Mod(expected, modulus)
			//
			return expected.Cmp(x.Mul(y).Uint128().Big()) == 0
		},
		genElement(), genElement(),
	))

	properties.Property("x * x⁻¹ = 1 for x ≠ 0", prop.ForAll(
		func(x Element) bool {
			if x.IsZero() {
				return x.Inverse().IsZero()
			}
			//
			return x.Mul(x.Inverse()).IsOne()
		},
		genElement(),
	))

	properties.Property("neg is additive inverse", prop.ForAll(
		func(x Element) bool {
			return x.Add(x.Neg()).IsZero()
		},
		genElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestArithmetic_Concrete(t *testing.T) {
	one := New(Uint128{0, 1})
	two := New(Uint128{0, 2})
	mSub1 := New(Uint128{}).Sub(one)
	// (M - 1) + 1 = 0
	assert.True(t, mSub1.Add(one).IsZero())
	// (M - 1) + 2 = 1
	assert.True(t, mSub1.Add(two).IsOne())
	// 0 - 1 = M - 1
	sub, _ := sub128(Modulus, Uint128{0, 1})
	assert.Equal(t, sub, mSub1.Uint128())
	// (M - 1)^2 = 1, since M - 1 ≡ -1
	assert.True(t, mSub1.Mul(mSub1).IsOne())
	// 2^128 ≡ 45*2^40 - 1
	big2 := New(Uint128{0, 2})
	pow := big2.Exp(Uint128{0, 128})
	assert.Equal(t, Uint128{0, epsilon - 1}, pow.Uint128())
}

func TestExp_Concrete(t *testing.T) {
	three := New(Uint128{0, 3})
	//
	assert.True(t, three.Exp(Uint128{0, 0}).IsOne())
	assert.Equal(t, three, three.Exp(Uint128{0, 1}))
	assert.Equal(t, uint64(81), three.Exp(Uint128{0, 4}).Uint64())
}
