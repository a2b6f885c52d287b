// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

// Package air defines the shape of the homomorphic-addition circuit: the
// layout of its execution trace, the trace builder, and the transition and
// boundary relations a valid trace must satisfy.  The circuit computes
// a + b - c over the RNS coefficients of three ciphertext polynomials,
// using flag columns to make the modular wraparound of each step explicit.
//
// Proof generation and verification over these traces belong to an
// external proving backend and are not implemented here.
package air

import "fmt"

// The trace layout follows the original state vector, one column per slot:
//
//	M0 M1 R0 R1 R2 R3 F00 F01 F02 F03 F10 F11 F12 F13
//	D00 D01 D02 D03 D10 D11 D12 D13 D20 D21 D22 D23
//
// Mx are the per-level RNS moduli, Rx the result slots, Fxy the wraparound
// and borrow flags, and Dxy the operand data slots.
const (
	// DataNum is the number of ciphertext operands (a, b and c).
	DataNum = 3
	// ValueNum is the number of polynomials per ciphertext.
	ValueNum = 2
	// CoeffLevel is the number of RNS levels per polynomial.
	CoeffLevel = 2
	// ModulusNum is the number of modulus columns (one per RNS level).
	ModulusNum = CoeffLevel
	// FlagNum is the number of flag banks (wraparound and borrow).
	FlagNum = DataNum - 1
	// FlagLen is the number of columns per flag bank.
	FlagLen = ValueNum * CoeffLevel
	// DataLen is the number of columns per operand.
	DataLen = FlagLen
	// ResultStart is the first result column.
	ResultStart = ModulusNum
	// ResultEnd is one past the last result column.
	ResultEnd = ResultStart + DataLen
	// FlagStart is the first flag column.
	FlagStart = ResultEnd
	// DataStart is the first operand data column.
	DataStart = ModulusNum + DataLen + FlagNum*FlagLen
	// DataEnd is one past the last operand data column.
	DataEnd = DataStart + DataNum*DataLen
	// StateWidth is the total number of columns.
	StateWidth = DataEnd
)

// DefaultCoeffDegree is the polynomial degree of the ciphertexts produced
// by the companion encryption project.
const DefaultCoeffDegree = 4096

// ColumnNames returns the names of all trace columns in layout order.
func ColumnNames() []string {
	names := make([]string, 0, StateWidth)
	//
	for i := 0; i < ModulusNum; i++ {
		names = append(names, fmt.Sprintf("M%d", i))
	}
	//
	for i := 0; i < DataLen; i++ {
		names = append(names, fmt.Sprintf("R%d", i))
	}
	//
	for i := 0; i < FlagNum; i++ {
		for j := 0; j < FlagLen; j++ {
			names = append(names, fmt.Sprintf("F%d%d", i, j))
		}
	}
	//
	for i := 0; i < DataNum; i++ {
		for j := 0; j < DataLen; j++ {
			names = append(names, fmt.Sprintf("D%d%d", i, j))
		}
	}
	//
	return names
}
