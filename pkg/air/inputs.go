// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package air

import (
	"fmt"
	"math/bits"

	"github.com/Vesnica/STARK-HE/pkg/util/field"
)

// Inputs holds the circuit inputs: the per-level RNS moduli, and the
// coefficient vectors of the three operand ciphertexts, indexed as
// [operand][polynomial][level][coefficient].
type Inputs[F field.Element[F]] struct {
	// Per-level RNS modulus
	Modulus [CoeffLevel]F
	// Operand coefficient vectors, all of the same degree
	Values [DataNum][ValueNum][CoeffLevel][]F
}

// NewInputs constructs circuit inputs from raw 64-bit coefficients, as
// supplied by the companion encryption project.  The coefficient tensor
// must be rectangular, with a power-of-two degree, and every coefficient
// must be below its level's modulus.
func NewInputs[F field.Element[F]](modulus []uint64, values [][][][]uint64) (*Inputs[F], error) {
	var inputs Inputs[F]
	//
	if len(modulus) != CoeffLevel {
		return nil, fmt.Errorf("expected %d moduli, found %d", CoeffLevel, len(modulus))
	} else if len(values) != DataNum {
		return nil, fmt.Errorf("expected %d operands, found %d", DataNum, len(values))
	}
	//
	for i, m := range modulus {
		inputs.Modulus[i] = field.Uint64[F](m)
	}
	//
	degree := 0
	//
	for d, operand := range values {
		if len(operand) != ValueNum {
			return nil, fmt.Errorf("operand %d: expected %d polynomials, found %d", d, ValueNum, len(operand))
		}
		//
		for v, polynomial := range operand {
			if len(polynomial) != CoeffLevel {
				return nil, fmt.Errorf("operand %d, polynomial %d: expected %d levels, found %d",
					d, v, CoeffLevel, len(polynomial))
			}
			//
			for l, coeffs := range polynomial {
				if d == 0 && v == 0 && l == 0 {
					degree = len(coeffs)
				} else if len(coeffs) != degree {
					return nil, fmt.Errorf("operand %d, polynomial %d, level %d: degree %d does not match %d",
						d, v, l, len(coeffs), degree)
				}
				//
				elements := make([]F, len(coeffs))
				//
				for k, c := range coeffs {
					if c >= modulus[l] {
						return nil, fmt.Errorf("operand %d, polynomial %d, level %d: coefficient %d exceeds modulus",
							d, v, l, k)
					}
					//
					elements[k] = field.Uint64[F](c)
				}
				//
				inputs.Values[d][v][l] = elements
			}
		}
	}
	//
	if degree < 2 || bits.OnesCount(uint(degree)) != 1 {
		return nil, fmt.Errorf("degree %d is not a power of two", degree)
	}
	//
	return &inputs, nil
}

// Degree returns the polynomial degree of the operands.
func (p *Inputs[F]) Degree() uint {
	return uint(len(p.Values[0][0][0]))
}
