// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package air

import (
	"github.com/Vesnica/STARK-HE/pkg/trace"
	"github.com/Vesnica/STARK-HE/pkg/util/field"
)

// BuildTrace generates the execution trace for the given inputs.  Each row
// carries the result of one coefficient step alongside the operand data
// and flags of the *next* step, staged so that the transition relation
// between consecutive rows stays degree two.  Operand data wraps around
// modulo the degree, making the trace exactly as tall as the polynomials.
func BuildTrace[F field.Element[F]](inputs *Inputs[F]) (*trace.ArrayTrace[F], error) {
	degree := inputs.Degree()
	//
	builder, err := trace.NewBuilder[F](ColumnNames(), degree)
	if err != nil {
		return nil, err
	}
	//
	tr := builder.Fill(
		func(state []F) {
			loadModulus(state, inputs)
			// Step 0 result
			loadData(state, inputs, 0)
			stageFlags(state)
			applyResult(state)
			// Stage step 1 data and flags
			loadData(state, inputs, 1)
			stageFlags(state)
		},
		func(prev uint, state []F) {
			// Result for the step staged on the previous row
			applyResult(state)
			// Stage the next step
			loadData(state, inputs, (prev+2)%degree)
			stageFlags(state)
		})
	//
	return tr, nil
}

// loadModulus populates the modulus columns of a state vector.
func loadModulus[F field.Element[F]](state []F, inputs *Inputs[F]) {
	for i := 0; i < ModulusNum; i++ {
		state[i] = inputs.Modulus[i]
	}
}

// loadData populates the operand data columns of a state vector with the
// coefficients of a given step.
func loadData[F field.Element[F]](state []F, inputs *Inputs[F], step uint) {
	for i := DataStart; i < DataEnd; i++ {
		idx := i - DataStart
		dIdx := idx / DataLen
		vIdx := idx / CoeffLevel % ValueNum
		lIdx := idx % CoeffLevel
		state[i] = inputs.Values[dIdx][vIdx][lIdx][step]
	}
}

// stageFlags recomputes the flag columns from the operand data currently
// held in the state vector.  The first flag bank records wraparound of the
// addition (a + b exceeding the RNS modulus); the second records the
// borrow needed by the subtraction.
func stageFlags[F field.Element[F]](state []F) {
	var (
		zero = field.Zero[F]()
		one  = field.One[F]()
	)
	//
	for idx := 0; idx < DataLen; idx++ {
		lIdx := idx % CoeffLevel
		offset := ResultStart + idx + FlagNum*FlagLen + DataLen
		d1 := state[offset]
		d2 := state[offset+DataLen]
		d3 := state[offset+2*DataLen]
		m := state[lIdx]
		r1 := d1.Add(d2)
		//
		if r1.IsGreater(m) {
			state[FlagStart+idx] = one
		} else {
			state[FlagStart+idx] = zero
		}
		//
		if r1.Sub(state[FlagStart+idx].Mul(m)).IsGreater(d3) {
			state[FlagStart+FlagLen+idx] = zero
		} else {
			state[FlagStart+FlagLen+idx] = one
		}
	}
}

// applyResult computes the result columns from the operand data and flags
// currently held in the state vector: (d1 + d2 - f0*m) + f1*m - d3.
func applyResult[F field.Element[F]](state []F) {
	for idx := 0; idx < DataLen; idx++ {
		lIdx := idx % CoeffLevel
		offset := ResultStart + idx + FlagNum*FlagLen + DataLen
		d1 := state[offset]
		d2 := state[offset+DataLen]
		d3 := state[offset+2*DataLen]
		m := state[lIdx]
		r1 := d1.Add(d2)
		f0 := state[FlagStart+idx]
		f1 := state[FlagStart+FlagLen+idx]
		//
		state[ResultStart+idx] = r1.Sub(f0.Mul(m)).Add(f1.Mul(m)).Sub(d3)
	}
}
