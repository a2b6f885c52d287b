// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package air

import (
	"fmt"

	"github.com/Vesnica/STARK-HE/pkg/trace"
	"github.com/Vesnica/STARK-HE/pkg/util/field"
)

// PublicInputs are the publicly committed values of the circuit: the
// result columns of the trace, indexed as [polynomial][level][row].
type PublicInputs[F field.Element[F]] struct {
	Result [ValueNum][CoeffLevel][]F
}

// GetPublicInputs extracts the public inputs from a trace.
func GetPublicInputs[F field.Element[F]](tr *trace.ArrayTrace[F]) *PublicInputs[F] {
	var pub PublicInputs[F]
	//
	for v := 0; v < ValueNum; v++ {
		for l := 0; l < CoeffLevel; l++ {
			column := tr.Column(uint(ResultStart + v*CoeffLevel + l))
			data := make([]F, len(column.Data()))
			copy(data, column.Data())
			//
			pub.Result[v][l] = data
		}
	}
	//
	return &pub
}

// Check determines whether a trace satisfies the circuit relations: the
// degree-2 transition relation between every pair of consecutive rows, and
// the boundary values of the result columns on the first and last rows.
// This replays the constraint shape a proving backend would enforce; it is
// not proof verification.
func Check[F field.Element[F]](tr *trace.ArrayTrace[F], pub *PublicInputs[F]) error {
	if tr.Width() != StateWidth {
		return fmt.Errorf("trace has %d columns, expected %d", tr.Width(), StateWidth)
	}
	//
	var (
		height = tr.Height()
		cur    = make([]F, StateWidth)
		next   = make([]F, StateWidth)
	)
	// Transition relation
	for row := uint(0); row+1 < height; row++ {
		tr.Row(row, cur)
		tr.Row(row+1, next)
		//
		for idx := 0; idx < DataLen; idx++ {
			lIdx := idx % CoeffLevel
			offset := ResultStart + idx + FlagNum*FlagLen + DataLen
			d1 := cur[offset]
			d2 := cur[offset+DataLen]
			d3 := cur[offset+2*DataLen]
			m := cur[lIdx]
			f0 := cur[FlagStart+idx]
			f1 := cur[FlagStart+FlagLen+idx]
			// next[R] = (d1 + d2 - f0*m) + f1*m - d3
			expected := d1.Add(d2).Sub(f0.Mul(m)).Add(f1.Mul(m)).Sub(d3)
			actual := next[ResultStart+idx]
			//
			if actual.Cmp(expected) != 0 {
				return fmt.Errorf("transition failure in column %s between rows %d and %d (expected %s, found %s)",
					tr.ColumnName(uint(ResultStart+idx)), row, row+1, expected, actual)
			}
		}
	}
	// Boundary assertions
	for v := 0; v < ValueNum; v++ {
		for l := 0; l < CoeffLevel; l++ {
			if uint(len(pub.Result[v][l])) != height {
				return fmt.Errorf("public inputs have %d rows, expected %d", len(pub.Result[v][l]), height)
			}
			//
			if err := checkBoundary(tr, pub, v, l, 0); err != nil {
				return err
			}
			//
			if err := checkBoundary(tr, pub, v, l, height-1); err != nil {
				return err
			}
		}
	}
	//
	return nil
}

func checkBoundary[F field.Element[F]](tr *trace.ArrayTrace[F], pub *PublicInputs[F], v int, l int, row uint) error {
	col := uint(ResultStart + v*CoeffLevel + l)
	//
	actual, err := tr.Get(col, row)
	if err != nil {
		return err
	}
	//
	if actual.Cmp(pub.Result[v][l][row]) != 0 {
		return fmt.Errorf("boundary failure in column %s at row %d (expected %s, found %s)",
			tr.ColumnName(col), row, pub.Result[v][l][row], actual)
	}
	//
	return nil
}
