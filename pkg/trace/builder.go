// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package trace

import (
	"fmt"
	"math/bits"

	"github.com/Vesnica/STARK-HE/pkg/util/field"
)

// Builder is a helper utility for constructing traces row by row.  The
// caller provides an initialiser for the first row, and an update function
// which transforms the state of one row into the state of the next.  This
// matches how STARK execution traces are generated: the state vector is
// the machine state, and the update function is one machine step.
type Builder[F field.Element[F]] struct {
	// Column names, fixing the trace width and layout order
	names []string
	// Number of rows to generate
	height uint
}

// NewBuilder constructs a builder for a trace with the given column layout
// and height.  Trace height must be a power of two (and at least two), as
// required of STARK execution traces.
func NewBuilder[F field.Element[F]](names []string, height uint) (*Builder[F], error) {
	if height < 2 || bits.OnesCount(height) != 1 {
		return nil, fmt.Errorf("trace height %d is not a power of two", height)
	}
	//
	return &Builder[F]{names, height}, nil
}

// Fill generates a complete trace.  The init function populates the state
// vector for the first row; update is then called once per remaining row
// with the index of the previous row, mutating the state vector in place.
func (p *Builder[F]) Fill(init func(state []F), update func(prev uint, state []F)) *ArrayTrace[F] {
	var (
		width   = uint(len(p.names))
		state   = make([]F, width)
		columns = make([]Column[F], width)
	)
	//
	for i := range columns {
		columns[i] = Column[F]{p.names[i], make([]F, p.height)}
	}
	// First row
	init(state)
	//
	for i := uint(0); i < width; i++ {
		columns[i].data[0] = state[i]
	}
	// Remaining rows
	for row := uint(1); row < p.height; row++ {
		update(row-1, state)
		//
		for i := uint(0); i < width; i++ {
			columns[i].data[row] = state[i]
		}
	}
	// Heights are consistent by construction.
	trace, err := NewArrayTrace(columns)
	if err != nil {
		panic(err)
	}
	//
	return trace
}
