// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

// Package trace provides execution trace tables: rectangular grids of
// field elements organised as named columns of equal height.  Tables are
// the exchange format between the circuit layer, which fills them, and
// whatever proving backend ultimately consumes them.
package trace

import (
	"github.com/Vesnica/STARK-HE/pkg/util/field"
)

// Trace describes a set of named data columns of equal height.
type Trace[F field.Element[F]] interface {
	// Get the value of a given column by its name.  If the column does not
	// exist or if the index is out-of-bounds then an error is returned.
	//
	// NOTE: this operation is expected to be slower than Get as, depending
	// on the underlying data format, this may first resolve the name into a
	// physical column index.
	GetByName(name string, row uint) (F, error)
	// Get the value of a given column by its index.  If the column does not
	// exist or if the index is out-of-bounds then an error is returned.
	Get(col uint, row uint) (F, error)
	// ColumnName returns the name of the ith column in this trace.
	ColumnName(index uint) string
	// Width returns the number of columns in this trace.
	Width() uint
	// Height returns the number of rows in this trace.
	Height() uint
}

// Column represents a single column of data within a trace.
type Column[F field.Element[F]] struct {
	// Holds the name of this column
	name string
	// Holds the raw data making up this column
	data []F
}

// NewColumn constructs a new column from raw data.
func NewColumn[F field.Element[F]](name string, data []F) Column[F] {
	return Column[F]{name, data}
}

// Name returns the name of the given column.
func (p *Column[F]) Name() string {
	return p.name
}

// Height determines the height of this column.
func (p *Column[F]) Height() uint {
	return uint(len(p.data))
}

// Data returns the data for the given column.
func (p *Column[F]) Data() []F {
	return p.data
}

// Get the value at a given row in this column.
func (p *Column[F]) Get(row uint) F {
	return p.data[row]
}

// Clone creates an identical clone of this column.
func (p *Column[F]) Clone() Column[F] {
	data := make([]F, len(p.data))
	copy(data, p.data)
	//
	return Column[F]{p.name, data}
}
