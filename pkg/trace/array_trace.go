// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package trace

import (
	"fmt"
	"strings"

	"github.com/Vesnica/STARK-HE/pkg/util/field"
)

// ArrayTrace provides an implementation of Trace which stores columns as an
// array.  All columns have the same height.
type ArrayTrace[F field.Element[F]] struct {
	// Holds the height of every column in the trace
	height uint
	// Holds the columns of this trace, in layout order
	columns []Column[F]
}

// NewArrayTrace constructs a trace from a given set of columns.  Every
// column must have the same height, and column names must be unique.
func NewArrayTrace[F field.Element[F]](columns []Column[F]) (*ArrayTrace[F], error) {
	var height uint
	//
	seen := make(map[string]bool, len(columns))
	//
	for i, c := range columns {
		if seen[c.name] {
			return nil, fmt.Errorf("duplicate column %s", c.name)
		} else if i != 0 && c.Height() != height {
			return nil, fmt.Errorf("column %s has height %d, expected %d", c.name, c.Height(), height)
		}
		//
		seen[c.name] = true
		height = c.Height()
	}
	//
	return &ArrayTrace[F]{height, columns}, nil
}

// Width returns the number of columns in this trace.
func (p *ArrayTrace[F]) Width() uint {
	return uint(len(p.columns))
}

// Height returns the number of rows in this trace.
func (p *ArrayTrace[F]) Height() uint {
	return p.height
}

// ColumnName returns the name of the ith column in this trace.
func (p *ArrayTrace[F]) ColumnName(index uint) string {
	return p.columns[index].name
}

// ColumnIndex returns the column index of the column with the given name in
// this trace, or returns false if no such column exists.
func (p *ArrayTrace[F]) ColumnIndex(name string) (uint, bool) {
	for i := range p.columns {
		if p.columns[i].name == name {
			return uint(i), true
		}
	}
	// Column does not exist
	return 0, false
}

// Column returns the ith column of this trace.
func (p *ArrayTrace[F]) Column(index uint) *Column[F] {
	return &p.columns[index]
}

// Get the value of a given column by its index.
func (p *ArrayTrace[F]) Get(col uint, row uint) (F, error) {
	var empty F
	//
	if col >= p.Width() {
		return empty, fmt.Errorf("column index %d out-of-bounds", col)
	} else if row >= p.height {
		return empty, fmt.Errorf("row index %d out-of-bounds", row)
	}
	//
	return p.columns[col].data[row], nil
}

// GetByName gets the value of a given column by its name.
func (p *ArrayTrace[F]) GetByName(name string, row uint) (F, error) {
	var empty F
	//
	col, ok := p.ColumnIndex(name)
	if !ok {
		return empty, fmt.Errorf("unknown column %s", name)
	}
	//
	return p.Get(col, row)
}

// Row copies the given row of this trace into a state vector, which must
// have length equal to the trace width.
func (p *ArrayTrace[F]) Row(row uint, state []F) {
	for i := range p.columns {
		state[i] = p.columns[i].data[row]
	}
}

// Clone creates an identical clone of this trace.
func (p *ArrayTrace[F]) Clone() *ArrayTrace[F] {
	columns := make([]Column[F], len(p.columns))
	//
	for i := range p.columns {
		columns[i] = p.columns[i].Clone()
	}
	//
	return &ArrayTrace[F]{p.height, columns}
}

func (p *ArrayTrace[F]) String() string {
	// Use string builder to try and make this vaguely efficient.
	var id strings.Builder
	//
	id.WriteString("{")
	//
	for i := range p.columns {
		if i != 0 {
			id.WriteString(",")
		}
		//
		id.WriteString(p.columns[i].name)
		id.WriteString("={")
		//
		for j := uint(0); j < p.height; j++ {
			if j != 0 {
				id.WriteString(",")
			}
			//
			id.WriteString(p.columns[i].data[j].String())
		}
		//
		id.WriteString("}")
	}
	//
	id.WriteString("}")
	//
	return id.String()
}
