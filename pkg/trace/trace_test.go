// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package trace

import (
	"strings"
	"testing"

	"github.com/Vesnica/STARK-HE/pkg/util/assert"
	"github.com/Vesnica/STARK-HE/pkg/util/field"
	"github.com/Vesnica/STARK-HE/pkg/util/field/f128"
)

func counters(n uint) []f128.Element {
	data := make([]f128.Element, n)
	//
	for i := range data {
		data[i] = field.Uint64[f128.Element](uint64(i))
	}
	//
	return data
}

func TestArrayTrace_Access(t *testing.T) {
	tr, err := NewArrayTrace([]Column[f128.Element]{
		NewColumn("X", counters(4)),
		NewColumn("Y", counters(4)),
	})
	assert.Nil(t, err)
	assert.Equal(t, uint(2), tr.Width())
	assert.Equal(t, uint(4), tr.Height())
	assert.Equal(t, "X", tr.ColumnName(0))
	//
	val, err := tr.Get(1, 3)
	assert.Nil(t, err)
	assert.Equal(t, uint64(3), val.Uint64())
	//
	val, err = tr.GetByName("X", 2)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), val.Uint64())
	// Out-of-bounds accesses fail
	_, err = tr.Get(2, 0)
	assert.NonNil(t, err)
	_, err = tr.Get(0, 4)
	assert.NonNil(t, err)
	_, err = tr.GetByName("Z", 0)
	assert.NonNil(t, err)
}

func TestArrayTrace_DuplicateColumn(t *testing.T) {
	_, err := NewArrayTrace([]Column[f128.Element]{
		NewColumn("X", counters(4)),
		NewColumn("X", counters(4)),
	})
	assert.NonNil(t, err)
}

func TestArrayTrace_RaggedColumns(t *testing.T) {
	_, err := NewArrayTrace([]Column[f128.Element]{
		NewColumn("X", counters(4)),
		NewColumn("Y", counters(8)),
	})
	assert.NonNil(t, err)
}

func TestArrayTrace_Clone(t *testing.T) {
	tr, err := NewArrayTrace([]Column[f128.Element]{
		NewColumn("X", counters(2)),
	})
	assert.Nil(t, err)
	//
	clone := tr.Clone()
	// Mutate the original underneath the clone
	tr.Column(0).data[0] = field.Uint64[f128.Element](99)
	//
	val, err := clone.Get(0, 0)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), val.Uint64())
}

func TestBuilder_Fill(t *testing.T) {
	builder, err := NewBuilder[f128.Element]([]string{"N", "2N"}, 8)
	assert.Nil(t, err)
	//
	one := field.One[f128.Element]()
	two := field.Uint64[f128.Element](2)
	// N counts up from zero; 2N is its double.
	tr := builder.Fill(
		func(state []f128.Element) {
			state[0] = field.Zero[f128.Element]()
			state[1] = field.Zero[f128.Element]()
		},
		func(prev uint, state []f128.Element) {
			state[0] = state[0].Add(one)
			state[1] = state[0].Mul(two)
		})
	//
	assert.Equal(t, uint(8), tr.Height())
	//
	for row := uint(0); row < 8; row++ {
		n, err := tr.GetByName("N", row)
		assert.Nil(t, err)
		dbl, err := tr.GetByName("2N", row)
		assert.Nil(t, err)
		assert.Equal(t, uint64(row), n.Uint64())
		//
		if row > 0 {
			assert.Equal(t, uint64(2*row), dbl.Uint64())
		}
	}
}

func TestBuilder_BadHeight(t *testing.T) {
	for _, height := range []uint{0, 1, 3, 6, 4095} {
		_, err := NewBuilder[f128.Element]([]string{"X"}, height)
		assert.NonNil(t, err, "height %d accepted", height)
	}
}

func TestPrinter_Window(t *testing.T) {
	tr, err := NewArrayTrace([]Column[f128.Element]{
		NewColumn("X", counters(8)),
	})
	assert.Nil(t, err)
	//
	var buf strings.Builder
	//
	NewPrinter[f128.Element]().Window(2, 5).MaxWidth(40).Fprint(&buf, tr)
	assert.Equal(t, "X | 2 3 4\n", buf.String())
}

func TestPrinter_Clip(t *testing.T) {
	tr, err := NewArrayTrace([]Column[f128.Element]{
		NewColumn("X", counters(256)),
	})
	assert.Nil(t, err)
	//
	var buf strings.Builder
	//
	NewPrinter[f128.Element]().MaxWidth(20).Fprint(&buf, tr)
	//
	line := strings.TrimSuffix(buf.String(), "\n")
	assert.Equal(t, 20, len(line))
	assert.True(t, strings.HasSuffix(line, ".."))
}
