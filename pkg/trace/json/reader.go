// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

// Package json supports reading and writing traces in JSON notation.  For
// example, {"X": [0], "Y": [1]} is a trace containing one row of data each
// for two columns "X" and "Y".  Column order is not preserved by JSON
// objects, so readers supply the expected layout.
package json

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/Vesnica/STARK-HE/pkg/trace"
	"github.com/Vesnica/STARK-HE/pkg/util/field"
)

// FromBytes parses a trace expressed in JSON notation, laying columns out
// in the given order.  Every column named in the layout must be present,
// and every value must be a non-negative integer below the field modulus.
func FromBytes[F field.Element[F]](data []byte, layout []string) (*trace.ArrayTrace[F], error) {
	var (
		rawData map[string][]big.Int
		modulus = field.Zero[F]().Modulus()
		columns = make([]trace.Column[F], len(layout))
	)
	// Attempt to unmarshall
	if jsonErr := json.Unmarshal(data, &rawData); jsonErr != nil {
		return nil, jsonErr
	}
	//
	for i, name := range layout {
		rawInts, ok := rawData[name]
		if !ok {
			return nil, fmt.Errorf("missing column %s", name)
		}
		// Translate raw bigints into field elements
		elements := make([]F, len(rawInts))
		//
		for row, rawInt := range rawInts {
			if rawInt.Sign() < 0 || rawInt.Cmp(modulus) >= 0 {
				return nil, fmt.Errorf("column %s out-of-bounds (row %d, value %s)",
					name, row, rawInt.String())
			}
			//
			elements[row] = field.BigInt[F](rawInt)
		}
		//
		columns[i] = trace.NewColumn(name, elements)
	}
	//
	return trace.NewArrayTrace(columns)
}
