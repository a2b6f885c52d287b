// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package json

import (
	"encoding/json"
	"math/big"

	"github.com/Vesnica/STARK-HE/pkg/trace"
	"github.com/Vesnica/STARK-HE/pkg/util/field"
)

// ToBytes writes a trace as JSON, mapping each column name to its array of
// (decimal) values.
func ToBytes[F field.Element[F]](tr trace.Trace[F]) ([]byte, error) {
	rawData := make(map[string][]*big.Int, tr.Width())
	//
	for i := uint(0); i < tr.Width(); i++ {
		rawInts := make([]*big.Int, tr.Height())
		//
		for row := uint(0); row < tr.Height(); row++ {
			val, err := tr.Get(i, row)
			// Unreachable for in-range rows.
			if err != nil {
				return nil, err
			}
			//
			rawInts[row] = new(big.Int).SetBytes(val.Bytes())
		}
		//
		rawData[tr.ColumnName(i)] = rawInts
	}
	//
	return json.Marshal(rawData)
}
