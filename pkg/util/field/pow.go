// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package field

// Pow takes a given value to the power n.
func Pow[F Element[F]](val F, n uint64) F {
	if n == 0 {
		val = val.SetUint64(1)
	} else if n > 1 {
		m := n / 2
		// Check for odd case
		if n%2 == 1 {
			tmp := val
			val = Pow(val, m)
			val = val.Mul(val).Mul(tmp)
		} else {
			// Even case is easy
			val = Pow(val, m)
			val = val.Mul(val)
		}
	}
	//
	return val
}

// BatchInvert inverts every element of the given slice in place, using a
// single field inversion overall (Montgomery's trick).  Zero entries are
// mapped to zero, matching the convention of Inverse.
func BatchInvert[F Element[F]](elements []F) {
	var (
		acc     = One[F]()
		partial = make([]F, len(elements))
	)
	// Forward pass accumulating prefix products, skipping zeros.
	for i, e := range elements {
		partial[i] = acc
		//
		if !e.IsZero() {
			acc = acc.Mul(e)
		}
	}
	// One inversion for the whole batch
	acc = acc.Inverse()
	// Backward pass peeling off individual inverses.
	for i := len(elements) - 1; i >= 0; i-- {
		if elements[i].IsZero() {
			continue
		}
		//
		inv := acc.Mul(partial[i])
		acc = acc.Mul(elements[i])
		elements[i] = inv
	}
}
